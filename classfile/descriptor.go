package classfile

import (
	"fmt"
	"slices"
	"strings"
)

type Kind uint8

const (
	KindClass Kind = iota
	KindInterface
	KindEnum
	KindRecord
	KindAnnotation
	KindPackage
	KindModule
)

// String returns the keyword the kind is declared with in source.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	case KindAnnotation:
		return "@interface"
	case KindPackage:
		return "package"
	case KindModule:
		return "module"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

type Version struct {
	Major uint16
	Minor uint16
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Release returns the Java SE feature release for class files from Java 5
// onwards, and 0 for anything older.
func (v Version) Release() int {
	if v.Major < 49 {
		return 0
	}
	return int(v.Major) - 44
}

// TypeDescriptor is the parsed header of one class file. All names are in
// dotted form. It is never modified after ParseHeader returns it.
type TypeDescriptor struct {
	name       string
	superclass string
	interfaces []string
	flags      AccessFlags
	version    Version
	kind       Kind
}

func (t *TypeDescriptor) Name() string             { return t.name }
func (t *TypeDescriptor) SuperclassName() string   { return t.superclass }
func (t *TypeDescriptor) AccessFlags() AccessFlags { return t.flags }
func (t *TypeDescriptor) Version() Version         { return t.version }
func (t *TypeDescriptor) Kind() Kind               { return t.kind }

// Interfaces returns the interface names in declaration order.
func (t *TypeDescriptor) Interfaces() []string {
	return slices.Clone(t.interfaces)
}

func (t *TypeDescriptor) InterfaceCount() int { return len(t.interfaces) }

// Interface returns the i-th declared interface. It panics if i is out of
// range, like a slice index.
func (t *TypeDescriptor) Interface(i int) string { return t.interfaces[i] }

func (t *TypeDescriptor) IsPublic() bool   { return t.flags.IsPublic() }
func (t *TypeDescriptor) IsAbstract() bool { return t.flags.IsAbstract() }
func (t *TypeDescriptor) IsFinal() bool    { return t.flags.IsFinal() }

func (t *TypeDescriptor) HasObjectAsSuperclass() bool {
	return t.superclass == ObjectClassName
}

func (t *TypeDescriptor) SimpleName() string {
	_, simple := splitClassName(t.name)
	return simple
}

func (t *TypeDescriptor) Package() string {
	pkg, _ := splitClassName(t.name)
	return pkg
}

func splitClassName(fullName string) (pkg, simpleName string) {
	lastDot := strings.LastIndex(fullName, ".")
	if lastDot == -1 {
		return "", fullName
	}
	return fullName[:lastDot], fullName[lastDot+1:]
}

// Equal reports whether both descriptors describe the same header.
func (t *TypeDescriptor) Equal(o *TypeDescriptor) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.name == o.name &&
		t.superclass == o.superclass &&
		slices.Equal(t.interfaces, o.interfaces) &&
		t.flags == o.flags &&
		t.version == o.version &&
		t.kind == o.kind
}

// String renders the declaration header, e.g.
// "public final class a.B extends a.C implements a.D, a.E".
func (t *TypeDescriptor) String() string {
	var sb strings.Builder
	if t.IsPublic() {
		sb.WriteString("public ")
	}
	if t.IsAbstract() && !t.implicitlyAbstract() {
		sb.WriteString("abstract ")
	}
	if t.IsFinal() && t.kind != KindRecord && t.kind != KindEnum {
		sb.WriteString("final ")
	}
	sb.WriteString(t.kind.String())
	sb.WriteByte(' ')
	sb.WriteString(t.name)

	if t.kind != KindInterface && t.superclass != ObjectClassName && t.superclass != UnresolvedName {
		sb.WriteString(" extends ")
		sb.WriteString(t.superclass)
	}

	if len(t.interfaces) > 0 && t.kind != KindAnnotation {
		if t.kind == KindInterface {
			sb.WriteString(" extends ")
		} else {
			sb.WriteString(" implements ")
		}
		sb.WriteString(strings.Join(t.interfaces, ", "))
	}
	return sb.String()
}

func (t *TypeDescriptor) implicitlyAbstract() bool {
	switch t.kind {
	case KindInterface, KindEnum, KindAnnotation:
		return true
	}
	return false
}
