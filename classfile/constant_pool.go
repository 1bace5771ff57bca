package classfile

import (
	"math"
	"strings"
)

// UnresolvedName is returned by name lookups whose slot does not hold a
// reference to a UTF-8 literal. It is never a valid binary name.
const UnresolvedName = "<unresolved>"

// ConstantPoolEntry is one slot of the constant pool. Literals carry their
// value directly, a *Reference points at other slots.
type ConstantPoolEntry interface {
	Tag() ConstantTag
}

type Utf8 struct {
	Value string
}

func (c *Utf8) Tag() ConstantTag { return ConstantUtf8 }

type Integer struct {
	Value int32
}

func (c *Integer) Tag() ConstantTag { return ConstantInteger }

type Float struct {
	Value float32
}

func (c *Float) Tag() ConstantTag { return ConstantFloat }

type Long struct {
	Value int64
}

func (c *Long) Tag() ConstantTag { return ConstantLong }

type Double struct {
	Value float64
}

func (c *Double) Tag() ConstantTag { return ConstantDouble }

// Reference is every non-literal entry. First and Second are pool indices;
// Second is zero for single-index tags. Kind is only set for method handles.
type Reference struct {
	tag    ConstantTag
	Kind   uint8
	First  uint16
	Second uint16
}

func (c *Reference) Tag() ConstantTag { return c.tag }

// reserved occupies the slot following a Long or Double.
type reserved struct {
	tag ConstantTag
}

func (c *reserved) Tag() ConstantTag { return c.tag }

type ConstantPool struct {
	entries []ConstantPoolEntry
}

// Len returns the declared pool count, including the unused slot 0.
func (cp *ConstantPool) Len() int { return len(cp.entries) }

// Entry returns the slot at index i, or nil for slot 0 and indices outside
// the pool.
func (cp *ConstantPool) Entry(i uint16) ConstantPoolEntry {
	if i == 0 || int(i) >= len(cp.entries) {
		return nil
	}
	return cp.entries[i]
}

// IsReserved reports whether i is the second slot of a Long or Double.
func (cp *ConstantPool) IsReserved(i uint16) bool {
	_, ok := cp.Entry(i).(*reserved)
	return ok
}

// Name follows the reference at i one level to a UTF-8 literal.
func (cp *ConstantPool) Name(i uint16) string {
	ref, ok := cp.Entry(i).(*Reference)
	if !ok {
		return UnresolvedName
	}
	lit, ok := cp.Entry(ref.First).(*Utf8)
	if !ok {
		return UnresolvedName
	}
	return lit.Value
}

// TypeName is Name with the internal '/' separators replaced by '.'.
func (cp *ConstantPool) TypeName(i uint16) string {
	return InternalToSourceName(cp.Name(i))
}

func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

func readConstantPool(c *cursor) *ConstantPool {
	count := c.readU2()
	cp := &ConstantPool{entries: make([]ConstantPoolEntry, count)}
	for i := 1; i < int(count) && c.err == nil; i++ {
		entry := readConstantPoolEntry(c)
		cp.entries[i] = entry
		switch entry.(type) {
		case *Long, *Double:
			i++
			if i < int(count) {
				cp.entries[i] = &reserved{tag: entry.Tag()}
			}
		}
	}
	return cp
}

func readConstantPoolEntry(c *cursor) ConstantPoolEntry {
	tag := ConstantTag(c.readU1())
	switch tag {
	case ConstantUtf8:
		length := c.readU2()
		return &Utf8{Value: decodeModifiedUtf8(c.readBytes(int(length)))}
	case ConstantInteger:
		return &Integer{Value: int32(c.readU4())}
	case ConstantFloat:
		return &Float{Value: math.Float32frombits(c.readU4())}
	case ConstantLong:
		return &Long{Value: int64(c.readU8())}
	case ConstantDouble:
		return &Double{Value: math.Float64frombits(c.readU8())}
	}
	return readReference(c, tag)
}

// readReference decodes the non-literal tags. Tags it does not know are
// read as a single u2 index.
func readReference(c *cursor, tag ConstantTag) *Reference {
	ref := &Reference{tag: tag}
	switch {
	case tag == ConstantMethodHandle:
		ref.Kind = c.readU1()
		ref.First = c.readU2()
	case tag.wide():
		ref.First = c.readU2()
		ref.Second = c.readU2()
	default:
		ref.First = c.readU2()
	}
	return ref
}
