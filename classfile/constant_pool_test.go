package classfile

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dhamidi/classpeek/classfile/classfiletest"
)

// poolFrom parses a class built by b and returns its constant pool.
func poolFrom(t *testing.T, b *classfiletest.Builder) *ConstantPool {
	t.Helper()
	c := newCursor(bytes.NewReader(b.Bytes()[8:]))
	cp := readConstantPool(c)
	if c.err != nil {
		t.Fatalf("readConstantPool: %v", c.err)
	}
	return cp
}

func TestConstantPoolLiterals(t *testing.T) {
	b := classfiletest.New()
	s := b.Utf8("hello")
	i := b.Integer(-7)
	f := b.Float(1.5)
	l := b.Long(-1 << 40)
	d := b.Double(2.25)
	after := b.Utf8("after")

	cp := poolFrom(t, b)

	if cp.Len() != int(after)+1 {
		t.Errorf("Len() = %d, want %d", cp.Len(), after+1)
	}
	if e, ok := cp.Entry(s).(*Utf8); !ok || e.Value != "hello" {
		t.Errorf("Entry(%d) = %#v, want Utf8 hello", s, cp.Entry(s))
	}
	if e, ok := cp.Entry(i).(*Integer); !ok || e.Value != -7 {
		t.Errorf("Entry(%d) = %#v, want Integer -7", i, cp.Entry(i))
	}
	if e, ok := cp.Entry(f).(*Float); !ok || e.Value != 1.5 {
		t.Errorf("Entry(%d) = %#v, want Float 1.5", f, cp.Entry(f))
	}
	if e, ok := cp.Entry(l).(*Long); !ok || e.Value != -1<<40 {
		t.Errorf("Entry(%d) = %#v, want Long", l, cp.Entry(l))
	}
	if e, ok := cp.Entry(d).(*Double); !ok || e.Value != 2.25 {
		t.Errorf("Entry(%d) = %#v, want Double 2.25", d, cp.Entry(d))
	}
	if e, ok := cp.Entry(after).(*Utf8); !ok || e.Value != "after" {
		t.Errorf("Entry(%d) = %#v, want Utf8 after", after, cp.Entry(after))
	}
}

func TestConstantPoolTwoSlotEntries(t *testing.T) {
	b := classfiletest.New()
	l := b.Long(99)
	d := b.Double(3.0)
	cp := poolFrom(t, b)

	for _, i := range []uint16{l, d} {
		if !cp.IsReserved(i + 1) {
			t.Errorf("IsReserved(%d) = false, want true", i+1)
		}
		if got := cp.Name(i + 1); got != UnresolvedName {
			t.Errorf("Name(%d) = %q, want %q", i+1, got, UnresolvedName)
		}
		if got := cp.Name(i); got != UnresolvedName {
			t.Errorf("Name(%d) = %q, want %q", i, got, UnresolvedName)
		}
		if _, ok := cp.Entry(i + 1).(*Long); ok {
			t.Errorf("Entry(%d) resolved to the long value", i+1)
		}
		if _, ok := cp.Entry(i + 1).(*Double); ok {
			t.Errorf("Entry(%d) resolved to the double value", i+1)
		}
	}
}

func TestConstantPoolSlotZero(t *testing.T) {
	b := classfiletest.New()
	b.Class("a/B")
	cp := poolFrom(t, b)
	if cp.Entry(0) != nil {
		t.Errorf("Entry(0) = %#v, want nil", cp.Entry(0))
	}
	if cp.Name(0) != UnresolvedName {
		t.Errorf("Name(0) = %q, want %q", cp.Name(0), UnresolvedName)
	}
	if cp.Name(uint16(cp.Len())) != UnresolvedName {
		t.Errorf("Name(Len()) = %q, want %q", cp.Name(uint16(cp.Len())), UnresolvedName)
	}
}

func TestConstantPoolNames(t *testing.T) {
	tests := []struct {
		internal string
		dotted   string
	}{
		{"java/lang/String", "java.lang.String"},
		{"Top", "Top"},
		{"a/b/Outer$Inner", "a.b.Outer$Inner"},
		{"x/y_z/Ünïcode", "x.y_z.Ünïcode"},
		{"[Ljava/lang/Object;", "[Ljava.lang.Object;"},
	}
	for _, tt := range tests {
		t.Run(tt.internal, func(t *testing.T) {
			b := classfiletest.New()
			b.Utf8(tt.internal)
			i := b.Raw(uint8(ConstantClass), 0, 1)
			cp := poolFrom(t, b)
			if got := cp.Name(i); got != tt.internal {
				t.Errorf("Name(%d) = %q, want %q", i, got, tt.internal)
			}
			if got := cp.TypeName(i); got != tt.dotted {
				t.Errorf("TypeName(%d) = %q, want %q", i, got, tt.dotted)
			}
		})
	}
}

func TestConstantPoolNameNonReference(t *testing.T) {
	b := classfiletest.New()
	s := b.Utf8("java/lang/Object")
	n := b.Integer(1)
	cls := b.Raw(uint8(ConstantClass), 0, byte(n))
	cp := poolFrom(t, b)

	if got := cp.Name(s); got != UnresolvedName {
		t.Errorf("Name(utf8) = %q, want %q", got, UnresolvedName)
	}
	if got := cp.Name(n); got != UnresolvedName {
		t.Errorf("Name(integer) = %q, want %q", got, UnresolvedName)
	}
	if got := cp.Name(cls); got != UnresolvedName {
		t.Errorf("Name(class -> integer) = %q, want %q", got, UnresolvedName)
	}
}

func TestConstantPoolReferences(t *testing.T) {
	b := classfiletest.New()
	methodref := b.Raw(uint8(ConstantMethodref), 0, 1, 0, 2)
	handle := b.Raw(uint8(ConstantMethodHandle), 6, 0, 3)
	methodType := b.Raw(uint8(ConstantMethodType), 0, 4)
	indy := b.Raw(uint8(ConstantInvokeDynamic), 0, 0, 0, 5)
	module := b.Raw(uint8(ConstantModule), 0, 6)
	unknown := b.Raw(42, 0, 7)
	trailing := b.Utf8("still aligned")

	cp := poolFrom(t, b)

	tests := []struct {
		index  uint16
		tag    ConstantTag
		kind   uint8
		first  uint16
		second uint16
	}{
		{methodref, ConstantMethodref, 0, 1, 2},
		{handle, ConstantMethodHandle, 6, 3, 0},
		{methodType, ConstantMethodType, 0, 4, 0},
		{indy, ConstantInvokeDynamic, 0, 0, 5},
		{module, ConstantModule, 0, 6, 0},
		{unknown, ConstantTag(42), 0, 7, 0},
	}
	for _, tt := range tests {
		ref, ok := cp.Entry(tt.index).(*Reference)
		if !ok {
			t.Errorf("Entry(%d) = %#v, want *Reference", tt.index, cp.Entry(tt.index))
			continue
		}
		if ref.Tag() != tt.tag || ref.Kind != tt.kind || ref.First != tt.first || ref.Second != tt.second {
			t.Errorf("Entry(%d) = %+v, want tag=%d kind=%d first=%d second=%d",
				tt.index, *ref, tt.tag, tt.kind, tt.first, tt.second)
		}
	}
	if e, ok := cp.Entry(trailing).(*Utf8); !ok || e.Value != "still aligned" {
		t.Errorf("Entry(%d) = %#v, want trailing Utf8", trailing, cp.Entry(trailing))
	}
}

func TestConstantPoolTruncated(t *testing.T) {
	// count=3 but only one entry present
	data := []byte{0, 3, 1, 0, 1, 'A'}
	c := newCursor(bytes.NewReader(data))
	readConstantPool(c)
	if !errors.Is(c.err, ErrTruncatedInput) {
		t.Errorf("err = %v, want ErrTruncatedInput", c.err)
	}
}

func TestParseHeaderInterfaceThroughReservedSlot(t *testing.T) {
	b := classfiletest.New().This("A").Super("java/lang/Object")
	l := b.Long(7)
	b.InterfaceIndex(l + 1)
	td, err := ParseHeaderBytes(b.Bytes())
	if err != nil {
		t.Fatalf("ParseHeaderBytes: %v", err)
	}
	if got := td.Interface(0); got != UnresolvedName {
		t.Errorf("Interface(0) = %q, want %q", got, UnresolvedName)
	}
}
