// Package classfiletest assembles class-file bytes for tests.
package classfiletest

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
)

// Access flag values, repeated here so the package stays free of imports
// from the code under test.
const (
	AccPublic     = 0x0001
	AccFinal      = 0x0010
	AccSuper      = 0x0020
	AccInterface  = 0x0200
	AccAbstract   = 0x0400
	AccSynthetic  = 0x1000
	AccAnnotation = 0x2000
	AccEnum       = 0x4000
	AccModule     = 0x8000
)

// Builder collects constant-pool entries and header fields. Names passed
// to Class, This, Super and Implements may use either '.' or '/'.
type Builder struct {
	major, minor uint16
	pool         bytes.Buffer
	next         uint16
	utf8         map[string]uint16
	classes      map[string]uint16
	flags        uint16
	this         uint16
	super        uint16
	interfaces   []uint16
	trailer      []byte
}

func New() *Builder {
	return &Builder{
		major:   61,
		next:    1,
		utf8:    map[string]uint16{},
		classes: map[string]uint16{},
		flags:   AccPublic | AccSuper,
		trailer: []byte{0, 0, 0, 0, 0, 0},
	}
}

func (b *Builder) Version(major, minor uint16) *Builder {
	b.major, b.minor = major, minor
	return b
}

func (b *Builder) Access(flags uint16) *Builder {
	b.flags = flags
	return b
}

func (b *Builder) This(name string) *Builder {
	b.this = b.Class(name)
	return b
}

func (b *Builder) Super(name string) *Builder {
	b.super = b.Class(name)
	return b
}

// SuperIndex sets super_class to a raw pool index, e.g. 0.
func (b *Builder) SuperIndex(i uint16) *Builder {
	b.super = i
	return b
}

func (b *Builder) Implements(names ...string) *Builder {
	for _, n := range names {
		b.interfaces = append(b.interfaces, b.Class(n))
	}
	return b
}

// InterfaceIndex appends a raw pool index to the interfaces table.
func (b *Builder) InterfaceIndex(i uint16) *Builder {
	b.interfaces = append(b.interfaces, i)
	return b
}

// Trailer replaces the bytes written after the interfaces table.
func (b *Builder) Trailer(p []byte) *Builder {
	b.trailer = p
	return b
}

func (b *Builder) Utf8(s string) uint16 {
	if i, ok := b.utf8[s]; ok {
		return i
	}
	b.pool.WriteByte(1)
	b.u2(uint16(len(s)))
	b.pool.WriteString(s)
	i := b.take(1)
	b.utf8[s] = i
	return i
}

// Utf8Raw adds a UTF-8 entry with the given encoded bytes.
func (b *Builder) Utf8Raw(p []byte) uint16 {
	b.pool.WriteByte(1)
	b.u2(uint16(len(p)))
	b.pool.Write(p)
	return b.take(1)
}

func (b *Builder) Class(name string) uint16 {
	name = strings.ReplaceAll(name, ".", "/")
	if i, ok := b.classes[name]; ok {
		return i
	}
	nameIndex := b.Utf8(name)
	b.pool.WriteByte(7)
	b.u2(nameIndex)
	i := b.take(1)
	b.classes[name] = i
	return i
}

func (b *Builder) Integer(v int32) uint16 {
	b.pool.WriteByte(3)
	b.u4(uint32(v))
	return b.take(1)
}

func (b *Builder) Float(v float32) uint16 {
	b.pool.WriteByte(4)
	b.u4(math.Float32bits(v))
	return b.take(1)
}

// Long adds a long constant, which takes two pool slots.
func (b *Builder) Long(v int64) uint16 {
	b.pool.WriteByte(5)
	b.u8(uint64(v))
	return b.take(2)
}

// Double adds a double constant, which takes two pool slots.
func (b *Builder) Double(v float64) uint16 {
	b.pool.WriteByte(6)
	b.u8(math.Float64bits(v))
	return b.take(2)
}

// Raw adds an entry with an arbitrary tag and payload occupying one slot.
func (b *Builder) Raw(tag uint8, payload ...byte) uint16 {
	b.pool.WriteByte(tag)
	b.pool.Write(payload)
	return b.take(1)
}

// Bytes returns the complete class file. Fields, methods and attributes
// are written as empty tables unless Trailer was set.
func (b *Builder) Bytes() []byte {
	var out bytes.Buffer
	w := func(v any) { binary.Write(&out, binary.BigEndian, v) }
	w(uint32(0xCAFEBABE))
	w(b.minor)
	w(b.major)
	w(b.next)
	out.Write(b.pool.Bytes())
	w(b.flags)
	w(b.this)
	w(b.super)
	w(uint16(len(b.interfaces)))
	for _, i := range b.interfaces {
		w(i)
	}
	out.Write(b.trailer)
	return out.Bytes()
}

func (b *Builder) take(slots uint16) uint16 {
	i := b.next
	b.next += slots
	return i
}

func (b *Builder) u2(v uint16) {
	binary.Write(&b.pool, binary.BigEndian, v)
}

func (b *Builder) u4(v uint32) {
	binary.Write(&b.pool, binary.BigEndian, v)
}

func (b *Builder) u8(v uint64) {
	binary.Write(&b.pool, binary.BigEndian, v)
}

// Class returns a minimal class file for name with the given superclass,
// access flags and interfaces.
func Class(name, super string, flags uint16, interfaces ...string) []byte {
	return New().Access(flags).This(name).Super(super).Implements(interfaces...).Bytes()
}
