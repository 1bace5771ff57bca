package classfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// ParseHeaderFile opens path, parses its header and closes it again.
func ParseHeaderFile(path string) (*TypeDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open class file: %w", err)
	}
	defer f.Close()
	return ParseHeader(f)
}

func ParseHeaderBytes(data []byte) (*TypeDescriptor, error) {
	return ParseHeader(bytes.NewReader(data))
}

// ParseHeader reads a class file up to and including its interfaces table.
// Fields, methods and attributes are never read. The reader is borrowed:
// it is not closed and is left positioned after the interfaces.
func ParseHeader(rd io.Reader) (*TypeDescriptor, error) {
	c := newCursor(rd)

	magic := c.readU4()
	if c.err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", c.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: 0x%08X (expected 0xCAFEBABE)", ErrBadMagic, magic)
	}

	minor := c.readU2()
	major := c.readU2()
	if c.err != nil {
		return nil, fmt.Errorf("failed to read version: %w", c.err)
	}

	cp := readConstantPool(c)
	if c.err != nil {
		return nil, fmt.Errorf("failed to read constant pool: %w", c.err)
	}

	flags := AccessFlags(c.readU2())
	thisClass := c.readU2()
	superClass := c.readU2()
	interfacesCount := c.readU2()
	if c.err != nil {
		return nil, fmt.Errorf("failed to read class info: %w", c.err)
	}

	interfaces := make([]string, interfacesCount)
	for i := range interfaces {
		interfaces[i] = cp.TypeName(c.readU2())
	}
	if c.err != nil {
		return nil, fmt.Errorf("failed to read interfaces: %w", c.err)
	}

	td := &TypeDescriptor{
		name:       cp.TypeName(thisClass),
		superclass: cp.TypeName(superClass),
		interfaces: interfaces,
		flags:      flags,
		version:    Version{Major: major, Minor: minor},
	}
	td.kind = classify(flags, td.superclass)
	return td, nil
}

// classify applies a fixed precedence: annotation, interface, enum, module,
// then the record superclass check.
func classify(flags AccessFlags, superclass string) Kind {
	switch {
	case flags.IsAnnotation():
		return KindAnnotation
	case flags.IsInterface():
		return KindInterface
	case flags.IsEnum():
		return KindEnum
	case flags.IsModule():
		return KindModule
	case superclass == RecordClassName:
		return KindRecord
	}
	return KindClass
}
