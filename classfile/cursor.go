package classfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	ErrBadMagic       = errors.New("classfile: bad magic")
	ErrTruncatedInput = errors.New("classfile: truncated input")
)

// cursor reads big-endian primitives from a borrowed reader. The first
// failed read is kept in err and every later read is a no-op.
type cursor struct {
	r   io.Reader
	pos int64
	err error
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: r}
}

func (c *cursor) fill(buf []byte) {
	if c.err != nil {
		return
	}
	n, err := io.ReadFull(c.r, buf)
	c.pos += int64(n)
	if err == nil {
		return
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		c.err = fmt.Errorf("%w at offset %d: %w", ErrTruncatedInput, c.pos, err)
		return
	}
	c.err = fmt.Errorf("read at offset %d: %w", c.pos, err)
}

func (c *cursor) readU1() uint8 {
	var buf [1]byte
	c.fill(buf[:])
	return buf[0]
}

func (c *cursor) readU2() uint16 {
	var buf [2]byte
	c.fill(buf[:])
	return binary.BigEndian.Uint16(buf[:])
}

func (c *cursor) readU4() uint32 {
	var buf [4]byte
	c.fill(buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (c *cursor) readU8() uint64 {
	var buf [8]byte
	c.fill(buf[:])
	return binary.BigEndian.Uint64(buf[:])
}

func (c *cursor) readBytes(n int) []byte {
	if c.err != nil {
		return nil
	}
	buf := make([]byte, n)
	c.fill(buf)
	if c.err != nil {
		return nil
	}
	return buf
}
