package format

import (
	"io"

	"github.com/dhamidi/classpeek/classfile"
)

// LineEncoder writes one declaration header per line.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(td *classfile.TypeDescriptor) error {
	_, err := io.WriteString(e.w, td.String()+"\n")
	return err
}
