package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/classpeek/classfile"
)

type Encoder interface {
	Encode(td *classfile.TypeDescriptor) error
}

// NewEncoder returns the encoder registered under name ("line" or "json").
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "line", "":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected json or line)", name)
}
