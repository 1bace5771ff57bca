package format

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/dhamidi/classpeek/classfile"
)

type JSONEncoder struct {
	enc *json.Encoder
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{enc: json.NewEncoder(w)}
}

func (e *JSONEncoder) Encode(td *classfile.TypeDescriptor) error {
	return e.enc.Encode(jsonClassFrom(td))
}

type jsonClass struct {
	Name        string      `json:"name"`
	SimpleName  string      `json:"simpleName"`
	Package     string      `json:"package"`
	SuperClass  string      `json:"superClass,omitempty"`
	Interfaces  []string    `json:"interfaces,omitempty"`
	Kind        string      `json:"kind"`
	AccessFlags uint16      `json:"accessFlags"`
	Modifiers   []string    `json:"modifiers,omitempty"`
	Version     jsonVersion `json:"version"`
}

type jsonVersion struct {
	Major   uint16 `json:"major"`
	Minor   uint16 `json:"minor"`
	Release int    `json:"release,omitempty"`
}

func jsonClassFrom(td *classfile.TypeDescriptor) jsonClass {
	c := jsonClass{
		Name:        td.Name(),
		SimpleName:  td.SimpleName(),
		Package:     td.Package(),
		Interfaces:  td.Interfaces(),
		Kind:        td.Kind().String(),
		AccessFlags: uint16(td.AccessFlags()),
		Version: jsonVersion{
			Major:   td.Version().Major,
			Minor:   td.Version().Minor,
			Release: td.Version().Release(),
		},
	}
	if td.SuperclassName() != classfile.UnresolvedName {
		c.SuperClass = td.SuperclassName()
	}
	if td.IsPublic() {
		c.Modifiers = append(c.Modifiers, "public")
	}
	if td.IsAbstract() {
		c.Modifiers = append(c.Modifiers, "abstract")
	}
	if td.IsFinal() {
		c.Modifiers = append(c.Modifiers, "final")
	}
	return c
}
