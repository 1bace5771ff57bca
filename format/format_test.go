package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/dhamidi/classpeek/classfile"
	"github.com/dhamidi/classpeek/classfile/classfiletest"
)

func mustParse(t *testing.T, data []byte) *classfile.TypeDescriptor {
	t.Helper()
	td, err := classfile.ParseHeaderBytes(data)
	if err != nil {
		t.Fatalf("ParseHeaderBytes: %v", err)
	}
	return td
}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewLineEncoder(&buf)
	for _, data := range [][]byte{
		classfiletest.Class("a/A", "java/lang/Object", classfiletest.AccPublic),
		classfiletest.Class("a/B", "a/A", classfiletest.AccFinal, "a/I"),
	} {
		if err := enc.Encode(mustParse(t, data)); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}
	want := "public class a.A\nfinal class a.B extends a.A implements a.I\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestJSONEncoder(t *testing.T) {
	td := mustParse(t, classfiletest.New().
		Version(65, 0).
		Access(classfiletest.AccPublic|classfiletest.AccFinal|classfiletest.AccSuper).
		This("com/example/Point").
		Super("java/lang/Record").
		Implements("java/io/Serializable").
		Bytes())

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(td); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got jsonClass
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Name != "com.example.Point" || got.SimpleName != "Point" || got.Package != "com.example" {
		t.Errorf("names = %q %q %q", got.Name, got.SimpleName, got.Package)
	}
	if got.Kind != "record" {
		t.Errorf("Kind = %q, want %q", got.Kind, "record")
	}
	if got.SuperClass != "java.lang.Record" {
		t.Errorf("SuperClass = %q, want %q", got.SuperClass, "java.lang.Record")
	}
	if len(got.Interfaces) != 1 || got.Interfaces[0] != "java.io.Serializable" {
		t.Errorf("Interfaces = %v", got.Interfaces)
	}
	if strings.Join(got.Modifiers, " ") != "public final" {
		t.Errorf("Modifiers = %v, want [public final]", got.Modifiers)
	}
	if got.Version.Major != 65 || got.Version.Release != 21 {
		t.Errorf("Version = %+v", got.Version)
	}
}

func TestNewEncoder(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewEncoder("json", &buf); err != nil {
		t.Errorf("NewEncoder(json): %v", err)
	}
	if _, err := NewEncoder("line", &buf); err != nil {
		t.Errorf("NewEncoder(line): %v", err)
	}
	if _, err := NewEncoder("xml", &buf); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}
