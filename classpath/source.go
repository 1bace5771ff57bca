// Package classpath finds class files in directories and jars and indexes
// their headers by binary name.
package classpath

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Source supplies class-file streams keyed by slash-separated logical
// paths such as "com/example/Foo.class".
type Source interface {
	Name() string
	Paths() ([]string, error)
	Open(path string) (io.ReadCloser, error)
	Close() error
}

// OpenSource opens a directory, .jar or .zip as a Source.
func OpenSource(p string) (Source, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}
	if info.IsDir() {
		return NewDirSource(p), nil
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".jar", ".zip":
		return OpenJar(p)
	}
	return nil, fmt.Errorf("unsupported classpath entry: %s (expected directory, .jar or .zip)", p)
}

type DirSource struct {
	root string
}

func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

func (s *DirSource) Name() string { return s.root }

func (s *DirSource) Paths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isClassFile(p) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *DirSource) Open(p string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, filepath.FromSlash(p)))
}

func (s *DirSource) Close() error { return nil }

type JarSource struct {
	path  string
	zr    *zip.ReadCloser
	files map[string]*zip.File
	paths []string
}

func OpenJar(p string) (*JarSource, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", p, err)
	}
	s := &JarSource{path: p, zr: zr, files: make(map[string]*zip.File)}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !isClassFile(f.Name) || strings.HasPrefix(f.Name, "META-INF/") {
			continue
		}
		s.files[f.Name] = f
		s.paths = append(s.paths, f.Name)
	}
	sort.Strings(s.paths)
	return s, nil
}

func (s *JarSource) Name() string { return s.path }

func (s *JarSource) Paths() ([]string, error) {
	return append([]string(nil), s.paths...), nil
}

func (s *JarSource) Open(p string) (io.ReadCloser, error) {
	f, ok := s.files[p]
	if !ok {
		return nil, fmt.Errorf("open %s in %s: %w", p, s.path, fs.ErrNotExist)
	}
	return f.Open()
}

func (s *JarSource) Close() error { return s.zr.Close() }

func isClassFile(p string) bool {
	return strings.HasSuffix(p, ".class")
}

// BinaryName converts a logical path to the dotted name of the class it
// holds, e.g. "a/b/C$D.class" to "a.b.C$D".
func BinaryName(p string) string {
	return strings.ReplaceAll(strings.TrimSuffix(p, ".class"), "/", ".")
}

// ClassPath is the inverse of BinaryName.
func ClassPath(name string) string {
	return path.Join(strings.Split(name, ".")...) + ".class"
}
