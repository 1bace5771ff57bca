package classpath

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/classpeek/classfile"
)

var log = commonlog.GetLogger("classpeek.classpath")

var ErrNotFound = errors.New("class not found")

type location struct {
	source Source
	path   string
}

// Index resolves dotted binary names against an ordered list of sources.
// The first source providing a name wins. Parsed descriptors are kept for
// the lifetime of the index.
type Index struct {
	sources []Source

	mu        sync.Mutex
	locations map[string]location
	names     []string
	cache     map[string]*classfile.TypeDescriptor
}

func NewIndex(sources ...Source) *Index {
	return &Index{
		sources: sources,
		cache:   make(map[string]*classfile.TypeDescriptor),
	}
}

// Open opens every entry as a Source. Sources opened before a failure
// are closed again.
func Open(entries []string) (*Index, error) {
	var sources []Source
	for _, e := range entries {
		s, err := OpenSource(e)
		if err != nil {
			for _, opened := range sources {
				opened.Close()
			}
			return nil, err
		}
		log.Infof("opened classpath entry %s", e)
		sources = append(sources, s)
	}
	return NewIndex(sources...), nil
}

func (ix *Index) Close() error {
	var errs []error
	for _, s := range ix.sources {
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Names returns every class name visible through the index, sorted.
func (ix *Index) Names() ([]string, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if err := ix.scanLocked(); err != nil {
		return nil, err
	}
	return append([]string(nil), ix.names...), nil
}

// Lookup returns the descriptor for a dotted binary name, parsing the class
// file on first use.
func (ix *Index) Lookup(name string) (*classfile.TypeDescriptor, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if td, ok := ix.cache[name]; ok {
		log.Debugf("cache hit for %s", name)
		return td, nil
	}
	if err := ix.scanLocked(); err != nil {
		return nil, err
	}
	loc, ok := ix.locations[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	log.Debugf("parsing %s from %s", loc.path, loc.source.Name())
	td, err := parse(loc)
	if err != nil {
		return nil, err
	}
	ix.cache[name] = td
	return td, nil
}

// All parses every class on the index. Classes that fail to parse are
// skipped; their errors are joined into the returned error.
func (ix *Index) All() ([]*classfile.TypeDescriptor, error) {
	names, err := ix.Names()
	if err != nil {
		return nil, err
	}
	var (
		result []*classfile.TypeDescriptor
		errs   []error
	)
	for _, name := range names {
		td, err := ix.Lookup(name)
		if err != nil {
			log.Warningf("skipping %s: %s", name, err)
			errs = append(errs, err)
			continue
		}
		result = append(result, td)
	}
	return result, errors.Join(errs...)
}

func (ix *Index) scanLocked() error {
	if ix.locations != nil {
		return nil
	}
	locations := make(map[string]location)
	for _, s := range ix.sources {
		paths, err := s.Paths()
		if err != nil {
			return fmt.Errorf("list %s: %w", s.Name(), err)
		}
		for _, p := range paths {
			name := BinaryName(p)
			if _, seen := locations[name]; seen {
				log.Debugf("%s in %s is shadowed", name, s.Name())
				continue
			}
			locations[name] = location{source: s, path: p}
		}
	}
	names := make([]string, 0, len(locations))
	for name := range locations {
		names = append(names, name)
	}
	sort.Strings(names)
	ix.locations = locations
	ix.names = names
	return nil
}

func parse(loc location) (*classfile.TypeDescriptor, error) {
	rc, err := loc.source.Open(loc.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", loc.path, err)
	}
	defer rc.Close()

	td, err := classfile.ParseHeader(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s in %s: %w", loc.path, loc.source.Name(), err)
	}
	return td, nil
}
