// FILE: lixenwraith/xrmconfig/xrdb/source.go

package xrdb

import (
	"errors"
	"fmt"
	"os"
)

// StringSource parses resource text on every Open, like reading the
// RESOURCE_MANAGER property of a display. Empty text means no database.
type StringSource string

// Open parses the text.
func (s StringSource) Open() (Store, error) {
	if s == "" {
		return nil, ErrNoDatabase
	}
	db, err := ParseString(string(s))
	if err != nil {
		return nil, err
	}
	return db, nil
}

// FileSource reads a resource file on every Open.
type FileSource struct {
	Path string
	// Format defaults to detection by extension, then by content.
	Format Format
}

// Open reads and parses the file. A missing file reports ErrNoDatabase.
func (s FileSource) Open() (Store, error) {
	if s.Path == "" {
		return nil, ErrNoDatabase
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDatabase, s.Path)
		}
		return nil, fmt.Errorf("failed to read resource file '%s': %w", s.Path, err)
	}

	format := s.Format
	if format == "" || format == FormatAuto {
		format = detectFileFormat(s.Path)
	}
	db, err := ParseFormatted(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resource file '%s': %w", s.Path, err)
	}
	return db, nil
}

// MultiSource layers several sources; later sources override earlier ones.
// Members reporting ErrNoDatabase are skipped; if all do, so does Open.
type MultiSource []Source

// Open opens every member.
func (m MultiSource) Open() (Store, error) {
	var stores multiStore
	for _, src := range m {
		store, err := src.Open()
		if err != nil {
			if errors.Is(err, ErrNoDatabase) {
				continue
			}
			// Close what was already opened before bailing out.
			return nil, errors.Join(err, stores.Close())
		}
		stores = append(stores, store)
	}
	if len(stores) == 0 {
		return nil, ErrNoDatabase
	}
	return stores, nil
}

type multiStore []Store

func (m multiStore) Lookup(name, class string) (Value, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if v, ok := m[i].Lookup(name, class); ok {
			return v, true
		}
	}
	return Value{}, false
}

func (m multiStore) Close() error {
	var errs []error
	for _, store := range m {
		if err := store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
