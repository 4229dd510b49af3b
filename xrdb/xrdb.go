// FILE: lixenwraith/xrmconfig/xrdb/xrdb.go

// Package xrdb is a small X resource database.
//
// It parses Xresources text (the format served by xrdb and stored in the
// RESOURCE_MANAGER property), flattens TOML, YAML and JSON files into the same
// entries, and answers lookups by a (name, class) pair using the Xrm
// precedence rules.
package xrdb

import (
	"errors"
	"fmt"
	"strings"
)

// TypeString is the type tag of every value produced by this package.
const TypeString = "String"

var (
	// ErrNoDatabase is returned by Source.Open when there is no database to query.
	ErrNoDatabase = errors.New("no resource database")
	// ErrUnknownFormat is returned for an unrecognized file format.
	ErrUnknownFormat = errors.New("unknown resource format")
	// ErrDuplicateResource is returned when two leaves of a structured file
	// flatten to the same resource specifier.
	ErrDuplicateResource = errors.New("duplicate resource")
)

// Value is a raw resource value. Addr is not NUL terminated.
type Value struct {
	Type string
	Addr []byte
}

// Store is an open resource database session.
type Store interface {
	Lookup(name, class string) (Value, bool)
	Close() error
}

// Source opens Store sessions. Every Open returns a fresh session.
type Source interface {
	Open() (Store, error)
}

// Database holds parsed resource entries in insertion order.
// Putting a specifier that already exists replaces its value in place.
type Database struct {
	entries []entry
	index   map[string]int
}

// NewDatabase creates an empty Database.
func NewDatabase() *Database {
	return &Database{index: make(map[string]int)}
}

// Put stores value under the resource specifier spec (e.g. "rofi*font").
func (db *Database) Put(spec, value string) error {
	components, err := parseSpecifier(spec)
	if err != nil {
		return err
	}
	canonical := formatSpecifier(components)
	if i, exists := db.index[canonical]; exists {
		db.entries[i].value = value
		return nil
	}
	db.index[canonical] = len(db.entries)
	db.entries = append(db.entries, entry{components: components, value: value})
	return nil
}

// Merge copies every entry of other into db; other wins on identical specifiers.
func (db *Database) Merge(other *Database) {
	if other == nil {
		return
	}
	for _, e := range other.entries {
		canonical := formatSpecifier(e.components)
		if i, exists := db.index[canonical]; exists {
			db.entries[i].value = e.value
			continue
		}
		db.index[canonical] = len(db.entries)
		db.entries = append(db.entries, e)
	}
}

// Len returns the number of distinct specifiers.
func (db *Database) Len() int {
	return len(db.entries)
}

// Lookup returns the best matching value for the fully qualified name and
// class. Both must have the same number of dot-separated components.
func (db *Database) Lookup(name, class string) (Value, bool) {
	names := strings.Split(name, ".")
	classes := strings.Split(class, ".")
	if name == "" || len(names) != len(classes) {
		return Value{}, false
	}

	best := -1
	var bestScore []int
	for i := range db.entries {
		score, ok := db.entries[i].match(names, classes)
		if !ok {
			continue
		}
		if best < 0 || compareScores(score, bestScore) > 0 {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Value{}, false
	}
	return Value{Type: TypeString, Addr: []byte(db.entries[best].value)}, true
}

// Open lets a parsed Database serve as its own Source.
func (db *Database) Open() (Store, error) {
	return db, nil
}

// Close is a no-op; a Database holds no external resources.
func (db *Database) Close() error {
	return nil
}

// String renders the database in Xresources syntax.
func (db *Database) String() string {
	var b strings.Builder
	for _, e := range db.entries {
		fmt.Fprintf(&b, "%s:\t%s\n", formatSpecifier(e.components), escapeValue(e.value))
	}
	return b.String()
}
