// FILE: lixenwraith/xrmconfig/xrdb/match.go

package xrdb

import (
	"fmt"
	"strings"
)

// component is one level of a resource specifier.
type component struct {
	loose bool // preceded by '*'
	name  string
}

type entry struct {
	components []component
	value      string
}

// parseSpecifier splits "rofi*font" or "*lines" into binding/name pairs.
func parseSpecifier(spec string) ([]component, error) {
	spec = strings.TrimSpace(spec)
	var (
		components []component
		loose      bool
		name       strings.Builder
	)
	flush := func() {
		if name.Len() > 0 {
			components = append(components, component{loose: loose, name: name.String()})
			name.Reset()
			loose = false
		}
	}
	for _, r := range spec {
		switch r {
		case '.':
			flush()
		case '*':
			flush()
			loose = true
		case ' ', '\t':
			return nil, fmt.Errorf("invalid resource specifier %q: embedded whitespace", spec)
		default:
			name.WriteRune(r)
		}
	}
	if loose && name.Len() == 0 {
		return nil, fmt.Errorf("invalid resource specifier %q: trailing loose binding", spec)
	}
	flush()
	if len(components) == 0 {
		return nil, fmt.Errorf("invalid resource specifier %q: empty", spec)
	}
	return components, nil
}

func formatSpecifier(components []component) string {
	var b strings.Builder
	for i, c := range components {
		switch {
		case c.loose:
			b.WriteByte('*')
		case i > 0:
			b.WriteByte('.')
		}
		b.WriteString(c.name)
	}
	return b.String()
}

// Per-level precedence. A level the entry skips through a loose binding
// scores 0. Otherwise name beats class beats '?', and only then does a tight
// binding beat a loose one.
const (
	matchWildcard = 1
	matchClass    = 2
	matchName     = 3
)

func levelScore(kind int, loose bool) int {
	score := 10 + kind*2
	if !loose {
		score++
	}
	return score
}

// compareScores compares two score vectors level by level.
func compareScores(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return len(a) - len(b)
}

// match reports whether the entry matches the query and returns the best
// per-level score vector over every way its loose bindings can align.
func (e *entry) match(names, classes []string) ([]int, bool) {
	return e.matchFrom(0, 0, names, classes)
}

func (e *entry) matchFrom(ci, level int, names, classes []string) ([]int, bool) {
	if ci == len(e.components) {
		return nil, level == len(names)
	}
	if level == len(names) {
		return nil, false
	}

	c := e.components[ci]
	var (
		best  []int
		found bool
	)

	kind := 0
	switch c.name {
	case names[level]:
		kind = matchName
	case classes[level]:
		kind = matchClass
	case "?":
		kind = matchWildcard
	}
	if kind > 0 {
		if rest, ok := e.matchFrom(ci+1, level+1, names, classes); ok {
			best = append([]int{levelScore(kind, c.loose)}, rest...)
			found = true
		}
	}

	// A loose binding may swallow this level and retry the same component
	// one level further down.
	if c.loose {
		if rest, ok := e.matchFrom(ci, level+1, names, classes); ok {
			candidate := append([]int{0}, rest...)
			if !found || compareScores(candidate, best) > 0 {
				best = candidate
				found = true
			}
		}
	}
	return best, found
}
