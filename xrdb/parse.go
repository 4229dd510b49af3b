// FILE: lixenwraith/xrmconfig/xrdb/parse.go

package xrdb

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

const maxLineSize = 1 << 20

// Parse reads Xresources text. Comment lines ('!'), preprocessor lines
// ('#'), blank lines and lines without a ':' are ignored, as xrdb does.
// A trailing backslash continues a line.
func Parse(data []byte) (*Database, error) {
	db := NewDatabase()

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var (
		pending strings.Builder
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if trailingBackslashes(line)%2 == 1 {
			pending.WriteString(line[:len(line)-1])
			continue
		}
		pending.WriteString(line)
		full := pending.String()
		pending.Reset()

		if err := db.parseLine(full); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resources: %w", err)
	}
	if pending.Len() > 0 {
		if err := db.parseLine(pending.String()); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return db, nil
}

// trailingBackslashes counts the backslashes ending line. An odd count
// leaves the last one unescaped, which continues the line.
func trailingBackslashes(line string) int {
	n := 0
	for n < len(line) && line[len(line)-1-n] == '\\' {
		n++
	}
	return n
}

// ParseString is Parse for in-memory text.
func ParseString(s string) (*Database, error) {
	return Parse([]byte(s))
}

func (db *Database) parseLine(line string) error {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || trimmed[0] == '!' || trimmed[0] == '#' {
		return nil
	}
	spec, value, found := strings.Cut(trimmed, ":")
	if !found {
		return nil
	}
	return db.Put(spec, unescapeValue(strings.TrimLeft(value, " \t")))
}

// unescapeValue handles \n, \\, "\ " and \NNN octal escapes. Unknown escapes
// keep the backslash.
func unescapeValue(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		next := s[i+1]
		switch {
		case next == 'n':
			b.WriteByte('\n')
			i++
		case next == '\\' || next == ' ' || next == '\t':
			b.WriteByte(next)
			i++
		case i+3 < len(s) && isOctal(next) && isOctal(s[i+2]) && isOctal(s[i+3]):
			b.WriteByte((next-'0')<<6 | (s[i+2]-'0')<<3 | (s[i+3] - '0'))
			i += 3
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

// escapeValue is the inverse of unescapeValue for rendering.
func escapeValue(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\\':
			b.WriteString(`\\`)
		case (c == ' ' || c == '\t') && i == 0:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\%03o`, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
