// FILE: lixenwraith/xrmconfig/dump.go

package xrmconfig

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// dumpKeyWidth aligns values in Dump output.
const dumpKeyWidth = 20

// Dump writes one "<prefix>.<key>: value" line per option, static table
// first. A static option sharing its destination with the option directly
// before it is an alias and is skipped, so an adjacent alias run prints once
// under its first key. Only adjacent aliases are detected. Dynamic options
// are all printed.
func (r *Registry) Dump(w io.Writer) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var b strings.Builder
	for i, o := range r.static {
		if i > 0 && r.static[i-1].sameDestination(o) {
			continue
		}
		r.dumpEntry(&b, o)
	}
	for _, o := range r.dynamic {
		r.dumpEntry(&b, o)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the Dump output.
func (r *Registry) String() string {
	var b strings.Builder
	_ = r.Dump(&b)
	return b.String()
}

func (r *Registry) dumpEntry(b *strings.Builder, o *Option) {
	// A negative width pads by its absolute value, like printf's %*s.
	fmt.Fprintf(b, "%s.%s: %*s", r.opts.NamePrefix, o.key, dumpKeyWidth-len(o.key), "")
	if o.bound() {
		b.WriteString(formatValue(o))
	}
	b.WriteByte('\n')
}

func formatValue(o *Option) string {
	switch o.typ {
	case TypeUint:
		return strconv.FormatUint(uint64(*o.dest.(*uint32)), 10)
	case TypeInt:
		return strconv.FormatInt(int64(*o.dest.(*int32)), 10)
	case TypeString:
		return *o.dest.(*string)
	case TypeBool:
		return strconv.FormatBool(*o.dest.(*bool))
	case TypeChar:
		c := *o.dest.(*byte)
		if c > 32 && c < 127 {
			return string(rune(c))
		}
		return fmt.Sprintf(`\x%02X`, c)
	}
	return ""
}
