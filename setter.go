// FILE: lixenwraith/xrmconfig/setter.go

package xrmconfig

import (
	"bytes"

	"github.com/lixenwraith/xrmconfig/cmdline"
)

var trueLiteral = []byte("true")

// setValue converts raw into the option's cell. raw is bounded by its length
// and cut at the first NUL, so values carrying a terminator behave the same
// as those that don't. Malformed numbers and characters still store the
// best-effort result; the problem is only logged.
func (r *Registry) setValue(o *Option, raw []byte) {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}

	switch o.typ {
	case TypeString:
		r.replaceOwned(o, string(raw))
	case TypeUint:
		v, err := cmdline.ParseUint(string(raw))
		if err != nil {
			r.opts.Logger.Warn("Malformed option value", "key", o.key, "type", o.typ, "error", err, "stored", v)
		}
		*o.dest.(*uint32) = v
	case TypeInt:
		v, err := cmdline.ParseInt(string(raw))
		if err != nil {
			r.opts.Logger.Warn("Malformed option value", "key", o.key, "type", o.typ, "error", err, "stored", v)
		}
		*o.dest.(*int32) = v
	case TypeBool:
		*o.dest.(*bool) = len(raw) > 0 && bytes.EqualFold(raw, trueLiteral)
	case TypeChar:
		c, err := cmdline.ParseChar(string(raw))
		if err != nil {
			r.opts.Logger.Warn("Malformed option value", "key", o.key, "type", o.typ, "error", err, "stored", c)
		}
		*o.dest.(*byte) = c
	}
}
