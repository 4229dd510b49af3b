// FILE: lixenwraith/xrmconfig/resolve.go

package xrmconfig

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/xrmconfig/cmdline"
	"github.com/lixenwraith/xrmconfig/xrdb"
)

// ResourceSource opens resource database sessions. See package xrdb for
// file, string and layered implementations.
type ResourceSource = xrdb.Source

// source applies one configuration origin to a single option.
type source interface {
	name() string
	apply(r *Registry, o *Option) bool
}

// resolve walks a table in order. Options are independent of each other.
func (r *Registry) resolve(table []*Option, src source) {
	hits := 0
	for _, o := range table {
		if !o.bound() {
			continue
		}
		if src.apply(r, o) {
			hits++
		}
	}
	r.opts.Logger.Debug("Resolved option table", "source", src.name(), "options", len(table), "hits", hits)
}

func (r *Registry) table(dynamic bool) []*Option {
	if dynamic {
		return r.dynamic
	}
	return r.static
}

// ApplyResources resolves the static table from the resource database.
// The session is opened and closed within the call. A source reporting
// xrdb.ErrNoDatabase is skipped silently; missing keys are never an error.
func (r *Registry) ApplyResources(src ResourceSource) error {
	return r.applyResources(src, false)
}

// ApplyDynamicResources resolves the dynamic table from the resource database.
func (r *Registry) ApplyDynamicResources(src ResourceSource) error {
	return r.applyResources(src, true)
}

// ApplyCmdline resolves the static table from args (without the program name).
func (r *Registry) ApplyCmdline(args []string) error {
	return r.applyCmdline(args, false)
}

// ApplyDynamicCmdline resolves the dynamic table from args.
func (r *Registry) ApplyDynamicCmdline(args []string) error {
	return r.applyCmdline(args, true)
}

// Load runs the four passes in their fixed order: static resources, static
// command line, dynamic resources, dynamic command line. Command-line values
// therefore override resource values within each table. A nil src skips the
// resource passes.
func (r *Registry) Load(src ResourceSource, args []string) error {
	for _, dynamic := range []bool{false, true} {
		if src != nil {
			if err := r.applyResources(src, dynamic); err != nil {
				return err
			}
		}
		if err := r.applyCmdline(args, dynamic); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) applyResources(src ResourceSource, dynamic bool) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.closed {
		return ErrClosed
	}

	store, err := src.Open()
	if err != nil {
		if errors.Is(err, xrdb.ErrNoDatabase) {
			r.opts.Logger.Debug("No resource database", "reason", err)
			return nil
		}
		return fmt.Errorf("failed to open resource database: %w", err)
	}

	r.resolve(r.table(dynamic), resourceSource{store: store})

	if err := store.Close(); err != nil {
		return fmt.Errorf("failed to close resource database: %w", err)
	}
	return nil
}

func (r *Registry) applyCmdline(args []string, dynamic bool) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.closed {
		return ErrClosed
	}
	if len(args) == 0 {
		return nil
	}
	r.resolve(r.table(dynamic), cmdlineSource{args: args})
	return nil
}

type resourceSource struct {
	store xrdb.Store
}

func (resourceSource) name() string { return "resources" }

func (s resourceSource) apply(r *Registry, o *Option) bool {
	name := r.opts.NamePrefix + "." + o.key
	class := r.opts.ClassPrefix + "." + o.key

	v, found := s.store.Lookup(name, class)
	if !found {
		return false
	}
	r.opts.Logger.Debug("Option set from resources", "key", o.key, "resource", name, "type", v.Type)
	r.setValue(o, v.Addr)
	return true
}

type cmdlineSource struct {
	args []string
}

func (cmdlineSource) name() string { return "cmdline" }

// apply writes straight into the cell; conversion happens in the scanner.
func (s cmdlineSource) apply(r *Registry, o *Option) bool {
	flag := r.opts.SwitchPrefix + o.key

	var found bool
	switch o.typ {
	case TypeUint:
		found = cmdline.FindUint(s.args, flag, o.dest.(*uint32))
	case TypeInt:
		found = cmdline.FindInt(s.args, flag, o.dest.(*int32))
	case TypeString:
		// The new value comes from argv; the registry stops owning anything.
		if found = cmdline.FindString(s.args, flag, o.dest.(*string)); found {
			r.releaseOwned(o)
		}
	case TypeBool:
		if found = cmdline.Find(s.args, flag) >= 0; found {
			*o.dest.(*bool) = true
		}
	case TypeChar:
		found = cmdline.FindChar(s.args, flag, o.dest.(*byte))
	}

	if found {
		r.opts.Logger.Debug("Option set from command line", "key", o.key, "flag", flag)
	}
	return found
}
