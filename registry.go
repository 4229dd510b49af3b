// FILE: lixenwraith/xrmconfig/registry.go

package xrmconfig

import (
	"log/slog"
	"sync"
)

const (
	// DefaultPrefix is the application name and class under which resources are looked up.
	DefaultPrefix = "rofi"
	// DefaultSwitchPrefix is prepended to keys to form command-line flags.
	DefaultSwitchPrefix = "-"
)

// Options configures a Registry.
type Options struct {
	// NamePrefix and ClassPrefix qualify keys for resource lookups:
	// "<NamePrefix>.<key>" and "<ClassPrefix>.<key>". NamePrefix also
	// prefixes dump lines.
	NamePrefix  string
	ClassPrefix string

	// SwitchPrefix turns a key into a command-line flag.
	SwitchPrefix string

	// Logger receives resolution diagnostics. Nil means slog.Default().
	Logger *slog.Logger

	// OnRelease is called whenever the registry gives up a string it owned,
	// either because it is being replaced or because the registry closes.
	// It runs with the registry locked and must not call back into it.
	OnRelease func(key, value string)
}

// DefaultOptions returns the standard registry options.
func DefaultOptions() Options {
	return Options{
		NamePrefix:   DefaultPrefix,
		ClassPrefix:  DefaultPrefix,
		SwitchPrefix: DefaultSwitchPrefix,
		Logger:       slog.Default(),
	}
}

// Registry holds the static and dynamic option tables.
//
// The mutex makes each resolution pass atomic with respect to registration
// and dumping. It does not protect the destination cells, which belong to the
// caller.
type Registry struct {
	static  []*Option
	dynamic []*Option
	opts    Options
	closed  bool
	mutex   sync.Mutex
}

// New creates a Registry with default options over the given static table.
// Every option must have a non-nil destination. Options sharing a
// destination are aliases and should be adjacent.
func New(static ...Option) *Registry {
	return NewWithOptions(DefaultOptions(), static...)
}

// NewWithOptions creates a Registry with custom options. Empty fields fall
// back to their defaults.
func NewWithOptions(opts Options, static ...Option) *Registry {
	defaults := DefaultOptions()
	if opts.NamePrefix == "" {
		opts.NamePrefix = defaults.NamePrefix
	}
	if opts.ClassPrefix == "" {
		opts.ClassPrefix = opts.NamePrefix
	}
	if opts.SwitchPrefix == "" {
		opts.SwitchPrefix = defaults.SwitchPrefix
	}
	if opts.Logger == nil {
		opts.Logger = defaults.Logger
	}

	r := &Registry{
		static: make([]*Option, len(static)),
		opts:   opts,
	}
	for i := range static {
		o := static[i]
		o.owned = ownedString{}
		r.static[i] = &o
	}
	return r
}

// Register appends a dynamic option. dest must be a pointer matching typ.
// For TypeString the current non-empty value of *dest is adopted as owned,
// so the first overwrite releases it.
// Keys are not checked for uniqueness.
func (r *Registry) Register(typ OptionType, key string, dest any) error {
	o, err := NewOption(typ, key, dest)
	if err != nil {
		return err
	}
	if typ == TypeString {
		if current := *dest.(*string); current != "" {
			o.owned = ownedString{value: current, set: true}
		}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.dynamic = append(r.dynamic, &o)
	return nil
}

// Len returns the sizes of the static and dynamic tables.
func (r *Registry) Len() (static, dynamic int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.static), len(r.dynamic)
}

// Owned reports the string the registry currently owns for the first option
// with key, searching the static table before the dynamic one.
func (r *Registry) Owned(key string) (string, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, table := range [][]*Option{r.static, r.dynamic} {
		for _, o := range table {
			if o.key == key {
				return o.owned.value, o.owned.set
			}
		}
	}
	return "", false
}

// Close releases every owned string of both tables and drops the dynamic
// table. Calling it again returns ErrClosed.
func (r *Registry) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.closed {
		return ErrClosed
	}
	for _, o := range r.static {
		r.releaseOwned(o)
	}
	for _, o := range r.dynamic {
		r.releaseOwned(o)
	}
	r.dynamic = nil
	r.closed = true
	return nil
}

// replaceOwned is the only way an owned string enters an option: the
// previous one is released first.
func (r *Registry) replaceOwned(o *Option, value string) {
	r.releaseOwned(o)
	*o.dest.(*string) = value
	o.owned = ownedString{value: value, set: true}
}

// releaseOwned forgets the owned string, if any. It never touches the cell.
func (r *Registry) releaseOwned(o *Option) {
	if !o.owned.set {
		return
	}
	old := o.owned.value
	o.owned = ownedString{}
	if r.opts.OnRelease != nil {
		r.opts.OnRelease(o.key, old)
	}
}
