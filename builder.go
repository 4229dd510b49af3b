// FILE: lixenwraith/xrmconfig/builder.go

package xrmconfig

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/xrmconfig/xrdb"
)

// ValidatorFunc checks a fully resolved Registry.
type ValidatorFunc func(r *Registry) error

type dynamicOption struct {
	typ  OptionType
	key  string
	dest any
}

// Builder provides a fluent interface for assembling and resolving a Registry.
type Builder struct {
	opts       Options
	static     []Option
	dynamic    []dynamicOption
	resources  ResourceSource
	args       []string
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a builder with default options, reading os.Args[1:].
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultOptions(),
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithSettings appends the built-in table bound to s.
func (b *Builder) WithSettings(s *Settings) *Builder {
	b.static = append(b.static, BuiltinOptions(s)...)
	return b
}

// WithStruct appends a static table derived from the struct ptr points to.
func (b *Builder) WithStruct(ptr any) *Builder {
	options, err := OptionsFromStruct(ptr)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.static = append(b.static, options...)
	return b
}

// WithOptions appends static options.
func (b *Builder) WithOptions(options ...Option) *Builder {
	b.static = append(b.static, options...)
	return b
}

// WithDynamic queues a dynamic registration, performed after the registry
// is created and before any resolution.
func (b *Builder) WithDynamic(typ OptionType, key string, dest any) *Builder {
	b.dynamic = append(b.dynamic, dynamicOption{typ: typ, key: key, dest: dest})
	return b
}

// WithResources sets the resource database source.
func (b *Builder) WithResources(src ResourceSource) *Builder {
	b.resources = src
	return b
}

// WithResourceFile reads resources from path, detecting its format.
func (b *Builder) WithResourceFile(path string) *Builder {
	b.resources = xrdb.FileSource{Path: path}
	return b
}

// WithArgs sets the command-line arguments, without the program name.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithPrefix sets both the resource name and class prefix.
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.opts.NamePrefix = prefix
	b.opts.ClassPrefix = prefix
	return b
}

// WithClassPrefix sets the resource class prefix alone.
func (b *Builder) WithClassPrefix(prefix string) *Builder {
	b.opts.ClassPrefix = prefix
	return b
}

// WithSwitchPrefix sets the prefix that turns keys into flags.
func (b *Builder) WithSwitchPrefix(prefix string) *Builder {
	b.opts.SwitchPrefix = prefix
	return b
}

// WithLogger sets the registry logger.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithReleaseHook observes every owned string the registry gives up.
func (b *Builder) WithReleaseHook(fn func(key, value string)) *Builder {
	b.opts.OnRelease = fn
	return b
}

// WithValidator queues fn to check the registry once every pass has run.
// Validators run in the order they were added and the first error aborts
// Build. A nil fn is ignored.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the registry, performs the queued registrations and resolves
// every table in order.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	r := NewWithOptions(b.opts, b.static...)

	for _, d := range b.dynamic {
		if err := r.Register(d.typ, d.key, d.dest); err != nil {
			return nil, fmt.Errorf("failed to register option %q: %w", d.key, err)
		}
	}

	if err := r.Load(b.resources, b.args); err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(r); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return r, nil
}

// MustBuild calls Build and panics if it fails.
func (b *Builder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("option registry build failed: %v", err))
	}
	return r
}

// Quick resolves the built-in table into s from resourceFile and args.
// An empty resourceFile searches the usual locations (see xrdb.Discover).
func Quick(s *Settings, resourceFile string, args []string) (*Registry, error) {
	var src ResourceSource = xrdb.Discover(DefaultPrefix)
	if resourceFile != "" {
		src = xrdb.FileSource{Path: resourceFile}
	}
	return NewBuilder().
		WithSettings(s).
		WithResources(src).
		WithArgs(args).
		Build()
}
