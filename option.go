// FILE: lixenwraith/xrmconfig/option.go

package xrmconfig

import (
	"fmt"
	"reflect"
)

// OptionType selects the destination kind of an Option and the conversion
// applied to raw values.
type OptionType int

const (
	// TypeString binds a *string.
	TypeString OptionType = iota
	// TypeUint binds a *uint32.
	TypeUint
	// TypeInt binds a *int32.
	TypeInt
	// TypeBool binds a *bool.
	TypeBool
	// TypeChar binds a *byte.
	TypeChar
)

func (t OptionType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeUint:
		return "uint"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeChar:
		return "char"
	}
	return fmt.Sprintf("OptionType(%d)", int(t))
}

// Option binds a key to a typed destination cell owned by the caller.
// Type and key never change; only the cell and the registry's string
// bookkeeping do.
type Option struct {
	typ   OptionType
	key   string
	dest  any
	owned ownedString
}

// StringOption binds key to a string cell.
func StringOption(key string, dest *string) Option {
	return Option{typ: TypeString, key: key, dest: dest}
}

// UintOption binds key to an unsigned integer cell.
func UintOption(key string, dest *uint32) Option {
	return Option{typ: TypeUint, key: key, dest: dest}
}

// IntOption binds key to a signed integer cell.
func IntOption(key string, dest *int32) Option {
	return Option{typ: TypeInt, key: key, dest: dest}
}

// BoolOption binds key to a boolean cell.
func BoolOption(key string, dest *bool) Option {
	return Option{typ: TypeBool, key: key, dest: dest}
}

// CharOption binds key to a single character cell.
func CharOption(key string, dest *byte) Option {
	return Option{typ: TypeChar, key: key, dest: dest}
}

// NewOption builds an Option from an untyped destination, checking that dest
// is a non-nil pointer of the kind typ requires. Types outside the known set
// accept any non-nil pointer and are never written.
func NewOption(typ OptionType, key string, dest any) (Option, error) {
	var ok bool
	switch typ {
	case TypeString:
		ok = isPtr[string](dest)
	case TypeUint:
		ok = isPtr[uint32](dest)
	case TypeInt:
		ok = isPtr[int32](dest)
	case TypeBool:
		ok = isPtr[bool](dest)
	case TypeChar:
		ok = isPtr[byte](dest)
	default:
		v := reflect.ValueOf(dest)
		ok = v.Kind() == reflect.Pointer && !v.IsNil()
	}
	if !ok {
		return Option{}, fmt.Errorf("%w: option %q of type %s cannot bind %T", ErrDestinationType, key, typ, dest)
	}
	return Option{typ: typ, key: key, dest: dest}, nil
}

func isPtr[T any](dest any) bool {
	p, ok := dest.(*T)
	return ok && p != nil
}

// Type returns the option's type.
func (o *Option) Type() OptionType { return o.typ }

// Key returns the option's key.
func (o *Option) Key() string { return o.key }

// bound reports whether the option has a usable destination.
func (o *Option) bound() bool {
	v := reflect.ValueOf(o.dest)
	return v.Kind() == reflect.Pointer && !v.IsNil()
}

// sameDestination reports whether both options write the same cell.
func (o *Option) sameDestination(other *Option) bool {
	return o.dest != nil && o.dest == other.dest
}

// ownedString tracks a string value the registry installed itself.
type ownedString struct {
	value string
	set   bool
}
