// FILE: lixenwraith/xrmconfig/errors.go

package xrmconfig

import "errors"

var (
	// ErrClosed is returned by operations on a registry after Close.
	ErrClosed = errors.New("option registry closed")
	// ErrDestinationType is returned when a destination does not match the option type.
	ErrDestinationType = errors.New("destination does not match option type")
)
