// FILE: lixenwraith/xrmconfig/cmdline/cmdline.go

// Package cmdline scans launcher-style argument vectors.
//
// Flags are matched literally ("-lines", "-font"), the first occurrence wins
// and a value-taking flag consumes the argument that follows it. The vector
// passed in must not contain the program name.
package cmdline

// Find returns the index of the first argument equal to key, or -1.
func Find(args []string, key string) int {
	for i, arg := range args {
		if arg == key {
			return i
		}
	}
	return -1
}

// value returns the argument following key.
func value(args []string, key string) (string, bool) {
	i := Find(args, key)
	if i < 0 || i+1 >= len(args) {
		return "", false
	}
	return args[i+1], true
}

// FindString stores the value of key in dst.
// Reports false and leaves dst untouched when key is absent or has no value.
func FindString(args []string, key string, dst *string) bool {
	v, ok := value(args, key)
	if !ok || dst == nil {
		return false
	}
	*dst = v
	return true
}

// FindUint parses the value of key with ParseUint and stores it in dst.
// Malformed text still stores the best-effort result.
func FindUint(args []string, key string, dst *uint32) bool {
	v, ok := value(args, key)
	if !ok || dst == nil {
		return false
	}
	*dst, _ = ParseUint(v)
	return true
}

// FindInt parses the value of key with ParseInt and stores it in dst.
func FindInt(args []string, key string, dst *int32) bool {
	v, ok := value(args, key)
	if !ok || dst == nil {
		return false
	}
	*dst, _ = ParseInt(v)
	return true
}

// FindChar parses the value of key with ParseChar and stores it in dst.
func FindChar(args []string, key string, dst *byte) bool {
	v, ok := value(args, key)
	if !ok || dst == nil {
		return false
	}
	*dst, _ = ParseChar(v)
	return true
}
