// FILE: lixenwraith/xrmconfig/xrdb/structured.go

package xrdb

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format names a resource file syntax.
type Format string

const (
	FormatAuto       Format = "auto"
	FormatXresources Format = "xresources"
	FormatTOML       Format = "toml"
	FormatYAML       Format = "yaml"
	FormatJSON       Format = "json"
)

// ParseFormat validates a format name; the empty string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatXresources, FormatTOML, FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseFormatted parses data in the given format. FormatAuto falls back to
// content detection and then to Xresources.
func ParseFormatted(data []byte, format Format) (*Database, error) {
	if format == "" || format == FormatAuto {
		format = detectFormatFromContent(data)
	}
	switch format {
	case FormatXresources:
		return Parse(data)
	case FormatTOML, FormatYAML, FormatJSON:
		return parseStructured(data, format)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// detectFileFormat determines format from file extension.
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".xresources", ".xdefaults", ".ad":
		return FormatXresources
	}
	return FormatAuto
}

// detectFormatFromContent tries the strict formats first. YAML is never
// guessed: "rofi.lines: 10" is valid YAML and far more likely Xresources.
func detectFormatFromContent(data []byte) Format {
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil && len(tomlTest) > 0 {
		return FormatTOML
	}

	return FormatXresources
}

// parseStructured flattens nested tables into dotted resource names:
// [rofi] lines = 10 becomes rofi.lines: 10.
func parseStructured(data []byte, format Format) (*Database, error) {
	tree := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse TOML resources: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse YAML resources: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&tree); err != nil {
			return nil, fmt.Errorf("failed to parse JSON resources: %w", err)
		}
	}

	flat, err := flattenMap(tree, "")
	if err != nil {
		return nil, err
	}

	// Put order decides between specifiers that canonicalize alike.
	specs := make([]string, 0, len(flat))
	for spec := range flat {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	db := NewDatabase()
	for _, spec := range specs {
		leaf := flat[spec]
		value, err := stringify(leaf)
		if err != nil {
			return nil, fmt.Errorf("resource %q: %w", spec, err)
		}
		if err := db.Put(spec, value); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// flattenMap joins nested table keys with dots, one entry per leaf.
// A dotted key and a nested table naming the same path are rejected.
func flattenMap(nested map[string]any, prefix string) (map[string]any, error) {
	flat := make(map[string]any)

	add := func(path string, value any) error {
		if _, exists := flat[path]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateResource, path)
		}
		flat[path] = value
		return nil
	}

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			sub, err := flattenMap(nestedMap, newPath)
			if err != nil {
				return nil, err
			}
			for subPath, subValue := range sub {
				if err := add(subPath, subValue); err != nil {
					return nil, err
				}
			}
		} else if err := add(newPath, value); err != nil {
			return nil, err
		}
	}

	return flat, nil
}

// stringify turns a decoded leaf into the raw text an Xresources file would
// hold. Weak decoding covers numbers; hooks cover bools, lists and anything
// implementing encoding.TextMarshaler (TOML datetimes).
func stringify(leaf any) (string, error) {
	var out string
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			textMarshalerHookFunc(),
			boolToStringHookFunc(),
			sliceToStringHookFunc(","),
		),
	})
	if err != nil {
		return "", fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(leaf); err != nil {
		return "", fmt.Errorf("cannot use %T as a resource value: %w", leaf, err)
	}
	return out, nil
}

// boolToStringHookFunc renders bools as true/false; weak decoding would give 1/0.
func boolToStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.Bool || t.Kind() != reflect.String {
			return data, nil
		}
		return strconv.FormatBool(data.(bool)), nil
	}
}

// sliceToStringHookFunc joins list elements with sep.
func sliceToStringHookFunc(sep string) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.Slice || t.Kind() != reflect.String {
			return data, nil
		}
		items := reflect.ValueOf(data)
		parts := make([]string, 0, items.Len())
		for i := 0; i < items.Len(); i++ {
			part, err := stringify(items.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
		return strings.Join(parts, sep), nil
	}
}

func textMarshalerHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		m, ok := data.(encoding.TextMarshaler)
		if !ok {
			return data, nil
		}
		text, err := m.MarshalText()
		if err != nil {
			return nil, err
		}
		return string(text), nil
	}
}
