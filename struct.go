// FILE: lixenwraith/xrmconfig/struct.go

package xrmconfig

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct tag read by OptionsFromStruct.
const TagName = "xrm"

// OptionsFromStruct derives a static table from the fields of the struct
// pointed to by ptr. The tag lists the key followed by any aliases:
//
//	MenuFg string `xrm:"foreground,fg"`
//
// yields two adjacent options bound to the same field. Untagged exported
// fields use their lowercased name, `xrm:"-"` skips a field and embedded
// structs are flattened. Supported field types are string, uint32, int32,
// bool and byte.
func OptionsFromStruct(ptr any) ([]Option, error) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, fmt.Errorf("OptionsFromStruct requires a non-nil struct pointer, got %T", ptr)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("OptionsFromStruct requires a struct pointer, got %T", ptr)
	}

	var (
		options []Option
		errors  []string
	)
	collectFields(v, "", &options, &errors)

	if len(errors) > 0 {
		return nil, fmt.Errorf("failed to bind %d field(s): %s", len(errors), strings.Join(errors, "; "))
	}
	return options, nil
}

// collectFields appends options for every supported field of v in order.
func collectFields(v reflect.Value, fieldPath string, options *[]Option, errors *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(fieldValue, fieldPath+field.Name+".", options, errors)
			continue
		}
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		keys := []string{strings.ToLower(field.Name)}
		if tag != "" {
			keys = keys[:0]
			for _, k := range strings.Split(tag, ",") {
				if k = strings.TrimSpace(k); k != "" {
					keys = append(keys, k)
				}
			}
			if len(keys) == 0 {
				*errors = append(*errors, fmt.Sprintf("field %s%s: empty tag", fieldPath, field.Name))
				continue
			}
		}

		typ, ok := optionTypeFor(field.Type)
		if !ok {
			*errors = append(*errors, fmt.Sprintf("field %s%s: unsupported type %s", fieldPath, field.Name, field.Type))
			continue
		}

		dest := fieldValue.Addr().Interface()
		for _, key := range keys {
			o, err := NewOption(typ, key, dest)
			if err != nil {
				*errors = append(*errors, fmt.Sprintf("field %s%s: %v", fieldPath, field.Name, err))
				break
			}
			*options = append(*options, o)
		}
	}
}

func optionTypeFor(t reflect.Type) (OptionType, bool) {
	switch t {
	case reflect.TypeOf((*string)(nil)).Elem():
		return TypeString, true
	case reflect.TypeOf((*uint32)(nil)).Elem():
		return TypeUint, true
	case reflect.TypeOf((*int32)(nil)).Elem():
		return TypeInt, true
	case reflect.TypeOf((*bool)(nil)).Elem():
		return TypeBool, true
	case reflect.TypeOf((*byte)(nil)).Elem():
		return TypeChar, true
	}
	return 0, false
}
