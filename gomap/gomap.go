// Package gomap maps Go structs to and from the name-keyed value
// mappings a schema encodes. Struct fields opt in with a `bitpack`
// tag naming the schema field; untagged exported fields use their
// lowercased name, and `bitpack:"-"` skips a field.
package gomap

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/bitpack-format/bitpack/field"
)

// Marshal converts a struct (or pointer to struct) into a value
// mapping suitable for schema.Encode.
func Marshal(p any) (map[string]field.Value, error) {
	val, err := structValue(p)
	if err != nil {
		return nil, err
	}
	ty := val.Type()
	values := make(map[string]field.Value, ty.NumField())
	for i := range ty.NumField() {
		f := ty.Field(i)
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		v, err := toValue(val.Field(i))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		values[name] = v
	}
	return values, nil
}

// Unmarshal fills a pointer to struct from a value mapping produced by
// schema.Decode. Mapping entries with no struct counterpart are
// ignored; struct fields with no mapping entry are left alone.
func Unmarshal(values map[string]field.Value, p any) error {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("gomap: target must be a non-nil pointer to struct, got %T", p)
	}
	val = val.Elem()
	ty := val.Type()
	for i := range ty.NumField() {
		f := ty.Field(i)
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		v, ok := values[name]
		if !ok {
			continue
		}
		if err := fromValue(v, val.Field(i)); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}

func structValue(p any) (reflect.Value, error) {
	val := reflect.ValueOf(p)
	switch val.Kind() {
	case reflect.Struct:
		return val, nil
	case reflect.Pointer:
		if !val.IsNil() && val.Elem().Kind() == reflect.Struct {
			return val.Elem(), nil
		}
	}
	return reflect.Value{}, fmt.Errorf("gomap: source must be a struct or pointer to struct, got %T", p)
}

func fieldName(f reflect.StructField) (string, bool) {
	if f.Anonymous || !f.IsExported() {
		return "", false
	}
	tag := f.Tag.Get("bitpack")
	if tag == "-" {
		return "", false
	}
	if tag != "" {
		return tag, true
	}
	return strings.ToLower(f.Name[:1]) + f.Name[1:], true
}

func toValue(v reflect.Value) (field.Value, error) {
	switch v.Kind() {
	case reflect.Bool:
		return field.BooleanValue(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n < math.MinInt32 || n > math.MaxInt32 {
			return field.Value{}, fmt.Errorf("%d overflows int32", n)
		}
		return field.IntValue(int32(n)), nil
	case reflect.String:
		return field.BytesValue([]byte(v.String())), nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return field.BytesValue(v.Bytes()), nil
		}
	}
	return field.Value{}, fmt.Errorf("unsupported type %s", v.Type())
}

func fromValue(fv field.Value, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		if fv.Kind != field.BooleanKind {
			return fmt.Errorf("cannot store %s value in bool", fv.Kind)
		}
		v.SetBool(fv.Bool)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if fv.Kind != field.IntKind {
			return fmt.Errorf("cannot store %s value in %s", fv.Kind, v.Type())
		}
		if v.OverflowInt(int64(fv.Int)) {
			return fmt.Errorf("%d overflows %s", fv.Int, v.Type())
		}
		v.SetInt(int64(fv.Int))
		return nil
	case reflect.String:
		if fv.Kind != field.BytesKind {
			return fmt.Errorf("cannot store %s value in string", fv.Kind)
		}
		v.SetString(string(fv.Data))
		return nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			if fv.Kind != field.BytesKind {
				return fmt.Errorf("cannot store %s value in %s", fv.Kind, v.Type())
			}
			v.SetBytes(append([]byte(nil), fv.Data...))
			return nil
		}
	}
	return fmt.Errorf("unsupported type %s", v.Type())
}
