package interpolation

import (
	"errors"
	"fmt"
	"reflect"
)

// Tag marks the fields Struct expands: `env_interpolation:"yes"`.
const Tag = "env_interpolation"

// Struct expands tagged fields of the struct v points to, in place. Tagged
// fields may be strings, map[string]string, nested structs, or slices of
// strings or structs; nested structs are only walked when the field carrying
// them is tagged too.
func Struct(v any, lookup LookupFunc) error {
	if v == nil {
		return nil
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}
	if val.IsNil() {
		return nil
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}
	return walkStruct(val, lookup)
}

func walkStruct(val reflect.Value, lookup LookupFunc) error {
	typ := val.Type()
	var errs []error
	for i := range val.NumField() {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanSet() || sf.Tag.Get(Tag) != "yes" {
			continue
		}
		if err := walkValue(field, lookup); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sf.Name, err))
		}
	}
	return errors.Join(errs...)
}

func walkValue(field reflect.Value, lookup LookupFunc) error {
	switch field.Kind() {
	case reflect.String:
		out, err := Expand(field.String(), lookup)
		if err != nil {
			return err
		}
		field.SetString(out)
		return nil

	case reflect.Map:
		if field.IsNil() || field.Type().Key().Kind() != reflect.String ||
			field.Type().Elem().Kind() != reflect.String {
			return nil
		}
		var errs []error
		for _, key := range field.MapKeys() {
			out, err := Expand(field.MapIndex(key).String(), lookup)
			if err != nil {
				errs = append(errs, fmt.Errorf("[%s]: %w", key.String(), err))
				continue
			}
			field.SetMapIndex(key, reflect.ValueOf(out).Convert(field.Type().Elem()))
		}
		return errors.Join(errs...)

	case reflect.Slice:
		var errs []error
		for j := range field.Len() {
			if err := walkValue(field.Index(j), lookup); err != nil {
				errs = append(errs, fmt.Errorf("[%d]: %w", j, err))
			}
		}
		return errors.Join(errs...)

	case reflect.Struct:
		return walkStruct(field, lookup)

	case reflect.Pointer:
		if field.IsNil() || field.Elem().Kind() != reflect.Struct {
			return nil
		}
		return walkStruct(field.Elem(), lookup)
	}
	return nil
}
