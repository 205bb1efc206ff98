package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
)

// Query populates struct fields tagged with `query:"name"` from URL query
// parameters. Supported field types: string, int, int64, bool, and pointers
// to those. Absent parameters leave the field untouched so defaults survive.
func Query(r *http.Request, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrFailedToParseQuery)
	}

	values := r.URL.Query()
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		tag := rt.Field(i).Tag.Get("query")
		if tag == "" || tag == "-" {
			continue
		}
		if !values.Has(tag) {
			continue
		}

		if err := setField(rv.Field(i), values.Get(tag)); err != nil {
			return fmt.Errorf("%w: parameter %q: %v", ErrFailedToParseQuery, tag, err)
		}
	}

	return nil
}

func setField(field reflect.Value, raw string) error {
	if field.Kind() == reflect.Pointer {
		ptr := reflect.New(field.Type().Elem())
		if err := setField(ptr.Elem(), raw); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}
	return nil
}
