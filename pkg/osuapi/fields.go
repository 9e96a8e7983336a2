package osuapi

import (
	"reflect"
	"strings"
)

// Fields returns a flat view of a record keyed by API field name.
//
// Pointers are dereferenced, Time becomes time.Time, Bool becomes bool and
// nested records become maps. An absent optional field is an untyped nil.
// Fields returns nil when record is not a struct or a non-nil pointer to one.
func Fields(record any) map[string]any {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	out := make(map[string]any)
	collectFields(v, out)
	return out
}

func collectFields(v reflect.Value, out map[string]any) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("json")
		if sf.Anonymous && tag == "" && sf.Type.Kind() == reflect.Struct {
			collectFields(v.Field(i), out)
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		out[name] = fieldValue(v.Field(i))
	}
}

var (
	timeType = reflect.TypeOf(Time{})
	boolType = reflect.TypeOf(Bool(false))
)

func fieldValue(v reflect.Value) any {
	switch {
	case v.Kind() == reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return fieldValue(v.Elem())
	case v.Type() == timeType:
		return v.Interface().(Time).Time
	case v.Type() == boolType:
		return v.Bool()
	case v.Kind() == reflect.Struct:
		return Fields(v.Interface())
	case v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Struct:
		items := make([]map[string]any, v.Len())
		for i := range items {
			items[i] = Fields(v.Index(i).Interface())
		}
		return items
	}
	return v.Interface()
}
