package sjson

import (
	"math"
	"reflect"

	serrors "github.com/KimNorgaard/go-sjson/errors"
	"github.com/KimNorgaard/go-sjson/internal/mapper"
)

var valueType = reflect.TypeOf(Value{})

// ValueOf converts a Go value into a new value tree.
//
// Booleans, integers, floats and strings map to the scalar kinds, slices and
// arrays to Array, string-keyed maps and structs to Object, and nil pointers,
// interfaces, slices and maps to Null. Struct fields honor `sjson:"name"` tags
// with the "omitempty" option, a "-" tag skips the field, and the fields of
// untagged embedded structs are promoted. A *Value or Value is deep-copied.
func ValueOf(x any) (*Value, error) {
	return valueOf(reflect.ValueOf(x))
}

func unsupported(t reflect.Type, reason string) error {
	have := t.String()
	if reason != "" {
		have += " (" + reason + ")"
	}
	return &serrors.AccessError{Op: "ValueOf", Have: have, Err: serrors.ErrUnsupportedValue}
}

func valueOf(rv reflect.Value) (*Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Null(), nil
		}
		rv = rv.Elem()
	}
	if rv.Type() == valueType {
		v := rv.Interface().(Value)
		return v.Clone(), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, unsupported(rv.Type(), "overflows int64")
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		arr := &Value{kind: ArrayKind, items: make([]*Value, 0, rv.Len())}
		for i := 0; i < rv.Len(); i++ {
			item, err := valueOf(rv.Index(i))
			if err != nil {
				return nil, err
			}
			arr.items = append(arr.items, item)
		}
		return arr, nil
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return nil, unsupported(rv.Type(), "map key must be a string")
		}
		obj := Object()
		iter := rv.MapRange()
		for iter.Next() {
			child, err := valueOf(iter.Value())
			if err != nil {
				return nil, err
			}
			obj.fields[iter.Key().String()] = child
		}
		return obj, nil
	case reflect.Struct:
		return structValue(rv)
	}
	return nil, unsupported(rv.Type(), "")
}

func structValue(rv reflect.Value) (*Value, error) {
	obj := Object()
	for _, f := range mapper.Fields(rv.Type()) {
		fv, ok := mapper.ByIndex(rv, f.Index, false)
		if !ok || (f.OmitEmpty && mapper.IsEmpty(fv)) {
			continue
		}
		child, err := valueOf(fv)
		if err != nil {
			return nil, err
		}
		obj.fields[f.Name] = child
	}
	return obj, nil
}

// Interface converts v into plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any.
func (v *Value) Interface() any {
	switch v.Kind() {
	case BoolKind:
		return v.b
	case IntegerKind:
		return v.i
	case FloatKind:
		return v.f
	case StringKind:
		return v.s
	case ArrayKind:
		res := make([]any, len(v.items))
		for i, item := range v.items {
			res[i] = item.Interface()
		}
		return res
	case ObjectKind:
		res := make(map[string]any, len(v.fields))
		for key, child := range v.fields {
			res[key] = child.Interface()
		}
		return res
	}
	return nil
}
