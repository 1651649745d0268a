package sjson

import (
	"fmt"
	"reflect"

	serrors "github.com/KimNorgaard/go-sjson/errors"
	"github.com/KimNorgaard/go-sjson/internal/mapper"
)

var valuePtrType = reflect.TypeOf(&Value{})

// Unmarshal parses data and stores the result in the value pointed to by dst.
func Unmarshal(data []byte, dst any, opts ...Option) error {
	v, err := Parse(data, opts...)
	if err != nil {
		return err
	}
	return v.Decode(dst)
}

// Decode stores v in the value pointed to by dst, the reverse of ValueOf.
//
// Null sets the target to its zero value. Integers decode into any integer
// or float type they fit in, floats into float types, arrays into slices and
// arrays, and objects into string-keyed maps and structs. Object members
// without a matching struct field are ignored. An empty interface receives
// the result of Interface, and a Value or *Value target receives a copy.
func (v *Value) Decode(dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &serrors.AccessError{
			Op:   "Decode",
			Have: fmt.Sprintf("non-pointer or nil %T", dst),
			Err:  serrors.ErrUnsupportedValue,
		}
	}
	return decodeValue(v, rv.Elem())
}

func mismatch(v *Value, rv reflect.Value) error {
	return &serrors.AccessError{
		Op:   "Decode",
		Want: rv.Type().String(),
		Have: v.Kind().String(),
		Err:  serrors.ErrWrongType,
	}
}

func overflow(v *Value, rv reflect.Value) error {
	return &serrors.AccessError{
		Op:   "Decode",
		Have: fmt.Sprintf("%s %s overflows %s", v.Kind(), v, rv.Type()),
		Err:  serrors.ErrUnsupportedValue,
	}
}

func decodeValue(v *Value, rv reflect.Value) error {
	switch {
	case rv.Type() == valueType:
		rv.Set(reflect.ValueOf(v.Clone()).Elem())
		return nil
	case rv.Type() == valuePtrType:
		rv.Set(reflect.ValueOf(v.Clone()))
		return nil
	case rv.Kind() == reflect.Pointer:
		if v.IsNull() {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeValue(v, rv.Elem())
	case rv.Kind() == reflect.Interface:
		if rv.NumMethod() != 0 {
			return mismatch(v, rv)
		}
		if x := v.Interface(); x != nil {
			rv.Set(reflect.ValueOf(x))
		} else {
			rv.Set(reflect.Zero(rv.Type()))
		}
		return nil
	}

	switch v.Kind() {
	case NullKind:
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	case BoolKind:
		if rv.Kind() != reflect.Bool {
			return mismatch(v, rv)
		}
		rv.SetBool(v.b)
		return nil
	case IntegerKind:
		return decodeInt(v, rv)
	case FloatKind:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			if rv.OverflowFloat(v.f) {
				return overflow(v, rv)
			}
			rv.SetFloat(v.f)
			return nil
		}
	case StringKind:
		if rv.Kind() == reflect.String {
			rv.SetString(v.s)
			return nil
		}
	case ArrayKind:
		return decodeArray(v, rv)
	case ObjectKind:
		switch rv.Kind() {
		case reflect.Map:
			return decodeMap(v, rv)
		case reflect.Struct:
			return decodeStruct(v, rv)
		}
	}
	return mismatch(v, rv)
}

func decodeInt(v *Value, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(v.i) {
			return overflow(v, rv)
		}
		rv.SetInt(v.i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.i < 0 || rv.OverflowUint(uint64(v.i)) {
			return overflow(v, rv)
		}
		rv.SetUint(uint64(v.i))
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(float64(v.i))
	default:
		return mismatch(v, rv)
	}
	return nil
}

// decodeArray fills a slice with exactly the array's elements. A Go array
// takes as many elements as fit and zeroes the rest.
func decodeArray(v *Value, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Slice:
		s := reflect.MakeSlice(rv.Type(), len(v.items), len(v.items))
		for i, item := range v.items {
			if err := decodeValue(item, s.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(s)
		return nil
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if i >= len(v.items) {
				rv.Index(i).Set(reflect.Zero(rv.Type().Elem()))
				continue
			}
			if err := decodeValue(v.items[i], rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	}
	return mismatch(v, rv)
}

func decodeMap(v *Value, rv reflect.Value) error {
	mt := rv.Type()
	if mt.Key().Kind() != reflect.String {
		return mismatch(v, rv)
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(mt, len(v.fields)))
	}
	for _, key := range v.Keys() {
		elem := reflect.New(mt.Elem()).Elem()
		if err := decodeValue(v.fields[key], elem); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(key).Convert(mt.Key()), elem)
	}
	return nil
}

func decodeStruct(v *Value, rv reflect.Value) error {
	t := rv.Type()
	for _, key := range v.Keys() {
		f, ok := mapper.Lookup(t, key)
		if !ok {
			continue
		}
		fv, ok := mapper.ByIndex(rv, f.Index, true)
		if !ok {
			continue
		}
		if err := decodeValue(v.fields[key], fv); err != nil {
			return err
		}
	}
	return nil
}
