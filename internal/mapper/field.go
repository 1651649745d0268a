// Package mapper resolves the Go struct fields that map to object members.
package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// Field is an exported struct field visible as an object member.
type Field struct {
	Name      string
	Index     []int
	Tagged    bool
	OmitEmpty bool
	depth     int
}

// fieldCache maps a struct type to its []Field.
var fieldCache sync.Map

// Fields returns the member fields of struct type t in declaration order.
// Unexported fields and fields tagged `sjson:"-"` are skipped. The fields of
// an untagged embedded struct, or pointer to struct, are promoted; a field
// declared at a shallower depth hides a promoted field of the same name.
func Fields(t reflect.Type) []Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}

	var all []Field
	collect(t, nil, 0, &all)

	byName := make(map[string]int, len(all))
	fields := make([]Field, 0, len(all))
	for _, f := range all {
		if i, ok := byName[f.Name]; ok {
			if f.depth < fields[i].depth {
				fields[i] = f
			}
			continue
		}
		byName[f.Name] = len(fields)
		fields = append(fields, f)
	}

	f, _ := fieldCache.LoadOrStore(t, fields)
	return f.([]Field)
}

// Lookup returns the member field called name.
func Lookup(t reflect.Type, name string) (Field, bool) {
	for _, f := range Fields(t) {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func collect(t reflect.Type, parent []int, depth int, out *[]Field) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("sjson")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		index := make([]int, len(parent)+1)
		copy(index, parent)
		index[len(parent)] = i

		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				collect(ft, index, depth+1, out)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}

		f := Field{Name: sf.Name, Index: index, depth: depth}
		if name != "" {
			f.Name = name
			f.Tagged = true
		}
		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			if strings.TrimSpace(opt) == "omitempty" {
				f.OmitEmpty = true
			}
		}
		*out = append(*out, f)
	}
}

// ByIndex returns the field of struct value v at index. Nil embedded
// pointers on the way are allocated when alloc is set; otherwise ok is false
// when one is found.
func ByIndex(v reflect.Value, index []int, alloc bool) (field reflect.Value, ok bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !alloc || !v.CanSet() {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

// IsEmpty reports whether v holds the zero value for the purposes of the
// "omitempty" option.
func IsEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
