package sjson

import (
	"maps"
	"slices"

	serrors "github.com/KimNorgaard/go-sjson/errors"
)

// Kind is the type tag of a Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntegerKind
	FloatKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "Null"
	case BoolKind:
		return "Bool"
	case IntegerKind:
		return "Integer"
	case FloatKind:
		return "Float"
	case StringKind:
		return "String"
	case ArrayKind:
		return "Array"
	case ObjectKind:
		return "Object"
	}
	return "<unknown kind>"
}

// IsContainer reports whether values of kind k hold child values.
func (k Kind) IsContainer() bool {
	return k == ArrayKind || k == ObjectKind
}

// Value is a node of a document tree. It holds exactly one payload, the one
// matching its Kind.
//
// Arrays and objects hold their children by pointer, so a child can be
// referenced by its container and by any number of Document handles at once.
// Changing a child in place is visible through every reference to it.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	items  []*Value
	fields map[string]*Value
}

// Null returns a new null value.
func Null() *Value { return &Value{kind: NullKind} }

// Bool returns a new boolean value.
func Bool(b bool) *Value { return &Value{kind: BoolKind, b: b} }

// Int returns a new integer value.
func Int(i int64) *Value { return &Value{kind: IntegerKind, i: i} }

// Float returns a new float value.
func Float(f float64) *Value { return &Value{kind: FloatKind, f: f} }

// String returns a new string value.
func String(s string) *Value { return &Value{kind: StringKind, s: s} }

// Array returns a new array holding items in order. Nil items are stored
// as null values.
func Array(items ...*Value) *Value {
	v := &Value{kind: ArrayKind, items: make([]*Value, 0, len(items))}
	for _, item := range items {
		v.items = append(v.items, orNull(item))
	}
	return v
}

// Object returns a new empty object.
func Object() *Value {
	return &Value{kind: ObjectKind, fields: make(map[string]*Value)}
}

func orNull(v *Value) *Value {
	if v == nil {
		return Null()
	}
	return v
}

// Kind returns the type tag of v. A nil *Value reports NullKind.
func (v *Value) Kind() Kind {
	if v == nil {
		return NullKind
	}
	return v.kind
}

// IsNull reports whether v is null.
func (v *Value) IsNull() bool { return v.Kind() == NullKind }

func (v *Value) wrongType(op string, want Kind) error {
	return &serrors.AccessError{Op: op, Want: want.String(), Have: v.Kind().String(), Err: serrors.ErrWrongType}
}

// AsBool returns the payload of a Bool value.
func (v *Value) AsBool() (bool, error) {
	if v.Kind() != BoolKind {
		return false, v.wrongType("AsBool", BoolKind)
	}
	return v.b, nil
}

// AsInt returns the payload of an Integer value.
func (v *Value) AsInt() (int64, error) {
	if v.Kind() != IntegerKind {
		return 0, v.wrongType("AsInt", IntegerKind)
	}
	return v.i, nil
}

// AsFloat returns the payload of a Float value. Integers are not converted.
func (v *Value) AsFloat() (float64, error) {
	if v.Kind() != FloatKind {
		return 0, v.wrongType("AsFloat", FloatKind)
	}
	return v.f, nil
}

// AsString returns the payload of a String value.
func (v *Value) AsString() (string, error) {
	if v.Kind() != StringKind {
		return "", v.wrongType("AsString", StringKind)
	}
	return v.s, nil
}

// Items returns the elements of an Array value. The returned slice is a copy,
// the elements are not.
func (v *Value) Items() ([]*Value, error) {
	if v.Kind() != ArrayKind {
		return nil, v.wrongType("Items", ArrayKind)
	}
	return slices.Clone(v.items), nil
}

// Len returns the number of elements of an array or members of an object,
// and 0 for every other kind.
func (v *Value) Len() int {
	switch v.Kind() {
	case ArrayKind:
		return len(v.items)
	case ObjectKind:
		return len(v.fields)
	}
	return 0
}

// Keys returns the member names of an object in sorted order. This is the
// order in which objects are serialized, independent of the order in the
// source text. Keys returns nil for every other kind.
func (v *Value) Keys() []string {
	if v.Kind() != ObjectKind {
		return nil
	}
	return slices.Sorted(maps.Keys(v.fields))
}

// Field returns the member of an object stored under key.
func (v *Value) Field(key string) (*Value, bool) {
	if v.Kind() != ObjectKind {
		return nil, false
	}
	child, ok := v.fields[key]
	return child, ok
}

// Index returns the i-th element of an array.
func (v *Value) Index(i int) (*Value, error) {
	if v.Kind() != ArrayKind {
		return nil, v.wrongType("Index", ArrayKind)
	}
	if i < 0 || i >= len(v.items) {
		return nil, &serrors.AccessError{Op: "Index", Err: serrors.ErrIndexOutOfRange}
	}
	return v.items[i], nil
}

// Append adds items to the end of an array.
func (v *Value) Append(items ...*Value) error {
	if v.Kind() != ArrayKind {
		return v.wrongType("Append", ArrayKind)
	}
	for _, item := range items {
		v.items = append(v.items, orNull(item))
	}
	return nil
}

// Set stores child under key in an object, replacing any previous member.
func (v *Value) Set(key string, child *Value) error {
	if v.Kind() != ObjectKind {
		return v.wrongType("Set", ObjectKind)
	}
	v.fields[key] = orNull(child)
	return nil
}

// Delete removes key from an object. Deleting an absent key is a no-op.
func (v *Value) Delete(key string) error {
	if v.Kind() != ObjectKind {
		return v.wrongType("Delete", ObjectKind)
	}
	delete(v.fields, key)
	return nil
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	res := &Value{kind: v.kind, b: v.b, i: v.i, f: v.f, s: v.s}
	switch v.kind {
	case ArrayKind:
		res.items = make([]*Value, len(v.items))
		for i, item := range v.items {
			res.items[i] = item.Clone()
		}
	case ObjectKind:
		res.fields = make(map[string]*Value, len(v.fields))
		for key, child := range v.fields {
			res.fields[key] = child.Clone()
		}
	}
	return res
}

// Equal reports whether v and o have the same kind and payload, recursively.
// An Integer never equals a Float.
func (v *Value) Equal(o *Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case NullKind:
		return true
	case BoolKind:
		return v.b == o.b
	case IntegerKind:
		return v.i == o.i
	case FloatKind:
		return v.f == o.f
	case StringKind:
		return v.s == o.s
	case ArrayKind:
		return slices.EqualFunc(v.items, o.items, (*Value).Equal)
	case ObjectKind:
		return maps.EqualFunc(v.fields, o.fields, (*Value).Equal)
	}
	return false
}

// assign overwrites v in place with a deep copy of src, so that every
// reference to v observes the new kind and payload.
func (v *Value) assign(src *Value) {
	*v = *src.Clone()
}
