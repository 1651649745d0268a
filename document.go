package sjson

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	serrors "github.com/KimNorgaard/go-sjson/errors"
)

// Document is a handle to a single node of a value tree. Handles obtained by
// navigation alias the node inside its parent container: assigning through
// one handle is visible through every other handle and through the parent.
//
// A Document that references no node is an empty handle. Navigation failures
// return an empty handle together with the error.
//
// Documents are not safe for concurrent use.
type Document struct {
	node *Value
	log  *slog.Logger
}

// New returns a document whose root is null.
func New() *Document {
	return &Document{node: Null()}
}

// NewDocument returns a handle referencing v. A nil v is replaced by null.
func NewDocument(v *Value) *Document {
	return &Document{node: orNull(v)}
}

// Load reads and parses the file at path into a new document.
func Load(path string, opts ...Option) (*Document, error) {
	d := &Document{}
	if err := d.Load(path, opts...); err != nil {
		return nil, err
	}
	return d, nil
}

// WithLogger sets a logger that receives a debug notice whenever navigation
// creates a missing key or grows an array. Handles derived from d share it.
func (d *Document) WithLogger(l *slog.Logger) *Document {
	d.log = l
	return d
}

// IsEmpty reports whether d references no node.
func (d *Document) IsEmpty() bool {
	return d == nil || d.node == nil
}

// Value returns the node d references, or nil for an empty handle.
func (d *Document) Value() *Value {
	if d.IsEmpty() {
		return nil
	}
	return d.node
}

// Kind returns the kind of the referenced node. An empty handle reports
// NullKind.
func (d *Document) Kind() Kind {
	return d.Value().Kind()
}

func (d *Document) derive(v *Value) *Document {
	return &Document{node: v, log: d.log}
}

func (d *Document) empty() *Document {
	if d == nil {
		return &Document{}
	}
	return &Document{log: d.log}
}

func emptyHandle(op string) error {
	return &serrors.AccessError{Op: op, Err: serrors.ErrEmptyHandle}
}

// Key returns a handle to the member key of an object. A missing member is
// created as null first, so reading an absent key adds it to the object.
func (d *Document) Key(key string) (*Document, error) {
	if d.IsEmpty() {
		return d.empty(), emptyHandle("Key")
	}
	if d.node.kind != ObjectKind {
		return d.empty(), &serrors.AccessError{
			Op:   "Key " + key,
			Want: ObjectKind.String(),
			Have: d.node.kind.String(),
			Err:  serrors.ErrNotContainer,
		}
	}
	child, ok := d.node.fields[key]
	if !ok {
		child = Null()
		d.node.fields[key] = child
		if d.log != nil {
			d.log.Debug("created missing key", "key", key)
		}
	}
	return d.derive(child), nil
}

// Index returns a handle to element i of an array. An array shorter than
// i+1 elements is padded with nulls to exactly i+1 elements first.
func (d *Document) Index(i int) (*Document, error) {
	if d.IsEmpty() {
		return d.empty(), emptyHandle("Index")
	}
	if d.node.kind != ArrayKind {
		return d.empty(), &serrors.AccessError{
			Op:   "Index",
			Want: ArrayKind.String(),
			Have: d.node.kind.String(),
			Err:  serrors.ErrNotContainer,
		}
	}
	if i < 0 {
		return d.empty(), &serrors.AccessError{Op: "Index", Err: serrors.ErrIndexOutOfRange}
	}
	if n := len(d.node.items); i >= n {
		for len(d.node.items) <= i {
			d.node.items = append(d.node.items, Null())
		}
		if d.log != nil {
			d.log.Debug("grew array", "from", n, "to", i+1)
		}
	}
	return d.derive(d.node.items[i]), nil
}

// At follows path from d, applying Key for string elements and Index for int
// elements.
func (d *Document) At(path ...any) (*Document, error) {
	cur := d
	for _, elem := range path {
		var err error
		switch e := elem.(type) {
		case string:
			cur, err = cur.Key(e)
		case int:
			cur, err = cur.Index(e)
		default:
			return d.empty(), &serrors.AccessError{
				Op:   "At",
				Have: fmt.Sprintf("path element %v (%T)", elem, elem),
				Err:  serrors.ErrUnsupportedValue,
			}
		}
		if err != nil {
			return cur, err
		}
	}
	return cur, nil
}

// Assign overwrites the referenced node in place with a deep copy of v.
// Every handle and container referencing the node observes the new value.
func (d *Document) Assign(v *Value) error {
	if d.IsEmpty() {
		return emptyHandle("Assign")
	}
	d.node.assign(orNull(v))
	return nil
}

// Set converts x with ValueOf and assigns the result.
func (d *Document) Set(x any) error {
	if d.IsEmpty() {
		return emptyHandle("Set")
	}
	v, err := ValueOf(x)
	if err != nil {
		return err
	}
	d.node.assign(v)
	return nil
}

// Bool returns the payload of a Bool node.
func (d *Document) Bool() (bool, error) {
	if d.IsEmpty() {
		return false, emptyHandle("Bool")
	}
	return d.node.AsBool()
}

// Int returns the payload of an Integer node.
func (d *Document) Int() (int64, error) {
	if d.IsEmpty() {
		return 0, emptyHandle("Int")
	}
	return d.node.AsInt()
}

// Float returns the payload of a Float node.
func (d *Document) Float() (float64, error) {
	if d.IsEmpty() {
		return 0, emptyHandle("Float")
	}
	return d.node.AsFloat()
}

// Text returns the payload of a String node.
func (d *Document) Text() (string, error) {
	if d.IsEmpty() {
		return "", emptyHandle("Text")
	}
	return d.node.AsString()
}

// Decode stores the referenced node in the value pointed to by dst. See
// Value.Decode for the mapping rules.
func (d *Document) Decode(dst any) error {
	if d.IsEmpty() {
		return emptyHandle("Decode")
	}
	return d.node.Decode(dst)
}

// Load parses the file at path and makes its root the node d references.
// Other handles keep referencing the previous root.
func (d *Document) Load(path string, opts ...Option) error {
	v, err := ParseFile(path, opts...)
	if err != nil {
		return err
	}
	d.node = v
	return nil
}

// LoadReader parses r and makes its root the node d references.
func (d *Document) LoadReader(r io.Reader, opts ...Option) error {
	v, err := ParseReader(r, opts...)
	if err != nil {
		return err
	}
	d.node = v
	return nil
}

// LoadBytes parses data and makes its root the node d references.
func (d *Document) LoadBytes(data []byte, opts ...Option) error {
	return d.LoadReader(bytes.NewReader(data), opts...)
}

// Save writes the text form of the referenced subtree to the file at path,
// creating or truncating it. The file is closed before Save returns.
func (d *Document) Save(path string, opts ...Option) (err error) {
	if d.IsEmpty() {
		return emptyHandle("Save")
	}
	data, err := Marshal(d.node, opts...)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return &serrors.FileError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &serrors.FileError{Op: "close", Path: path, Err: cerr}
		}
	}()
	if _, err := f.Write(data); err != nil {
		return &serrors.FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// WriteTo writes the text form of the referenced subtree to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d.IsEmpty() {
		return 0, emptyHandle("WriteTo")
	}
	data, err := Marshal(d.node)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// String returns the text form of the referenced subtree.
func (d *Document) String() string {
	if d.IsEmpty() {
		return ""
	}
	return d.node.String()
}
