package sjson

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	serrors "github.com/KimNorgaard/go-sjson/errors"
)

// Encoder writes values to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the text form of v to the stream. Nothing is written when v
// holds a float without a textual form (NaN or an infinity).
func (e *Encoder) Encode(v *Value) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := newFormatter(&buf, o).format(v); err != nil {
		return err
	}
	_, err = e.w.Write(buf.Bytes())
	return err
}

// String renders v with the default layout. Floats without a textual form
// are written as Go formats them, so the result may not parse back.
func (v *Value) String() string {
	var sb strings.Builder
	f := newFormatter(&sb, &options{})
	f.lenient = true
	_ = f.format(v)
	return sb.String()
}

// formatter writes a value tree to an output stream.
type formatter struct {
	w       io.Writer
	indent  string
	depth   int
	colors  *Colors
	lenient bool
}

// newFormatter returns a new formatter that writes to w.
func newFormatter(w io.Writer, o *options) *formatter {
	return &formatter{
		w:      w,
		indent: strings.Repeat(" ", o.indentSpaces()),
		colors: o.colors,
	}
}

// format writes the text form of v to the writer.
func (f *formatter) format(v *Value) error {
	return f.writeValue(v)
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *formatter) paint(class colorClass, s string) error {
	return f.write(f.colors.paint(class, s))
}

func (f *formatter) writeIndent() error {
	if f.indent == "" {
		return nil
	}
	return f.write(strings.Repeat(f.indent, f.depth))
}

// writeBreak starts a new line at the current depth in indented mode.
func (f *formatter) writeBreak() error {
	if f.indent == "" {
		return nil
	}
	if err := f.write("\n"); err != nil {
		return err
	}
	return f.writeIndent()
}

func (f *formatter) writeValue(v *Value) error {
	switch v.Kind() {
	case NullKind:
		return f.paint(nullColor, "null")
	case BoolKind:
		return f.paint(boolColor, strconv.FormatBool(v.b))
	case IntegerKind:
		return f.paint(numberColor, strconv.FormatInt(v.i, 10))
	case FloatKind:
		s, ok := formatFloat(v.f)
		if !ok && !f.lenient {
			return &serrors.AccessError{Op: "Encode", Have: s, Err: serrors.ErrUnsupportedValue}
		}
		return f.paint(numberColor, s)
	case StringKind:
		return f.paint(stringColor, `"`+v.s+`"`)
	case ArrayKind:
		return f.writeArray(v)
	case ObjectKind:
		return f.writeObject(v)
	}
	return &serrors.AccessError{Op: "Encode", Have: v.Kind().String(), Err: serrors.ErrUnsupportedValue}
}

func (f *formatter) writeArray(v *Value) error {
	if err := f.paint(punctColor, "["); err != nil {
		return err
	}
	if len(v.items) > 0 {
		f.depth++
		for i, item := range v.items {
			if err := f.writeBreak(); err != nil {
				return err
			}
			if err := f.writeValue(item); err != nil {
				return err
			}
			if i < len(v.items)-1 {
				if err := f.paint(punctColor, ","); err != nil {
					return err
				}
			}
		}
		f.depth--
		if err := f.writeBreak(); err != nil {
			return err
		}
	}
	return f.paint(punctColor, "]")
}

func (f *formatter) writeObject(v *Value) error {
	if err := f.paint(punctColor, "{"); err != nil {
		return err
	}
	keys := v.Keys()
	if len(keys) > 0 {
		sep := ": "
		if f.indent == "" {
			sep = ":"
		}
		f.depth++
		for i, key := range keys {
			if err := f.writeBreak(); err != nil {
				return err
			}
			if err := f.paint(keyColor, `"`+key+`"`); err != nil {
				return err
			}
			if err := f.paint(punctColor, sep); err != nil {
				return err
			}
			if err := f.writeValue(v.fields[key]); err != nil {
				return err
			}
			if i < len(keys)-1 {
				if err := f.paint(punctColor, ","); err != nil {
					return err
				}
			}
		}
		f.depth--
		if err := f.writeBreak(); err != nil {
			return err
		}
	}
	return f.paint(punctColor, "}")
}

// formatFloat renders f in its shortest form. The result always carries a
// '.' or an exponent so that it reads back as a Float. It reports false for
// NaN and infinities.
func formatFloat(f float64) (string, bool) {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return s, false
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, true
}
