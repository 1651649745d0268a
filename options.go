package sjson

import (
	"fmt"

	"github.com/KimNorgaard/go-sjson/internal/lexer"
)

const (
	defaultIndent   = 2
	defaultMaxDepth = 1000
)

// Option configures parsing and encoding.
type Option func(*options) error

type options struct {
	indent           *int
	maxDepth         int
	naiveComments    bool
	disallowTrailing bool
	colors           *Colors
}

func newOptions(opts []Option) (*options, error) {
	o := &options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *options) indentSpaces() int {
	if o.indent == nil {
		return defaultIndent
	}
	return *o.indent
}

func (o *options) lexerOptions() []lexer.Option {
	var res []lexer.Option
	if o.naiveComments {
		res = append(res, lexer.NaiveComments())
	}
	return res
}

// Indent sets the number of spaces per nesting level used by the encoder.
// Indent(0) writes the whole value on a single line.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("sjson: indent spaces cannot be negative")
		}
		o.indent = &spaces
		return nil
	}
}

// MaxDepth sets the maximum nesting depth of arrays and objects the parser
// accepts. This helps prevent stack exhaustion on hostile input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("sjson: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// NaiveComments cuts each source line at its first "//", even inside string
// literals. By default a "//" between double quotes is part of the string.
func NaiveComments() Option {
	return func(o *options) error {
		o.naiveComments = true
		return nil
	}
}

// DisallowTrailing makes the parser reject tokens that follow the top-level
// value. By default they are ignored.
func DisallowTrailing() Option {
	return func(o *options) error {
		o.disallowTrailing = true
		return nil
	}
}

// Colorize makes the encoder wrap keys, scalars and punctuation in the
// terminal colors of c. A nil c disables coloring.
func Colorize(c *Colors) Option {
	return func(o *options) error {
		o.colors = c
		return nil
	}
}
