package sjson

import "github.com/fatih/color"

type colorClass int

const (
	keyColor colorClass = iota
	stringColor
	numberColor
	boolColor
	nullColor
	punctColor
)

// Colors maps the parts of the text form to terminal color functions.
// A nil function leaves that part uncolored.
type Colors struct {
	Key    func(string, ...any) string
	String func(string, ...any) string
	Number func(string, ...any) string
	Bool   func(string, ...any) string
	Null   func(string, ...any) string
	Punct  func(string, ...any) string
}

// NewColors returns the default terminal palette. Whether escape codes are
// emitted follows color.NoColor.
func NewColors() *Colors {
	return &Colors{
		Key:    color.RGB(196, 96, 16).SprintfFunc(),
		String: color.RGB(8, 196, 16).SprintfFunc(),
		Number: color.RGB(128, 216, 236).SprintfFunc(),
		Bool:   color.CyanString,
		Null:   color.RGB(168, 0, 196).SprintfFunc(),
		Punct:  color.RGB(196, 128, 128).SprintfFunc(),
	}
}

func (c *Colors) paint(class colorClass, s string) string {
	if c == nil {
		return s
	}
	var fn func(string, ...any) string
	switch class {
	case keyColor:
		fn = c.Key
	case stringColor:
		fn = c.String
	case numberColor:
		fn = c.Number
	case boolColor:
		fn = c.Bool
	case nullColor:
		fn = c.Null
	case punctColor:
		fn = c.Punct
	}
	if fn == nil {
		return s
	}
	return fn("%s", s)
}
