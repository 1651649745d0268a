/*
Package sjson reads, navigates, edits and writes documents in a small
JSON-like text format.

The format is the JSON grammar of objects, arrays, strings, numbers, booleans
and null, plus "//" line comments. Strings have no escape sequences: a string
runs from one double quote to the next on the same line, and is written back
verbatim between quotes.

The pipeline is text, tokens, value tree, text:

	v, err := sjson.Parse([]byte(`{"a": [1, 2, 3], "b": {"c": true}}`))
	if err != nil {
		// handle error
	}
	out, err := sjson.Marshal(v)

Output uses two spaces per nesting level, one element or member per line.
Object members are written in sorted key order, which may differ from the
order of the source text. Integers and floats are kept apart: 12 parses as an
Integer, 12.0 and 1e5 as Floats, and floats are always written with a '.' or
an exponent.

A Document is a handle to one node of a tree. Navigating with Key or Index
creates missing members and pads short arrays with nulls, and Assign changes
the node in place, so every handle to it sees the change:

	doc := sjson.NewDocument(v)
	c, _ := doc.At("b", "c")
	_ = c.Assign(sjson.Bool(false))

ValueOf builds a tree from Go values, and Value.Decode and Unmarshal store
a tree into Go values, following `sjson:"name,omitempty"` struct tags.

By default a "//" inside a quoted string is part of the string. The
NaiveComments option instead cuts every line at its first "//", wherever it
occurs.

All operations report failures as one of the typed errors FileError,
ScanError, ParseError, ConversionError or AccessError.
*/
package sjson
