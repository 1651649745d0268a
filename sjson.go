package sjson

import (
	"bytes"
	"io"
	"os"

	serrors "github.com/KimNorgaard/go-sjson/errors"
	"github.com/KimNorgaard/go-sjson/internal/lexer"
)

// Parse tokenizes and parses data into a value tree.
func Parse(data []byte, opts ...Option) (*Value, error) {
	return ParseReader(bytes.NewReader(data), opts...)
}

// ParseReader tokenizes and parses everything read from r. The input is
// consumed completely before parsing starts.
func ParseReader(r io.Reader, opts ...Option) (*Value, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.New(r, o.lexerOptions()...).Tokenize()
	if err != nil {
		return nil, err
	}
	return parseDocument(tokens, o)
}

// ParseFile parses the file at path. The file is closed before ParseFile
// returns.
func ParseFile(path string, opts ...Option) (*Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &serrors.FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	v, err := ParseReader(f, opts...)
	if fileErr, ok := err.(*serrors.FileError); ok {
		fileErr.Path = path
	}
	return v, err
}

// Marshal returns the text form of v.
func Marshal(v *Value, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
