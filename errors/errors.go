// Package errors defines the typed errors returned while reading, parsing,
// navigating and writing sjson documents.
//
// Every failure is reported as one of FileError, ScanError, ParseError,
// ConversionError or AccessError. The sentinel values can be matched with
// errors.Is through the Unwrap methods.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEnd is wrapped by a ParseError when the token stream ran
	// out while a value, separator or closing bracket was still expected.
	ErrUnexpectedEnd = errors.New("unexpected end of tokens")
	// ErrWrongType signals a typed read of a value with a different kind.
	ErrWrongType = errors.New("wrong value type")
	// ErrNotContainer signals key or index navigation on a value that is not
	// an object or array respectively.
	ErrNotContainer = errors.New("not a container")
	// ErrIndexOutOfRange signals a negative or otherwise unusable index.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyHandle signals use of a document handle that references no value.
	ErrEmptyHandle = errors.New("empty document handle")
	// ErrUnsupportedValue signals a value that has no textual representation,
	// such as a NaN float or a Go value ValueOf cannot convert.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// FileError reports a resource that could not be opened, read or written.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("sjson: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ScanError reports a character or literal the tokenizer could not accept.
// Scanning stops at the first ScanError.
type ScanError struct {
	Message string
	Literal string
	Line    int
	Column  int
}

func (e *ScanError) Error() string {
	if e.Literal == "" {
		return fmt.Sprintf("sjson: scan error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("sjson: scan error at line %d, column %d: %s: %q", e.Line, e.Column, e.Message, e.Literal)
}

// ParseError reports an unexpected or missing token.
type ParseError struct {
	Message string
	// Token is the diagnostic form of the offending token. It is empty when
	// the tokens ran out.
	Token  string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("sjson: parsing error: %s", e.Message)
	}
	return fmt.Sprintf("sjson: parsing error at line %d, column %d: %s, got %s", e.Line, e.Column, e.Message, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConversionError reports a numeric literal that does not fit the target
// numeric representation.
type ConversionError struct {
	Literal string
	Kind    string
	Line    int
	Column  int
	Err     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("sjson: cannot convert %q to %s at line %d, column %d: %v", e.Literal, e.Kind, e.Line, e.Column, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// AccessError reports navigation into a value that cannot be navigated that
// way, or a typed read of a value of another kind.
type AccessError struct {
	Op   string
	Want string
	Have string
	Err  error
}

func (e *AccessError) Error() string {
	switch {
	case e.Want != "" && e.Have != "":
		return fmt.Sprintf("sjson: %s: %v: want %s, have %s", e.Op, e.Err, e.Want, e.Have)
	case e.Have != "":
		return fmt.Sprintf("sjson: %s: %v: %s", e.Op, e.Err, e.Have)
	default:
		return fmt.Sprintf("sjson: %s: %v", e.Op, e.Err)
	}
}

func (e *AccessError) Unwrap() error { return e.Err }
