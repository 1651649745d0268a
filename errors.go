package sjson

import serrors "github.com/KimNorgaard/go-sjson/errors"

type (
	FileError       = serrors.FileError
	ScanError       = serrors.ScanError
	ParseError      = serrors.ParseError
	ConversionError = serrors.ConversionError
	AccessError     = serrors.AccessError
)

var (
	ErrUnexpectedEnd    = serrors.ErrUnexpectedEnd
	ErrWrongType        = serrors.ErrWrongType
	ErrNotContainer     = serrors.ErrNotContainer
	ErrIndexOutOfRange  = serrors.ErrIndexOutOfRange
	ErrEmptyHandle      = serrors.ErrEmptyHandle
	ErrUnsupportedValue = serrors.ErrUnsupportedValue
)
