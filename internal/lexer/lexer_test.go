package lexer

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	serrors "github.com/KimNorgaard/go-sjson/errors"
	"github.com/KimNorgaard/go-sjson/internal/token"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	input := `
// Top-level comment
{
  "name": "sjson", // trailing comment
  "count": 12,
  "ratio": -1.5e+3,
  "on": true,
  "off": false,
  "none": null,
  "list": [1, "two"]
}
`
	expected := []struct {
		typ     token.Type
		literal string
		line    int
		column  int
	}{
		{token.LBRACE, "{", 3, 1},
		{token.STRING, "name", 4, 3},
		{token.COLON, ":", 4, 9},
		{token.STRING, "sjson", 4, 11},
		{token.COMMA, ",", 4, 18},
		{token.STRING, "count", 5, 3},
		{token.COLON, ":", 5, 10},
		{token.INT, "12", 5, 12},
		{token.COMMA, ",", 5, 14},
		{token.STRING, "ratio", 6, 3},
		{token.COLON, ":", 6, 10},
		{token.NUMBER, "-1.5e+3", 6, 12},
		{token.COMMA, ",", 6, 19},
		{token.STRING, "on", 7, 3},
		{token.COLON, ":", 7, 7},
		{token.BOOL, "true", 7, 9},
		{token.COMMA, ",", 7, 13},
		{token.STRING, "off", 8, 3},
		{token.COLON, ":", 8, 8},
		{token.BOOL, "false", 8, 10},
		{token.COMMA, ",", 8, 15},
		{token.STRING, "none", 9, 3},
		{token.COLON, ":", 9, 9},
		{token.NULL, "null", 9, 11},
		{token.COMMA, ",", 9, 15},
		{token.STRING, "list", 10, 3},
		{token.COLON, ":", 10, 9},
		{token.LBRACK, "[", 10, 11},
		{token.INT, "1", 10, 12},
		{token.COMMA, ",", 10, 13},
		{token.STRING, "two", 10, 15},
		{token.RBRACK, "]", 10, 20},
		{token.RBRACE, "}", 11, 1},
	}

	tokens, err := Tokenize([]byte(input))
	require.NoError(t, err)
	require.Len(t, tokens, len(expected))

	for i, tt := range expected {
		tok := tokens[i]
		require.Equal(t, tt.typ, tok.Type, "tests[%d] - wrong type", i)
		require.Equal(t, tt.literal, tok.Literal, "tests[%d] - wrong literal", i)
		require.Equal(t, tt.line, tok.Line, "tests[%d] - wrong line", i)
		require.Equal(t, tt.column, tok.Column, "tests[%d] - wrong column", i)
	}
}

func TestNumberClassification(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Type
	}{
		{"12", token.INT},
		{"0", token.INT},
		{"-7", token.INT},
		{"+7", token.INT},
		{"12.0", token.NUMBER},
		{"1e5", token.NUMBER},
		{"1E5", token.NUMBER},
		{"1.2e-3", token.NUMBER},
		{"1.2E+3", token.NUMBER},
		{"1.", token.NUMBER},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize([]byte(tt.input))
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			require.Equal(t, tt.expected, tokens[0].Type)
			require.Equal(t, tt.input, tokens[0].Literal)
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		literal string
		line    int
		column  int
	}{
		{"second dot", "1.2.3", "malformed number", "1.2.3", 1, 1},
		{"dangling exponent", "[1e]", "malformed number", "1e", 1, 2},
		{"second exponent", "1e5e3", "malformed number", "1e5e3", 1, 1},
		{"dot in exponent", "1e5.3", "malformed number", "1e5.3", 1, 1},
		{"misplaced sign", "1-2", "malformed number", "1-2", 1, 1},
		{"double sign", "--1", "malformed number", "--1", 1, 1},
		{"lone sign", "[-]", "malformed number", "-", 1, 2},
		{"exponent without mantissa", "-e5", "malformed number", "-e5", 1, 1},
		{"bad boolean", "tru", "malformed boolean literal", "tru", 1, 1},
		{"bad false", "[fals]", "malformed boolean literal", "fals", 1, 2},
		{"bad null", "nil", "malformed null literal", "nil", 1, 1},
		{"unterminated string", "{\n  \"abc\n}", "unterminated string", `"abc`, 2, 3},
		{"unexpected character", "{ 'a': 1 }", "unexpected character", "'", 1, 3},
		{"bare word", "[x]", "unexpected character", "x", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize([]byte(tt.input))
			require.Nil(t, tokens)
			var scanErr *serrors.ScanError
			require.True(t, errors.As(err, &scanErr), "expected *ScanError, got %T", err)
			require.Equal(t, tt.message, scanErr.Message)
			require.Equal(t, tt.literal, scanErr.Literal)
			require.Equal(t, tt.line, scanErr.Line)
			require.Equal(t, tt.column, scanErr.Column)
		})
	}
}

func TestScanErrorIsFatal(t *testing.T) {
	tokens, err := Tokenize([]byte("[1, 2]\n[3, @]\n[4]"))
	require.Error(t, err)
	require.Nil(t, tokens)
}

func TestComments(t *testing.T) {
	t.Run("trailing comment is stripped", func(t *testing.T) {
		tokens, err := Tokenize([]byte(`"a": 1 // note`))
		require.NoError(t, err)
		require.Len(t, tokens, 3)
		require.Equal(t, token.INT, tokens[2].Type)
	})

	t.Run("comment inside string is kept", func(t *testing.T) {
		tokens, err := Tokenize([]byte(`{"url": "http://example.com"} // tail`))
		require.NoError(t, err)
		require.Len(t, tokens, 5)
		require.Equal(t, "http://example.com", tokens[3].Literal)
	})

	t.Run("naive mode cuts inside string", func(t *testing.T) {
		_, err := Tokenize([]byte(`{"url": "http://example.com"}`), NaiveComments())
		var scanErr *serrors.ScanError
		require.ErrorAs(t, err, &scanErr)
		require.Equal(t, "unterminated string", scanErr.Message)
		require.Equal(t, `"http:`, scanErr.Literal)
	})

	t.Run("naive mode strips trailing comment", func(t *testing.T) {
		tokens, err := Tokenize([]byte("[1, 2] // [3]"), NaiveComments())
		require.NoError(t, err)
		require.Len(t, tokens, 5)
	})

	t.Run("whole line comment", func(t *testing.T) {
		tokens, err := Tokenize([]byte("// only a comment\n// and another"))
		require.NoError(t, err)
		require.Empty(t, tokens)
	})
}

func TestLineEndings(t *testing.T) {
	tokens, err := Tokenize([]byte("[\r\n  1,\r\n  2\r\n]"))
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	require.Equal(t, 4, tokens[4].Line)
}

func TestNoEscapeProcessing(t *testing.T) {
	tokens, err := Tokenize([]byte(`"a\n\t"`))
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, `a\n\t`, tokens[0].Literal)
}

func TestReadError(t *testing.T) {
	readErr := errors.New("boom")
	r := iotest.ErrReader(readErr)
	_, err := New(r).Tokenize()
	var fileErr *serrors.FileError
	require.ErrorAs(t, err, &fileErr)
	require.ErrorIs(t, err, readErr)
}

func TestLongLine(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 50000; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("12345")
	}
	sb.WriteString("]")
	tokens, err := Tokenize([]byte(sb.String()))
	require.NoError(t, err)
	require.Len(t, tokens, 2+50000+49999)
}
