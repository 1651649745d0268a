package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
		ok       bool
	}{
		{"true", BOOL, true},
		{"false", BOOL, true},
		{"null", NULL, true},
		{"nil", "", false},
		{"True", "", false},
		{"foobar", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, ok := LookupKeyword(tt.input)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestDelimiter(t *testing.T) {
	for _, ch := range []byte("[]{},:") {
		typ, ok := Delimiter(ch)
		require.True(t, ok, "%q should be a delimiter", ch)
		require.Equal(t, Type(string(ch)), typ)
	}
	_, ok := Delimiter('"')
	require.False(t, ok)
}

func TestTokenString(t *testing.T) {
	require.Equal(t, `STRING "a b"`, Token{Type: STRING, Literal: "a b"}.String())
	require.Equal(t, "INT 12", Token{Type: INT, Literal: "12"}.String())
	require.Equal(t, "'{'", Token{Type: LBRACE, Literal: "{"}.String())
}
