package token

import "fmt"

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	// Literals
	NULL   Type = "NULL"   // null
	BOOL   Type = "BOOL"   // true, false
	INT    Type = "INT"    // 12345
	NUMBER Type = "NUMBER" // 123.45, 1e5
	STRING Type = "STRING" // "hello world"

	// Delimiters
	LBRACK Type = "["
	RBRACK Type = "]"
	LBRACE Type = "{"
	RBRACE Type = "}"
	COMMA  Type = ","
	COLON  Type = ":"
)

var keywords = map[string]Type{
	"true":  BOOL,
	"false": BOOL,
	"null":  NULL,
}

// LookupKeyword checks the keywords table for a bare word.
// It reports false if the word is not one of true, false or null.
func LookupKeyword(word string) (Type, bool) {
	tok, ok := keywords[word]
	return tok, ok
}

// Delimiter returns the token type of a structural character.
func Delimiter(ch byte) (Type, bool) {
	switch ch {
	case '[', ']', '{', '}', ',', ':':
		return Type(ch), true
	}
	return "", false
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Type {
	case STRING:
		return fmt.Sprintf("%s %q", t.Type, t.Literal)
	case INT, NUMBER, BOOL, NULL:
		return fmt.Sprintf("%s %s", t.Type, t.Literal)
	default:
		return fmt.Sprintf("'%s'", t.Literal)
	}
}
