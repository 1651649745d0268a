package sjson

import (
	"fmt"
	"strconv"

	serrors "github.com/KimNorgaard/go-sjson/errors"
	"github.com/KimNorgaard/go-sjson/internal/token"
)

// parser is a recursive-descent parser over a complete token sequence.
type parser struct {
	tokens   []token.Token
	pos      int
	depth    int
	maxDepth int
}

func newParser(tokens []token.Token, o *options) *parser {
	return &parser{tokens: tokens, maxDepth: o.maxDepth}
}

// parseDocument parses the top-level value. Tokens after it are ignored
// unless trailing input is disallowed.
func parseDocument(tokens []token.Token, o *options) (*Value, error) {
	p := newParser(tokens, o)
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if o.disallowTrailing && p.pos < len(p.tokens) {
		return nil, p.unexpected("unexpected token after top-level value", p.tokens[p.pos])
	}
	return v, nil
}

// peek returns the next token without consuming it.
func (p *parser) peek(expected string) (token.Token, error) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, &serrors.ParseError{
			Message: "expected " + expected,
			Err:     serrors.ErrUnexpectedEnd,
		}
	}
	return p.tokens[p.pos], nil
}

// advance consumes and returns the next token.
func (p *parser) advance(expected string) (token.Token, error) {
	tok, err := p.peek(expected)
	if err != nil {
		return tok, err
	}
	p.pos++
	return tok, nil
}

func (p *parser) unexpected(msg string, tok token.Token) *serrors.ParseError {
	return &serrors.ParseError{Message: msg, Token: tok.String(), Line: tok.Line, Column: tok.Column}
}

func (p *parser) parseValue() (*Value, error) {
	tok, err := p.advance("a value")
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.NULL:
		return Null(), nil
	case token.BOOL:
		return Bool(tok.Literal == "true"), nil
	case token.STRING:
		return String(tok.Literal), nil
	case token.INT:
		i, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, conversionError(tok, IntegerKind, err)
		}
		return Int(i), nil
	case token.NUMBER:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, conversionError(tok, FloatKind, err)
		}
		return Float(f), nil
	case token.LBRACK:
		return p.nested(p.parseArray)
	case token.LBRACE:
		return p.nested(p.parseDict)
	default:
		return nil, p.unexpected("unexpected token", tok)
	}
}

func (p *parser) nested(parse func() (*Value, error)) (*Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		tok := p.tokens[p.pos-1]
		return nil, p.unexpected(fmt.Sprintf("maximum nesting depth of %d exceeded", p.maxDepth), tok)
	}
	return parse()
}

// parseArray is entered after '[' has been consumed.
func (p *parser) parseArray() (*Value, error) {
	arr := Array()
	for i := 0; ; i++ {
		tok, err := p.peek("']'")
		if err != nil {
			return nil, err
		}
		if tok.Type == token.RBRACK {
			p.pos++
			return arr, nil
		}
		if i > 0 {
			p.pos++
			if tok.Type != token.COMMA {
				return nil, p.unexpected("expected ',' after array element", tok)
			}
		}
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.items = append(arr.items, elem)
	}
}

// parseDict is entered after '{' has been consumed. A repeated key replaces
// the earlier member.
func (p *parser) parseDict() (*Value, error) {
	obj := Object()
	for i := 0; ; i++ {
		tok, err := p.peek("'}'")
		if err != nil {
			return nil, err
		}
		if tok.Type == token.RBRACE {
			p.pos++
			return obj, nil
		}
		if i > 0 {
			p.pos++
			if tok.Type != token.COMMA {
				return nil, p.unexpected("expected ',' after object member", tok)
			}
		}

		keyTok, err := p.advance("a string key")
		if err != nil {
			return nil, err
		}
		if keyTok.Type != token.STRING {
			return nil, p.unexpected("expected string as object key", keyTok)
		}

		colon, err := p.advance("':'")
		if err != nil {
			return nil, err
		}
		if colon.Type != token.COLON {
			return nil, p.unexpected("expected ':' after object key", colon)
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.fields[keyTok.Literal] = val
	}
}

func conversionError(tok token.Token, kind Kind, err error) error {
	if numErr, ok := err.(*strconv.NumError); ok {
		err = numErr.Err
	}
	return &serrors.ConversionError{
		Literal: tok.Literal,
		Kind:    kind.String(),
		Line:    tok.Line,
		Column:  tok.Column,
		Err:     err,
	}
}
