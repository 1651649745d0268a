package lexer

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	serrors "github.com/KimNorgaard/go-sjson/errors"
	"github.com/KimNorgaard/go-sjson/internal/token"
)

// Option configures a Lexer.
type Option func(*Lexer)

// NaiveComments makes the lexer cut every line at its first "//", even when
// the marker sits inside a string literal. A string such as "http://x" is then
// truncated and reported as unterminated.
func NaiveComments() Option {
	return func(l *Lexer) {
		l.naiveComments = true
	}
}

// Lexer holds the state for tokenizing sjson source. The source is consumed
// one line at a time.
type Lexer struct {
	r             *bufio.Reader
	naiveComments bool
	line          int
	tokens        []token.Token
}

// New creates and returns a new Lexer.
func New(r io.Reader, opts ...Option) *Lexer {
	l := &Lexer{r: bufio.NewReader(r)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans src and returns its full token sequence.
func Tokenize(src []byte, opts ...Option) ([]token.Token, error) {
	return New(bytes.NewReader(src), opts...).Tokenize()
}

// Tokenize reads the whole input and returns its tokens. The first scan error
// aborts tokenizing, no partial sequence is returned.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	for {
		line, err := l.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &serrors.FileError{Op: "read", Path: "input", Err: err}
		}
		if len(line) > 0 {
			l.line++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if scanErr := l.scanLine(l.stripComment(line)); scanErr != nil {
				return nil, scanErr
			}
		}
		if err == io.EOF {
			return l.tokens, nil
		}
	}
}

// stripComment cuts line at the start of a "//" comment.
func (l *Lexer) stripComment(line string) string {
	if l.naiveComments {
		if i := strings.Index(line, "//"); i >= 0 {
			return line[:i]
		}
		return line
	}
	inString := false
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"':
			inString = !inString
		case !inString && line[i] == '/' && i+1 < len(line) && line[i+1] == '/':
			return line[:i]
		}
	}
	return line
}

func (l *Lexer) scanLine(src string) error {
	s := &lineScanner{src: src, line: l.line}
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if isSpace(ch) {
			s.pos++
			continue
		}
		var (
			tok token.Token
			err error
		)
		switch {
		case ch == '"':
			tok, err = s.scanString()
		case ch == 't' || ch == 'f':
			tok, err = s.scanKeyword("boolean", "true", "false")
		case ch == 'n':
			tok, err = s.scanKeyword("null", "null")
		case isDigit(ch) || ch == '+' || ch == '-':
			tok, err = s.scanNumber()
		default:
			typ, ok := token.Delimiter(ch)
			if !ok {
				return s.errorf("unexpected character", string(ch), s.pos)
			}
			tok = s.token(typ, s.pos, s.pos+1)
			s.pos++
		}
		if err != nil {
			return err
		}
		l.tokens = append(l.tokens, tok)
	}
	return nil
}

type lineScanner struct {
	src  string
	pos  int
	line int
}

func (s *lineScanner) token(typ token.Type, start, end int) token.Token {
	return token.Token{Type: typ, Literal: s.src[start:end], Line: s.line, Column: start + 1}
}

func (s *lineScanner) errorf(msg, literal string, at int) *serrors.ScanError {
	return &serrors.ScanError{Message: msg, Literal: literal, Line: s.line, Column: at + 1}
}

// run returns the text from start up to the next space, delimiter or quote.
func (s *lineScanner) run(start int) string {
	end := start
	for end < len(s.src) {
		ch := s.src[end]
		if _, ok := token.Delimiter(ch); ok || isSpace(ch) || (ch == '"' && end > start) {
			break
		}
		end++
	}
	return s.src[start:end]
}

func (s *lineScanner) scanString() (token.Token, error) {
	start := s.pos
	end := strings.IndexByte(s.src[start+1:], '"')
	if end < 0 {
		return token.Token{}, s.errorf("unterminated string", s.src[start:], start)
	}
	end += start + 1
	tok := token.Token{Type: token.STRING, Literal: s.src[start+1 : end], Line: s.line, Column: start + 1}
	s.pos = end + 1
	return tok, nil
}

func (s *lineScanner) scanKeyword(what string, words ...string) (token.Token, error) {
	for _, word := range words {
		if strings.HasPrefix(s.src[s.pos:], word) {
			typ, _ := token.LookupKeyword(word)
			tok := s.token(typ, s.pos, s.pos+len(word))
			s.pos += len(word)
			return tok, nil
		}
	}
	return token.Token{}, s.errorf("malformed "+what+" literal", s.run(s.pos), s.pos)
}

// scanNumber scans an integer or number literal in a single forward pass.
func (s *lineScanner) scanNumber() (token.Token, error) {
	start := s.pos
	var sawDot, sawExp, mantissaDigits, expDigits bool
	malformed := func() (token.Token, error) {
		return token.Token{}, s.errorf("malformed number", s.run(start), start)
	}
loop:
	for ; s.pos < len(s.src); s.pos++ {
		ch := s.src[s.pos]
		switch {
		case isDigit(ch):
			if sawExp {
				expDigits = true
			} else {
				mantissaDigits = true
			}
		case ch == '.':
			if sawDot || sawExp {
				return malformed()
			}
			sawDot = true
		case ch == 'e' || ch == 'E':
			if sawExp || !mantissaDigits {
				return malformed()
			}
			sawExp = true
		case ch == '+' || ch == '-':
			if s.pos > start && s.src[s.pos-1] != 'e' && s.src[s.pos-1] != 'E' {
				return malformed()
			}
		default:
			break loop
		}
	}
	if !mantissaDigits || (sawExp && !expDigits) {
		return malformed()
	}
	typ := token.INT
	if sawDot || sawExp {
		typ = token.NUMBER
	}
	return s.token(typ, start, s.pos), nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
