// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonlex

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/golang/glog"
	"go4.org/mem"
)

// A Lexer splits a JSON text into a sequence of tokens.
//
// By default a Lexer is strict: the first malformed construct stops the scan
// and is reported as a *SyntaxError. Call Recover(true) to make it lenient,
// so that malformed input is reported as Illegal tokens instead.
//
// A Lexer is not safe for concurrent use by multiple goroutines, but distinct
// lexers may be used concurrently.
type Lexer struct {
	input    string // the text being scanned
	recover  bool   // report Illegal tokens rather than errors
	comments bool   // allow comments

	pos int // offset of the current byte in input
}

// NewLexer constructs a new lexer for the given input text.
func NewLexer(input string) *Lexer { return &Lexer{input: input} }

// Recover configures the lexer to report malformed input as Illegal tokens
// and continue (true), or to stop and report a *SyntaxError (false).
func (l *Lexer) Recover(ok bool) { l.recover = ok }

// AllowComments configures the lexer to accept (true) or reject (false)
// comments. Comments are a non-standard extension of the JSON spec. If
// enabled, C++ style block comments (/* ... */) and line comments (// ...)
// are discarded like white space.
func (l *Lexer) AllowComments(ok bool) { l.comments = ok }

// Tokenize scans the complete input and returns its tokens in order. The last
// token is always EOF.
//
// In strict mode, Tokenize reports an error of concrete type *SyntaxError
// for malformed input, and no tokens. In lenient mode it never fails.
// Each call scans the input from the beginning.
func (l *Lexer) Tokenize() ([]Token, error) {
	l.pos = 0

	var toks []Token
	for l.pos < len(l.input) {
		ch := l.input[l.pos]

		// Discard whitespace.
		if isSpace(ch) {
			l.pos++
			continue
		}

		// Discard comments, if enabled.
		if ch == '/' && l.comments && l.skipComment() {
			continue
		}

		tok, err := l.next(ch)
		if err != nil {
			return nil, err
		}
		glog.V(2).Infof("jsonlex: %v ending at offset %d", tok, l.pos)
		toks = append(toks, tok)

		// Each scanner leaves pos on the last byte of its token.
		l.pos++
	}
	return append(toks, Token{typ: EOF, lit: eofLiteral}), nil
}

// next scans a single token beginning with ch at the current offset.
func (l *Lexer) next(ch byte) (Token, error) {
	if t, ok := selfDelim(ch); ok {
		return Token{typ: t, lit: l.input[l.pos : l.pos+1]}, nil
	}
	switch {
	case ch == 't':
		return l.scanKeyword(True, "true")
	case ch == 'f':
		return l.scanKeyword(False, "false")
	case ch == 'n':
		return l.scanKeyword(Null, "null")
	case ch == '"':
		return l.scanString()
	case isNumStart(ch):
		return l.scanNumber()
	case ch == '/' && l.comments && strings.HasPrefix(l.input[l.pos:], "/*"):
		// skipComment found no end to this block comment.
		return l.fail(ErrUnterminatedComment, l.pos, len(l.input), "unterminated block comment")
	}
	_, n := utf8.DecodeRuneInString(l.input[l.pos:])
	return l.fail(ErrUnrecognizedChar, l.pos, l.pos+n, "unexpected %q", l.input[l.pos:l.pos+n])
}

// scanKeyword scans the constant word, whose type is t.
// On success pos is left on the last byte of the word.
func (l *Lexer) scanKeyword(t Type, word string) (Token, error) {
	start := l.pos
	if start+len(word)-1 >= len(l.input) {
		return l.fail(ErrIncompleteKeyword, start, l.nameEnd(start),
			"incomplete keyword %q", word)
	}
	if !mem.HasPrefix(mem.S(l.input[start:]), mem.S(word)) {
		return l.fail(ErrKeywordMismatch, start, l.nameEnd(start),
			"found %q, not followed by %q", word[:1], word[1:])
	}
	l.pos = start + len(word) - 1
	return Token{typ: t, lit: word}, nil
}

// scanString scans a string whose opening quote is at pos. The string ends
// at the next quotation mark, whether or not it is preceded by a backslash.
// On success pos is left on the closing quote.
func (l *Lexer) scanString() (Token, error) {
	open := l.pos
	i := mem.IndexByte(mem.S(l.input[open+1:]), '"')
	if i < 0 {
		return l.fail(ErrUnterminatedString, open, len(l.input), "unterminated string literal")
	}
	end := open + 1 + i
	l.pos = end
	return Token{typ: String, lit: l.input[open+1 : end]}, nil
}

// scanNumber scans a number starting at pos: an optional minus sign, digits,
// an optional fraction, and an optional exponent. On success pos is left on
// the last byte of the number.
func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	p := start
	if l.input[p] == '-' {
		p++
	}
	p = l.skipDigits(p)

	// If a decimal point follows, consume a fractional part.
	if p < len(l.input) && l.input[p] == '.' {
		p = l.skipDigits(p + 1)
	}

	// If an exponent follows, consume it.
	if p < len(l.input) && (l.input[p] == 'e' || l.input[p] == 'E') {
		p++
		if p < len(l.input) && (l.input[p] == '+' || l.input[p] == '-') {
			p++
		}
		p = l.skipDigits(p)
	}

	lit := l.input[start:p]
	if lit == "-" {
		return l.fail(ErrMalformedNumber, start, p, "sign without digits")
	} else if strings.HasSuffix(lit, ".") {
		return l.fail(ErrMalformedNumber, start, p, "no digits after decimal point in %q", lit)
	}
	l.pos = p - 1
	return Token{typ: Number, lit: lit}, nil
}

// fail reports malformed input of the given kind spanning [pos, end).
//
// In strict mode fail returns a *SyntaxError. In lenient mode it returns an
// Illegal token for the span, and leaves l.pos on the last byte of the span.
func (l *Lexer) fail(kind error, pos, end int, msg string, args ...any) (Token, error) {
	if l.recover {
		glog.V(1).Infof("jsonlex: offset %d: %v: %s", pos, kind, fmt.Sprintf(msg, args...))
		l.pos = end - 1
		return Token{typ: Illegal, lit: l.input[pos:end]}, nil
	}
	return Token{}, newSyntaxError(l.input, kind, pos, end, msg, args...)
}

// skipDigits returns the offset of the first non-digit at or after p.
func (l *Lexer) skipDigits(p int) int {
	for p < len(l.input) && isDigit(l.input[p]) {
		p++
	}
	return p
}

// nameEnd returns the offset just past the run of lower-case letters that
// starts at p. The result is always greater than p.
func (l *Lexer) nameEnd(p int) int {
	end := p + 1
	for end < len(l.input) && isNameByte(l.input[end]) {
		end++
	}
	return end
}

// skipComment reports whether a complete comment begins at pos, and if so
// advances pos just past it. A line comment includes its terminating newline,
// if present.
func (l *Lexer) skipComment() bool {
	rest := mem.S(l.input[l.pos:])
	switch {
	case mem.HasPrefix(rest, mem.S("//")):
		if i := mem.IndexByte(rest, '\n'); i >= 0 {
			l.pos += i + 1
		} else {
			l.pos = len(l.input)
		}
		return true
	case mem.HasPrefix(rest, mem.S("/*")):
		if i := mem.Index(rest.SliceFrom(2), mem.S("*/")); i >= 0 {
			l.pos += 2 + i + 2
			return true
		}
	}
	return false
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

var self = [...]Type{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Type, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Illegal, false
}

// Tokenize scans input in strict mode. It is shorthand for
// NewLexer(input).Tokenize().
func Tokenize(input string) ([]Token, error) { return NewLexer(input).Tokenize() }

// TokenizeLenient scans input in lenient mode, reporting malformed input as
// Illegal tokens. The result always ends with an EOF token.
func TokenizeLenient(input string) []Token {
	l := NewLexer(input)
	l.Recover(true)
	toks, err := l.Tokenize()
	if err != nil {
		panic(fmt.Sprintf("jsonlex: lenient scan failed: %v", err)) // unreachable
	}
	return toks
}

// MustTokenize scans input in strict mode, and panics if it is malformed.
// It is intended for use with inputs known to be valid.
func MustTokenize(input string) []Token {
	toks, err := Tokenize(input)
	if err != nil {
		panic(fmt.Sprintf("jsonlex: %v", err))
	}
	return toks
}
