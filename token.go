// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonlex

import (
	"errors"
	"strconv"

	"github.com/golang/glog"
)

// Type is the category of a lexical token in the JSON grammar.
type Type byte

// Constants defining the valid Type values.
const (
	Illegal Type = iota // malformed or unrecognized input (lenient mode only)
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Comma               // comma ","
	String              // quoted string
	Number              // number, with optional fraction and exponent
	True                // constant: true
	False               // constant: false
	Null                // constant: null
	EOF                 // end of input
)

var typeStr = [...]string{
	Illegal: "ILLEGAL",
	LBrace:  "LEFT_BRACE",
	RBrace:  "RIGHT_BRACE",
	LSquare: "LEFT_BRACKET",
	RSquare: "RIGHT_BRACKET",
	Colon:   "COLON",
	Comma:   "COMMA",
	String:  "STRING",
	Number:  "NUMBER",
	True:    "TRUE",
	False:   "FALSE",
	Null:    "NULL",
	EOF:     "EOF",
}

func (t Type) String() string {
	v := int(t)
	if v >= len(typeStr) {
		return typeStr[Illegal]
	}
	return typeStr[v]
}

// eofLiteral is the literal text of the EOF token.
const eofLiteral = "EOF"

// A Token is a single lexical unit: a type and the source text it was
// derived from. Tokens are values; once constructed they do not change.
type Token struct {
	typ Type
	lit string
}

// NewToken constructs a token of type t with the given literal text.
func NewToken(t Type, literal string) Token { return Token{typ: t, lit: literal} }

// Type returns the type of the token.
func (t Token) Type() Type { return t.typ }

// Literal returns the literal text of the token. For strings this is the
// text between the quotation marks, without escapes undone. For EOF it is
// the fixed string "EOF".
func (t Token) Literal() string { return t.lit }

// String renders the token as TYPE:"literal".
func (t Token) String() string { return t.typ.String() + ":" + Quote(t.lit) }

// Source returns JSON source text that scans to a token equal to t.
// This holds for every type except Illegal, whose literal need not be
// consistent.
func (t Token) Source() string {
	switch t.typ {
	case String:
		return `"` + t.lit + `"`
	case EOF:
		return ""
	}
	return t.lit
}

// Value reports the semantic value of the token, and whether it has one.
//
//	Type           | Value
//	-------------- | --------------------------------
//	Number         | float64
//	True, False    | bool
//	Null           | nil (ok is true)
//	String         | string, the undecoded literal
//	anything else  | none (ok is false)
//
// A Number whose literal does not parse has no value; the failure is
// logged but not otherwise reported.
func (t Token) Value() (_ any, ok bool) {
	switch t.typ {
	case Number:
		v, err := strconv.ParseFloat(t.lit, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			glog.Warningf("jsonlex: invalid number literal %q: %v", t.lit, err)
			return nil, false
		}
		return v, true
	case True:
		return true, true
	case False:
		return false, true
	case Null:
		return nil, true
	case String:
		return t.lit, true
	}
	return nil, false
}
