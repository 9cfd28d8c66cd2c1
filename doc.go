// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsonlex implements a lexical analyzer for JSON.
//
// # Tokenizing
//
// The Lexer type splits a complete JSON text into a slice of tokens, ending
// with a single EOF token. Construct a lexer for the input and call its
// Tokenize method:
//
//	toks, err := jsonlex.NewLexer(input).Tokenize()
//	if err != nil {
//	   log.Fatalf("Tokenize failed: %v", err)
//	}
//	for _, tok := range toks {
//	   log.Printf("Token: %v", tok)
//	}
//
// Each Token has a Type and a Literal. The literal of a string token is the
// text between its quotation marks, without escape sequences decoded. A string
// ends at the first following quotation mark, even if a backslash precedes it.
// The Value method converts a token to a Go value (float64, bool, string, or
// nil for null).
//
// The lexer does not check the structure of its input: "}{" is a perfectly
// good sequence of two tokens.
//
// # Errors
//
// By default the lexer is strict, and stops at the first malformed input with
// an error of concrete type *jsonlex.SyntaxError. The error wraps one of
// ErrIncompleteKeyword, ErrKeywordMismatch, ErrUnterminatedString,
// ErrMalformedNumber, ErrUnterminatedComment, or ErrUnrecognizedChar:
//
//	if errors.Is(err, jsonlex.ErrUnterminatedString) {
//	   // ...
//	}
//
// A lenient lexer reports malformed input as tokens of type Illegal instead,
// and carries on scanning. Tokenize never fails in lenient mode:
//
//	lx := jsonlex.NewLexer(input)
//	lx.Recover(true)
//	toks, _ := lx.Tokenize()
//
// A number that is a bare minus sign, or that has a decimal point with no
// digits following it, is malformed in both modes.
//
// # Comments
//
// Call AllowComments(true) to accept C++ style comments, a common extension
// of JSON. Line comments (// ...) and block comments (/* ... */) are discarded
// like white space, wherever they occur. A block comment with no closing "*/"
// is malformed.
package jsonlex
