// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonlex

import (
	"errors"
	"fmt"

	"github.com/creachadair/mds/mstr"
)

// Errors reported by the lexer in strict mode. Every *SyntaxError wraps
// exactly one of these, so callers can distinguish them with errors.Is.
var (
	// ErrIncompleteKeyword means the input ended before a keyword that began
	// with "t", "f", or "n" could be completed.
	ErrIncompleteKeyword = errors.New("incomplete keyword")

	// ErrKeywordMismatch means a word beginning with "t", "f", or "n" was not
	// exactly true, false, or null.
	ErrKeywordMismatch = errors.New("keyword mismatch")

	// ErrUnterminatedString means there was no closing quotation mark.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrMalformedNumber means a number was a bare sign, or had a decimal
	// point with no digits after it.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrUnterminatedComment means a block comment had no closing "*/".
	// It is only reported when comments are enabled.
	ErrUnterminatedComment = errors.New("unterminated comment")

	// ErrUnrecognizedChar means a character cannot begin any token.
	ErrUnrecognizedChar = errors.New("unrecognized character")
)

// maxContext is the longest context snippet included in an error message.
const maxContext = 24

// SyntaxError is the concrete type of errors reported by the lexer.
type SyntaxError struct {
	Span     Span    // the offending input; Span.Pos is the error offset
	Location LineCol // the line and column of Span.Pos
	Context  string  // the unconsumed input from Span.Pos to the end
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	ctx := mstr.Trunc(e.Context, maxContext)
	if len(ctx) < len(e.Context) {
		ctx += "..."
	}
	return fmt.Sprintf("at %s (offset %d): %s; context %q", e.Location, e.Span.Pos, e.Message, ctx)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// newSyntaxError constructs a SyntaxError of the given kind for the span
// [pos, end) of text.
func newSyntaxError(text string, kind error, pos, end int, msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Span:     Span{Pos: pos, End: end},
		Location: lineColOf(text, pos),
		Context:  text[pos:],
		Message:  fmt.Sprintf(msg, args...),
		err:      kind,
	}
}
