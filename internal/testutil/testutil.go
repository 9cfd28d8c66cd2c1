// Package testutil defines support code for unit tests.
package testutil

import (
	"github.com/creachadair/jsonlex"
	"github.com/google/go-cmp/cmp"
)

// Tokens is a cmp option that compares jsonlex.Token values by type and
// literal.
var Tokens = cmp.Comparer(func(a, b jsonlex.Token) bool {
	return a.Type() == b.Type() && a.Literal() == b.Literal()
})

// Types returns the types of toks, in order.
func Types(toks []jsonlex.Token) []jsonlex.Type {
	out := make([]jsonlex.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type()
	}
	return out
}

// Strip returns toks without its trailing EOF token, if it has one.
func Strip(toks []jsonlex.Token) []jsonlex.Token {
	if n := len(toks); n != 0 && toks[n-1].Type() == jsonlex.EOF {
		return toks[:n-1]
	}
	return toks
}
