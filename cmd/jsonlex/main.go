// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jsonlex prints the lexical tokens of JSON inputs.
//
// Usage:
//
//	jsonlex [flags] [file ...]
//
// With no file arguments, or with the argument "-", jsonlex reads standard
// input. Each input is tokenized separately and printed as a table giving
// the index, type, and literal of each token, and its value if -values is
// set. In strict mode (the default) a malformed input is reported and
// jsonlex exits with status 1 once all inputs have been processed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/creachadair/jsonlex"
	"github.com/golang/glog"
)

var (
	lenient  = flag.Bool("lenient", false, "Report malformed input as ILLEGAL tokens")
	comments = flag.Bool("comments", false, "Discard // and /* */ comments")
	values   = flag.Bool("values", false, "Print the evaluated value of each token")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file ...]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := options{Lenient: *lenient, Comments: *comments, Values: *values}
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	var failed bool
	for _, name := range args {
		if err := lexFile(os.Stdout, name, opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			failed = true
		}
	}
	glog.Flush()
	if failed {
		os.Exit(1)
	}
}

// options control how inputs are tokenized and printed.
type options struct {
	Lenient  bool // report malformed input as Illegal tokens
	Comments bool // discard comments
	Values   bool // include evaluated values in the output
}

func lexFile(w io.Writer, name string, opts options) error {
	if name == "-" {
		return lex(w, os.Stdin, opts)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return lex(w, f, opts)
}

// lex reads all of r, tokenizes it, and writes a table of the tokens to w.
func lex(w io.Writer, r io.Reader, opts options) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	lx := jsonlex.NewLexer(string(data))
	lx.Recover(opts.Lenient)
	lx.AllowComments(opts.Comments)
	toks, err := lx.Tokenize()
	if err != nil {
		var serr *jsonlex.SyntaxError
		if errors.As(err, &serr) {
			glog.V(1).Infof("Tokenize failed at %s: %v", serr.Location, errors.Unwrap(serr))
		}
		return err
	}
	glog.V(1).Infof("Tokenize produced %d tokens from %d bytes", len(toks), len(data))

	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	for i, tok := range toks {
		fmt.Fprintf(tw, "[%2d]\t%v\t%s", i, tok.Type(), jsonlex.Quote(tok.Literal()))
		if opts.Values {
			v, ok := tok.Value()
			if ok {
				fmt.Fprintf(tw, "\t%v\t%T", v, v)
			} else {
				fmt.Fprint(tw, "\t-\t-")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
