// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package parsr

import (
	"errors"
	"fmt"
	"iter"

	"github.com/rwxrob/parsr/input"
)

// ParseIterError is what ParseIter/ParseIterMut report for a single
// failed step: either the trim or parse step ran into invalid UTF-8,
// or the Parser failed with its own grammar error. A plain EOF ends
// iteration instead of producing an error value.
type ParseIterError[E any] struct {
	InvalidUTF8 *input.InvalidUTF8Error
	User        *E
}

func (e *ParseIterError[E]) Error() string {
	if e.InvalidUTF8 != nil {
		return e.InvalidUTF8.Error()
	}
	return fmt.Sprintf("parsr: %v", *e.User)
}

// advance runs one parse-then-trim step shared by ParseIter and
// ParseIterMut, since the two only differ in how they hold the
// parser, not in the step logic itself.
func advance[O, E any](in input.Input, trimmer Trim, done *bool, parseOnce func() (O, *ParseError[E])) (O, error, bool) {
	var zero O

	if *done || in.IsEOF() {
		return zero, nil, false
	}

	out, perr := parseOnce()
	if perr != nil {
		var u *input.InvalidUTF8Error
		switch {
		case errors.Is(perr.Read, input.ErrEOF):
			*done = true
			return zero, nil, false
		case errors.As(perr.Read, &u):
			return zero, &ParseIterError[E]{InvalidUTF8: u}, true
		case perr.Read != nil:
			*done = true
			return zero, perr.Read, true
		default:
			return zero, &ParseIterError[E]{User: perr.User}, true
		}
	}

	if err := trimmer.Trim(in); err != nil {
		var u *input.InvalidUTF8Error
		if errors.As(err, &u) {
			return zero, &ParseIterError[E]{InvalidUTF8: u}, true
		}
	}

	return out, nil, true
}

// ParseIter repeatedly trims then parses an Input until it reports
// EOF, the Go pull-style counterpart of a one-shot Parser.
type ParseIter[O, E any] struct {
	in      input.Input
	trimmer Trim
	parser  Parser[O, E]
	done    bool
}

// NewParseIter constructs a ParseIter, trimming once up front. It
// fails only if that first trim hits invalid UTF-8.
func NewParseIter[O, E any](in input.Input, trimmer Trim, parser Parser[O, E]) (*ParseIter[O, E], *input.InvalidUTF8Error) {
	var u *input.InvalidUTF8Error
	if err := trimmer.Trim(in); errors.As(err, &u) {
		return nil, u
	}
	return &ParseIter[O, E]{in: in, trimmer: trimmer, parser: parser}, nil
}

// Next runs one parse-then-trim step. The returned bool is false only
// once iteration is over.
func (it *ParseIter[O, E]) Next() (O, error, bool) {
	return advance(it.in, it.trimmer, &it.done, func() (O, *ParseError[E]) {
		return it.parser.Parse(it.in)
	})
}

// All adapts Next to Go's range-over-func form.
func (it *ParseIter[O, E]) All() iter.Seq2[O, error] {
	return func(yield func(O, error) bool) {
		for {
			out, err, ok := it.Next()
			if !ok {
				return
			}
			if !yield(out, err) {
				return
			}
		}
	}
}

// ParseIterMut is like ParseIter, but drives a *P directly through a
// caller-supplied parse function instead of boxing it behind the
// Parser interface. It exists for a parser that accumulates state
// across iterations (a running count, a partial tree) without
// needing to be copied on every step.
type ParseIterMut[P, O, E any] struct {
	in      input.Input
	trimmer Trim
	parser  *P
	parse   func(*P, input.Input) (O, *ParseError[E])
	done    bool
}

// NewParseIterMut constructs a ParseIterMut over parser, trimming
// once up front the same way NewParseIter does.
func NewParseIterMut[P, O, E any](
	in input.Input,
	trimmer Trim,
	parser *P,
	parse func(*P, input.Input) (O, *ParseError[E]),
) (*ParseIterMut[P, O, E], *input.InvalidUTF8Error) {
	var u *input.InvalidUTF8Error
	if err := trimmer.Trim(in); errors.As(err, &u) {
		return nil, u
	}
	return &ParseIterMut[P, O, E]{in: in, trimmer: trimmer, parser: parser, parse: parse}, nil
}

// Next runs one parse-then-trim step against the held *P.
func (it *ParseIterMut[P, O, E]) Next() (O, error, bool) {
	return advance(it.in, it.trimmer, &it.done, func() (O, *ParseError[E]) {
		return it.parse(it.parser, it.in)
	})
}

// All adapts Next to Go's range-over-func form.
func (it *ParseIterMut[P, O, E]) All() iter.Seq2[O, error] {
	return func(yield func(O, error) bool) {
		for {
			out, err, ok := it.Next()
			if !ok {
				return
			}
			if !yield(out, err) {
				return
			}
		}
	}
}
