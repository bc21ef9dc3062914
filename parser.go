// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package parsr

import (
	"fmt"

	"github.com/rwxrob/parsr/input"
)

// ParseError is what a Parser returns on failure, distinguishing a
// read-level failure (EOF or invalid UTF-8, surfaced straight from
// the Input) from a user-defined grammar error E. Exactly one of Read
// or User is set.
type ParseError[E any] struct {
	Read error
	User *E
}

func (e *ParseError[E]) Error() string {
	if e.User != nil {
		return fmt.Sprintf("parsr: %v", *e.User)
	}
	return fmt.Sprintf("parsr: %v", e.Read)
}

// ReadErr wraps a read-level failure (typically input.ErrEOF or an
// *input.InvalidUTF8Error) as a ParseError.
func ReadErr[E any](err error) *ParseError[E] { return &ParseError[E]{Read: err} }

// UserErr wraps a grammar-level failure as a ParseError.
func UserErr[E any](err E) *ParseError[E] { return &ParseError[E]{User: &err} }

// Parser is a single grammar rule: given an Input, produce an O or
// fail with a ParseError[E]. Implementations that return slices or
// strings derived from input.BufferedView must not retain them past
// the Input's next mutating call; prefer entry handles (see input.Entry)
// or copy into an owned string.
type Parser[O, E any] interface {
	Parse(in input.Input) (O, *ParseError[E])
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc[O, E any] func(in input.Input) (O, *ParseError[E])

// Parse calls f.
func (f ParserFunc[O, E]) Parse(in input.Input) (O, *ParseError[E]) { return f(in) }
