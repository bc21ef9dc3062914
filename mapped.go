// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package parsr

import "github.com/rwxrob/parsr/input"

// Mapped wraps a Parser, transforming its successful output with
// Func. A read-level or user-level failure from the wrapped Parser
// passes through untouched.
type Mapped[P, O, E any] struct {
	Parser Parser[P, E]
	Func   func(P) O
}

// Parse runs m.Parser and, on success, applies m.Func.
func (m Mapped[P, O, E]) Parse(in input.Input) (O, *ParseError[E]) {
	out, err := m.Parser.Parse(in)
	if err != nil {
		var zero O
		return zero, err
	}
	return m.Func(out), nil
}

// MappedFunc constructs a Mapped from a Parser and a mapping
// function, the single-call-site convenience form of Mapped.
func MappedFunc[P, O, E any](p Parser[P, E], f func(P) O) Mapped[P, O, E] {
	return Mapped[P, O, E]{Parser: p, Func: f}
}
