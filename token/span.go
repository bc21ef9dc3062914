// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package token

// Span is a half-open byte-offset pair [start, end) marking the
// region of the original input a token was produced from. Span
// composition across child tokens is the caller's responsibility; the
// engine only ever passes spans through unchanged.
type Span struct {
	Start int
	End   int
}

// To returns the span that begins at s and ends at other, useful when
// composing the span of a reduction from the span of its first and
// last constituent tokens.
func (s Span) To(other Span) Span {
	return Span{Start: s.Start, End: other.End}
}

// Spanned pairs a value with the span of input it was produced from.
type Spanned[T any] struct {
	Inner T
	Span  Span
}

// NewSpanned wraps inner with the given span.
func NewSpanned[T any](inner T, span Span) Spanned[T] {
	return Spanned[T]{Inner: inner, Span: span}
}

// DefaultSpanned wraps inner with the zero-value span. Useful for
// tests and callers that don't yet track source positions.
func DefaultSpanned[T any](inner T) Spanned[T] {
	return Spanned[T]{Inner: inner}
}
