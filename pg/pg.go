// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

/*
Package pg ("predicate grammar") collects reusable rune predicates of
the func(rune) bool shape that input.ConsumeUntil, input.ReadUntil,
and this module's Trim implementations scan against. It replaces the
original scan.X interpreted-expression DSL (is.I, is.O, is.Y, ...)
with plain predicate functions: this module's Input is buffer-driven
rather than cursor-driven, so a predicate only ever needs to answer
"does this one rune match", not advance a scanner itself.
*/
package pg

import "unicode"

// Whitespace reports whether r is a space, tab, carriage return, or
// line feed, the set the teacher's pg.WS named.
func Whitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// EndOfLine reports whether r is a carriage return or line feed,
// the set the teacher's pg.EndLine named.
func EndOfLine(r rune) bool {
	return r == '\r' || r == '\n'
}

// Graphic reports whether r is a visible, non-whitespace character,
// the same unicode.IsGraphic check the teacher's pg.UGraphic made.
func Graphic(r rune) bool {
	return unicode.IsGraphic(r) && !Whitespace(r)
}

// Not adapts a predicate to its negation, useful for building a
// trimming boundary like pg.Not(pg.Whitespace).
func Not(pred func(rune) bool) func(rune) bool {
	return func(r rune) bool { return !pred(r) }
}

// Any reports whether r matches any of preds.
func Any(preds ...func(rune) bool) func(rune) bool {
	return func(r rune) bool {
		for _, pred := range preds {
			if pred(r) {
				return true
			}
		}
		return false
	}
}
