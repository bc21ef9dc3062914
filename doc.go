// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

/*
Package parsr ties together the input and token packages into the
contracts a hand-written parser implements: Parser for a single
grammar rule, Trim for skipping uninteresting runes between rules, and
ParseIter/ParseIterMut for driving a Parser repeatedly over an Input
until it's exhausted.

Concrete grammars, lexers, and AST construction are not this module's
job; it only supplies the scanning substrate (input), the token
re-ordering engine (token), string interning (interner), and the glue
a parser built on top of those would otherwise have to write by hand.
*/
package parsr
