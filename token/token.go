// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

/*
Package token implements a shunting-yard-style precedence engine that
re-orders a linear stream of raw grammar tokens into a postfix-ordered
stream of resolved tokens. It generalizes the classic two-associativity
algorithm to three associativities (Left, Right, ClosedRight) and three
ordering behaviours (Right, SoftLeft, ClosedLeft), which together are
enough to express operators, separators (commas), and bracket pairs
([...], (...), {...}) with a single stack discipline.

See Engine for the driving state machine and ResolvedToken/Ordering for
the two token shapes it consumes.
*/
package token

//go:generate go tool stringer -type=Associativity -output=associativity_string.go

// Associativity governs tie-breaking when a new Precedence token's
// level equals the level already on top of the stack.
type Associativity int

const (
	// Left means a tie pops the stack (operators group left to right,
	// e.g. `a - b - c` is `(a - b) - c`).
	Left Associativity = iota
	// Right means a tie pushes instead of popping (operators group
	// right to left, e.g. `a = b = c` is `a = (b = c)`).
	Right
	// ClosedRight marks an opener that is never popped by precedence
	// comparison at all; only a ClosedLeft ordering, or the final
	// clearing of the stack at the end of the token stream, removes it
	// from the stack.
	ClosedRight
)

//go:generate go tool stringer -type=tokenTag -output=tokentag_string.go

type tokenTag int

const (
	valueTag tokenTag = iota
	precedenceTag
)

// TokenKind is the type tag a ResolvedToken carries: either Value (an
// operand that never reorders) or Precedence (an operator that
// participates in the shunting-yard stack discipline).
type TokenKind struct {
	tag   tokenTag
	Level int8
	Assoc Associativity
}

// Value constructs the TokenKind for an operand.
func Value() TokenKind {
	return TokenKind{tag: valueTag}
}

// Precedence constructs the TokenKind for an operator at the given
// level and associativity.
func Precedence(level int8, assoc Associativity) TokenKind {
	return TokenKind{tag: precedenceTag, Level: level, Assoc: assoc}
}

// IsValue reports whether k is the Value tag.
func (k TokenKind) IsValue() bool { return k.tag == valueTag }

// IsPrecedence reports whether k is the Precedence tag.
func (k TokenKind) IsPrecedence() bool { return k.tag == precedenceTag }

// ResolvedToken is the output token type of the engine: an operand
// (Value) or an operator (Precedence) with a level and associativity.
type ResolvedToken interface {
	Kind() TokenKind
}
