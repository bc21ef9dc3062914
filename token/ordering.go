// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package token

//go:generate go tool stringer -type=orderingTag -output=orderingtag_string.go

type orderingTag int

const (
	rightTag orderingTag = iota
	softLeftTag
	closedLeftTag
)

// OrderingKind is the behaviour tag an Ordering carries.
type OrderingKind struct {
	tag    orderingTag
	Level  int8
	Closed bool
}

// RightOrdering constructs a right-leaning delimiter ordering at the
// given level. closed marks it as able to be paired with a matching
// ClosedLeft (e.g. the opening `[` of a list literal); an unclosed
// Right ordering is a plain right-associative structural token with no
// opener/closer pairing (e.g. `let`'s trailing expression boundary).
func RightOrdering(level int8, closed bool) OrderingKind {
	return OrderingKind{tag: rightTag, Level: level, Closed: closed}
}

// SoftLeftOrdering constructs an internal-separator ordering (e.g. a
// comma) that never itself reaches the output.
func SoftLeftOrdering(level int8) OrderingKind {
	return OrderingKind{tag: softLeftTag, Level: level}
}

// ClosedLeftOrdering constructs a hard closer (e.g. `]`) that unwinds
// the stack until it finds its matching opener.
func ClosedLeftOrdering() OrderingKind {
	return OrderingKind{tag: closedLeftTag}
}

// IsRight, IsSoftLeft, and IsClosedLeft report the ordering's tag.
func (o OrderingKind) IsRight() bool      { return o.tag == rightTag }
func (o OrderingKind) IsSoftLeft() bool   { return o.tag == softLeftTag }
func (o OrderingKind) IsClosedLeft() bool { return o.tag == closedLeftTag }

// Ordering is a structural token participating in bracket-matching and
// separator handling.
type Ordering interface {
	Behaviour() OrderingKind
}
