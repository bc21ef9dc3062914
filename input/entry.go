// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"strings"
	"unicode/utf8"
)

// CharEntry holds a rune already peeked from an Input, offering it up
// for either Consume or Discard so the cursor is only ever moved
// through an explicit decision, never implicitly by the peek itself.
type CharEntry struct {
	input     Input
	character rune
}

// PeekEntry peeks the next rune from in without consuming it,
// wrapping it in a CharEntry.
func PeekEntry(in Input) (CharEntry, error) {
	r, err := in.Peek()
	if err != nil {
		return CharEntry{}, err
	}
	return CharEntry{input: in, character: r}, nil
}

// Get returns the held rune.
func (e CharEntry) Get() rune { return e.character }

// Consume advances the underlying Input past the held rune.
func (e CharEntry) Consume() { e.input.Consume(utf8.RuneLen(e.character)) }

// Discard leaves the underlying Input untouched.
func (e CharEntry) Discard() {}

// Entry holds a byte span already scanned from an Input, starting at
// the cursor, offering it up for Consume or Discard the same way
// CharEntry does for a single rune.
type Entry struct {
	input Input
	size  int
}

// ReadUntilEntry scans ahead with ReadUntil and wraps the matched
// prefix in an Entry without consuming it.
func ReadUntilEntry(in Input, chunkSize int, pred func(rune) bool) (Entry, error) {
	s, err := in.ReadUntil(chunkSize, pred)
	if err != nil {
		return Entry{}, err
	}
	return Entry{input: in, size: len(s)}, nil
}

// MatchStrEntry succeeds only on an exact byte-for-byte match of s at
// the cursor. On mismatch it reports ok false and leaves the cursor
// exactly where it was.
func MatchStrEntry(in Input, s string) (entry Entry, ok bool, err error) {
	view, err := in.ReadAtLeast(len(s))
	if err != nil {
		return Entry{}, false, err
	}
	if !strings.HasPrefix(view, s) {
		return Entry{}, false, nil
	}
	return Entry{input: in, size: len(s)}, true, nil
}

// Get returns the held span's text.
func (e Entry) Get() string { return e.input.BufferedView()[:e.size] }

// Consume advances the underlying Input past the held span.
func (e Entry) Consume() { e.input.Consume(e.size) }

// Discard leaves the underlying Input untouched.
func (e Entry) Discard() {}
