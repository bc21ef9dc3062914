// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

/*
Package input implements a streaming, UTF-8-safe buffered reader meant
as the common substrate underneath a parser. Unlike a scanner that
reads the whole source into memory up front, an Input keeps a bounded
window of bytes live at once and slides that window forward as a
parser consumes runes, refilling from an io.Reader only when the
window runs dry.

Four cursors describe the window at any moment:

  - index tracks the absolute byte offset the cursor has reached
    since the stream began, surviving buffer compaction.
  - cursor is the byte offset of the next unconsumed byte within the
    live buffer.
  - charBoundary is the byte offset up to which the buffer has been
    validated as complete UTF-8; bytes between charBoundary and
    filled may be a truncated multi-byte rune still waiting on more
    data from the reader.
  - filled is the byte offset up to which the buffer actually holds
    data read from the source.

BufferAtLeast is the one place all four cursors move together: it
grows filled by reading more bytes, compacts the buffer toward offset
zero when the requested window would otherwise overflow the fixed
capacity, and advances charBoundary only as far as validated runes
allow.
*/
package input

import (
	"errors"
	"fmt"

	"github.com/rwxrob/to"
)

// ErrEOF reports that the underlying source is exhausted and cannot
// satisfy a request for more data. A StreamedInput that returns it is
// latched shut: every subsequent call that would need to read more
// data also returns ErrEOF, even if some of the requested window was in
// fact buffered. A StringView latches only once nothing at all is left
// past the cursor; a request for more than remains of a non-empty view
// returns ErrEOF without latching.
var ErrEOF = errors.New("input: EOF")

// InvalidUTF8Error reports a byte sequence in the source that is not
// valid UTF-8, at the absolute byte Index where the invalid sequence
// begins.
type InvalidUTF8Error struct {
	Index int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("input: invalid utf8 at index %v", to.Human(e.Index))
}

// Input is the abstract contract a parser scans against. It exposes
// only the operations a predicate-driven scanner needs: a bounded
// lookahead window, predicate scans over that window, and cursor
// advancement. It deliberately has no random access and no backtrack
// beyond whatever the implementation still holds buffered.
type Input interface {
	// Index reports the absolute byte offset reached so far.
	Index() int

	// BufferedView returns the currently buffered, validated-UTF-8
	// window starting at the cursor. Its content is only guaranteed
	// stable until the next call that mutates the cursor or buffer.
	BufferedView() string

	// BufferAtLeast ensures at least n bytes are buffered past the
	// cursor, refilling from the source and validating UTF-8 as
	// needed. It panics if n exceeds the Input's fixed capacity.
	BufferAtLeast(n int) error

	// ReadAtLeast buffers at least n bytes past the cursor and returns
	// the buffered view. It returns an error, discarding any partial
	// view, if fewer than n bytes could ultimately be buffered.
	ReadAtLeast(n int) (string, error)

	// Consume advances index and cursor by n bytes. The caller is
	// responsible for n landing on a rune boundary within the most
	// recently returned view.
	Consume(n int)

	// SetEOF forces the Input into its latched, exhausted state.
	SetEOF()

	// IsEOF reports whether the Input is latched shut.
	IsEOF() bool

	// Peek returns the rune at the cursor without consuming it.
	// StreamedInput first buffers a full utf8.UTFMax bytes, so it
	// reports ErrEOF when fewer than that remain in the source.
	Peek() (rune, error)

	// ConsumeUntil advances the cursor, rebuffering in chunkSize
	// increments, until pred reports true for some rune or the source
	// is exhausted. The matching rune itself is left unconsumed.
	ConsumeUntil(chunkSize int, pred func(rune) bool) error

	// ReadUntil behaves like ConsumeUntil but leaves the cursor where
	// it started, returning the matched prefix instead.
	ReadUntil(chunkSize int, pred func(rune) bool) (string, error)
}
