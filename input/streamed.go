// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// StreamedInput buffers an io.Reader into a fixed-capacity window,
// the Go implementation of this package's core streaming Input. Its
// capacity is set once at construction (NewStreamedInput's n), unlike
// the original Rust const generic this is ported from: nothing in this
// package's contract needs compile-time sizing, only a fixed capacity
// per instance, so n is a plain constructor argument.
type StreamedInput struct {
	reader       io.Reader
	buf          []byte
	index        int
	cursor       int
	charBoundary int
	filled       int
	eof          bool
}

// NewStreamedInput constructs a StreamedInput reading from reader with
// a buffer capacity of n bytes. n bounds every BufferAtLeast request
// this Input will ever accept.
func NewStreamedInput(reader io.Reader, n int) *StreamedInput {
	return &StreamedInput{reader: reader, buf: make([]byte, n)}
}

func (in *StreamedInput) Index() int { return in.index }

func (in *StreamedInput) BufferedView() string {
	return string(in.buf[in.cursor:in.charBoundary])
}

func (in *StreamedInput) IsEOF() bool { return in.eof }

func (in *StreamedInput) SetEOF() { in.eof = true }

// BufferAtLeast ensures at least n bytes are buffered past the
// cursor. When the window would overflow the buffer's capacity, the
// already-consumed prefix is compacted out by shifting the live
// region down to offset zero, the same memmove-and-rebase scheme the
// original Rust buffer_at_least uses (and the reason a returned view
// is only valid until the next mutating call).
func (in *StreamedInput) BufferAtLeast(n int) error {
	if n > len(in.buf) {
		panic(fmt.Sprintf("input: buffer overflow: requested %d, capacity %d", n, len(in.buf)))
	}

	if in.eof {
		return ErrEOF
	}

	if in.cursor+n <= in.filled {
		return nil
	}

	if in.cursor+n > len(in.buf) {
		copy(in.buf, in.buf[in.cursor:in.filled])
		in.charBoundary -= in.cursor
		in.filled -= in.cursor
		in.cursor = 0
	}

	isEmpty := false
	for in.cursor+n > in.filled {
		read, err := in.reader.Read(in.buf[in.filled:])
		if read > 0 {
			in.filled += read
		}
		if read == 0 {
			if err != nil && err != io.EOF {
				return err
			}
			isEmpty = true
			break
		}
	}

	validUpTo, incomplete := validUTF8Prefix(in.buf[in.charBoundary:in.filled])
	switch {
	case incomplete:
		in.charBoundary += validUpTo
	case validUpTo < in.filled-in.charBoundary:
		bufStart := in.index - in.cursor
		return &InvalidUTF8Error{Index: bufStart + in.charBoundary + validUpTo}
	default:
		in.charBoundary = in.filled
	}

	if isEmpty {
		in.eof = true
		return ErrEOF
	}

	return nil
}

func (in *StreamedInput) ReadAtLeast(n int) (string, error) {
	if err := in.BufferAtLeast(n); err != nil {
		return "", err
	}
	return in.BufferedView(), nil
}

func (in *StreamedInput) Consume(n int) {
	in.index += n
	in.cursor += n
}

func (in *StreamedInput) Peek() (rune, error) {
	return peek(in)
}

func (in *StreamedInput) ConsumeUntil(chunkSize int, pred func(rune) bool) error {
	return consumeUntil(in, chunkSize, pred)
}

func (in *StreamedInput) ReadUntil(chunkSize int, pred func(rune) bool) (string, error) {
	return readUntil(in, chunkSize, pred)
}

// peek buffers enough bytes for one full rune and decodes it without
// consuming. StringView has its own Peek instead: its whole source is
// already resident, so it never needs to demand a full utf8.UTFMax
// lookahead the way a reader-backed Input does.
func peek(in Input) (rune, error) {
	s, err := in.ReadAtLeast(utf8.UTFMax)
	if err != nil {
		return 0, err
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// consumeUntil rebuffers in chunkSize increments, advancing the
// cursor forward over every rune that does not satisfy pred, stopping
// with the cursor just before the first one that does.
func consumeUntil(in Input, chunkSize int, pred func(rune) bool) error {
	if in.IsEOF() {
		return ErrEOF
	}

	for {
		err := in.BufferAtLeast(chunkSize)
		eof := errors.Is(err, ErrEOF)
		if err != nil && !eof {
			return err
		}

		view := in.BufferedView()
		for i, r := range view {
			if pred(r) {
				in.Consume(i)
				return nil
			}
		}

		in.Consume(len(view))

		if eof {
			in.SetEOF()
			return ErrEOF
		}
	}
}

// readUntil behaves like consumeUntil but never advances the cursor,
// returning the matched prefix instead.
//
// Unlike consumeUntil, this loop cannot rely on Consume to force
// BufferAtLeast to keep growing the window on a retry (the cursor
// never moves), so it widens its request by chunkSize on every
// iteration rather than repeating the same n.
func readUntil(in Input, chunkSize int, pred func(rune) bool) (string, error) {
	if in.IsEOF() {
		return "", ErrEOF
	}

	need := chunkSize
	for {
		err := in.BufferAtLeast(need)
		eof := errors.Is(err, ErrEOF)
		if err != nil && !eof {
			return "", err
		}

		view := in.BufferedView()
		for i, r := range view {
			if pred(r) {
				return view[:i], nil
			}
		}

		if eof {
			in.SetEOF()
			return "", ErrEOF
		}

		need = len(view) + chunkSize
	}
}
