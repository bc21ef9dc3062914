// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package input

import "unicode/utf8"

// StringView is an Input over a string already fully resident in
// memory: no reader, no refilling, the whole string is "filled" from
// construction. It exists for parsers that already hold their source
// as a string (or for tests) and would otherwise have to wrap it in
// a bytes.Reader just to get a StreamedInput.
type StringView struct {
	data   []byte
	index  int
	cursor int
	eof    bool
}

// NewStringView constructs a StringView over s.
func NewStringView(s string) *StringView {
	return &StringView{data: []byte(s)}
}

func (v *StringView) Index() int { return v.index }

func (v *StringView) BufferedView() string {
	return string(v.data[v.cursor:])
}

func (v *StringView) IsEOF() bool { return v.eof }

func (v *StringView) SetEOF() { v.eof = true }

// BufferAtLeast reports whether n bytes remain past the cursor. Only
// a fully exhausted view (nothing at all left to read) latches EOF;
// requesting more than remains of an otherwise non-empty view just
// fails this one call without closing the view off from shorter
// requests later.
func (v *StringView) BufferAtLeast(n int) error {
	if v.eof {
		return ErrEOF
	}
	if v.cursor >= len(v.data) {
		v.eof = true
		return ErrEOF
	}
	if v.cursor+n > len(v.data) {
		return ErrEOF
	}
	return nil
}

func (v *StringView) ReadAtLeast(n int) (string, error) {
	if err := v.BufferAtLeast(n); err != nil {
		return "", err
	}
	return v.BufferedView(), nil
}

func (v *StringView) Consume(n int) {
	v.index += n
	v.cursor += n
}

// Peek decodes the rune at the cursor directly from the resident
// string instead of going through the shared peek() helper: the whole
// view is already buffered, so there's no need to demand a full
// utf8.UTFMax lookahead the way a StreamedInput does, and a view with
// fewer than four bytes left (but at least one full rune) must still
// be able to peek it.
func (v *StringView) Peek() (rune, error) {
	if v.eof {
		return 0, ErrEOF
	}
	if v.cursor >= len(v.data) {
		v.eof = true
		return 0, ErrEOF
	}
	r, _ := utf8.DecodeRune(v.data[v.cursor:])
	return r, nil
}

func (v *StringView) ConsumeUntil(chunkSize int, pred func(rune) bool) error {
	return consumeUntil(v, chunkSize, pred)
}

func (v *StringView) ReadUntil(chunkSize int, pred func(rune) bool) (string, error) {
	return readUntil(v, chunkSize, pred)
}
