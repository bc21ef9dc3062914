// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package parsr

import (
	"github.com/rwxrob/parsr/input"
	"github.com/rwxrob/parsr/pg"
)

// Trim consumes uninteresting runes from the front of an Input,
// typically run between Parser calls in a ParseIter.
type Trim interface {
	Trim(in input.Input) error
}

// TrimFunc adapts a plain function to the Trim interface.
type TrimFunc func(in input.Input) error

// Trim calls f.
func (f TrimFunc) Trim(in input.Input) error { return f(in) }

// NopTrim trims nothing, the Go equivalent of the original's Trim
// impl for ().
type NopTrim struct{}

// Trim is a no-op.
func (NopTrim) Trim(input.Input) error { return nil }

// TrimUntil consumes runes from in until Pred reports true, in
// chunkSize byte increments.
type TrimUntil struct {
	Pred      func(rune) bool
	ChunkSize int
}

// Trim consumes until t.Pred matches, defaulting ChunkSize to 8.
func (t TrimUntil) Trim(in input.Input) error {
	chunk := t.ChunkSize
	if chunk == 0 {
		chunk = 8
	}
	return in.ConsumeUntil(chunk, t.Pred)
}

// TrimWhitespace consumes leading whitespace, matching the original's
// TrimWhitespace built on consume_until(!is_whitespace).
var TrimWhitespace Trim = TrimUntil{Pred: pg.Not(pg.Whitespace)}
