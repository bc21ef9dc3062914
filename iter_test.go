// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package parsr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwxrob/parsr"
	"github.com/rwxrob/parsr/input"
)

func splitUpTo(pred func(rune) bool) parsr.ParserFunc[string, string] {
	return func(in input.Input) (string, *parsr.ParseError[string]) {
		entry, err := input.ReadUntilEntry(in, 8, pred)
		if err != nil {
			return "", parsr.ReadErr[string](err)
		}
		text := entry.Get()
		entry.Consume()
		return text, nil
	}
}

func TestParseIterSplitsWords(t *testing.T) {
	// A trailing delimiter is required: ReadUntil only ever resolves a
	// match against a rune that satisfies pred, so a final word with no
	// terminator behind it hits plain EOF instead and is dropped.
	in := input.NewStringView("first second third ")
	notSpace := func(r rune) bool { return r == ' ' }

	it, invalid := parsr.NewParseIter[string, string](in, parsr.TrimWhitespace, splitUpTo(notSpace))
	require.Nil(t, invalid)

	var words []string
	for {
		w, err, ok := it.Next()
		if !ok {
			break
		}
		require.NoError(t, err)
		words = append(words, w)
	}

	assert.Equal(t, []string{"first", "second", "third"}, words)
}

func TestParseIterAllRangesOverFunc(t *testing.T) {
	in := input.NewStringView("a b c ")
	notSpace := func(r rune) bool { return r == ' ' }

	it, invalid := parsr.NewParseIter[string, string](in, parsr.TrimWhitespace, splitUpTo(notSpace))
	require.Nil(t, invalid)

	var words []string
	for w, err := range it.All() {
		require.NoError(t, err)
		words = append(words, w)
	}

	assert.Equal(t, []string{"a", "b", "c"}, words)
}

func TestParseIterMutAccumulatesState(t *testing.T) {
	in := input.NewStringView("aa bb ccc ")
	notSpace := func(r rune) bool { return r == ' ' }

	var totalLen int
	it, invalid := parsr.NewParseIterMut(in, parsr.TrimWhitespace, &totalLen,
		func(total *int, in input.Input) (string, *parsr.ParseError[string]) {
			entry, err := input.ReadUntilEntry(in, 8, notSpace)
			if err != nil {
				return "", parsr.ReadErr[string](err)
			}
			text := entry.Get()
			*total += len(text)
			entry.Consume()
			return text, nil
		})
	require.Nil(t, invalid)

	var words []string
	for {
		w, err, ok := it.Next()
		if !ok {
			break
		}
		require.NoError(t, err)
		words = append(words, w)
	}

	assert.Equal(t, []string{"aa", "bb", "ccc"}, words)
	assert.Equal(t, 7, totalLen)
}
