// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package parsr

import (
	"fmt"

	"github.com/rwxrob/parsr/token"
)

// PreviewWindow is the default number of bytes of upcoming context
// Preview renders after a span, the same role the teacher's
// PointerView package variable played.
var PreviewWindow = 10

// Preview renders span's matched text against the byte range it
// covers in text, plus PreviewWindow bytes of whatever follows, for
// use in diagnostic messages. It is the Go-idiomatic descendant of
// the teacher's Pointer.String: that type pinned a rune and its
// single-rune width to a *[]byte; this one takes the fuller (start,
// end) Span this module threads everywhere instead.
func Preview(text string, span token.Span) string {
	matched := ""
	if span.Start >= 0 && span.End <= len(text) && span.Start <= span.End {
		matched = text[span.Start:span.End]
	}

	if PreviewWindow <= 0 || span.End > len(text) {
		return fmt.Sprintf("%q %v-%v", matched, span.Start, span.End)
	}

	end := span.End + PreviewWindow
	if end > len(text) {
		end = len(text)
	}

	return fmt.Sprintf("%q %v-%v %q", matched, span.Start, span.End, text[span.End:end])
}
