// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package input

import "unicode/utf8"

// validUTF8Prefix reports how many leading bytes of b form valid
// UTF-8, and whether the bytes immediately after that point are the
// truncated start of a rune that more data could still complete
// (rather than a genuinely invalid encoding).
func validUTF8Prefix(b []byte) (validUpTo int, incomplete bool) {
	i := 0
	for i < len(b) {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(b[i:]) {
				incomplete = true
			}
			break
		}
		i += size
	}
	return i, incomplete
}
