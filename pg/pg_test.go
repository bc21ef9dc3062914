// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package pg_test

import (
	"fmt"

	"github.com/rwxrob/parsr/pg"
)

func ExampleGraphic() {
	for _, r := range []rune{'o', ' ', '\t', '\n', 'x'} {
		fmt.Println(pg.Graphic(r))
	}
	// Output:
	// true
	// false
	// false
	// false
	// true
}

func ExampleWhitespace() {
	fmt.Println(pg.Whitespace(' '), pg.Whitespace('\t'), pg.Whitespace('x'))
	// Output:
	// true true false
}

func ExampleNot() {
	nonSpace := pg.Not(pg.Whitespace)
	fmt.Println(nonSpace('x'), nonSpace(' '))
	// Output:
	// true false
}
