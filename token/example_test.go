// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package token_test

import (
	"errors"
	"fmt"

	"github.com/rwxrob/parsr/token"
)

// The types below sketch the grammar from spec section 8's literal
// scenarios: `let $ident = <expr>;` with array literals, e.g.
// `let x = [ 13, 24, 35 ];`. They exist only to exercise Engine end to
// end; a real grammar's raw tokens would come from a lexer.

type rawTag int

const (
	rawLet rawTag = iota
	rawValue
	rawIdent
	rawAssign
	rawList
	rawComma
	rawSemicolon
	rawListEnd
)

type rawToken struct {
	tag   rawTag
	value int
	ident string
}

type term struct {
	isIdent bool
	value   int
	ident   string
}

func (t term) Kind() token.TokenKind { return token.Value() }

func (t term) String() string {
	if t.isIdent {
		return t.ident
	}
	return fmt.Sprintf("%d", t.value)
}

type operatorTag int

const (
	opLet operatorTag = iota
	opAssign
	opList
	opComma
	opSemicolon
)

type operator struct{ tag operatorTag }

func (o operator) Kind() token.TokenKind {
	switch o.tag {
	case opLet:
		return token.Precedence(2, token.Right)
	case opAssign:
		return token.Precedence(1, token.Right)
	case opList:
		return token.Precedence(3, token.ClosedRight)
	case opComma:
		return token.Precedence(2, token.Left)
	case opSemicolon:
		return token.Precedence(0, token.Left)
	}
	panic("unreachable")
}

func (o operator) String() string {
	switch o.tag {
	case opLet:
		return "let"
	case opAssign:
		return "="
	case opList:
		return "list"
	case opComma:
		return ","
	case opSemicolon:
		return ";"
	}
	return "?"
}

type listEnd struct{}

func (listEnd) Behaviour() token.OrderingKind { return token.ClosedLeftOrdering() }

type resolved struct {
	term     *term
	operator *operator
}

func (r resolved) Kind() token.TokenKind {
	if r.term != nil {
		return r.term.Kind()
	}
	return r.operator.Kind()
}

func (r resolved) String() string {
	if r.term != nil {
		return r.term.String()
	}
	return r.operator.String()
}

// grammarState is a stand-in for spec section 3's TreeState: here it
// carries no real context since this toy grammar has no ambiguity that
// needs tracking, but it still implements the full contract.
type grammarState struct{}

func (grammarState) FromEntry(token.StackEntry[resolved, listEnd]) token.TreeState[rawToken, error, resolved, listEnd] {
	return grammarState{}
}

func (grammarState) Transition(raw rawToken) (token.StackEntry[resolved, listEnd], error) {
	switch raw.tag {
	case rawLet:
		return token.ResolvedEntry[resolved, listEnd](
			token.DefaultSpanned(resolved{operator: &operator{opLet}})), nil
	case rawValue:
		v := raw.value
		return token.ResolvedEntry[resolved, listEnd](
			token.DefaultSpanned(resolved{term: &term{value: v}})), nil
	case rawIdent:
		return token.ResolvedEntry[resolved, listEnd](
			token.DefaultSpanned(resolved{term: &term{isIdent: true, ident: raw.ident}})), nil
	case rawAssign:
		return token.ResolvedEntry[resolved, listEnd](
			token.DefaultSpanned(resolved{operator: &operator{opAssign}})), nil
	case rawList:
		return token.ResolvedEntry[resolved, listEnd](
			token.DefaultSpanned(resolved{operator: &operator{opList}})), nil
	case rawComma:
		return token.ResolvedEntry[resolved, listEnd](
			token.DefaultSpanned(resolved{operator: &operator{opComma}})), nil
	case rawSemicolon:
		return token.ResolvedEntry[resolved, listEnd](
			token.DefaultSpanned(resolved{operator: &operator{opSemicolon}})), nil
	case rawListEnd:
		return token.OrderingEntry[resolved, listEnd](
			token.DefaultSpanned[listEnd](listEnd{})), nil
	}
	return token.StackEntry[resolved, listEnd]{}, errors.New("unknown raw token")
}

func drain(tokens []rawToken) []string {
	e := token.FromSlice[rawToken, error, resolved, listEnd](tokens, grammarState{}, nil)

	var out []string
	for {
		spanned, err, ok := e.Next()
		if !ok {
			break
		}
		if err != nil {
			panic(err)
		}
		out = append(out, spanned.Inner.String())
	}
	return out
}

// ExampleEngine_simple is scenario S4 from spec section 8: `let x = 42;`.
func ExampleEngine_simple() {
	tokens := []rawToken{
		{tag: rawLet},
		{tag: rawIdent, ident: "x"},
		{tag: rawAssign},
		{tag: rawValue, value: 42},
		{tag: rawSemicolon},
	}

	fmt.Println(drain(tokens))
	// Output:
	// [x let 42 = ;]
}

// ExampleEngine_list is scenario S5 from spec section 8:
// `let x = [ 13, 24, 35 ];`.
func ExampleEngine_list() {
	tokens := []rawToken{
		{tag: rawLet},
		{tag: rawIdent, ident: "x"},
		{tag: rawAssign},
		{tag: rawList},
		{tag: rawValue, value: 13},
		{tag: rawComma},
		{tag: rawValue, value: 24},
		{tag: rawComma},
		{tag: rawValue, value: 35},
		{tag: rawListEnd},
		{tag: rawSemicolon},
	}

	fmt.Println(drain(tokens))
	// Output:
	// [x let 13 24 , 35 , list = ;]
}

// ExampleEngine_nested is scenario S6 from spec section 8:
// `let x = [ [1,2], [3], 4, [ [5], 6 ] ];`.
func ExampleEngine_nested() {
	lit := func(v int) rawToken { return rawToken{tag: rawValue, value: v} }

	tokens := []rawToken{
		{tag: rawLet}, {tag: rawIdent, ident: "x"}, {tag: rawAssign},
		{tag: rawList},
		{tag: rawList}, lit(1), {tag: rawComma}, lit(2), {tag: rawListEnd},
		{tag: rawComma},
		{tag: rawList}, lit(3), {tag: rawListEnd},
		{tag: rawComma},
		lit(4),
		{tag: rawComma},
		{tag: rawList},
		{tag: rawList}, lit(5), {tag: rawListEnd},
		{tag: rawComma}, lit(6),
		{tag: rawListEnd},
		{tag: rawListEnd},
		{tag: rawSemicolon},
	}

	fmt.Println(drain(tokens))
	// Output:
	// [x let 1 2 , list 3 list , 4 , 5 list 6 , list , list = ;]
}
