// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"

	"github.com/rwxrob/structs/qstack"
	"github.com/rwxrob/to"
)

// TreeState is the user-supplied transition machine that turns a raw
// input token into a StackEntry while tracking the grammar's local
// context (e.g. "inside a list", "after let"). A fresh TreeState is
// produced after every transition via FromEntry, mirroring the
// grammar's state walking forward alongside the token stream.
type TreeState[R, E any, T ResolvedToken, O Ordering] interface {
	// Transition consumes the receiver and the next raw token, producing
	// the StackEntry the engine should process next, or an error that
	// terminates the engine.
	Transition(raw R) (StackEntry[T, O], error)

	// FromEntry produces the TreeState that should be current after
	// entry has been processed.
	FromEntry(entry StackEntry[T, O]) TreeState[R, E, T, O]
}

// Observer is an optional side-channel hooked into engine transitions,
// for bookkeeping such as span propagation or balanced-bracket
// tracking. It must never mutate the engine's stack; it only observes.
type Observer[T ResolvedToken, O Ordering, E any] interface {
	// Update fires for every new StackEntry produced by a transition.
	Update(entry StackEntry[T, O])

	// ProcessClosed fires when a ClosedRight token is paired with its
	// closer, immediately before that token is emitted.
	ProcessClosed(resolved *Spanned[T])

	// DeleteClosedOrdering fires when a matching closed-right ordering
	// is discarded because its ClosedLeft partner was found, and for
	// every ordering still on the stack when it is cleared at the end of
	// the token stream.
	DeleteClosedOrdering(ordering Spanned[O])

	// NoOrderingFound produces the error emitted when a ClosedLeft
	// ordering finds nothing left on the stack to close.
	NoOrderingFound() Spanned[E]
}

// NopObserver is the default no-op Observer, used when a caller has no
// side channel to hook in.
type NopObserver[T ResolvedToken, O Ordering, E any] struct{}

func (NopObserver[T, O, E]) Update(StackEntry[T, O])            {}
func (NopObserver[T, O, E]) ProcessClosed(*Spanned[T])          {}
func (NopObserver[T, O, E]) DeleteClosedOrdering(Spanned[O])    {}
func (NopObserver[T, O, E]) NoOrderingFound() (zero Spanned[E]) { return }

// Error is the terminal error an Engine produces when a ClosedLeft
// ordering finds nothing to close, wrapping the Observer.NoOrderingFound
// error. A TreeState transition error is not wrapped in Error: Next
// returns it unchanged, with no span attached.
type Error[E any] struct {
	Span  Span
	Inner E
}

func (e *Error[E]) Error() string {
	return fmt.Sprintf("token: %s", to.Human(e.Inner))
}

type phase int

const (
	phasePending phase = iota
	phaseProcessResolved
	phaseProcessOrdering
	phaseClearingStack
	phaseCompleted
)

// Engine pulls raw tokens of type R one at a time from a source,
// driving the shunting-yard state machine of spec section 4.2 to
// produce a postfix-ordered stream of resolved tokens. It is driven
// externally: call Next repeatedly until it reports done.
type Engine[R, E any, T ResolvedToken, O Ordering] struct {
	pull     func() (R, bool)
	state    TreeState[R, E, T, O]
	observer Observer[T, O, E]
	stack    *qstack.QStack[StackEntry[T, O]]
	phase    phase

	pendingResolved Spanned[T]
	pendingOrdering Spanned[O]
}

// NewEngine constructs an Engine over pull (called once per raw
// token; its second return value is false once the source is
// exhausted), starting from the given initial tree state. observer may
// be nil, in which case a NopObserver is used.
func NewEngine[R, E any, T ResolvedToken, O Ordering](
	pull func() (R, bool),
	initial TreeState[R, E, T, O],
	observer Observer[T, O, E],
) *Engine[R, E, T, O] {
	if observer == nil {
		observer = NopObserver[T, O, E]{}
	}
	return &Engine[R, E, T, O]{
		pull:     pull,
		state:    initial,
		observer: observer,
		stack:    qstack.New[StackEntry[T, O]](),
		phase:    phasePending,
	}
}

// FromSlice is a convenience constructor that pulls raw tokens from a
// fixed slice in order.
func FromSlice[R, E any, T ResolvedToken, O Ordering](
	tokens []R,
	initial TreeState[R, E, T, O],
	observer Observer[T, O, E],
) *Engine[R, E, T, O] {
	i := 0
	return NewEngine(func() (R, bool) {
		if i >= len(tokens) {
			var zero R
			return zero, false
		}
		t := tokens[i]
		i++
		return t, true
	}, initial, observer)
}

// Next pulls and resolves tokens until it has one Resolved token to
// emit or the stream is fully drained. The returned bool is false only
// once the engine is Completed; err is non-nil only on a terminal
// TreeState or NoOrderingFound failure, at which point the engine is
// also Completed.
func (e *Engine[R, E, T, O]) Next() (Spanned[T], error, bool) {
	for {
		switch e.phase {

		case phasePending:
			raw, ok := e.pull()
			if !ok {
				e.phase = phaseClearingStack
				continue
			}

			entry, err := e.state.Transition(raw)
			if err != nil {
				e.phase = phaseCompleted
				return Spanned[T]{}, err, true
			}

			e.state = e.state.FromEntry(entry)
			e.observer.Update(entry)

			if entry.IsResolved() {
				e.pendingResolved = entry.Resolved()
				e.phase = phaseProcessResolved
			} else {
				e.pendingOrdering = entry.Ordering()
				e.phase = phaseProcessOrdering
			}
			continue

		case phaseProcessResolved:
			kind := e.pendingResolved.Inner.Kind()

			if kind.IsValue() {
				resolved := e.pendingResolved
				e.phase = phasePending
				return resolved, nil, true
			}

			popped, didPop := e.popIf(func(top int8) bool {
				return top >= kind.Level && (kind.Assoc == Left || top != kind.Level)
			})
			if didPop {
				if popped.IsResolved() {
					return popped.Resolved(), nil, true
				}
				// popped an Ordering: it is discarded, fall through to push.
			}

			resolved := e.pendingResolved
			e.phase = phasePending
			e.stack.Push(ResolvedEntry[T, O](resolved))
			continue

		case phaseProcessOrdering:
			behaviour := e.pendingOrdering.Inner.Behaviour()

			switch {
			case behaviour.IsRight():
				popped, didPop := e.popIf(func(top int8) bool {
					return top > behaviour.Level
				})
				if didPop {
					if popped.IsResolved() {
						return popped.Resolved(), nil, true
					}
				}

				ordering := e.pendingOrdering
				e.phase = phasePending
				e.stack.Push(OrderingEntry[T, O](ordering))
				continue

			case behaviour.IsSoftLeft():
				popped, didPop := e.popIf(func(top int8) bool {
					return top >= behaviour.Level
				})
				if didPop {
					if popped.IsResolved() {
						return popped.Resolved(), nil, true
					}
				}

				// Either nothing popped or an Ordering was discarded: the
				// separator itself never reaches output.
				e.phase = phasePending
				continue

			case behaviour.IsClosedLeft():
				if e.stack.Len() == 0 {
					e.phase = phaseCompleted
					errSpan := e.observer.NoOrderingFound()
					return Spanned[T]{}, &Error[E]{Span: errSpan.Span, Inner: errSpan.Inner}, true
				}

				popped := e.stack.Pop()

				if popped.IsResolved() {
					resolved := popped.Resolved()
					if resolved.Inner.Kind().IsPrecedence() &&
						resolved.Inner.Kind().Assoc == ClosedRight {
						e.phase = phasePending
						e.observer.ProcessClosed(&resolved)
						return resolved, nil, true
					}
					// Not the matching opener: keep unwinding under the same
					// ClosedLeft ordering.
					return resolved, nil, true
				}

				ordering := popped.Ordering()
				if ordering.Inner.Behaviour().IsRight() && ordering.Inner.Behaviour().Closed {
					e.phase = phasePending
					e.observer.DeleteClosedOrdering(ordering)
					continue
				}
				// Any other ordering shape (SoftLeft, an unclosed Right): discard
				// and keep unwinding.
				continue
			}

		case phaseClearingStack:
			for e.stack.Len() > 0 {
				top := e.stack.Pop()
				if top.IsResolved() {
					return top.Resolved(), nil, true
				}
				e.observer.DeleteClosedOrdering(top.Ordering())
			}
			e.phase = phaseCompleted
			return Spanned[T]{}, nil, false

		case phaseCompleted:
			return Spanned[T]{}, nil, false
		}
	}
}

// popIf conditionally pops the top of the stack. pred receives the top
// entry's implied precedence level and reports whether the entry
// should be popped; the caller's predicate closure already carries
// whatever it needs from the incoming token (its own level and
// associativity). If the top entry does not participate in precedence
// comparison at all (see topPrecedence), popIf reports no pop.
func (e *Engine[R, E, T, O]) popIf(
	pred func(level int8) bool,
) (StackEntry[T, O], bool) {
	if e.stack.Len() == 0 {
		return StackEntry[T, O]{}, false
	}

	top := e.stack.Peek()
	level, ok := topPrecedence(top)
	if !ok {
		return StackEntry[T, O]{}, false
	}

	if !pred(level) {
		return StackEntry[T, O]{}, false
	}

	return e.stack.Pop(), true
}
