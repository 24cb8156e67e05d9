// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package lexer

import "fmt"

type (
	// StateID is the stable name of a State within a Definition, e.g. "root" or "comment". Mixins and transitions
	// refer to states by StateID.
	StateID string

	// Action runs after the pattern of its rule matched and the cursor moved past the match. It may append tokens
	// and push or pop states through the Context; it must not retain the Context after returning.
	Action[T comparable] func(ctx *Context[T], m Match)

	// Rule is a single entry of a State: either a pattern bound to an Action, or a mixin of another state's rules.
	Rule[T comparable] struct {
		pattern Matcher
		action  Action[T]
		names   []string

		mixin   StateID
		isMixin bool

		// States pushed by the action, known when the rule is built. Checked against the Definition.
		pushes []StateID
		// Whether the action may change the state stack. Rules that cannot change it must not match empty input.
		transitions bool
		// Number of captures emitted as tokens, checked against the captures of the pattern.
		emittedCaptures int
	}

	// State is an ordered list of rules. Order encodes priority: the first rule matching at the cursor wins,
	// regardless of the length of the match.
	State[T comparable] []Rule[T]
)

func newRule[T comparable](pattern Matcher, action Action[T]) Rule[T] {
	r := Rule[T]{pattern: pattern, action: action}
	if named, ok := pattern.(namedMatcher); ok {
		r.names = named.SubexpNames()
	}
	return r
}

// Emit returns a rule emitting the whole match as a single token of the given type.
func Emit[T comparable](pattern Matcher, tokenType T) Rule[T] {
	return newRule(pattern, EmitToken[T](tokenType))
}

// EmitThen returns a rule emitting the whole match as a single token and then entering the next state.
func EmitThen[T comparable](pattern Matcher, tokenType T, next StateID) Rule[T] {
	r := newRule(pattern, Sequence(EmitToken[T](tokenType), PushStates[T](next)))
	r.pushes = []StateID{next}
	r.transitions = true
	return r
}

// EmitPush returns a rule emitting the whole match and pushing the current state once more, which is useful for
// nested constructs.
func EmitPush[T comparable](pattern Matcher, tokenType T) Rule[T] {
	r := newRule(pattern, Sequence(EmitToken[T](tokenType), PushCurrent[T]()))
	r.transitions = true
	return r
}

// EmitPop returns a rule emitting the whole match and leaving the current state.
func EmitPop[T comparable](pattern Matcher, tokenType T) Rule[T] {
	r := newRule(pattern, Sequence(EmitToken[T](tokenType), PopState[T]()))
	r.transitions = true
	return r
}

// EmitCaptures returns a rule emitting one token per capture of the match, see Context.AppendCaptures.
func EmitCaptures[T comparable](pattern Matcher, tokenTypes ...T) Rule[T] {
	r := newRule(pattern, EmitCapturesAs(tokenTypes...))
	r.emittedCaptures = len(tokenTypes)
	return r
}

// OnMatch returns a rule running an arbitrary action. The action is assumed to be able to change the state stack, so
// the pattern is allowed to match empty input.
func OnMatch[T comparable](pattern Matcher, action Action[T]) Rule[T] {
	r := newRule(pattern, action)
	r.transitions = true
	return r
}

// Mixin returns a rule trying all rules of another state at its position, as if they were inlined there.
func Mixin[T comparable](state StateID) Rule[T] {
	return Rule[T]{mixin: state, isMixin: true}
}

func (r Rule[T]) String() string {
	if r.isMixin {
		return fmt.Sprintf("mixin(%s)", r.mixin)
	}
	return fmt.Sprintf("match(%v)", r.pattern)
}

// EmitToken appends the whole match as a token of the given type.
func EmitToken[T comparable](tokenType T) Action[T] {
	return func(ctx *Context[T], m Match) {
		ctx.AppendTokenAt(tokenType, m.Text(), m.Start())
	}
}

// EmitCapturesAs appends one token per capture, see Context.AppendCaptures.
func EmitCapturesAs[T comparable](tokenTypes ...T) Action[T] {
	return func(ctx *Context[T], m Match) {
		ctx.AppendCaptures(m, tokenTypes...)
	}
}

// PushStates pushes the given states, the last one becoming the current state.
func PushStates[T comparable](states ...StateID) Action[T] {
	return func(ctx *Context[T], _ Match) {
		ctx.Push(states...)
	}
}

// PushCurrent pushes the current state once more.
func PushCurrent[T comparable]() Action[T] {
	return func(ctx *Context[T], _ Match) {
		ctx.Push(ctx.CurrentState())
	}
}

// PopState leaves the current state.
func PopState[T comparable]() Action[T] {
	return func(ctx *Context[T], _ Match) {
		ctx.PopState()
	}
}

// PopStates leaves the n topmost states.
func PopStates[T comparable](n int) Action[T] {
	return func(ctx *Context[T], _ Match) {
		ctx.PopStates(n)
	}
}

// Sequence runs the given actions in order.
func Sequence[T comparable](actions ...Action[T]) Action[T] {
	return func(ctx *Context[T], m Match) {
		for _, action := range actions {
			action(ctx, m)
		}
	}
}
