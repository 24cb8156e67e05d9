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

// Package lexer provides a declarative, stateful lexical analyzer. A Definition groups named states, each an ordered
// list of rules; a Context runs a Definition over one input string and breaks it into a sequence of typed tokens.
//
// The Context keeps a stack of states. At every step the rules of the topmost state are tested against the input at
// the cursor, in order, with mixins expanded in place. The first matching rule wins: the cursor moves past the match
// and the rule action emits tokens and may push or pop states. When nothing matches, a single character is consumed
// as a token of the error type, so tokenizing never fails on malformed input.
package lexer

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/EngFlow/statelex/internal/collections"
)

// Context tokenizes a single input string. It is created for one run and must not be used concurrently; actions
// receive it to manipulate the state stack and to emit tokens.
type Context[T comparable] struct {
	def     *Definition[T]
	input   string
	offset  int
	stack   []StateID
	pending []Token[T]

	// Consecutive successful matches which consumed no input.
	emptySteps int
	// End of the last token taken from the input; AppendToken looks for its text from here.
	emittedEnd int
	// Location of the last token returned to the caller.
	location Cursor
	runData  any
}

func NewContext[T comparable](input string, def *Definition[T]) *Context[T] {
	ctx := &Context[T]{
		def:      def,
		input:    input,
		stack:    []StateID{def.root},
		location: CursorInit,
	}
	if def.runData != nil {
		ctx.runData = def.runData()
	}
	return ctx
}

// Tokenize splits input into tokens using def. Tokens with empty text are dropped; the texts of the remaining tokens
// keep the input order.
func Tokenize[T comparable](input string, def *Definition[T]) []Token[T] {
	return NewContext(input, def).Tokenize()
}

// Return all tokens extracted from the input data.
func (ctx *Context[T]) Tokenize() []Token[T] {
	return slices.Collect(ctx.AllTokens())
}

// Return a sequence of tokens extracted lazily from the input data. The sequence can be iterated over only once.
func (ctx *Context[T]) AllTokens() iter.Seq[Token[T]] {
	nonEmpty := func(token Token[T]) bool { return token.Text != "" }
	return collections.MapSeq(collections.FilterSeq(ctx.emitted(), nonEmpty), ctx.locate)
}

func (ctx *Context[T]) emitted() iter.Seq[Token[T]] {
	return func(yield func(Token[T]) bool) {
		for ctx.offset < len(ctx.input) {
			ctx.advance()
			batch := ctx.pending
			ctx.pending = batch[:0]
			for _, token := range batch {
				if !yield(token) {
					return
				}
			}
		}
	}
}

// Turn the byte offset recorded at emission into a full location. Tokens usually come in input order, so the cursor
// only moves forward over the input between consecutive tokens.
func (ctx *Context[T]) locate(token Token[T]) Token[T] {
	offset := token.Location.Offset
	if offset < ctx.location.Offset {
		ctx.location = CursorInit
	}
	ctx.location = ctx.location.AdvancedBy(ctx.input[ctx.location.Offset:offset])
	token.Location = ctx.location
	return token
}

// Move the cursor forward, either by a rule of the current state or by error recovery.
func (ctx *Context[T]) advance() {
	if ctx.step(ctx.CurrentState()) {
		return
	}

	start, rest := ctx.offset, ctx.input[ctx.offset:]
	size := min(max(ctx.def.recovery(rest), 1), len(rest))
	ctx.offset += size
	ctx.AppendTokenAt(ctx.def.errorType, rest[:size], start)
}

// Try rules of the given state in order, expanding mixins in place. Reports whether a rule matched and the run may
// continue without error recovery.
func (ctx *Context[T]) step(id StateID) bool {
	for _, rule := range ctx.def.states[id] {
		if rule.isMixin {
			if ctx.step(rule.mixin) {
				return true
			}
			continue
		}

		indices := rule.pattern.FindPrefixIndex(ctx.input[ctx.offset:])
		if len(indices) < 2 || indices[0] != 0 {
			continue
		}

		m := Match{input: ctx.input, offset: ctx.offset, indices: indices, names: rule.names}
		ctx.offset = m.End()
		rule.action(ctx, m)

		if m.Len() > 0 {
			ctx.emptySteps = 0
			return true
		}
		ctx.emptySteps++
		return ctx.emptySteps <= ctx.def.emptyStepLimit
	}
	return false
}

// Push appends states on top of the stack. The last one becomes the current state.
func (ctx *Context[T]) Push(states ...StateID) {
	for _, id := range states {
		if _, ok := ctx.def.states[id]; !ok {
			panic(fmt.Errorf("%w: %q", ErrUnknownState, id))
		}
	}
	ctx.stack = append(ctx.stack, states...)
}

// PopState removes the current state. Panics when called in the root state.
func (ctx *Context[T]) PopState() {
	ctx.PopStates(1)
}

// PopStates removes the n topmost states. Panics when the root state would be removed.
func (ctx *Context[T]) PopStates(n int) {
	if n < 0 || n >= len(ctx.stack) {
		panic(fmt.Errorf("%w: popping %d of %d states", ErrPopRoot, n, len(ctx.stack)))
	}
	ctx.stack = ctx.stack[:len(ctx.stack)-n]
}

// CurrentState returns the topmost state.
func (ctx *Context[T]) CurrentState() StateID {
	return ctx.stack[len(ctx.stack)-1]
}

// Depth returns the number of states on the stack, 1 when only the root state is left.
func (ctx *Context[T]) Depth() int {
	return len(ctx.stack)
}

// Offset returns the byte position of the cursor. Inside an action it points right after the current match.
func (ctx *Context[T]) Offset() int {
	return ctx.offset
}

// RunData returns the value created for this run by the factory registered with WithRunData, or nil.
func (ctx *Context[T]) RunData() any {
	return ctx.runData
}

// AppendToken emits a token, independently of the current match. The token is located at the first occurrence of
// text in the input consumed since the previous token; text found nowhere there is located right after the previous
// token. Use AppendTokenAt when the position is known.
func (ctx *Context[T]) AppendToken(tokenType T, text string) {
	begin := min(ctx.emittedEnd, ctx.offset)
	if i := strings.Index(ctx.input[begin:ctx.offset], text); i >= 0 {
		ctx.AppendTokenAt(tokenType, text, begin+i)
		return
	}
	ctx.appendAt(tokenType, text, begin)
}

// AppendTokenAt emits a token located at the given byte offset of the input.
func (ctx *Context[T]) AppendTokenAt(tokenType T, text string, offset int) {
	offset = min(max(offset, 0), len(ctx.input))
	if end := offset + len(text); end <= len(ctx.input) && ctx.input[offset:end] == text {
		ctx.emittedEnd = end
	}
	ctx.appendAt(tokenType, text, offset)
}

func (ctx *Context[T]) appendAt(tokenType T, text string, offset int) {
	ctx.pending = append(ctx.pending, Token[T]{Type: tokenType, Text: text, Location: Cursor{Offset: offset}})
}

// Captured pairs an optional capture with the token type it should be emitted as.
type Captured[T comparable] struct {
	Capture
	Type T
}

// AppendCaptured emits one token per present capture, in order, located at Capture.Start. Absent captures are
// skipped; captures that matched the empty string are emitted but dropped later together with all other empty tokens.
func (ctx *Context[T]) AppendCaptured(captures ...Captured[T]) {
	for _, c := range captures {
		if c.Present {
			ctx.AppendTokenAt(c.Type, c.Text, c.Start)
		}
	}
}

// AppendCaptures emits the i-th capture of m as a token of tokenTypes[i], see AppendCaptured. Panics when there are
// more token types than captures.
func (ctx *Context[T]) AppendCaptures(m Match, tokenTypes ...T) {
	captures := m.Captures()
	if len(tokenTypes) > len(captures) {
		panic(fmt.Errorf("%d token types given for %d captures of %q", len(tokenTypes), len(captures), m.Text()))
	}
	pairs := make([]Captured[T], len(tokenTypes))
	for i, tokenType := range tokenTypes {
		pairs[i] = Captured[T]{Capture: captures[i], Type: tokenType}
	}
	ctx.AppendCaptured(pairs...)
}
