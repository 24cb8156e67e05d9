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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefinitionErrors(t *testing.T) {
	testCases := []struct {
		name     string
		root     StateID
		states   map[StateID]State[testType]
		opts     []Option
		expected error
	}{
		{
			name:     "missing root",
			root:     "main",
			states:   map[StateID]State[testType]{"root": {}},
			expected: ErrUnknownState,
		},
		{
			name: "unknown mixin",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {Mixin[testType]("whitespace")},
			},
			expected: ErrUnknownState,
		},
		{
			name: "unknown transition",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {EmitThen(Literal("/*"), tA, "comment")},
			},
			expected: ErrUnknownState,
		},
		{
			name: "mixin of itself",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {Emit(Literal("a"), tA), Mixin[testType]("root")},
			},
			expected: ErrMixinCycle,
		},
		{
			name: "transitive mixin cycle",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {Mixin[testType]("a")},
				"a":    {Mixin[testType]("b")},
				"b":    {Emit(Literal("b"), tB), Mixin[testType]("a")},
			},
			expected: ErrMixinCycle,
		},
		{
			name: "mixin cycle unreachable from root",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {Emit(Literal("a"), tA)},
				"x":    {Mixin[testType]("y")},
				"y":    {Mixin[testType]("x")},
			},
			expected: ErrMixinCycle,
		},
		{
			name: "empty regexp without transition",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {Emit(Regexp(`[a-z]*`), tWord)},
			},
			expected: ErrEmptyMatch,
		},
		{
			name: "empty captures without transition",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {EmitCaptures(Regexp(`(a?)(b?)`), tA, tB)},
			},
			expected: ErrEmptyMatch,
		},
		{
			name: "word boundary without transition",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {Emit(Regexp(`\b`), tWord)},
			},
			expected: ErrEmptyMatch,
		},
		{
			name: "more token types than captures",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {EmitCaptures(Regexp(`(a)b`), tA, tB)},
			},
			expected: ErrInvalidPattern,
		},
		{
			name: "captures of a literal",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {EmitCaptures(Literal("a"), tA)},
			},
			expected: ErrInvalidPattern,
		},
		{
			name: "empty literal",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {Emit(Literal(""), tWord)},
			},
			expected: ErrEmptyMatch,
		},
		{
			name: "missing pattern",
			root: "root",
			states: map[StateID]State[testType]{
				"root": {Emit[testType](nil, tWord)},
			},
			expected: ErrInvalidPattern,
		},
		{
			name:     "negative step limit",
			root:     "root",
			states:   map[StateID]State[testType]{"root": {}},
			opts:     []Option{WithEmptyStepLimit(-1)},
			expected: ErrInvalidOption,
		},
		{
			name:     "missing recovery",
			root:     "root",
			states:   map[StateID]State[testType]{"root": {}},
			opts:     []Option{WithRecovery(nil)},
			expected: ErrInvalidOption,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := NewDefinition(tError, tc.root, tc.states, tc.opts...)
			assert.Nil(t, def)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestMixinCycleMessage(t *testing.T) {
	_, err := NewDefinition(tError, "root", map[StateID]State[testType]{
		"root": {Mixin[testType]("a")},
		"a":    {Mixin[testType]("b")},
		"b":    {Mixin[testType]("a")},
	})
	require.ErrorIs(t, err, ErrMixinCycle)
	assert.EqualError(t, err, "mixin cycle: a -> b -> a")
}

func TestEmptyMatchAllowedWithTransition(t *testing.T) {
	def, err := NewDefinition(tError, "root", map[StateID]State[testType]{
		"root":  {Emit(Literal("1"), tNumber), EmitThen(Regexp(`[a-z]*`), tWord, "after")},
		"after": {EmitPop(Regexp(`;?`), tB)},
	})
	require.NoError(t, err)
	assert.Equal(t, []typedText{{tWord, "ab"}, {tB, ";"}, {tNumber, "1"}}, typedTexts(def.Tokenize("ab;1")))
}

func TestMustDefinitionPanics(t *testing.T) {
	requirePanicsWith(t, ErrUnknownState, func() {
		MustDefinition(tError, "root", map[StateID]State[testType]{})
	})
}

func TestDefinitionIsDetachedFromInput(t *testing.T) {
	states := map[StateID]State[testType]{
		"root": {Emit(Literal("a"), tA)},
	}
	def := MustDefinition(tError, "root", states)

	states["root"][0] = Emit(Literal("a"), tB)
	states["extra"] = State[testType]{}

	assert.Equal(t, []typedText{{tA, "a"}}, typedTexts(def.Tokenize("a")))
	assert.Equal(t, []StateID{"root"}, def.StateIDs())
}

func TestDefinitionAccessors(t *testing.T) {
	assert.Equal(t, StateID("root"), nestingDefinition.Root())
	assert.Equal(t, tError, nestingDefinition.ErrorType())
	assert.Equal(t, []StateID{"nested", "root", "space"}, nestingDefinition.StateIDs())

	state, ok := nestingDefinition.State("nested")
	require.True(t, ok)
	assert.Len(t, state, 3)
	assert.Equal(t, "mixin(root)", state[2].String())

	_, ok = nestingDefinition.State("missing")
	assert.False(t, ok)
}
