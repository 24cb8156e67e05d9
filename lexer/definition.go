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
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/EngFlow/statelex/internal/collections"
)

var (
	ErrEmptyMatch     = errors.New("pattern matches the empty string but does not change the state")
	ErrInvalidOption  = errors.New("invalid option")
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrMixinCycle     = errors.New("mixin cycle")
	ErrPopRoot        = errors.New("cannot pop root state")
	ErrUnknownState   = errors.New("unknown state")
)

const (
	// Default number of consecutive zero-width matches after which a step is treated as failed.
	DefaultEmptyStepLimit = 5
)

type (
	// Recovery decides how many bytes of rest are consumed as a single error token when no rule matches at the
	// cursor. rest is never empty. Results outside [1, len(rest)] are clamped.
	Recovery func(rest string) int

	// Option configures a Definition.
	Option func(*settings)

	settings struct {
		emptyStepLimit int
		recovery       Recovery
		runData        func() any
	}

	// Definition is a validated set of named states with a distinguished root state and the token type reserved for
	// lexical errors. A Definition is immutable and safe for concurrent use by any number of Context instances.
	Definition[T comparable] struct {
		root      StateID
		states    map[StateID]State[T]
		errorType T
		settings
	}
)

// RecoverRune consumes one UTF-8 encoded character, or one byte of invalid UTF-8.
func RecoverRune(rest string) int {
	_, size := utf8.DecodeRuneInString(rest)
	return size
}

// RecoverByte consumes a single byte.
func RecoverByte(string) int {
	return 1
}

// WithEmptyStepLimit sets how many consecutive zero-width matches are tolerated before the current step fails and
// error recovery kicks in. Defaults to DefaultEmptyStepLimit.
func WithEmptyStepLimit(n int) Option {
	return func(s *settings) { s.emptyStepLimit = n }
}

// WithRecovery sets the error recovery granularity. Defaults to RecoverRune.
func WithRecovery(recovery Recovery) Option {
	return func(s *settings) { s.recovery = recovery }
}

// WithRunData registers a factory called once for every Context. Its result is available to actions through
// Context.RunData, e.g. for counting nested delimiters.
func WithRunData(factory func() any) Option {
	return func(s *settings) { s.runData = factory }
}

// NewDefinition validates the states and returns a Definition starting in the root state. Every state referenced by a
// mixin or a transition must be defined, mixins must not form cycles and rules which cannot change the state must not
// match the empty string.
func NewDefinition[T comparable](errorType T, root StateID, states map[StateID]State[T], opts ...Option) (*Definition[T], error) {
	def := &Definition[T]{
		root:      root,
		states:    make(map[StateID]State[T], len(states)),
		errorType: errorType,
		settings:  settings{emptyStepLimit: DefaultEmptyStepLimit, recovery: RecoverRune},
	}
	for _, opt := range opts {
		opt(&def.settings)
	}
	if def.emptyStepLimit < 0 {
		return nil, fmt.Errorf("%w: negative empty step limit %d", ErrInvalidOption, def.emptyStepLimit)
	}
	if def.recovery == nil {
		return nil, fmt.Errorf("%w: nil recovery", ErrInvalidOption)
	}

	// Cloned, so that callers mutating their literals cannot affect running tokenizers.
	for id, state := range states {
		def.states[id] = slices.Clone(state)
	}

	if _, ok := def.states[root]; !ok {
		return nil, fmt.Errorf("%w: root state %q", ErrUnknownState, root)
	}
	for _, id := range def.StateIDs() {
		if err := def.validateRules(id); err != nil {
			return nil, err
		}
	}
	if err := def.validateMixins(); err != nil {
		return nil, err
	}
	return def, nil
}

// MustDefinition is like NewDefinition but panics on an invalid definition. It simplifies declaring definitions in
// package-level variables.
func MustDefinition[T comparable](errorType T, root StateID, states map[StateID]State[T], opts ...Option) *Definition[T] {
	def, err := NewDefinition(errorType, root, states, opts...)
	if err != nil {
		panic(err)
	}
	return def
}

func (def *Definition[T]) validateRules(id StateID) error {
	for i, rule := range def.states[id] {
		if rule.isMixin {
			if _, ok := def.states[rule.mixin]; !ok {
				return fmt.Errorf("%w: state %q rule %d mixes in %q", ErrUnknownState, id, i, rule.mixin)
			}
			continue
		}
		if rule.pattern == nil || rule.action == nil {
			return fmt.Errorf("%w: state %q rule %d has no pattern or action", ErrInvalidPattern, id, i)
		}
		for _, next := range rule.pushes {
			if _, ok := def.states[next]; !ok {
				return fmt.Errorf("%w: state %q rule %d enters %q", ErrUnknownState, id, i, next)
			}
		}
		if n, ok := numCaptures(rule.pattern); ok && rule.emittedCaptures > n {
			return fmt.Errorf("%w: state %q rule %d emits %d captures of %v which has %d", ErrInvalidPattern, id, i,
				rule.emittedCaptures, rule, n)
		}
		if !rule.transitions && matchesEmpty(rule.pattern) {
			return fmt.Errorf("%w: state %q rule %d %v", ErrEmptyMatch, id, i, rule)
		}
	}
	return nil
}

// Depth-first search over the mixin graph. A state reached again while it is still on the current path closes a
// cycle.
func (def *Definition[T]) validateMixins() error {
	done := make(collections.Set[StateID])
	var path []StateID

	var visit func(id StateID) error
	visit = func(id StateID) error {
		if done.Contains(id) {
			return nil
		}
		if begin := slices.Index(path, id); begin >= 0 {
			cycle := append(slices.Clone(path[begin:]), id)
			names := collections.MapSlice(cycle, func(s StateID) string { return string(s) })
			return fmt.Errorf("%w: %s", ErrMixinCycle, strings.Join(names, " -> "))
		}

		path = append(path, id)
		for _, rule := range def.states[id] {
			if rule.isMixin {
				if err := visit(rule.mixin); err != nil {
					return err
				}
			}
		}
		path = path[:len(path)-1]
		done.Add(id)
		return nil
	}

	for _, id := range def.StateIDs() {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

// Root returns the identifier of the initial state.
func (def *Definition[T]) Root() StateID { return def.root }

// ErrorType returns the token type used for characters no rule accepts.
func (def *Definition[T]) ErrorType() T { return def.errorType }

// StateIDs returns identifiers of all defined states in lexicographical order.
func (def *Definition[T]) StateIDs() []StateID {
	return slices.Sorted(maps.Keys(def.states))
}

// State returns a copy of the rules of the given state.
func (def *Definition[T]) State(id StateID) (State[T], bool) {
	state, ok := def.states[id]
	return slices.Clone(state), ok
}

// Tokenize splits input into tokens, see Context.Tokenize.
func (def *Definition[T]) Tokenize(input string) []Token[T] {
	return NewContext(input, def).Tokenize()
}
