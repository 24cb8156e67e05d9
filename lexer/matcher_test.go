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

func TestFindPrefixIndex(t *testing.T) {
	testCases := []struct {
		matcher  Matcher
		input    string
		expected []int
	}{
		{
			matcher:  Literal("=="),
			input:    "== 1",
			expected: []int{0, 2},
		},
		{
			matcher:  Literal("=="),
			input:    "a == 1",
			expected: nil,
		},
		{
			matcher:  Regexp(`[0-9]+`),
			input:    "519 abc",
			expected: []int{0, 3},
		},
		{
			// never searches past the beginning of the input
			matcher:  Regexp(`[0-9]+`),
			input:    "abc 519",
			expected: nil,
		},
		{
			// alternation stays anchored as a whole
			matcher:  Regexp(`x|[0-9]+`),
			input:    "a1",
			expected: nil,
		},
		{
			// leftmost-first semantics, not longest match
			matcher:  Regexp(`a|ab`),
			input:    "ab",
			expected: []int{0, 1},
		},
		{
			matcher:  Regexp(`(?i)select`),
			input:    "SELECT",
			expected: []int{0, 6},
		},
		{
			matcher:  Regexp(`(a)?(b)`),
			input:    "b",
			expected: []int{0, 1, -1, -1, 0, 1},
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.matcher.FindPrefixIndex(tc.input), "matcher: %v, input: %q", tc.matcher, tc.input)
	}
}

func TestCompileRegexpErrors(t *testing.T) {
	for _, expr := range []string{`(`, `a)|(b`, `[z-a]`} {
		m, err := CompileRegexp(expr)
		assert.Nil(t, m, "expr: %q", expr)
		assert.ErrorIs(t, err, ErrInvalidPattern, "expr: %q", expr)
	}

	requirePanicsWith(t, ErrInvalidPattern, func() { Regexp(`(`) })
}

func TestMatchesEmpty(t *testing.T) {
	testCases := []struct {
		matcher  Matcher
		expected bool
	}{
		{matcher: Literal(""), expected: true},
		{matcher: Literal("a"), expected: false},
		{matcher: Regexp(`a*`), expected: true},
		{matcher: Regexp(`a+`), expected: false},
		{matcher: Regexp(`(a|b?)c?`), expected: true},
		{matcher: Regexp(`a{0,2}`), expected: true},
		{matcher: Regexp(`a{1,2}`), expected: false},
		// assertions match nothing at the end of input but may match empty elsewhere
		{matcher: Regexp(`\b`), expected: true},
		{matcher: Regexp(`\b|x`), expected: true},
		{matcher: Regexp(`\B`), expected: true},
		{matcher: Regexp(`(?m)^`), expected: true},
		{matcher: Regexp(`$`), expected: true},
		{matcher: Regexp(`x\b`), expected: false},
		{matcher: Regexp(`#\s*include\b`), expected: false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, matchesEmpty(tc.matcher), "matcher: %v", tc.matcher)
	}
}

func TestNumCaptures(t *testing.T) {
	n, ok := numCaptures(Literal("a"))
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	n, ok = numCaptures(Regexp(`(a)(?:b)(?P<c>c)?`))
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestMatch(t *testing.T) {
	input := "key = value;"
	m := Match{
		input:   input,
		offset:  4,
		indices: Regexp(`(?P<op>=)(?P<missing>!)?\s*(?P<rhs>[a-z]+)`).FindPrefixIndex(input[4:]),
		names:   []string{"", "op", "missing", "rhs"},
	}
	require.NotNil(t, m.indices)

	assert.Equal(t, 4, m.Start())
	assert.Equal(t, 11, m.End())
	assert.Equal(t, 7, m.Len())
	assert.Equal(t, "= value", m.Text())
	assert.Equal(t, 3, m.NumCaptures())

	text, ok := m.Capture(1)
	assert.True(t, ok)
	assert.Equal(t, "=", text)

	_, ok = m.Capture(2)
	assert.False(t, ok)
	_, ok = m.Capture(4)
	assert.False(t, ok)
	_, ok = m.Capture(0)
	assert.False(t, ok)

	text, ok = m.Named("rhs")
	assert.True(t, ok)
	assert.Equal(t, "value", text)
	_, ok = m.Named("missing")
	assert.False(t, ok)
	_, ok = m.Named("unknown")
	assert.False(t, ok)

	assert.Equal(t, []Capture{
		{Text: "=", Start: 4, Present: true},
		{},
		{Text: "value", Start: 6, Present: true},
	}, m.Captures())
}
