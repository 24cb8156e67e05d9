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
	"fmt"
	"regexp"
	"regexp/syntax"
	"strings"
)

type (
	// Matcher is the pattern matching service consulted by rules. Abstraction over regexp.Regexp allows providing an
	// alternative implementation.
	Matcher interface {
		// Return the submatch index pairs of a match anchored at the very beginning of content, or nil when there
		// is no such match. The whole match is content[indices[0]:indices[1]] and indices[0] must be 0. Pair i > 0
		// locates capture i; a pair of -1 marks a capture that did not participate in the match.
		FindPrefixIndex(content string) (indices []int)
	}

	// Implemented by matchers which name their captures, like regexp.Regexp.
	namedMatcher interface {
		SubexpNames() []string
	}

	// Matcher for fixed strings. No need to use regexp.Regexp for such simple cases.
	fixedString string

	// Matcher backed by a regular expression compiled with a leading \A, so it never searches past the cursor.
	anchoredRegexp struct {
		expr string
		re   *regexp.Regexp
	}
)

func (fs fixedString) FindPrefixIndex(content string) []int {
	if strings.HasPrefix(content, string(fs)) {
		return []int{0, len(fs)}
	}
	return nil
}

func (fs fixedString) String() string {
	return fmt.Sprintf("%q", string(fs))
}

func (ar anchoredRegexp) FindPrefixIndex(content string) []int {
	return ar.re.FindStringSubmatchIndex(content)
}

func (ar anchoredRegexp) SubexpNames() []string {
	return ar.re.SubexpNames()
}

func (ar anchoredRegexp) String() string {
	return "/" + ar.expr + "/"
}

// Literal returns a Matcher accepting exactly s at the cursor.
func Literal(s string) Matcher {
	return fixedString(s)
}

// CompileRegexp parses a regular expression in the RE2 syntax accepted by package regexp and returns a Matcher
// testing it at the cursor only.
func CompileRegexp(expr string) (Matcher, error) {
	// Compiling expr on its own first rejects inputs like "a)|(b" which would escape the anchoring group.
	if _, err := regexp.Compile(expr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	re, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return anchoredRegexp{expr: expr, re: re}, nil
}

// Regexp is like CompileRegexp but panics if the expression cannot be parsed. It simplifies declaring rules in
// package-level variables.
func Regexp(expr string) Matcher {
	m, err := CompileRegexp(expr)
	if err != nil {
		panic(err)
	}
	return m
}

// Reports whether m may match without consuming input somewhere in the input, not only at its end.
func matchesEmpty(m Matcher) bool {
	if ar, ok := m.(anchoredRegexp); ok {
		if re, err := syntax.Parse(ar.expr, syntax.Perl); err == nil {
			return canMatchEmpty(re)
		}
	}
	indices := m.FindPrefixIndex("")
	return len(indices) >= 2 && indices[0] == 0
}

// Assertions are assumed to hold, so \b or ^ alone count as empty matches.
func canMatchEmpty(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpStar, syntax.OpQuest,
		syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return true
	case syntax.OpLiteral:
		return len(re.Rune) == 0
	case syntax.OpCapture, syntax.OpPlus:
		return canMatchEmpty(re.Sub[0])
	case syntax.OpRepeat:
		return re.Min == 0 || canMatchEmpty(re.Sub[0])
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if !canMatchEmpty(sub) {
				return false
			}
		}
		return true
	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if canMatchEmpty(sub) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Number of captures of m, if known.
func numCaptures(m Matcher) (int, bool) {
	switch m := m.(type) {
	case fixedString:
		return 0, true
	case namedMatcher:
		return len(m.SubexpNames()) - 1, true
	default:
		return 0, false
	}
}
