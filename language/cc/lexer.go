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

// Package cc defines a lexer for C/C++ source code, as seen by the preprocessor. It breaks the input into a sequence
// of tokens, which can then be processed by a parser.
//
// Tokens are classified into several types (for e.g., easier filtering comments or whitespace) and carry their
// location in the source code (for accurate error reporting).
package cc

import (
	"iter"
	"strings"

	"github.com/EngFlow/statelex/internal/collections"
	"github.com/EngFlow/statelex/lexer"
)

var Definition = lexer.MustDefinition(TokenType_Error, stateRoot, states)

// Return all tokens extracted from the source code.
func Tokenize(sourceCode string) []Token {
	return Definition.Tokenize(sourceCode)
}

// Return a sequence of tokens extracted lazily from the source code.
func AllTokens(sourceCode string) iter.Seq[Token] {
	return lexer.NewContext(sourceCode, Definition).AllTokens()
}

// Drop whitespace, line continuations and comments. Newlines are kept, because they terminate directives.
func WithoutTrivia(tokens []Token) []Token {
	return collections.FilterSlice(tokens, func(token Token) bool { return !token.Type.IsTrivia() })
}

// Return the name of a preprocessor directive, e.g. "define" for "#  define". Returns an empty string for other
// tokens.
func DirectiveName(token Token) string {
	if !token.Type.IsPreprocessorDirective() {
		return ""
	}
	return strings.TrimLeft(strings.TrimPrefix(token.Text, "#"), "\t\v\f\r ")
}

// Include is a path referenced by #include or #include_next.
type Include struct {
	Path string
	// Whether the path was enclosed in angle brackets.
	System bool
	// Whether the directive was #include_next.
	Next     bool
	Location lexer.Cursor
}

// Return the include directives of the source code in order of appearance. Computed includes, like
// #include HEADER, are skipped.
func ExtractIncludes(sourceCode string) []Include {
	var result []Include
	var pending *Include
	for token := range AllTokens(sourceCode) {
		switch {
		case token.Type == TokenType_PreprocessorInclude || token.Type == TokenType_PreprocessorIncludeNext:
			pending = &Include{Next: token.Type == TokenType_PreprocessorIncludeNext, Location: token.Location}
		case pending == nil || token.Type.IsTrivia():
			continue
		case token.Type == TokenType_PreprocessorSystemPath:
			pending.Path, pending.System = strings.Trim(token.Text, "<>"), true
			result = append(result, *pending)
			pending = nil
		case token.Type == TokenType_LiteralString:
			pending.Path = strings.Trim(token.Text, `"`)
			result = append(result, *pending)
			pending = nil
		default:
			pending = nil
		}
	}
	return result
}
