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
package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EngFlow/statelex/lexer"
)

type typedText struct {
	Type TokenType
	Text string
}

func typedTexts(tokens []Token) []typedText {
	var result []typedText
	for _, token := range tokens {
		result = append(result, typedText{Type: token.Type, Text: token.Text})
	}
	return result
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		input    string
		expected []typedText
	}{
		{
			input:    " ",
			expected: []typedText{{TokenType_Text, " "}},
		},
		{
			input:    "56",
			expected: []typedText{{TokenType_Number, "56"}},
		},
		{
			input: "ab = 519",
			expected: []typedText{
				{TokenType_Identifier, "ab"},
				{TokenType_Text, " "},
				{TokenType_Equals, "="},
				{TokenType_Text, " "},
				{TokenType_Number, "519"},
			},
		},
		{
			// the space and "b" are rejected by the assignment state one character at a time
			input: "a b = 519",
			expected: []typedText{
				{TokenType_Identifier, "a"},
				{TokenType_Error, " "},
				{TokenType_Error, "b"},
				{TokenType_Text, " "},
				{TokenType_Equals, "="},
				{TokenType_Text, " "},
				{TokenType_Number, "519"},
			},
		},
		{
			input:    "=",
			expected: []typedText{{TokenType_Error, "="}},
		},
		{
			input: "a = 4\nb = 5\n6\n\nc=8",
			expected: []typedText{
				{TokenType_Identifier, "a"},
				{TokenType_Text, " "},
				{TokenType_Equals, "="},
				{TokenType_Text, " "},
				{TokenType_Number, "4"},
				{TokenType_Text, "\n"},
				{TokenType_Identifier, "b"},
				{TokenType_Text, " "},
				{TokenType_Equals, "="},
				{TokenType_Text, " "},
				{TokenType_Number, "5"},
				{TokenType_Text, "\n"},
				{TokenType_Number, "6"},
				{TokenType_Text, "\n\n"},
				{TokenType_Identifier, "c"},
				{TokenType_Equals, "="},
				{TokenType_Number, "8"},
			},
		},
		{
			input:    "",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, typedTexts(Tokenize(tc.input)), "input: %q", tc.input)
	}
}

func TestTokenLocations(t *testing.T) {
	expected := []Token{
		{Type: TokenType_Identifier, Text: "x", Location: lexer.Cursor{Offset: 0, Line: 1, Column: 1}},
		{Type: TokenType_Equals, Text: "=", Location: lexer.Cursor{Offset: 1, Line: 1, Column: 2}},
		{Type: TokenType_Number, Text: "1", Location: lexer.Cursor{Offset: 2, Line: 1, Column: 3}},
		{Type: TokenType_Text, Text: "\n", Location: lexer.Cursor{Offset: 3, Line: 1, Column: 4}},
		{Type: TokenType_Number, Text: "22", Location: lexer.Cursor{Offset: 4, Line: 2, Column: 1}},
	}
	assert.Equal(t, expected, Tokenize("x=1\n22"))
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "identifier", TokenType_Identifier.String())
	assert.Equal(t, "error", Definition.ErrorType().String())
	assert.Equal(t, "unknown token", TokenType(42).String())
}
