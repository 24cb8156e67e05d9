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

// Package assignment defines a minimal lexer for lines of numbers and assignments like "a = 4". It is the smallest
// grammar exercising mixins, state transitions and capture emission.
package assignment

import "github.com/EngFlow/statelex/lexer"

type TokenType int

const (
	TokenType_Error TokenType = iota
	TokenType_Text
	TokenType_Number
	TokenType_Identifier
	TokenType_Equals
)

func (t TokenType) String() string {
	switch t {
	case TokenType_Error:
		return "error"
	case TokenType_Text:
		return "text"
	case TokenType_Number:
		return "number"
	case TokenType_Identifier:
		return "identifier"
	case TokenType_Equals:
		return "equals"
	default:
		return "unknown token"
	}
}

type Token = lexer.Token[TokenType]

const (
	StateRoot       lexer.StateID = "root"
	StateWhitespace lexer.StateID = "whitespace"
	// Entered after an identifier, expects the rest of the assignment.
	StateAssignment lexer.StateID = "assignment"
)

var Definition = lexer.MustDefinition(TokenType_Error, StateRoot, map[lexer.StateID]lexer.State[TokenType]{
	StateRoot: {
		lexer.Mixin[TokenType](StateWhitespace),
		lexer.Emit(lexer.Regexp(`[0-9]+`), TokenType_Number),
		lexer.EmitThen(lexer.Regexp(`[a-zA-Z_][a-zA-Z0-9_]*`), TokenType_Identifier, StateAssignment),
	},
	StateWhitespace: {
		lexer.Emit(lexer.Regexp(`[\s\n]+`), TokenType_Text),
	},
	StateAssignment: {
		lexer.OnMatch(lexer.Regexp(`(\s*)(=)(\s*)([0-9]+)`), lexer.Sequence(
			lexer.EmitCapturesAs(TokenType_Text, TokenType_Equals, TokenType_Text, TokenType_Number),
			lexer.PopState[TokenType](),
		)),
	},
})

// Tokenize splits input into tokens. It never fails; unexpected characters become TokenType_Error tokens.
func Tokenize(input string) []Token {
	return Definition.Tokenize(input)
}
