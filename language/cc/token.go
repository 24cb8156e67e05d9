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
package cc

import "github.com/EngFlow/statelex/lexer"

type TokenType int

const (
	// Character which no rule of the current state accepts, e.g. a stray quote after #include.
	TokenType_Error TokenType = iota

	// Every complete token that is not one of the other types.
	//
	// This is a fallback type. The definition covers only a subset of C/C++ syntax. Every non-whitespace character
	// without its dedicated TokenType is classified as Unassigned.
	TokenType_Unassigned

	// Single newline character '\n'. Newlines require special handling because they mark the end of a preprocessor
	// directive.
	TokenType_Newline

	// One or more whitespace characters, other than newlines.
	TokenType_Whitespace

	// Line continuation sequence, a backslash '\' followed by a newline character '\n' (with optional whitespace
	// characters between).
	TokenType_ContinueLine

	// Preprocessor system include path, enclosed in angle brackets, e.g. <stdio.h>.
	TokenType_PreprocessorSystemPath

	// The special keyword "defined", used in preprocessor conditional expressions.
	TokenType_PreprocessorDefined

	// Identifier or keyword, a letter or underscore followed by letters, digits or underscores.
	TokenType_Identifier

	// Integer literal in base decimal, hexadecimal, octal or binary, e.g. 123, 0x1A3F, 0755, 0b1101.
	TokenType_LiteralInteger

	// String literal, enclosed in double quotes, e.g. "example".
	TokenType_LiteralString

	// Single-line comment, starting with // and ending at the end of the line.
	TokenType_CommentSingleLine

	// Part of a multi-line comment. The opening /*, the closing */ and the text between are separate tokens.
	TokenType_CommentMultiLine

	// Preprocessor directives, a hash '#' followed by the directive name (with optional whitespace characters
	// between).

	TokenType_PreprocessorDefine
	TokenType_PreprocessorElif
	TokenType_PreprocessorElifdef
	TokenType_PreprocessorElifndef
	TokenType_PreprocessorElse
	TokenType_PreprocessorEndif
	TokenType_PreprocessorIf
	TokenType_PreprocessorIfdef
	TokenType_PreprocessorIfndef
	TokenType_PreprocessorInclude
	TokenType_PreprocessorIncludeNext
	TokenType_PreprocessorUndef

	// Subset of expression operators.

	TokenType_OperatorEqual
	TokenType_OperatorGreater
	TokenType_OperatorGreaterOrEqual
	TokenType_OperatorLess
	TokenType_OperatorLessOrEqual
	TokenType_OperatorLogicalAnd
	TokenType_OperatorLogicalNot
	TokenType_OperatorLogicalOr
	TokenType_OperatorNotEqual

	// Subset of symbols separating subexpressions.

	TokenType_BraceLeft
	TokenType_BraceRight
	TokenType_BracketLeft
	TokenType_BracketRight
	TokenType_Comma
	TokenType_ParenthesisLeft
	TokenType_ParenthesisRight
	TokenType_Semicolon
)

var tokenTypeNames = map[TokenType]string{
	TokenType_Error:                   "unexpected character",
	TokenType_Unassigned:              "unassigned",
	TokenType_Newline:                 "newline",
	TokenType_Whitespace:              "whitespace",
	TokenType_ContinueLine:            `line continuation backslash '\'`,
	TokenType_PreprocessorSystemPath:  "<system_include_path>",
	TokenType_PreprocessorDefined:     "keyword 'defined'",
	TokenType_Identifier:              "identifier",
	TokenType_LiteralInteger:          "integer literal",
	TokenType_LiteralString:           `"string literal"`,
	TokenType_CommentSingleLine:       "single-line comment",
	TokenType_CommentMultiLine:        "multi-line comment",
	TokenType_PreprocessorDefine:      "directive '#define'",
	TokenType_PreprocessorElif:        "directive '#elif'",
	TokenType_PreprocessorElifdef:     "directive '#elifdef'",
	TokenType_PreprocessorElifndef:    "directive '#elifndef'",
	TokenType_PreprocessorElse:        "directive '#else'",
	TokenType_PreprocessorEndif:       "directive '#endif'",
	TokenType_PreprocessorIf:          "directive '#if'",
	TokenType_PreprocessorIfdef:       "directive '#ifdef'",
	TokenType_PreprocessorIfndef:      "directive '#ifndef'",
	TokenType_PreprocessorInclude:     "directive '#include'",
	TokenType_PreprocessorIncludeNext: "directive '#include_next'",
	TokenType_PreprocessorUndef:       "directive '#undef'",
	TokenType_OperatorEqual:           "operator '=='",
	TokenType_OperatorGreater:         "operator '>'",
	TokenType_OperatorGreaterOrEqual:  "operator '>='",
	TokenType_OperatorLess:            "operator '<'",
	TokenType_OperatorLessOrEqual:     "operator '<='",
	TokenType_OperatorLogicalAnd:      "operator '&&'",
	TokenType_OperatorLogicalNot:      "operator '!'",
	TokenType_OperatorLogicalOr:       "operator '||'",
	TokenType_OperatorNotEqual:        "operator '!='",
	TokenType_BraceLeft:               "symbol '{'",
	TokenType_BraceRight:              "symbol '}'",
	TokenType_BracketLeft:             "symbol '['",
	TokenType_BracketRight:            "symbol ']'",
	TokenType_Comma:                   "symbol ','",
	TokenType_ParenthesisLeft:         "symbol '('",
	TokenType_ParenthesisRight:        "symbol ')'",
	TokenType_Semicolon:               "symbol ';'",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "unknown token"
}

func (t TokenType) IsPreprocessorDirective() bool {
	return t >= TokenType_PreprocessorDefine && t <= TokenType_PreprocessorUndef
}

// Tokens which carry no meaning for a parser.
func (t TokenType) IsTrivia() bool {
	switch t {
	case TokenType_Whitespace, TokenType_ContinueLine, TokenType_CommentSingleLine, TokenType_CommentMultiLine:
		return true
	default:
		return false
	}
}

type Token = lexer.Token[TokenType]
