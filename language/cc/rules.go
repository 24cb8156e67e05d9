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

const (
	stateRoot lexer.StateID = "root"
	// Whitespace and comments, accepted everywhere in root.
	stateTrivia lexer.StateID = "trivia"
	// Inside /* ... */.
	stateComment lexer.StateID = "comment"
	// After #include, until the path or the end of the line.
	stateInclude lexer.StateID = "include"
)

var (
	newlineMatcher       = lexer.Literal("\n")
	whitespaceMatcher    = lexer.Regexp(`[\t\v\f\r ]+`)
	continueLineMatcher  = lexer.Regexp(`\\[\t\v\f\r ]*\n`)
	singleLineComment    = lexer.Regexp(`//[^\n]*`)
	stringLiteralMatcher = lexer.Regexp(`"(?:[^"\\\n]|\\.)*"`)
)

func directiveMatcher(directiveName string) lexer.Matcher {
	return lexer.Regexp(`#[\t\v\f\r ]*` + directiveName + `\b`)
}

// Order of rules matters when multiple rules can match the same input. E.g. "defined" matches both
// PreprocessorDefined and Identifier, so the rule for TokenType_PreprocessorDefined must come first. Likewise
// two-character operators precede their one-character prefixes.
var states = map[lexer.StateID]lexer.State[TokenType]{
	stateRoot: {
		lexer.Mixin[TokenType](stateTrivia),
		lexer.EmitThen(directiveMatcher("include_next"), TokenType_PreprocessorIncludeNext, stateInclude),
		lexer.EmitThen(directiveMatcher("include"), TokenType_PreprocessorInclude, stateInclude),
		lexer.Emit(directiveMatcher("define"), TokenType_PreprocessorDefine),
		lexer.Emit(directiveMatcher("elif"), TokenType_PreprocessorElif),
		lexer.Emit(directiveMatcher("elifdef"), TokenType_PreprocessorElifdef),
		lexer.Emit(directiveMatcher("elifndef"), TokenType_PreprocessorElifndef),
		lexer.Emit(directiveMatcher("else"), TokenType_PreprocessorElse),
		lexer.Emit(directiveMatcher("endif"), TokenType_PreprocessorEndif),
		lexer.Emit(directiveMatcher("if"), TokenType_PreprocessorIf),
		lexer.Emit(directiveMatcher("ifdef"), TokenType_PreprocessorIfdef),
		lexer.Emit(directiveMatcher("ifndef"), TokenType_PreprocessorIfndef),
		lexer.Emit(directiveMatcher("undef"), TokenType_PreprocessorUndef),
		lexer.Emit(lexer.Regexp(`defined\b`), TokenType_PreprocessorDefined),
		lexer.Emit(lexer.Regexp(`(?i)[a-z_][a-z0-9_]*`), TokenType_Identifier),
		lexer.Emit(lexer.Regexp(`(?i)0x[0-9a-f]+|0b[01]+|0[0-7]*|[1-9][0-9]*`), TokenType_LiteralInteger),
		lexer.Emit(stringLiteralMatcher, TokenType_LiteralString),
		lexer.Emit(lexer.Literal("=="), TokenType_OperatorEqual),
		lexer.Emit(lexer.Literal(">="), TokenType_OperatorGreaterOrEqual),
		lexer.Emit(lexer.Literal("<="), TokenType_OperatorLessOrEqual),
		lexer.Emit(lexer.Literal("&&"), TokenType_OperatorLogicalAnd),
		lexer.Emit(lexer.Literal("||"), TokenType_OperatorLogicalOr),
		lexer.Emit(lexer.Literal("!="), TokenType_OperatorNotEqual),
		lexer.Emit(lexer.Literal(">"), TokenType_OperatorGreater),
		lexer.Emit(lexer.Literal("<"), TokenType_OperatorLess),
		lexer.Emit(lexer.Literal("!"), TokenType_OperatorLogicalNot),
		lexer.Emit(lexer.Literal("{"), TokenType_BraceLeft),
		lexer.Emit(lexer.Literal("}"), TokenType_BraceRight),
		lexer.Emit(lexer.Literal("["), TokenType_BracketLeft),
		lexer.Emit(lexer.Literal("]"), TokenType_BracketRight),
		lexer.Emit(lexer.Literal(","), TokenType_Comma),
		lexer.Emit(lexer.Literal("("), TokenType_ParenthesisLeft),
		lexer.Emit(lexer.Literal(")"), TokenType_ParenthesisRight),
		lexer.Emit(lexer.Literal(";"), TokenType_Semicolon),
		lexer.Emit(lexer.Regexp(`\S`), TokenType_Unassigned),
	},
	stateTrivia: {
		lexer.Emit(newlineMatcher, TokenType_Newline),
		lexer.Emit(whitespaceMatcher, TokenType_Whitespace),
		lexer.Emit(continueLineMatcher, TokenType_ContinueLine),
		lexer.Emit(singleLineComment, TokenType_CommentSingleLine),
		lexer.EmitThen(lexer.Literal("/*"), TokenType_CommentMultiLine, stateComment),
	},
	stateComment: {
		lexer.EmitPop(lexer.Literal("*/"), TokenType_CommentMultiLine),
		lexer.Emit(lexer.Regexp(`[^*]+|\*`), TokenType_CommentMultiLine),
	},
	stateInclude: {
		lexer.Emit(whitespaceMatcher, TokenType_Whitespace),
		lexer.Emit(continueLineMatcher, TokenType_ContinueLine),
		lexer.EmitThen(lexer.Literal("/*"), TokenType_CommentMultiLine, stateComment),
		lexer.Emit(singleLineComment, TokenType_CommentSingleLine),
		lexer.EmitPop(lexer.Regexp(`<[\w\-+./]+>`), TokenType_PreprocessorSystemPath),
		lexer.EmitPop(stringLiteralMatcher, TokenType_LiteralString),
		// computed include, e.g. #include HEADER_NAME
		lexer.EmitPop(lexer.Regexp(`(?i)[a-z_][a-z0-9_]*`), TokenType_Identifier),
		lexer.EmitPop(newlineMatcher, TokenType_Newline),
	},
}
