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
	"strings"
	"unicode/utf8"
)

// Position in the tokenized input. Offset is a 0-based byte index; Line and Column are 1-based, which is natural for
// humans. Column counts runes, not bytes.
type Cursor struct {
	Offset       int
	Line, Column int
}

// Initial cursor position, at the beginning of the input.
var CursorInit = Cursor{Line: 1, Column: 1}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// Return a new Cursor advanced by the given text. Assumes the current cursor points at the beginning of text and
// returns the cursor position right after it.
//
// Newlines in text increment the line number and reset the column; other characters increment the column.
func (c Cursor) AdvancedBy(text string) Cursor {
	newlinesCount := strings.Count(text, "\n")
	tailBegin := 1 + strings.LastIndex(text, "\n")
	tailLength := utf8.RuneCountInString(text[tailBegin:])

	c.Offset += len(text)
	if newlinesCount == 0 {
		c.Column += tailLength
	} else {
		c.Line += newlinesCount
		c.Column = 1 + tailLength
	}

	return c
}
