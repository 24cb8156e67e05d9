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

// Match is the result of a successful rule pattern test at the cursor. All texts returned by Match are slices of the
// original input, never copies.
type Match struct {
	input   string
	offset  int   // absolute position of the cursor when the match was found
	indices []int // relative to offset
	names   []string
}

// Capture is one optional capture slot of a Match. Present is false when the group did not participate in the match,
// which is different from a group that matched the empty string.
type Capture struct {
	Text string
	// Byte offset of Text in the input.
	Start   int
	Present bool
}

// Start returns the byte offset of the match in the input. It is always the cursor position before the match.
func (m Match) Start() int { return m.offset + m.indices[0] }

// End returns the byte offset right after the match.
func (m Match) End() int { return m.offset + m.indices[1] }

// Len returns the number of bytes consumed by the match. Zero-width matches have Len() == 0.
func (m Match) Len() int { return m.indices[1] - m.indices[0] }

// Text returns the whole matched text.
func (m Match) Text() string { return m.input[m.Start():m.End()] }

// NumCaptures returns the number of capture slots, not counting the whole match.
func (m Match) NumCaptures() int { return len(m.indices)/2 - 1 }

// Capture returns the text of the i-th capture (1-based, like regexp) and whether it participated in the match.
func (m Match) Capture(i int) (string, bool) {
	c := m.capture(i)
	return c.Text, c.Present
}

// Named returns the text of the first capture called name, if the pattern names its captures.
func (m Match) Named(name string) (string, bool) {
	for i, n := range m.names {
		if i > 0 && n == name {
			return m.Capture(i)
		}
	}
	return "", false
}

// Captures returns all capture slots in order.
func (m Match) Captures() []Capture {
	captures := make([]Capture, m.NumCaptures())
	for i := range captures {
		captures[i] = m.capture(i + 1)
	}
	return captures
}

func (m Match) capture(i int) Capture {
	if i < 1 || i > m.NumCaptures() {
		return Capture{}
	}
	begin, end := m.indices[2*i], m.indices[2*i+1]
	if begin < 0 || end < 0 {
		return Capture{}
	}
	return Capture{Text: m.input[m.offset+begin : m.offset+end], Start: m.offset + begin, Present: true}
}
