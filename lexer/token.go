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

import "fmt"

// Token is a typed span of the input. Text is a slice of the input string unless an action emitted its own text;
// Location is where the token starts in the input.
type Token[T comparable] struct {
	Type     T
	Text     string
	Location Cursor
}

func (t Token[T]) String() string {
	return fmt.Sprintf("%v %v %q", t.Location, t.Type, t.Text)
}
