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
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

type formatter func(w io.Writer, records []record) error

var formats = map[string]formatter{
	"text":  writeText,
	"json":  writeJSON,
	"proto": writeProto,
}

// One token per line: location, type and the quoted text.
func writeText(w io.Writer, records []record) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s:%d:%d\t%s\t%q\n", r.File, r.Line, r.Column, r.Type, r.Text); err != nil {
			return err
		}
	}
	return nil
}

// JSON lines, one object per token. JSON strings hold valid UTF-8 only, so encoding/json replaces every invalid byte,
// e.g. of an error token recovered from a broken file, with U+FFFD. The text and proto formats keep the bytes intact.
func writeJSON(w io.Writer, records []record) error {
	encoder := json.NewEncoder(w)
	for _, r := range records {
		if err := encoder.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// Field numbers of the Token message:
//
//	message Token {
//	  string file = 1;
//	  int64 line = 2;
//	  int64 column = 3;
//	  int64 offset = 4;
//	  string type = 5;
//	  bytes text = 6;
//	  bool error = 7;
//	}
const (
	fieldFile protowire.Number = iota + 1
	fieldLine
	fieldColumn
	fieldOffset
	fieldType
	fieldText
	fieldError
)

func appendRecord(b []byte, r record) []byte {
	b = protowire.AppendTag(b, fieldFile, protowire.BytesType)
	b = protowire.AppendString(b, r.File)
	b = protowire.AppendTag(b, fieldLine, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Line))
	b = protowire.AppendTag(b, fieldColumn, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Column))
	b = protowire.AppendTag(b, fieldOffset, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Offset))
	b = protowire.AppendTag(b, fieldType, protowire.BytesType)
	b = protowire.AppendString(b, r.Type)
	b = protowire.AppendTag(b, fieldText, protowire.BytesType)
	b = protowire.AppendString(b, r.Text)
	if r.Error {
		b = protowire.AppendTag(b, fieldError, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b
}

// Stream of varint length-delimited Token messages, the framing used by protobuf writeDelimitedTo.
func writeProto(w io.Writer, records []record) error {
	var buf []byte
	for _, r := range records {
		buf = protowire.AppendBytes(buf[:0], appendRecord(nil, r))
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
