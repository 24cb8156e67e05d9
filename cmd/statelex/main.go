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
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/EngFlow/statelex/internal/collections"
	"github.com/EngFlow/statelex/language/assignment"
	"github.com/EngFlow/statelex/language/cc"
	"github.com/EngFlow/statelex/lexer"
)

// Command tokenizing source files with one of the bundled lexer definitions. Arguments are glob patterns (with **
// support) of the files to tokenize; files ending with .xz are decompressed on the fly. Unexpected characters never
// stop the command, they are reported as error tokens.
func main() {
	cfg := parseFlags()
	if flag.NArg() == 0 {
		flag.Usage()
		log.Fatalf("Program requires at least 1 argument - a glob pattern of files to tokenize. Flags needs to be defined before arguments")
	}

	status, err := run(cfg, flag.Args(), os.Stdout)
	if err != nil {
		log.Fatalf("Tokenizing failed: %v", err)
	}
	os.Exit(status)
}

// =====================================================================================
// Config & CLI
// =====================================================================================

type Config struct {
	language    string
	format      string
	outputPath  string
	verbose     bool
	failOnError bool
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.language, "lang", "cc", "Lexer definition, one of: "+strings.Join(slices.Sorted(maps.Keys(languages)), ", "))
	flag.StringVar(&cfg.format, "format", "text", "Output format, one of: "+strings.Join(slices.Sorted(maps.Keys(formats)), ", ")+
		" (json replaces invalid UTF-8 with U+FFFD)")
	flag.StringVar(&cfg.outputPath, "o", "", "Output file path (default stdout)")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&cfg.failOnError, "fail-on-error", false, "Exit with status 2 when any error token was produced")
	flag.Parse()
	return cfg
}

// =====================================================================================
// Languages
// =====================================================================================

// Single token prepared for output, independent of the token type of a particular definition.
type record struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
	Type   string `json:"type"`
	Text   string `json:"text"`
	Error  bool   `json:"error,omitempty"`
}

type tokenizer func(sourceCode string) []record

var languages = map[string]tokenizer{
	"assignment": recordsOf(assignment.Definition),
	"cc":         recordsOf(cc.Definition),
}

func recordsOf[T interface {
	comparable
	fmt.Stringer
}](def *lexer.Definition[T]) tokenizer {
	return func(sourceCode string) []record {
		return collections.MapSlice(def.Tokenize(sourceCode), func(token lexer.Token[T]) record {
			return record{
				Line:   token.Location.Line,
				Column: token.Location.Column,
				Offset: token.Location.Offset,
				Type:   token.Type.String(),
				Text:   token.Text,
				Error:  token.Type == def.ErrorType(),
			}
		})
	}
}

// =====================================================================================
// App
// =====================================================================================

// Tokenize all files matching patterns and write their tokens to stdout or to cfg.outputPath. Returns the exit
// status of the command.
func run(cfg Config, patterns []string, stdout io.Writer) (status int, err error) {
	tokenize, ok := languages[cfg.language]
	if !ok {
		return 1, fmt.Errorf("unknown language %q", cfg.language)
	}
	write, ok := formats[cfg.format]
	if !ok {
		return 1, fmt.Errorf("unknown output format %q", cfg.format)
	}

	files, err := expandPatterns(patterns)
	if err != nil {
		return 1, err
	}

	if cfg.outputPath != "" {
		file, createErr := os.Create(cfg.outputPath)
		if createErr != nil {
			return 1, fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() { err = errors.Join(err, file.Close()) }()
		stdout = file
	}
	out := bufio.NewWriter(stdout)

	errorTokens := 0
	for _, path := range files {
		sourceCode, err := readSource(path)
		if err != nil {
			return 1, err
		}

		records := tokenize(sourceCode)
		fileErrors := 0
		for i := range records {
			records[i].File = path
			if records[i].Error {
				fileErrors++
			}
		}
		errorTokens += fileErrors
		if cfg.verbose {
			log.Printf("Tokenized %v: %d tokens, %d unexpected characters", path, len(records), fileErrors)
		}

		if err := write(out, records); err != nil {
			return 1, fmt.Errorf("failed to write tokens of %s: %w", path, err)
		}
	}

	if err := out.Flush(); err != nil {
		return 1, fmt.Errorf("failed to write output: %w", err)
	}
	if cfg.failOnError && errorTokens > 0 {
		return 2, nil
	}
	return 0, nil
}
