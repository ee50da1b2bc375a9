// Copyright 2025 Naren Yellavula
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
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

const (
	TokenizerPlain = "plain"
	TokenizerShell = "shell"
)

// Command is one tokenized interpreter line.
type Command struct {
	Name string
	// Rest is everything after the name; single-argument commands use it
	// whole, so a find key may contain spaces.
	Rest    string
	HasRest bool
	// Key and Value split Rest at its first separator for two-argument
	// commands; Value keeps any further separators.
	Key      string
	Value    string
	HasValue bool
}

// Tokenizer turns an input line into a Command.
type Tokenizer func(line string) (Command, error)

func newTokenizer(mode string) (Tokenizer, error) {
	switch mode {
	case TokenizerPlain:
		return tokenizePlain, nil
	case TokenizerShell:
		return tokenizeShell, nil
	}
	return nil, fmt.Errorf("unknown tokenizer %q", mode)
}

// tokenizePlain splits on single spaces: name, then key, then the rest of
// the line as value.
func tokenizePlain(line string) (Command, error) {
	var cmd Command
	cmd.Name, cmd.Rest, cmd.HasRest = strings.Cut(line, " ")
	if cmd.HasRest {
		cmd.Key, cmd.Value, cmd.HasValue = strings.Cut(cmd.Rest, " ")
	}
	return cmd, nil
}

// tokenizeShell splits with shell quoting rules, so quoted keys and values
// may contain spaces. Unquoted words after the key are joined into the value.
func tokenizeShell(line string) (Command, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return Command{}, fmt.Errorf("failed to parse command %q: %w", line, err)
	}

	var cmd Command
	if len(words) == 0 {
		return cmd, nil
	}
	cmd.Name = words[0]
	if len(words) > 1 {
		cmd.Rest, cmd.HasRest = strings.Join(words[1:], " "), true
		cmd.Key = words[1]
	}
	if len(words) > 2 {
		cmd.Value, cmd.HasValue = strings.Join(words[2:], " "), true
	}
	return cmd, nil
}
