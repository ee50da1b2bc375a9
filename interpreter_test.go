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
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// discardLogger is a logger that drops everything.
func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestInterpreter(t *testing.T, mutate func(*Config)) (*Interpreter, *bytes.Buffer) {
	t.Helper()
	config := defaultConfig
	if mutate != nil {
		mutate(&config)
	}
	var out bytes.Buffer
	in, err := NewInterpreter(NewStore(&config), &out, discardLogger(), &config)
	if err != nil {
		t.Fatalf("NewInterpreter failed: %v", err)
	}
	return in, &out
}

type InterpreterTestCase struct {
	Name     string
	Script   string
	Expected string
}

func TestInterpreterScripts(t *testing.T) {
	testCases := []InterpreterTestCase{
		{
			Name:     "Find hit and miss",
			Script:   "insert 5 a\ninsert 3 b\ninsert 8 c\nfind 5\nfind 9\n",
			Expected: "5 a\n\n",
		},
		{
			Name:     "Duplicate keys in insertion order",
			Script:   "insert 5 a\ninsert 5 b\nfind 5\n",
			Expected: "5 a\n5 b\n",
		},
		{
			Name:     "Delete one of two duplicates",
			Script:   "insert 5 a\ninsert 5 b\ndelete 5 a\nfind 5\n",
			Expected: "5 b\n",
		},
		{
			Name:     "Insert then delete leaves nothing",
			Script:   "insert 1 x\ndelete 1 x\nfind 1\nprint\n",
			Expected: "\n",
		},
		{
			Name:     "Value keeps its spaces",
			Script:   "insert city new york\nfind city\ndelete city new york\nfind city\n",
			Expected: "city new york\n\n",
		},
		{
			Name:     "Missing value is ignored",
			Script:   "insert lonely\ndelete lonely\nfind lonely\n",
			Expected: "\n",
		},
		{
			Name:     "Blank lines are skipped",
			Script:   "\ninsert k v\n   \nfind k\n",
			Expected: "k v\n",
		},
		{
			Name:     "Print dumps sideways",
			Script:   "insert 5 a\ninsert 3 b\ninsert 8 c\nprint\n",
			Expected: "       R 8 c\n   B 5 a\n       R 3 b\n",
		},
		{
			Name:     "Quit stops further commands",
			Script:   "insert k v\nquit\nfind k\n",
			Expected: "",
		},
		{
			Name:     "Unknown command stops",
			Script:   "insert k v\nfrobnicate\nfind k\n",
			Expected: "",
		},
		{
			Name:     "Verify and stats",
			Script:   "insert b 1\ninsert a 2\nverify\nstats\n",
			Expected: "ok\nsize=2 height=2 min=\"a\" max=\"b\" cached=0\n",
		},
		{
			Name:     "Windows line endings",
			Script:   "insert k v\r\nfind k\r\n",
			Expected: "k v\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			in, out := newTestInterpreter(t, nil)
			if err := in.Run(strings.NewReader(tc.Script)); err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			if got := out.String(); got != tc.Expected {
				t.Errorf("output mismatch\nexpected: %q\ngot:      %q", tc.Expected, got)
			}
			if !in.Stopped() {
				t.Errorf("interpreter should be stopped after Run")
			}
		})
	}
}

func TestInterpreterShellTokenizer(t *testing.T) {
	in, out := newTestInterpreter(t, func(c *Config) {
		c.Interpreter.Tokenizer = TokenizerShell
	})

	script := `insert "new york" "big apple"
insert "new york" gotham city
find new york
delete "new york" "big apple"
find "new york"
insert "unterminated value
`
	if err := in.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	expected := "new york big apple\nnew york gotham city\nnew york gotham city\n"
	if got := out.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestInterpreterPrompt(t *testing.T) {
	in, out := newTestInterpreter(t, func(c *Config) {
		c.Interpreter.Prompt = "> "
	})
	if err := in.Run(strings.NewReader("insert k v\nfind k\n")); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	expected := "> > k v\n> "
	if got := out.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestInterpreterColorOutputNotATerminal(t *testing.T) {
	// A bytes.Buffer is not a terminal, so the palette renders without escapes
	// and the layout matches the plain dump.
	in, out := newTestInterpreter(t, func(c *Config) {
		c.Output.Color = true
	})
	if err := in.Run(strings.NewReader("insert 5 a\ninsert 3 b\ninsert 8 c\nprint\n")); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	expected := "       R 8 c\n   B 5 a\n       R 3 b\n"
	if got := out.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestInterpreterOutputError(t *testing.T) {
	config := defaultConfig
	in, err := NewInterpreter(NewStore(&config), failingWriter{}, discardLogger(), &config)
	if err != nil {
		t.Fatalf("NewInterpreter failed: %v", err)
	}

	cont, err := in.Execute("find anything")
	if err == nil {
		t.Fatal("expected an error when output cannot be written")
	}
	if cont {
		t.Error("expected the interpreter to stop on output failure")
	}
}

func TestNewInterpreterRejectsUnknownTokenizer(t *testing.T) {
	config := defaultConfig
	config.Interpreter.Tokenizer = "regex"
	if _, err := NewInterpreter(NewStore(&config), &bytes.Buffer{}, discardLogger(), &config); err == nil {
		t.Error("expected error for unknown tokenizer")
	}
}
