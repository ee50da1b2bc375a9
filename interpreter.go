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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Interpreter executes line commands against a Store.
//
//	insert <key> <value>   add an entry; value is the rest of the line
//	find <key>             print "key value" per match, or an empty line
//	delete <key> <value>   remove every exact match
//	print                  dump the tree sideways
//	stats                  print size and height
//	verify                 check the tree invariants
//	quit                   tear down and stop
//
// Any other command also tears the store down and stops.
type Interpreter struct {
	store    *Store
	out      io.Writer
	log      logrus.FieldLogger
	tokenize Tokenizer
	palette  *Palette // nil for plain output
	prompt   string
	stopped  bool
}

func NewInterpreter(store *Store, out io.Writer, log logrus.FieldLogger, config *Config) (*Interpreter, error) {
	tokenize, err := newTokenizer(config.Interpreter.Tokenizer)
	if err != nil {
		return nil, err
	}

	in := &Interpreter{
		store:    store,
		out:      out,
		log:      log,
		tokenize: tokenize,
		prompt:   config.Interpreter.Prompt,
	}
	if config.Output.Color {
		in.palette = NewPalette(out)
	}
	return in, nil
}

// Stopped reports whether a quit (or unknown) command has been executed.
func (in *Interpreter) Stopped() bool {
	return in.stopped
}

// Run executes every line of r until it is exhausted or a command stops the
// interpreter. Reaching the end of input tears the store down as well.
func (in *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	in.showPrompt()
	for scanner.Scan() {
		cont, err := in.Execute(scanner.Text())
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
		in.showPrompt()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}

	in.Close()
	return nil
}

func (in *Interpreter) showPrompt() {
	if in.prompt != "" {
		fmt.Fprint(in.out, in.prompt)
	}
}

// Close tears the store down and stops the interpreter. It is safe to call
// more than once.
func (in *Interpreter) Close() {
	if !in.stopped {
		in.store.Teardown()
		in.stopped = true
	}
}

// Execute runs one line. It returns false once the interpreter has stopped.
// Errors are reserved for output failures; malformed lines are logged and
// skipped.
func (in *Interpreter) Execute(line string) (bool, error) {
	if in.stopped {
		return false, nil
	}

	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return true, nil
	}

	cmd, err := in.tokenize(line)
	if err != nil {
		in.log.WithError(err).Warn("Ignoring line")
		return true, nil
	}
	log := in.log.WithField("cmd", cmd.Name)

	switch cmd.Name {
	case "insert":
		if !cmd.HasValue {
			log.Warn("insert needs a key and a value, ignoring")
			return true, nil
		}
		log.WithField("key", cmd.Key).Debug("insert")
		in.store.Insert(cmd.Key, cmd.Value)

	case "find":
		log.WithField("key", cmd.Rest).Debug("find")
		if err := in.find(cmd.Rest); err != nil {
			return false, err
		}

	case "delete":
		if !cmd.HasValue {
			log.Warn("delete needs a key and a value, ignoring")
			return true, nil
		}
		removed := in.store.Remove(cmd.Key, cmd.Value)
		log.WithField("key", cmd.Key).WithField("removed", removed).Debug("delete")

	case "print":
		if err := in.print(); err != nil {
			return false, err
		}

	case "stats":
		stats := in.store.Stats()
		if _, err := fmt.Fprintf(in.out, "size=%d height=%d min=%q max=%q cached=%d\n",
			stats.Size, stats.Height, stats.MinKey, stats.MaxKey, stats.CachedKeys); err != nil {
			return false, fmt.Errorf("failed to write stats: %w", err)
		}

	case "verify":
		result := "ok"
		if err := in.store.Verify(); err != nil {
			log.WithError(err).Error("Tree invariant violated")
			result = err.Error()
		}
		if _, err := fmt.Fprintln(in.out, result); err != nil {
			return false, fmt.Errorf("failed to write verify result: %w", err)
		}

	case "quit":
		log.Debug("quit")
		in.Close()
		return false, nil

	default:
		log.Info("Unknown command, stopping")
		in.Close()
		return false, nil
	}
	return true, nil
}

func (in *Interpreter) find(key string) error {
	values := in.store.FindAll(key)
	if len(values) == 0 {
		if _, err := fmt.Fprintln(in.out); err != nil {
			return fmt.Errorf("failed to write find result: %w", err)
		}
		return nil
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(in.out, "%s %s\n", key, v); err != nil {
			return fmt.Errorf("failed to write find result: %w", err)
		}
	}
	return nil
}

func (in *Interpreter) print() error {
	if in.palette != nil {
		return renderTree(in.out, in.store, in.palette)
	}
	return in.store.Print(in.out)
}
