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
	"os"

	"github.com/schollz/progressbar/v3"
)

// ScriptLoader feeds command files through one interpreter, so entries
// inserted by an earlier file are visible to later ones.
type ScriptLoader struct {
	in       *Interpreter
	progress io.Writer // nil disables the progress bar
}

func NewScriptLoader(in *Interpreter, progress io.Writer) *ScriptLoader {
	return &ScriptLoader{in: in, progress: progress}
}

// Run executes every file in order and tears the store down at the end, or
// earlier if a script stops the interpreter.
func (sl *ScriptLoader) Run(paths []string) error {
	defer sl.in.Close()

	bar, err := sl.newBar(paths)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if err := sl.runFile(path, bar); err != nil {
			return err
		}
		if sl.in.Stopped() {
			break
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return nil
}

func (sl *ScriptLoader) newBar(paths []string) (*progressbar.ProgressBar, error) {
	if sl.progress == nil {
		return nil, nil
	}

	var total int64
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat script %s: %w", path, err)
		}
		total += info.Size()
	}

	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(sl.progress),
		progressbar.OptionSetDescription("Running scripts..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(sl.progress)
		}),
	), nil
}

func (sl *ScriptLoader) runFile(path string, bar *progressbar.ProgressBar) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		cont, err := sl.in.Execute(line)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if bar != nil {
			bar.Add(len(line) + 1)
		}
		if !cont {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return nil
}
