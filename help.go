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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMarkdown() string {
	return fmt.Sprintf(`

 **rbshell %s**

An interactive shell over a red-black tree that keeps duplicate keys.
Every insert is kept, even when the key and value were seen before.

Built with Go %s

# 1. Commands
* insert <key> <value> : add an entry (the value is the rest of the line)
* find <key> : print every value stored under key, in insertion order
* delete <key> <value> : remove every entry matching both key and value
* print : show the tree sideways with node colours (R/B)
* stats : show size, height and key range
* verify : check the red-black invariants
* quit : release the tree and exit (any unknown command also exits)

# 2. Running
* rbshell run : read commands from the terminal
* rbshell exec script.txt : run command files, --progress to show a bar
* rbshell settings : show or create ~/.rbshell.yaml

# 3. Quoting
Set interpreter.tokenizer to "shell" to quote keys and values:
insert "new york" "big apple"

# License
Licensed under the Apache License, Version 2.0
Copyright 2025 Naren Yellavula

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(getHelpMarkdown(), 80, 3)
	return string(result)
}
