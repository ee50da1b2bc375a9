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
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/rbshell/rbtree"
)

// Palette colours the tree dump. Styles are bound to the output writer, so
// nothing is coloured when the writer is not a terminal.
type Palette struct {
	Red   lipgloss.Style
	Black lipgloss.Style
	Key   lipgloss.Style
}

func NewPalette(w io.Writer) *Palette {
	r := lipgloss.NewRenderer(w)
	return &Palette{
		Red: r.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Black: r.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true),
		Key: r.NewStyle().
			Foreground(lipgloss.Color("39")),
	}
}

func (p *Palette) color(c rbtree.Color) string {
	if c == rbtree.Red {
		return p.Red.Render(c.String())
	}
	return p.Black.Render(c.String())
}

// renderTree writes the same layout as rbtree.Tree.Print with the colour
// letter and key styled.
func renderTree(w io.Writer, store *Store, p *Palette) error {
	var err error
	store.Walk(func(depth int, n *rbtree.Node) {
		if err != nil {
			return
		}
		pad := strings.Repeat(" ", rbtree.Indent(depth)-1)
		_, err = fmt.Fprintf(w, "%s%s %s %s\n", pad, p.color(n.Color()), p.Key.Render(n.Key()), n.Value())
	})
	if err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	return nil
}
