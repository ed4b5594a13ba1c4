package config

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/atlanticdynamic/hytopia-dev/internal/catalog"
	"github.com/atlanticdynamic/hytopia-dev/internal/fancy"
	"github.com/charmbracelet/lipgloss/tree"
)

// String renders the config as a styled tree for the CLI.
func (c Config) String() string {
	return c.Tree().String()
}

// Tree builds the lipgloss tree used by String.
func (c Config) Tree() *tree.Tree {
	root := fancy.RootTree("hytopia-dev")
	root.Child(fancy.KeyValue("Port", strconv.Itoa(c.Port)))
	root.Child(fancy.KeyValue("Development", strconv.FormatBool(c.Development)))
	if c.Source != "" {
		root.Child(fancy.KeyValue("Source", c.Source))
	}

	root.Child(entriesNode("Games", c.Catalog.Games, fancy.GameText, "/%s/"))
	root.Child(entriesNode("Examples", c.Catalog.Examples, fancy.ExampleText, "/examples/%s/"))

	if len(c.Headers) > 0 {
		node := fancy.BranchNode("Headers", fmt.Sprintf("(%d)", len(c.Headers)))
		keys := make([]string, 0, len(c.Headers))
		for k := range c.Headers {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			node.Child(fancy.KeyValue(k, c.Headers[k]))
		}
		root.Child(node)
	}
	return root
}

func entriesNode(title string, entries []catalog.Entry, style func(string) string, pathFmt string) *tree.Tree {
	node := fancy.BranchNode(title, fmt.Sprintf("(%d)", len(entries)))
	for _, e := range entries {
		node.Child(fmt.Sprintf("%s %s -> %s", style(e.Name), fmt.Sprintf(pathFmt, e.Name), e.Dir))
	}
	return node
}
