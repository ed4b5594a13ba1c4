package fancy_test

import (
	"testing"

	"github.com/atlanticdynamic/hytopia-dev/internal/fancy"
	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	tree := fancy.Tree()
	assert.NotNil(t, tree)

	tree.Root("Root Node")
	child := fancy.BranchNode("Games", "(1)")
	child.Child("arena")
	tree.Child(child)

	out := tree.String()
	assert.Contains(t, out, "Root Node")
	assert.Contains(t, out, "Games")
	assert.Contains(t, out, "(1)")
	assert.Contains(t, out, "arena")
}

func TestRootTree(t *testing.T) {
	out := fancy.RootTree("hytopia-dev").String()
	assert.Contains(t, out, "hytopia-dev")
}

func TestTextHelpers(t *testing.T) {
	assert.Contains(t, fancy.KeyValue("Port", "8080"), "Port:")
	assert.Contains(t, fancy.KeyValue("Port", "8080"), "8080")
	assert.Contains(t, fancy.GameText("arena"), "arena")
	assert.Contains(t, fancy.ExampleText("demo"), "demo")
	assert.Contains(t, fancy.ErrorText("boom"), "boom")
}
