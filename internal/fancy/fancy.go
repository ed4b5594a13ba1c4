// Package fancy provides pretty printing utilities and styling for CLI output
package fancy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	ColorBlue     = lipgloss.Color("39")
	ColorGreen    = lipgloss.Color("82")
	ColorYellow   = lipgloss.Color("228")
	ColorCyan     = lipgloss.Color("45")
	ColorRed      = lipgloss.Color("196")
	ColorGray     = lipgloss.Color("250")
	ColorWhite    = lipgloss.Color("15")
	ColorDarkGray = lipgloss.Color("240") // branches
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	GameStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ExampleStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// RootTree returns a styled tree with the given title as root.
func RootTree(title string) *tree.Tree {
	return Tree().Root(RootStyle.Render(title))
}

// BranchNode creates a styled section header node
func BranchNode(title string, count string) *tree.Tree {
	return tree.New().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(count),
		),
	)
}

// KeyValue renders "key: value" with the value highlighted.
func KeyValue(key, value string) string {
	return HeaderStyle.Render(key+":") + " " + ValueStyle.Render(value)
}

func GameText(text string) string {
	return GameStyle.Render(text)
}

func ExampleText(text string) string {
	return ExampleStyle.Render(text)
}

func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}
