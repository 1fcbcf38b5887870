package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/vk/depgraph/internal/depgraph"
)

var (
	colorAccent = lipgloss.Color("#874BFD")
	colorSubtle = lipgloss.Color("#64748B")
	colorDanger = lipgloss.Color("#FF0055")

	rootStyle       = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	itemStyle       = lipgloss.NewStyle()
	cycleStyle      = lipgloss.NewStyle().Foreground(colorDanger)
	enumeratorStyle = lipgloss.NewStyle().Foreground(colorSubtle).MarginRight(1)
	hiddenStyle     = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)
)

// PrettyTree writes a dependency tree drawn with box characters and styled for
// a terminal. Colors are dropped automatically when w is not a terminal.
func PrettyTree(w io.Writer, dt *depgraph.Tree[string], opts TreeOptions) error {
	root := tree.Root(rootStyle.Render(fmt.Sprintf("dependencies (%d)", len(dt.Root().Children())))).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)

	for _, child := range dt.Root().Children() {
		root.Child(prettyNode(child, 1, opts))
	}

	_, err := fmt.Fprintln(w, root.String())
	return err
}

// prettyNode converts a node and its subtree. Leaves are returned as plain
// strings so the enumerator does not draw an empty branch.
func prettyNode(node depgraph.TreeNode[string], depth int, opts TreeOptions) any {
	text := itemStyle.Render(label(node))
	if isCycle(node) {
		text = cycleStyle.Render(label(node))
	}
	if hidden := hiddenChildren(node, depth, opts); hidden > 0 {
		text += " " + hiddenStyle.Render(fmt.Sprintf("[+%d]", hidden))
	}

	children := node.Children()
	if len(children) == 0 || truncated(depth, opts) {
		return text
	}

	sub := tree.Root(text)
	for _, child := range children {
		sub.Child(prettyNode(child, depth+1, opts))
	}
	return sub
}
