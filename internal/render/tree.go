package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/depgraph/internal/depgraph"
)

// TreeOptions controls how a dependency tree is rendered.
type TreeOptions struct {
	// MaxDepth limits the rendered levels below the root. Zero means no limit.
	// Hidden children are summarized on their parent.
	MaxDepth int
}

type treeDoc struct {
	Roots []*treeNodeDoc `json:"roots" yaml:"roots"`
}

type treeNodeDoc struct {
	Item       string         `json:"item" yaml:"item"`
	Cycle      bool           `json:"cycle,omitempty" yaml:"cycle,omitempty"`
	Hidden     int            `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Dependents []*treeNodeDoc `json:"dependents,omitempty" yaml:"dependents,omitempty"`
}

// Tree writes a dependency tree. Each item is listed under the items it
// depends on. Text output indents every level by two spaces; a node that
// repeats one of its ancestors is marked as a cycle.
func Tree(w io.Writer, format Format, tree *depgraph.Tree[string], opts TreeOptions) error {
	if format != FormatText {
		return encode(w, format, buildTreeDoc(tree, opts))
	}

	var werr error
	tree.Walk(func(node depgraph.TreeNode[string], depth int) bool {
		if werr != nil || node.IsRoot() {
			return werr == nil
		}
		line := strings.Repeat("  ", depth-1) + label(node)
		if hidden := hiddenChildren(node, depth, opts); hidden > 0 {
			line += fmt.Sprintf(" [+%d]", hidden)
		}
		_, werr = fmt.Fprintln(w, line)
		return werr == nil && !truncated(depth, opts)
	})
	return werr
}

func buildTreeDoc(tree *depgraph.Tree[string], opts TreeOptions) treeDoc {
	var build func(node depgraph.TreeNode[string], depth int) *treeNodeDoc
	build = func(node depgraph.TreeNode[string], depth int) *treeNodeDoc {
		item, _ := node.Item()
		doc := &treeNodeDoc{Item: item, Cycle: isCycle(node)}
		if truncated(depth, opts) {
			doc.Hidden = len(node.Children())
			return doc
		}
		for _, child := range node.Children() {
			doc.Dependents = append(doc.Dependents, build(child, depth+1))
		}
		return doc
	}

	doc := treeDoc{Roots: []*treeNodeDoc{}}
	for _, child := range tree.Root().Children() {
		doc.Roots = append(doc.Roots, build(child, 1))
	}
	return doc
}

// label is the text shown for a node.
func label(node depgraph.TreeNode[string]) string {
	item, _ := node.Item()
	if isCycle(node) {
		return item + " (cycle)"
	}
	return item
}

// isCycle reports whether the node was left unexpanded because its item
// already appears above its parent, the same test DependencyTree applies.
func isCycle(node depgraph.TreeNode[string]) bool {
	item, ok := node.Item()
	if !ok {
		return false
	}
	parent, ok := node.Parent()
	return ok && parent.HasParent(item)
}

func truncated(depth int, opts TreeOptions) bool {
	return opts.MaxDepth > 0 && depth >= opts.MaxDepth
}

func hiddenChildren(node depgraph.TreeNode[string], depth int, opts TreeOptions) int {
	if !truncated(depth, opts) {
		return 0
	}
	return len(node.Children())
}
