package depgraph

// noParent marks the synthetic root in the arena.
const noParent = -1

// Tree is the unfolded view of a DependencyGraph produced by DependencyTree.
// Nodes live in a single arena and refer to each other by index, so a child
// only points back to its parent by position and never owns it. Node 0 is
// always the synthetic root, which carries no item.
type Tree[T comparable] struct {
	nodes []treeNode[T]
}

type treeNode[T comparable] struct {
	item     T
	hasItem  bool
	parent   int
	children []int
}

// TreeNode is a handle to one node of a Tree. It is only valid while the Tree
// it came from is alive.
type TreeNode[T comparable] struct {
	tree  *Tree[T]
	index int
}

// newTree creates a tree holding only the synthetic root.
func newTree[T comparable]() *Tree[T] {
	return &Tree[T]{nodes: []treeNode[T]{{parent: noParent}}}
}

// Root returns the synthetic root node.
func (t *Tree[T]) Root() TreeNode[T] {
	return TreeNode[T]{tree: t, index: 0}
}

// Len returns the number of nodes in the tree, including the synthetic root.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Walk visits every node depth-first in pre-order, children in discovery
// order. depth is 0 for the synthetic root. Returning false from fn skips the
// node's children.
func (t *Tree[T]) Walk(fn func(node TreeNode[T], depth int) bool) {
	var visit func(index, depth int)
	visit = func(index, depth int) {
		if !fn(TreeNode[T]{tree: t, index: index}, depth) {
			return
		}
		for _, c := range t.nodes[index].children {
			visit(c, depth+1)
		}
	}
	visit(0, 0)
}

// newNode appends a node for item under parent to the arena and returns it.
// The node is not yet listed among the parent's children.
func (t *Tree[T]) newNode(item T, parent TreeNode[T]) TreeNode[T] {
	t.nodes = append(t.nodes, treeNode[T]{item: item, hasItem: true, parent: parent.index})
	return TreeNode[T]{tree: t, index: len(t.nodes) - 1}
}

// addChild appends child to the children of n.
func (n TreeNode[T]) addChild(child TreeNode[T]) {
	node := &n.tree.nodes[n.index]
	node.children = append(node.children, child.index)
}

// Item returns the node's item. ok is false only for the synthetic root.
func (n TreeNode[T]) Item() (item T, ok bool) {
	node := n.tree.nodes[n.index]
	return node.item, node.hasItem
}

// IsRoot reports whether n is the synthetic root.
func (n TreeNode[T]) IsRoot() bool {
	return n.tree.nodes[n.index].parent == noParent
}

// Parent returns the parent of n. ok is false for the synthetic root.
func (n TreeNode[T]) Parent() (parent TreeNode[T], ok bool) {
	p := n.tree.nodes[n.index].parent
	if p == noParent {
		return TreeNode[T]{}, false
	}
	return TreeNode[T]{tree: n.tree, index: p}, true
}

// Children returns the children of n in the order they were discovered.
func (n TreeNode[T]) Children() []TreeNode[T] {
	indices := n.tree.nodes[n.index].children
	out := make([]TreeNode[T], len(indices))
	for i, c := range indices {
		out[i] = TreeNode[T]{tree: n.tree, index: c}
	}
	return out
}

// Depth returns the number of ancestors of n.
func (n TreeNode[T]) Depth() int {
	depth := 0
	for p := n.tree.nodes[n.index].parent; p != noParent; p = n.tree.nodes[p].parent {
		depth++
	}
	return depth
}

// HasParent reports whether any ancestor of n carries candidate. The node
// itself is not considered, and the synthetic root never matches.
func (n TreeNode[T]) HasParent(candidate T) bool {
	for p := n.tree.nodes[n.index].parent; p != noParent; p = n.tree.nodes[p].parent {
		node := n.tree.nodes[p]
		if node.hasItem && node.item == candidate {
			return true
		}
	}
	return false
}

// HasRootParent reports whether the walk up from n reaches an ancestor without
// an item. That holds for every node except the synthetic root itself.
func (n TreeNode[T]) HasRootParent() bool {
	for p := n.tree.nodes[n.index].parent; p != noParent; p = n.tree.nodes[p].parent {
		if !n.tree.nodes[p].hasItem {
			return true
		}
	}
	return false
}
