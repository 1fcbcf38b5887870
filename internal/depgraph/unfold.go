package depgraph

// DependencyTree unfolds the graph into a Tree. Root vertices become children of
// the synthetic root, and each vertex is nested under every vertex it depends
// on. The tree is expanded breadth-first; a node whose item already appears
// among its parent's ancestors is added as a leaf and not expanded further,
// which keeps cyclic graphs finite. Shared dependencies are not merged, so the
// tree may hold more nodes than the graph has vertices.
func (g *DependencyGraph[T]) DependencyTree() *Tree[T] {
	tree := newTree[T]()
	root := tree.Root()

	edges := make(edgeIndex[T])
	var queue []TreeNode[T]
	for _, n := range g.vertices {
		if !g.hasDependencies(n) {
			child := tree.newNode(n, root)
			root.addChild(child)
			queue = append(queue, child)
			continue
		}
		for _, m := range g.dependencies[n] {
			appendEdge(edges, m, n)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		item, _ := current.Item()
		for _, d := range edges[item] {
			child := tree.newNode(d, current)
			current.addChild(child)
			if !current.HasParent(d) {
				queue = append(queue, child)
			}
		}
	}
	return tree
}
