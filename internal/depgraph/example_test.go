package depgraph_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/depgraph/internal/depgraph"
)

// This example resolves the build order of a small C program, similar to a
// Makefile: every target is listed after the files it is built from.
func ExampleDependencyGraph_TopologicalSort() {
	g := depgraph.New[string]()
	g.AddDependency("app", "main.o")
	g.AddDependency("app", "server.o")
	g.AddDependency("main.o", "main.c")
	g.AddDependency("server.o", "server.c")
	g.AddDependency("app.tar.gz", "app")

	order, err := g.TopologicalSort()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.Join(order, " "))

	// Closing the loop makes the graph unsortable.
	g.AddDependency("main.c", "app.tar.gz")
	_, err = g.TopologicalSort()
	fmt.Println(errors.Is(err, depgraph.ErrCycleDetected))

	// Output:
	// main.c server.c main.o server.o app app.tar.gz
	// true
}

func ExampleDependencyGraph_DependencyTree() {
	g := depgraph.New[string]()
	g.AddDependency("api", "db")
	g.AddDependency("api", "cache")
	g.AddDependency("cache", "db")

	g.DependencyTree().Walk(func(n depgraph.TreeNode[string], depth int) bool {
		if item, ok := n.Item(); ok {
			fmt.Printf("%s%s\n", strings.Repeat("  ", depth-1), item)
		}
		return true
	})

	// Output:
	// db
	//   api
	//   cache
	//     api
}
