package socialgraph_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/degrees/socialgraph"
)

// ExampleBuild parses a four-node edge list and prints each adjacency list.
func ExampleBuild() {
	g, err := socialgraph.Build(strings.NewReader("4\n0 1\n1 2\n2 3\n3 1\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v := 0; v < g.Len(); v++ {
		fmt.Println(v, g.Neighbors(socialgraph.NodeID(v)))
	}
	// Output:
	// 0 [1]
	// 1 [2]
	// 2 [3]
	// 3 [1]
}

// ExampleWriteEdgeList serializes a small star.
func ExampleWriteEdgeList() {
	g, _ := socialgraph.FromAdjacency([][]socialgraph.NodeID{{1, 2, 3}, {}, {}, {}})
	_ = socialgraph.WriteEdgeList(os.Stdout, g)
	// Output:
	// 4
	// 0 1
	// 0 2
	// 0 3
}
