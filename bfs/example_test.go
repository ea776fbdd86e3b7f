package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/socialgraph"
)

// ExampleShortestPathTree finds the fewest-hop route through a small follower network.
// Two routes exist from 0 to 5: 0→1→2→3→5 (4 hops) and 0→4→5 (2 hops).
func ExampleShortestPathTree() {
	g, _ := socialgraph.FromAdjacency([][]socialgraph.NodeID{
		{1, 4}, // 0
		{2},    // 1
		{3},    // 2
		{5},    // 3
		{5},    // 4
		{},     // 5
	})
	tree, err := bfs.ShortestPathTree(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := tree.PathTo(5)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	fmt.Println(tree.Distances())
	// Output:
	// [0 4 5]
	// [0 1 2 3 1 2]
}

// ExampleDiameter computes the exact diameter of a directed cycle with a tail.
func ExampleDiameter() {
	g, _ := socialgraph.FromAdjacency([][]socialgraph.NodeID{{1}, {2}, {3}, {1}})
	d, err := bfs.Diameter(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)
	// Output:
	// 3
}
