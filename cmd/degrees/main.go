// Command degrees reports degree, clustering, centrality, diameter and
// degrees-of-separation statistics for a directed social graph edge list.
package main

import "github.com/katalvlaran/degrees/cmd/degrees/commands"

func main() {
	commands.Execute()
}
