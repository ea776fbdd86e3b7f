package socialgraph

import (
	"bufio"
	"fmt"
	"io"
)

// WriteEdgeList writes g in the format Build reads: the node count, then one
// "x y" line per edge in node-index and arrival order. Build on the output
// reproduces g exactly.
func WriteEdgeList(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", g.Len()); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	for x := 0; x < g.Len(); x++ {
		for _, y := range g.Neighbors(NodeID(x)) {
			if _, err := fmt.Fprintf(bw, "%d %d\n", x, y); err != nil {
				return fmt.Errorf("%w: %v", ErrIO, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
