package socialgraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MaxNodes is the largest node count Build accepts. Larger counts are
// rejected with ErrFormat before any allocation.
const MaxNodes = 1 << 24

// maxLineBytes bounds a single input line; longer lines are ErrFormat.
const maxLineBytes = 1024 * 1024

// Load opens the edge list at path and parses it with Build.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	g, err := Build(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Build parses an edge list from r.
//
// The first line declares the node count n; each following line holds one
// directed edge "x y" with 0 ≤ x,y < n. Edges are appended to x's list in file
// order. Parsing stops at the first malformed line; no partial graph is returned.
func Build(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, scanError(err, 1)
		}
		return nil, fmt.Errorf("%w: missing node count line", ErrFormat)
	}
	n, err := parseID(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("%w: line 1: node count: %v", ErrFormat, err)
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("%w: line 1: node count %d exceeds %d", ErrFormat, n, MaxNodes)
	}

	g := newGraph(n)
	line := 1
	for sc.Scan() {
		line++
		x, y, err := parseEdge(sc.Text(), n)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		g.addEdge(x, y)
	}
	if err := sc.Err(); err != nil {
		return nil, scanError(err, line+1)
	}

	return g, nil
}

// scanError classifies a scanner failure at the given line: an over-long
// line is malformed input, anything else is a read failure.
func scanError(err error, line int) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: line %d: longer than %d bytes", ErrFormat, line, maxLineBytes)
	}
	return fmt.Errorf("%w: line %d: %v", ErrIO, line, err)
}

// parseEdge splits one edge line into its endpoints and checks them against n.
func parseEdge(text string, n int) (NodeID, NodeID, error) {
	fields := strings.Fields(text)
	switch {
	case len(fields) == 0:
		return 0, 0, fmt.Errorf("%w: blank line", ErrFormat)
	case len(fields) < 2:
		return 0, 0, fmt.Errorf("%w: want two node ids, got %q", ErrFormat, text)
	case len(fields) > 2:
		return 0, 0, fmt.Errorf("%w: unexpected trailing tokens in %q", ErrFormat, text)
	}

	var ends [2]NodeID
	for i, tok := range fields {
		v, err := parseID(tok)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if v >= n {
			return 0, 0, fmt.Errorf("%w: %w: %d not in [0,%d)", ErrFormat, ErrNodeOutOfRange, v, n)
		}
		ends[i] = NodeID(v)
	}
	return ends[0], ends[1], nil
}

// parseID parses a non-negative decimal integer that fits in an int.
func parseID(tok string) (int, error) {
	v, err := strconv.ParseUint(tok, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("invalid non-negative integer %q", tok)
	}
	return int(v), nil
}
