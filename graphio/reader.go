package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mstgen/builder"
)

// Read parses an edge list. Blank lines are ignored. The returned graph has
// TreeEdges and RequestedDensity unset: the format does not carry them.
//
// Read checks syntax only (header, field counts, vertex ranges, edge count);
// semantic checks such as connectivity belong to package verify.
func Read(r io.Reader) (*builder.Graph, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	nextLine := func() ([]string, bool) {
		for sc.Scan() {
			lineNo++
			if f := strings.Fields(sc.Text()); len(f) > 0 {
				return f, true
			}
		}
		return nil, false
	}

	header, ok := nextLine()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read: %w", err)
		}
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: line %d: header needs 2 fields, got %d", ErrMalformed, lineNo, len(header))
	}
	size, err1 := strconv.Atoi(header[0])
	m, err2 := strconv.Atoi(header[1])
	if err1 != nil || err2 != nil || size < 0 || m < 0 {
		return nil, fmt.Errorf("%w: line %d: bad header %q", ErrMalformed, lineNo, strings.Join(header, " "))
	}

	g := &builder.Graph{Size: size, Edges: make([]builder.WeightedEdge, 0, m)}
	for {
		f, ok := nextLine()
		if !ok {
			break
		}
		e, err := parseEdge(f, size)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
		}
		g.Edges = append(g.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}
	if len(g.Edges) != m {
		return nil, fmt.Errorf("%w: header declares %d edges, found %d", ErrMalformed, m, len(g.Edges))
	}

	return g, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*builder.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// parseEdge parses "u v w". Endpoints are kept as written (not reordered),
// so verify can still spot self-loops in foreign files.
func parseEdge(f []string, size int) (builder.WeightedEdge, error) {
	if len(f) != 3 {
		return builder.WeightedEdge{}, fmt.Errorf("edge needs 3 fields, got %d", len(f))
	}
	u, err := strconv.Atoi(f[0])
	if err != nil {
		return builder.WeightedEdge{}, fmt.Errorf("bad vertex %q", f[0])
	}
	v, err := strconv.Atoi(f[1])
	if err != nil {
		return builder.WeightedEdge{}, fmt.Errorf("bad vertex %q", f[1])
	}
	if u < 0 || u >= size || v < 0 || v >= size {
		return builder.WeightedEdge{}, fmt.Errorf("edge (%d,%d) outside [0,%d)", u, v, size)
	}
	w, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return builder.WeightedEdge{}, fmt.Errorf("bad weight %q", f[2])
	}

	return builder.WeightedEdge{Edge: builder.Edge{U: u, V: v}, Weight: w}, nil
}
