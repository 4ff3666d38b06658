// Package dot renders generated graphs as Graphviz diagrams, for eyeballing
// small benchmark inputs and for presentation material.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/mstgen/builder"
	"github.com/katalvlaran/mstgen/graphio"
)

// Options configures DOT output.
type Options struct {
	// HighlightTree draws the spanning-tree prefix of the edge list in bold.
	HighlightTree bool
}

// Layout engines accepted by RenderSVG.
const (
	LayoutDot   = "dot"
	LayoutNeato = "neato"
	LayoutCirco = "circo"
)

// ToDOT converts g to an undirected Graphviz graph with one node per vertex
// and the edge weight as label.
func ToDOT(g *builder.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	buf.WriteString("\n")

	for v := 0; v < g.Size; v++ {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}

	buf.WriteString("\n")
	for i, e := range g.Edges {
		attrs := fmt.Sprintf("label=%q", graphio.FormatWeight(e.Weight))
		if opts.HighlightTree && i < g.TreeEdges {
			attrs += ", style=bold"
		}
		fmt.Fprintf(&buf, "  %d -- %d [%s];\n", e.U, e.V, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using the given layout engine
// (empty means LayoutDot).
func RenderSVG(ctx context.Context, dot, layout string) ([]byte, error) {
	if layout == "" {
		layout = LayoutDot
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(layout))

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
