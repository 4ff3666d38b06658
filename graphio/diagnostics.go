package graphio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mstgen/builder"
)

// Diagnostics compares the density a graph was generated for with the one
// it actually has. They differ when the connectivity floor or rounding
// dominates.
type Diagnostics struct {
	Requested float64 `json:"requested_density"`
	Achieved  float64 `json:"achieved_density"`
	Edges     int     `json:"edges"`
	MaxEdges  int     `json:"max_edges"`
}

// NewDiagnostics summarizes g.
func NewDiagnostics(g *builder.Graph) Diagnostics {
	return Diagnostics{
		Requested: g.RequestedDensity,
		Achieved:  g.Density(),
		Edges:     g.EdgeCount(),
		MaxEdges:  builder.MaxEdges(g.Size),
	}
}

// WriteDiagnostics writes the two-line density report to w.
func WriteDiagnostics(w io.Writer, d Diagnostics) error {
	_, err := fmt.Fprintf(w, "desired_density = %v\nreal density = %v\n", d.Requested, d.Achieved)
	return err
}
