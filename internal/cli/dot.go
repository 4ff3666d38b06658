package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstgen/dot"
	"github.com/katalvlaran/mstgen/graphio"
)

type dotOpts struct {
	output string
	svg    bool
	layout string
	tree   bool
}

func (c *CLI) dotCommand() *cobra.Command {
	opts := dotOpts{layout: dot.LayoutNeato}

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Export a graph file as Graphviz DOT or SVG",
		Example: `  mstgen dot graphs/random/random_10_0.5.txt | dot -Tpng > g.png
  mstgen dot g.txt --svg --tree -o g.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	f.BoolVar(&opts.svg, "svg", false, "render SVG instead of DOT")
	f.StringVar(&opts.layout, "layout", opts.layout, "layout engine for --svg: dot, neato, circo")
	f.BoolVar(&opts.tree, "tree", false, "draw the leading size-1 edges (the spanning tree mstgen writes first) in bold")

	return cmd
}

func runDot(cmd *cobra.Command, path string, opts dotOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, err := graphio.ReadFile(path)
	if err != nil {
		return err
	}
	if opts.tree && g.Size > 0 {
		g.TreeEdges = min(g.Size-1, g.EdgeCount())
	}

	out := []byte(dot.ToDOT(g, dot.Options{HighlightTree: opts.tree}))
	if opts.svg {
		prog := newProgress(logger)
		if out, err = dot.RenderSVG(ctx, string(out), opts.layout); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered %d vertices with %s", g.Size, opts.layout))
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	logger.Debug("wrote", "path", opts.output)

	return nil
}
