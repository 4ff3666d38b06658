package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mstgen/config"
)

const appName = "mstgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
// Errors are returned, not printed; the caller reports them once.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "mstgen generates random connected weighted graphs for MST benchmarks",
		Long: `mstgen synthesizes random connected undirected graphs with a requested
edge density and globally unique edge weights, and writes them in the
plain edge-list format read by MST benchmark harnesses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.sweepCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.dotCommand())

	return root
}

// addSharedFlags registers the flags common to generate and sweep.
// Names map onto config keys (see config.Load).
func addSharedFlags(f *pflag.FlagSet) {
	d := config.Defaults()
	f.String("config", config.DefaultFile, "TOML config file")
	f.Int64("seed", d.Seed, "random seed (0 = unseeded)")
	f.Float64("weight-low", d.Weight.Low, "lowest edge weight")
	f.Float64("weight-high", d.Weight.High, "highest edge weight")
	f.Bool("weight-integer", d.Weight.Integer, "draw integer weights only")
	f.Int("weight-retries", d.Weight.Retries, "draws per edge before giving up on a unique weight")
}
