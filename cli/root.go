// Package cli wires the flowvis commands: the analytic rotating-cylinder
// solver, scene-file field drawing, and the HTTP API server.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every command.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the flowvis root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "flowvis",
		Short: "2D potential-flow field computation and visualization",
		Long: `flowvis computes 2D potential (inviscid, irrotational) flow fields by
superposing elementary singularities - uniform streams, sources and
sinks, doublets, vortices - and the closed-form rotating-cylinder
solution, and renders the resulting fields as figures or serves them
as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts.Verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		NewCylinderCommand(opts),
		NewDrawCommand(opts),
		NewServeCommand(opts),
	)
	return cmd
}

func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// domainExtents splits a --domain flag value into the Lx and Ly extents.
func domainExtents(domain []float64) (lx, ly [2]float64, err error) {
	if len(domain) != 4 {
		err = fmt.Errorf("--domain needs 4 values (xmin,xmax,ymin,ymax), got %d", len(domain))
		return
	}
	lx = [2]float64{domain[0], domain[1]}
	ly = [2]float64{domain[2], domain[3]}
	return
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		return 1
	}
	return 0
}
