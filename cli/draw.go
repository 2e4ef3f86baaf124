package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/notargets/flowvis/render"
	"github.com/notargets/flowvis/scene"
	"github.com/notargets/flowvis/utils"
)

// DrawOptions holds flags for the draw command.
type DrawOptions struct {
	*RootOptions
	Domain []float64
	Grid   int
	Out    string
}

// NewDrawCommand creates the scene-drawing command.
func NewDrawCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DrawOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "draw <scene.yaml>",
		Short: "Evaluate a YAML scene and render the aggregate fields",
		Long: `Load a scene file describing a set of flow elements, evaluate the
superposed fields over a rectangular grid, and write heatmap figures
for the x-velocity, pressure coefficient, potential and streamfunction.

Example:
  flowvis draw --domain -10,10,-10,10 --grid 200 --out ./figs scene.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(opts, args[0])
		},
	}

	cmd.Flags().Float64SliceVar(&opts.Domain, "domain", []float64{-10, 10, -10, 10},
		"domain extents: xmin,xmax,ymin,ymax")
	cmd.Flags().IntVar(&opts.Grid, "grid", 200, "grid points per axis")
	cmd.Flags().StringVar(&opts.Out, "out", ".", "output directory for figures")

	return cmd
}

func runDraw(opts *DrawOptions, scenePath string) error {
	lx, ly, err := domainExtents(opts.Domain)
	if err != nil {
		return err
	}

	f, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	slog.Info("scene loaded", "path", scenePath, "elements", len(f.Elements))
	if len(f.Elements) == 0 {
		slog.Warn("scene has no elements, nothing to draw")
		return nil
	}

	xAxis := utils.Linspace(lx[0], lx[1], opts.Grid)
	yAxis := utils.Linspace(ly[0], ly[1], opts.Grid)
	X, Y := utils.Meshgrid(xAxis, yAxis)

	s := f.Evaluate(X, Y)
	slog.Debug("fields evaluated", "points", len(X))

	if err := render.FieldMaps(opts.Out, xAxis, yAxis, s, f); err != nil {
		return err
	}
	slog.Info("figures written", "dir", opts.Out)
	return nil
}
