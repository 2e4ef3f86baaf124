package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/flowvis/analytic"
	"github.com/notargets/flowvis/element"
	"github.com/notargets/flowvis/field"
	"github.com/notargets/flowvis/utils"
)

func requireFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestCylinderFigures(t *testing.T) {
	sol, err := analytic.SolveCylinder(analytic.CylinderParams{
		Lx:             [2]float64{-3, 3},
		Ly:             [2]float64{-3, 3},
		Nx:             20,
		Ny:             20,
		Vinf:           1,
		Radius:         1,
		Circulation:    2,
		SurfaceSamples: 60,
	})
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, CylinderMaps(dir, sol))
	require.NoError(t, CylinderProfiles(dir, sol))
	requireFiles(t, dir,
		"vmag.png", "vx.png", "vy.png", "phi.png", "psi.png",
		"surface_velocity.png", "surface_cp.png",
		"surface_velocity_x.png", "surface_cp_x.png")
}

func TestUpperLowerSplit(t *testing.T) {
	theta := []float64{0, 1, 2, 3, math.Pi, 3.5, 4, 6}
	assert.Equal(t, 5, upperLowerSplit(theta))

	t.Run("AllUpper", func(t *testing.T) {
		assert.Equal(t, 2, upperLowerSplit([]float64{0, 3}))
	})
}

func TestFieldFigures(t *testing.T) {
	f := field.New()
	f.Add("freestream", element.NewUniform(1, 0))
	f.Add("doublet", element.NewDoublet(0, 0, 2*math.Pi, 0))
	f.Add("sink", element.NewSource(2, 0, -3))

	xAxis := utils.Linspace(-3, 3, 25)
	yAxis := utils.Linspace(-3, 3, 25)
	X, Y := utils.Meshgrid(xAxis, yAxis)
	s := f.Evaluate(X, Y)

	dir := t.TempDir()
	require.NoError(t, FieldMaps(dir, xAxis, yAxis, s, f))
	requireFiles(t, dir, "xvel.png", "cp.png", "phi.png", "psi.png")
}

func TestFieldGridAdapter(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{10, 20}
	z := []float64{1, 2, 3, 4, 5, 6}
	g := newFieldGrid(x, y, z)

	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 1.0, g.Z(0, 0))
	assert.Equal(t, 3.0, g.Z(2, 0))
	assert.Equal(t, 4.0, g.Z(0, 1))
	assert.Equal(t, 20.0, g.Y(1))
}

func TestHeatmapRejectsEmptyRange(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{0, 1}
	z := []float64{5, 5, 5, 5}
	_, err := heatmap("flat", x, y, z)
	assert.Error(t, err, "constant fields have no drawable range")
}
