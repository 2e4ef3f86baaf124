package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/flowvis/analytic"
)

var (
	colorVx   = color.RGBA{R: 255, A: 255}
	colorVy   = color.RGBA{B: 255, A: 255}
	colorVmag = color.RGBA{A: 255}
)

// CylinderMaps writes the grid-field heatmaps of the analytic cylinder
// solution (velocity magnitude and components, potential and
// streamfunction), overlaying the body contour, the doublet+vortex
// origin and any stagnation points.
func CylinderMaps(dir string, sol *analytic.CylinderSolution) error {
	g := sol.Grid
	maps := []struct {
		file, title string
		data        []float64
	}{
		{"vmag.png", "Velocity Magnitude", g.Vmag},
		{"vx.png", "x-Velocity", g.Vx},
		{"vy.png", "y-Velocity", g.Vy},
		{"phi.png", "Potential", g.Phi},
		{"psi.png", "Streamfunction", g.Psi},
	}

	for _, m := range maps {
		p, err := heatmap(m.title, g.X, g.Y, m.data)
		if err != nil {
			return fmt.Errorf("%s: %w", m.file, err)
		}
		if err := addCylinderOverlays(p, sol); err != nil {
			return err
		}
		if err := savePlot(p, dir, m.file); err != nil {
			return err
		}
	}
	return nil
}

func addCylinderOverlays(p *plot.Plot, sol *analytic.CylinderSolution) error {
	// No body, no overlays: R=0 degenerates to a bare vortex.
	if sol.Params.Radius == 0 {
		return nil
	}

	body, err := line(sol.Surface.X, sol.Surface.Y, colorBody, false)
	if err != nil {
		return err
	}
	p.Add(body)

	origin, err := marker(0, 0, colorPositive, vg.Points(4))
	if err != nil {
		return err
	}
	p.Add(origin)

	for _, sp := range sol.Stagnation {
		m, err := marker(sp.X, sp.Y, colorStag, vg.Points(4))
		if err != nil {
			return err
		}
		p.Add(m)
	}
	return nil
}

// upperLowerSplit returns the index of the first contour sample past
// theta = pi, separating the upper surface from the lower.
func upperLowerSplit(theta []float64) int {
	for i, th := range theta {
		if th > math.Pi {
			return i
		}
	}
	return len(theta)
}

// CylinderProfiles writes the body-surface line plots: velocity
// components and magnitude against theta, the pressure coefficient
// against theta, and both quantities against x with the upper surface
// solid and the lower surface dashed. On-surface stagnation points
// (condition <= 1) are marked at V=0 and Cp=1.
func CylinderProfiles(dir string, sol *analytic.CylinderSolution) error {
	s := sol.Surface

	pv := plot.New()
	pv.Title.Text = "Surface Velocity"
	pv.X.Label.Text = "theta"
	pv.Y.Label.Text = "V"
	series := []struct {
		name string
		data []float64
		c    color.Color
	}{
		{"Vx", s.Vx, colorVx},
		{"Vy", s.Vy, colorVy},
		{"Vmag", s.Vmag, colorVmag},
	}
	for _, sr := range series {
		l, err := line(s.Theta, sr.data, sr.c, false)
		if err != nil {
			return err
		}
		pv.Add(l)
		pv.Legend.Add(sr.name, l)
	}

	pc := plot.New()
	pc.Title.Text = "Surface Pressure Coefficient"
	pc.X.Label.Text = "theta"
	pc.Y.Label.Text = "Cp"
	cp, err := line(s.Theta, s.Cp, colorVmag, false)
	if err != nil {
		return err
	}
	pc.Add(cp)

	if sol.Condition <= 1 {
		for _, sp := range sol.Stagnation {
			mv, err := marker(sp.Theta, 0, colorStag, vg.Points(4))
			if err != nil {
				return err
			}
			pv.Add(mv)

			// Cp is exactly 1 at a stagnation point.
			mc, err := marker(sp.Theta, 1, colorStag, vg.Points(4))
			if err != nil {
				return err
			}
			pc.Add(mc)
		}
	}

	if err := savePlot(pv, dir, "surface_velocity.png"); err != nil {
		return err
	}
	if err := savePlot(pc, dir, "surface_cp.png"); err != nil {
		return err
	}
	return cylinderXProfiles(dir, sol)
}

// cylinderXProfiles writes Vmag and Cp against the x coordinate of the
// body contour, split into the upper and lower surface halves.
func cylinderXProfiles(dir string, sol *analytic.CylinderSolution) error {
	s := sol.Surface
	cut := upperLowerSplit(s.Theta)

	profiles := []struct {
		file, title, label string
		data               []float64
	}{
		{"surface_velocity_x.png", "Surface Velocity vs x", "Vmag", s.Vmag},
		{"surface_cp_x.png", "Surface Pressure Coefficient vs x", "Cp", s.Cp},
	}
	for _, pr := range profiles {
		p := plot.New()
		p.Title.Text = pr.title
		p.X.Label.Text = "x"
		p.Y.Label.Text = pr.label

		upper, err := line(s.X[:cut], pr.data[:cut], colorVmag, false)
		if err != nil {
			return err
		}
		lower, err := line(s.X[cut:], pr.data[cut:], colorVmag, true)
		if err != nil {
			return err
		}
		p.Add(upper, lower)
		p.Legend.Add("upper", upper)
		p.Legend.Add("lower", lower)

		if err := savePlot(p, dir, pr.file); err != nil {
			return err
		}
	}
	return nil
}
