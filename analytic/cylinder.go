// Package analytic evaluates the closed-form solution for potential flow
// around a circular cylinder with circulation. It is mathematically
// identical to superposing a uniform stream, a doublet of strength
// 2*pi*Vinf*R^2 and a vortex, but additionally yields surface and
// stagnation-point diagnostics directly.
package analytic

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/flowvis/utils"
)

var (
	ErrDomain          = errors.New("domain endpoints incorrectly defined")
	ErrNegativeVinf    = errors.New("freestream velocity magnitude is negative")
	ErrNegativeRadius  = errors.New("cylinder radius is negative")
	ErrNegativeGrid    = errors.New("grid dimensions are negative")
	ErrNegativeSamples = errors.New("surface sample count is negative")
)

const (
	DefaultGridSize       = 50
	DefaultSurfaceSamples = 250
)

// CylinderParams configures one solve. Zero values for Nx, Ny and
// SurfaceSamples select the defaults.
type CylinderParams struct {
	Lx, Ly      [2]float64 // domain extents, [min, max]
	Nx, Ny      int
	Vinf        float64 // freestream speed, >= 0
	Radius      float64 // cylinder radius, >= 0
	Circulation float64 // vortex strength Gamma, any sign

	// SurfaceSamples is the number of theta samples over [0, 2*pi]
	// used for the body-contour quantities.
	SurfaceSamples int
}

func (p *CylinderParams) validate() error {
	if p.Lx[0] > p.Lx[1] {
		return fmt.Errorf("%w: Lx[0]=%g > Lx[1]=%g", ErrDomain, p.Lx[0], p.Lx[1])
	}
	if p.Ly[0] > p.Ly[1] {
		return fmt.Errorf("%w: Ly[0]=%g > Ly[1]=%g", ErrDomain, p.Ly[0], p.Ly[1])
	}
	if p.Vinf < 0 {
		return fmt.Errorf("%w: Vinf=%g", ErrNegativeVinf, p.Vinf)
	}
	if p.Radius < 0 {
		return fmt.Errorf("%w: R=%g", ErrNegativeRadius, p.Radius)
	}
	if p.Nx < 0 || p.Ny < 0 {
		return fmt.Errorf("%w: Nx=%d Ny=%d", ErrNegativeGrid, p.Nx, p.Ny)
	}
	if p.SurfaceSamples < 0 {
		return fmt.Errorf("%w: n=%d", ErrNegativeSamples, p.SurfaceSamples)
	}
	return nil
}

func (p *CylinderParams) withDefaults() CylinderParams {
	q := *p
	if q.Nx == 0 {
		q.Nx = DefaultGridSize
	}
	if q.Ny == 0 {
		q.Ny = DefaultGridSize
	}
	if q.SurfaceSamples == 0 {
		q.SurfaceSamples = DefaultSurfaceSamples
	}
	return q
}

// GridFields holds the flow solution over the rectangular sample grid.
// X and Y are the 1D grid axes; the field slices are flattened row-major
// (y-major, matching a meshgrid of X over Y), length Nx*Ny.
type GridFields struct {
	X, Y   []float64
	Vx, Vy []float64
	Vmag   []float64
	Phi    []float64
	Psi    []float64
}

// SurfaceFields holds per-sample quantities along the body contour r=R,
// theta in [0, 2*pi].
type SurfaceFields struct {
	Theta  []float64
	X, Y   []float64
	Vx, Vy []float64
	Vmag   []float64
	Cp     []float64
}

// StagnationPoint is one zero-velocity location in polar and Cartesian
// coordinates.
type StagnationPoint struct {
	R, Theta float64
	X, Y     float64
}

type CylinderSolution struct {
	Params  CylinderParams
	Grid    GridFields
	Surface SurfaceFields

	// Condition is Gamma/(4 pi Vinf R), the dimensionless circulation
	// selecting the stagnation regime. NaN/Inf when Vinf or R is zero.
	Condition float64

	// Stagnation holds 0, 1 or 2 points: empty when Vinf=0 or R=0
	// (degenerate, no body), one merged point at condition == 1, two
	// otherwise (on the surface below critical circulation, off it above).
	Stagnation []StagnationPoint
}

// SolveCylinder computes the full cylinder-with-circulation solution.
// Parameters are validated before any computation; numeric singularities
// inside the domain (r=0, R=0, Vinf=0) propagate as NaN/Inf pointwise.
func SolveCylinder(p CylinderParams) (*CylinderSolution, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	p = p.withDefaults()

	sol := &CylinderSolution{Params: p}
	sol.Grid = solveGrid(p)
	sol.Surface = solveSurface(p)
	sol.Condition = p.Circulation / (4 * math.Pi * p.Vinf * p.Radius)
	if p.Vinf > 0 && p.Radius > 0 {
		sol.Stagnation = stagnationPoints(p.Vinf, p.Radius, p.Circulation)
	}
	return sol, nil
}

func solveGrid(p CylinderParams) (g GridFields) {
	g.X = utils.Linspace(p.Lx[0], p.Lx[1], p.Nx)
	g.Y = utils.Linspace(p.Ly[0], p.Ly[1], p.Ny)

	n := p.Nx * p.Ny
	g.Vx = make([]float64, n)
	g.Vy = make([]float64, n)
	g.Vmag = make([]float64, n)
	g.Phi = make([]float64, n)
	g.Psi = make([]float64, n)

	r2c := p.Radius * p.Radius
	oo2pi := p.Circulation / (2 * math.Pi)
	for j := 0; j < p.Ny; j++ {
		for i := 0; i < p.Nx; i++ {
			k := j*p.Nx + i
			x, y := g.X[i], g.Y[j]
			r := math.Hypot(x, y)
			theta := math.Atan2(y, x)
			sin, cos := math.Sincos(theta)
			rr := r2c / (r * r)

			vr := (1 - rr) * p.Vinf * cos
			vt := -(1+rr)*p.Vinf*sin - oo2pi/r
			g.Vx[k] = vr*cos - vt*sin
			g.Vy[k] = vr*sin + vt*cos
			g.Vmag[k] = math.Hypot(vr, vt)
			g.Phi[k] = p.Vinf*r*cos*(1+rr) - oo2pi*theta
			g.Psi[k] = p.Vinf*r*sin*(1-rr) + oo2pi*math.Log(r/p.Radius)
		}
	}
	return
}

func solveSurface(p CylinderParams) (s SurfaceFields) {
	n := p.SurfaceSamples
	s.Theta = utils.Linspace(0, 2*math.Pi, n)
	s.X = make([]float64, n)
	s.Y = make([]float64, n)
	s.Vx = make([]float64, n)
	s.Vy = make([]float64, n)
	s.Vmag = make([]float64, n)
	s.Cp = make([]float64, n)

	r2c := p.Radius * p.Radius
	oo2pi := p.Circulation / (2 * math.Pi)
	vinf2 := p.Vinf * p.Vinf
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(s.Theta[i])
		s.X[i] = p.Radius * cos
		s.Y[i] = p.Radius * sin

		// rr is identically 1 for R>0; the general form degenerates to
		// NaN when R=0 (no body contour).
		rr := r2c / (p.Radius * p.Radius)
		vr := (1 - rr) * p.Vinf * cos
		vt := -(1+rr)*p.Vinf*sin - oo2pi/p.Radius
		s.Vx[i] = vr*cos - vt*sin
		s.Vy[i] = vr*sin + vt*cos
		s.Vmag[i] = math.Hypot(vr, vt)
		s.Cp[i] = 1 - (s.Vmag[i]*s.Vmag[i])/vinf2
	}
	return
}

// stagnationPoints evaluates the three-regime stagnation-point formulas.
// Requires vinf > 0 and radius > 0.
func stagnationPoints(vinf, radius, gamma float64) []StagnationPoint {
	condition := gamma / (4 * math.Pi * vinf * radius)

	var pts []StagnationPoint
	switch {
	case condition < 1:
		// Two points on the surface, symmetric about theta = 3*pi/2.
		for _, theta := range []float64{
			math.Pi - math.Asin(-condition),
			math.Asin(-condition),
		} {
			if theta < 0 {
				theta += 2 * math.Pi
			}
			pts = append(pts, newStagnation(radius, theta))
		}
	case condition == 1:
		pts = append(pts, newStagnation(radius, 3*math.Pi/2))
	default:
		// condition > 1: both roots lie on the theta = 3*pi/2 ray, one
		// outside the body and one inside.
		t := gamma / (4 * math.Pi * vinf)
		disc := t*t - radius*radius
		if disc < 0 {
			// Unreachable for condition > 1; a negative discriminant
			// would mean taking a complex root.
			panic(fmt.Sprintf("stagnation discriminant negative: t=%g R=%g", t, radius))
		}
		root := math.Sqrt(disc)
		pts = append(pts,
			newStagnation(t+root, 3*math.Pi/2),
			newStagnation(t-root, 3*math.Pi/2),
		)
	}
	return pts
}

func newStagnation(r, theta float64) StagnationPoint {
	sin, cos := math.Sincos(theta)
	return StagnationPoint{R: r, Theta: theta, X: r * cos, Y: r * sin}
}
