package element

import "math"

// PointVortex is an irrotational vortex of circulation Gamma at (X0, Y0).
// A positive Gamma induces clockwise swirl: Vtheta = -Gamma/(2 pi r).
//
// The potential/streamfunction follow the upstream visualizer's sign
// convention (phi = Gamma/(2 pi) * theta, psi = -Gamma/(2 pi) * ln r),
// which is mirrored relative to the analytic cylinder solution. Velocity
// components agree between the two everywhere.
type PointVortex struct {
	X0, Y0   float64
	Strength float64
}

func NewVortex(x0, y0, strength float64) (v *PointVortex) {
	v = &PointVortex{X0: x0, Y0: y0, Strength: strength}
	return
}

func (vx *PointVortex) Kind() Kind               { return Vortex }
func (vx *PointVortex) Origin() (x0, y0 float64) { return vx.X0, vx.Y0 }

func (vx *PointVortex) Velocity(x, y []float64) (u, v []float64) {
	u = make([]float64, len(x))
	v = make([]float64, len(x))
	oo2pi := vx.Strength / (2 * math.Pi)
	for i := range x {
		dx := x[i] - vx.X0
		dy := y[i] - vx.Y0
		r2 := dx*dx + dy*dy
		// Vr = 0, Vtheta = -Gamma/(2 pi r): cartesian form is
		// (Gamma/(2 pi r^2)) * (dy, -dx)
		u[i] = oo2pi * dy / r2
		v[i] = -oo2pi * dx / r2
	}
	return
}

// Potential is (Gamma/2pi) * theta.
func (vx *PointVortex) Potential(x, y []float64) []float64 {
	phi := make([]float64, len(x))
	oo2pi := vx.Strength / (2 * math.Pi)
	for i := range x {
		dx := x[i] - vx.X0
		dy := y[i] - vx.Y0
		phi[i] = oo2pi * math.Atan2(dy, dx)
	}
	return phi
}

// Streamfunction is -(Gamma/2pi) * ln r.
func (vx *PointVortex) Streamfunction(x, y []float64) []float64 {
	psi := make([]float64, len(x))
	oo2pi := vx.Strength / (2 * math.Pi)
	for i := range x {
		dx := x[i] - vx.X0
		dy := y[i] - vx.Y0
		psi[i] = -oo2pi * math.Log(math.Hypot(dx, dy))
	}
	return psi
}
