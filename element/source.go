package element

import "math"

// PointSource is a source (Strength > 0) or sink (Strength < 0) at
// (X0, Y0). The radial velocity is Lambda/(2*pi*r); evaluation at the
// singularity itself produces Inf/NaN, which is left in the output.
type PointSource struct {
	X0, Y0   float64
	Strength float64
}

func NewSource(x0, y0, strength float64) (s *PointSource) {
	s = &PointSource{X0: x0, Y0: y0, Strength: strength}
	return
}

func (s *PointSource) Kind() Kind               { return Source }
func (s *PointSource) Origin() (x0, y0 float64) { return s.X0, s.Y0 }

func (s *PointSource) Velocity(x, y []float64) (u, v []float64) {
	u = make([]float64, len(x))
	v = make([]float64, len(x))
	oo2pi := s.Strength / (2 * math.Pi)
	for i := range x {
		dx := x[i] - s.X0
		dy := y[i] - s.Y0
		r2 := dx*dx + dy*dy
		// Vr = Lambda/(2 pi r), Vtheta = 0: cartesian form is
		// (Lambda/(2 pi r^2)) * (dx, dy)
		u[i] = oo2pi * dx / r2
		v[i] = oo2pi * dy / r2
	}
	return
}

// Potential is (Lambda/2pi) * ln r.
func (s *PointSource) Potential(x, y []float64) []float64 {
	phi := make([]float64, len(x))
	oo2pi := s.Strength / (2 * math.Pi)
	for i := range x {
		dx := x[i] - s.X0
		dy := y[i] - s.Y0
		phi[i] = oo2pi * math.Log(math.Hypot(dx, dy))
	}
	return phi
}

// Streamfunction is (Lambda/2pi) * theta.
func (s *PointSource) Streamfunction(x, y []float64) []float64 {
	psi := make([]float64, len(x))
	oo2pi := s.Strength / (2 * math.Pi)
	for i := range x {
		dx := x[i] - s.X0
		dy := y[i] - s.Y0
		psi[i] = oo2pi * math.Atan2(dy, dx)
	}
	return psi
}
