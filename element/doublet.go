package element

import "math"

// PointDoublet is a doublet of strength Kappa at (X0, Y0), oriented at
// angle Alpha radians from the +x axis. Combined with a uniform stream
// it models flow around a cylinder.
type PointDoublet struct {
	X0, Y0   float64
	Strength float64
	Alpha    float64
}

func NewDoublet(x0, y0, strength, alpha float64) (d *PointDoublet) {
	d = &PointDoublet{X0: x0, Y0: y0, Strength: strength, Alpha: alpha}
	return
}

func (d *PointDoublet) Kind() Kind               { return Doublet }
func (d *PointDoublet) Origin() (x0, y0 float64) { return d.X0, d.Y0 }

// Velocity evaluates the polar components
//
//	Vr     = -(kappa / (2 pi r^2)) * cos(theta - alpha)
//	Vtheta = -(kappa / (2 pi r^2)) * sin(theta - alpha)
//
// and rotates them into Cartesian (u, v).
func (d *PointDoublet) Velocity(x, y []float64) (u, v []float64) {
	u = make([]float64, len(x))
	v = make([]float64, len(x))
	oo2pi := d.Strength / (2 * math.Pi)
	for i := range x {
		dx := x[i] - d.X0
		dy := y[i] - d.Y0
		r2 := dx*dx + dy*dy
		theta := math.Atan2(dy, dx)
		vr := -oo2pi / r2 * math.Cos(theta-d.Alpha)
		vt := -oo2pi / r2 * math.Sin(theta-d.Alpha)
		sin, cos := math.Sincos(theta)
		u[i] = vr*cos - vt*sin
		v[i] = vr*sin + vt*cos
	}
	return
}

// Potential is (kappa/(2 pi r)) * cos(theta - alpha).
func (d *PointDoublet) Potential(x, y []float64) []float64 {
	phi := make([]float64, len(x))
	oo2pi := d.Strength / (2 * math.Pi)
	for i := range x {
		dx := x[i] - d.X0
		dy := y[i] - d.Y0
		r := math.Hypot(dx, dy)
		theta := math.Atan2(dy, dx)
		phi[i] = oo2pi / r * math.Cos(theta-d.Alpha)
	}
	return phi
}

// Streamfunction is -(kappa/(2 pi r)) * sin(theta - alpha).
func (d *PointDoublet) Streamfunction(x, y []float64) []float64 {
	psi := make([]float64, len(x))
	oo2pi := d.Strength / (2 * math.Pi)
	for i := range x {
		dx := x[i] - d.X0
		dy := y[i] - d.Y0
		r := math.Hypot(dx, dy)
		theta := math.Atan2(dy, dx)
		psi[i] = -oo2pi / r * math.Sin(theta-d.Alpha)
	}
	return psi
}
