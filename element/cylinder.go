package element

import "math"

// CylinderBody is the non-lifting cylinder composite: a uniform stream
// of speed Vinf in +x superposed with a doublet of strength
// 2*pi*Vinf*R^2 at (X0, Y0), expressed in the closed polar form. Note
// that the freestream term is baked in, but the element is still not
// classified as Uniform: the aggregator's Cp reference speed counts
// explicit UniformFlow elements only, matching the reference
// implementation.
type CylinderBody struct {
	X0, Y0 float64
	Vinf   float64
	Radius float64
}

func NewCylinder(x0, y0, vinf, radius float64) (c *CylinderBody) {
	c = &CylinderBody{X0: x0, Y0: y0, Vinf: vinf, Radius: radius}
	return
}

func (c *CylinderBody) Kind() Kind               { return Cylinder }
func (c *CylinderBody) Origin() (x0, y0 float64) { return c.X0, c.Y0 }

func (c *CylinderBody) Velocity(x, y []float64) (u, v []float64) {
	u = make([]float64, len(x))
	v = make([]float64, len(x))
	for i := range x {
		dx := x[i] - c.X0
		dy := y[i] - c.Y0
		r2 := dx*dx + dy*dy
		rr := c.Radius * c.Radius / r2
		theta := math.Atan2(dy, dx)
		sin, cos := math.Sincos(theta)
		vr := c.Vinf * cos * (1 - rr)
		vt := -c.Vinf * sin * (1 + rr)
		u[i] = vr*cos - vt*sin
		v[i] = vr*sin + vt*cos
	}
	return
}

// Potential is Vinf * r * cos(theta) * (1 + (R/r)^2).
func (c *CylinderBody) Potential(x, y []float64) []float64 {
	phi := make([]float64, len(x))
	for i := range x {
		dx := x[i] - c.X0
		dy := y[i] - c.Y0
		r := math.Hypot(dx, dy)
		rr := c.Radius * c.Radius / (r * r)
		theta := math.Atan2(dy, dx)
		phi[i] = c.Vinf * r * math.Cos(theta) * (1 + rr)
	}
	return phi
}

// Streamfunction is Vinf * r * sin(theta) * (1 - (R/r)^2).
func (c *CylinderBody) Streamfunction(x, y []float64) []float64 {
	psi := make([]float64, len(x))
	for i := range x {
		dx := x[i] - c.X0
		dy := y[i] - c.Y0
		r := math.Hypot(dx, dy)
		rr := c.Radius * c.Radius / (r * r)
		theta := math.Atan2(dy, dx)
		psi[i] = c.Vinf * r * math.Sin(theta) * (1 - rr)
	}
	return psi
}
