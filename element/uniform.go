package element

// UniformFlow is a constant freestream with velocity vector (U, V).
// Its accumulated (U, V) across a field sets the reference speed for
// the pressure coefficient.
type UniformFlow struct {
	U, V float64
}

func NewUniform(u, v float64) (uf *UniformFlow) {
	uf = &UniformFlow{U: u, V: v}
	return
}

func (uf *UniformFlow) Kind() Kind { return Uniform }

func (uf *UniformFlow) Velocity(x, y []float64) (u, v []float64) {
	u = make([]float64, len(x))
	v = make([]float64, len(x))
	for i := range x {
		u[i] = uf.U
		v[i] = uf.V
	}
	return
}

// Potential is phi = U*x + V*y.
func (uf *UniformFlow) Potential(x, y []float64) []float64 {
	phi := make([]float64, len(x))
	for i := range x {
		phi[i] = uf.U*x[i] + uf.V*y[i]
	}
	return phi
}

// Streamfunction is psi = U*y - V*x.
func (uf *UniformFlow) Streamfunction(x, y []float64) []float64 {
	psi := make([]float64, len(x))
	for i := range x {
		psi[i] = uf.U*y[i] - uf.V*x[i]
	}
	return psi
}
