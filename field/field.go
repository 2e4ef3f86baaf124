// Package field aggregates named flow elements and evaluates the
// superposed velocity, potential, streamfunction and pressure-coefficient
// fields over a batch of query points.
package field

import (
	"sort"

	"github.com/google/uuid"

	"github.com/notargets/flowvis/element"
)

// Field is a collection of named flow elements. Elements are immutable
// once added; evaluation allocates fresh accumulators per call, so a
// Field may be evaluated repeatedly (or concurrently) without shared
// state between calls.
type Field struct {
	Elements map[string]element.Element

	// FreestreamFallback substitutes for V_inf^2 in the Cp normalization
	// when the accumulated freestream speed is exactly zero (no Uniform
	// element, or a perfectly cancelling pair). The reference
	// implementation hard-codes 1; it is exposed here because the
	// substitution changes what Cp means.
	FreestreamFallback float64
}

func New() (f *Field) {
	f = &Field{
		Elements:           make(map[string]element.Element),
		FreestreamFallback: 1,
	}
	return
}

// Add registers el under name, replacing any previous element with the
// same name.
func (f *Field) Add(name string, el element.Element) {
	f.Elements[name] = el
}

// AddAnon registers el under a generated unique name and returns it.
func (f *Field) AddAnon(el element.Element) string {
	name := uuid.NewString()
	f.Elements[name] = el
	return name
}

// Names returns the element names in sorted order.
func (f *Field) Names() []string {
	names := make([]string, 0, len(f.Elements))
	for name := range f.Elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sample holds the aggregate per-point results of one evaluation,
// index-aligned with the query points.
type Sample struct {
	U, V []float64
	Phi  []float64
	Psi  []float64
	Cp   []float64
}

// Evaluate sums every element's contribution at the query points and
// derives Cp from the accumulated freestream of the UniformFlow elements.
// Iteration order does not affect the result beyond floating-point
// rounding. An empty field yields all-zero arrays.
func (f *Field) Evaluate(x, y []float64) *Sample {
	n := len(x)
	s := &Sample{
		U:   make([]float64, n),
		V:   make([]float64, n),
		Phi: make([]float64, n),
		Psi: make([]float64, n),
		Cp:  make([]float64, n),
	}
	if len(f.Elements) == 0 {
		return s
	}

	var uInf, vInf float64
	for _, el := range f.Elements {
		u, v := el.Velocity(x, y)
		phi := el.Potential(x, y)
		psi := el.Streamfunction(x, y)
		for i := 0; i < n; i++ {
			s.U[i] += u[i]
			s.V[i] += v[i]
			s.Phi[i] += phi[i]
			s.Psi[i] += psi[i]
		}
		// Only concrete UniformFlow elements set the reference speed;
		// a foreign element reporting the Uniform kind is ignored here.
		if uf, ok := el.(*element.UniformFlow); ok {
			uInf += uf.U
			vInf += uf.V
		}
	}

	vinf2 := uInf*uInf + vInf*vInf
	if vinf2 == 0 {
		vinf2 = f.FreestreamFallback
	}
	for i := 0; i < n; i++ {
		s.Cp[i] = 1 - (s.U[i]*s.U[i]+s.V[i]*s.V[i])/vinf2
	}
	return s
}
