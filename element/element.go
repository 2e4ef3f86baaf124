package element

// Kind discriminates the flow-element variants for callers that switch
// on variant without reflection.
type Kind uint8

const (
	Uniform Kind = iota
	Source
	Doublet
	Vortex
	Cylinder
)

func (k Kind) String() string {
	switch k {
	case Uniform:
		return "Uniform"
	case Source:
		return "Source"
	case Doublet:
		return "Doublet"
	case Vortex:
		return "Vortex"
	case Cylinder:
		return "Cylinder"
	default:
		return "Unknown"
	}
}

// Element is one potential-flow singularity. All operations are pure
// functions of a batch of query points given as parallel coordinate
// slices; outputs are index-aligned with the inputs. Evaluation at a
// singularity (r=0) yields NaN/Inf in the output, never a panic.
type Element interface {
	Kind() Kind

	// Velocity returns the Cartesian velocity contribution (u, v).
	Velocity(x, y []float64) (u, v []float64)

	// Potential returns the scalar potential contribution phi.
	Potential(x, y []float64) []float64

	// Streamfunction returns the streamfunction contribution psi.
	Streamfunction(x, y []float64) []float64
}

// PointElement is implemented by variants anchored at a single point,
// used by the presentation layer to place origin markers.
type PointElement interface {
	Origin() (x0, y0 float64)
}
