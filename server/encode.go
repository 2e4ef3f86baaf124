package server

import (
	"math"
	"strconv"

	"github.com/notargets/flowvis/analytic"
)

// jsonFloats marshals a float64 slice with non-finite entries encoded as
// null. Singularities are legitimate pointwise results of the core and
// must survive the trip to the frontend; encoding/json rejects NaN/Inf
// outright, so the substitution happens here at the boundary.
type jsonFloats []float64

func (f jsonFloats) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(f)*12+2)
	buf = append(buf, '[')
	for i, v := range f {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	buf = append(buf, ']')
	return buf, nil
}

type stagnationJSON struct {
	R     float64 `json:"r"`
	Theta float64 `json:"theta"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type cylinderJSON struct {
	Condition  *float64         `json:"condition"`
	Stagnation []stagnationJSON `json:"stagnation"`

	Grid struct {
		X    jsonFloats `json:"x"`
		Y    jsonFloats `json:"y"`
		Vx   jsonFloats `json:"vx"`
		Vy   jsonFloats `json:"vy"`
		Vmag jsonFloats `json:"vmag"`
		Phi  jsonFloats `json:"phi"`
		Psi  jsonFloats `json:"psi"`
	} `json:"grid"`

	Surface struct {
		Theta jsonFloats `json:"theta"`
		X     jsonFloats `json:"x"`
		Y     jsonFloats `json:"y"`
		Vx    jsonFloats `json:"vx"`
		Vy    jsonFloats `json:"vy"`
		Vmag  jsonFloats `json:"vmag"`
		Cp    jsonFloats `json:"cp"`
	} `json:"surface"`
}

func cylinderResponse(sol *analytic.CylinderSolution) cylinderJSON {
	var out cylinderJSON
	if !math.IsNaN(sol.Condition) && !math.IsInf(sol.Condition, 0) {
		cond := sol.Condition
		out.Condition = &cond
	}
	out.Stagnation = make([]stagnationJSON, 0, len(sol.Stagnation))
	for _, sp := range sol.Stagnation {
		out.Stagnation = append(out.Stagnation, stagnationJSON{
			R: sp.R, Theta: sp.Theta, X: sp.X, Y: sp.Y,
		})
	}

	g := sol.Grid
	out.Grid.X = jsonFloats(g.X)
	out.Grid.Y = jsonFloats(g.Y)
	out.Grid.Vx = jsonFloats(g.Vx)
	out.Grid.Vy = jsonFloats(g.Vy)
	out.Grid.Vmag = jsonFloats(g.Vmag)
	out.Grid.Phi = jsonFloats(g.Phi)
	out.Grid.Psi = jsonFloats(g.Psi)

	s := sol.Surface
	out.Surface.Theta = jsonFloats(s.Theta)
	out.Surface.X = jsonFloats(s.X)
	out.Surface.Y = jsonFloats(s.Y)
	out.Surface.Vx = jsonFloats(s.Vx)
	out.Surface.Vy = jsonFloats(s.Vy)
	out.Surface.Vmag = jsonFloats(s.Vmag)
	out.Surface.Cp = jsonFloats(s.Cp)
	return out
}
