package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/flowvis/element"
	"github.com/notargets/flowvis/field"
)

// FieldMaps writes one heatmap PNG per aggregate quantity (x-velocity,
// pressure coefficient, potential, streamfunction) for a sample
// evaluated on the grid spanned by the xAxis and yAxis coordinates.
// Point-like element origins are overlaid, colored by strength sign.
func FieldMaps(dir string, xAxis, yAxis []float64, s *field.Sample, f *field.Field) error {
	maps := []struct {
		file, title string
		data        []float64
	}{
		{"xvel.png", "x-Velocity", s.U},
		{"cp.png", "Pressure Coefficient", s.Cp},
		{"phi.png", "Potential", s.Phi},
		{"psi.png", "Streamfunction", s.Psi},
	}

	for _, m := range maps {
		p, err := heatmap(m.title, xAxis, yAxis, m.data)
		if err != nil {
			return fmt.Errorf("%s: %w", m.file, err)
		}
		if err := addOrigins(p, f); err != nil {
			return err
		}
		if err := savePlot(p, dir, m.file); err != nil {
			return err
		}
	}
	return nil
}

// addOrigins marks every point-like element at its anchor position.
func addOrigins(p *plot.Plot, f *field.Field) error {
	for _, name := range f.Names() {
		el := f.Elements[name]
		pe, ok := el.(element.PointElement)
		if !ok {
			continue
		}
		x0, y0 := pe.Origin()
		sc, err := marker(x0, y0, originColor(el), originRadius(el))
		if err != nil {
			return err
		}
		p.Add(sc)
	}
	return nil
}

func elementStrength(el element.Element) (float64, bool) {
	switch e := el.(type) {
	case *element.PointSource:
		return e.Strength, true
	case *element.PointDoublet:
		return e.Strength, true
	case *element.PointVortex:
		return e.Strength, true
	default:
		return 0, false
	}
}

func originColor(el element.Element) color.Color {
	if s, ok := elementStrength(el); ok {
		if s > 0 {
			return colorPositive
		}
		return colorNegative
	}
	return colorBody
}

// originRadius scales the marker with tanh of the strength so that very
// strong singularities do not dominate the figure.
func originRadius(el element.Element) vg.Length {
	s, _ := elementStrength(el)
	return vg.Points(4 + 4*math.Tanh(math.Abs(s)/10))
}
