// Package scene loads flow-element collections from YAML preset files.
package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/notargets/flowvis/element"
	"github.com/notargets/flowvis/field"
)

var ErrUnknownType = errors.New("unknown element type")

// ElementSpec is one entry of a scene file. Only the attributes relevant
// to the declared type are consulted; Name is optional and generated
// when absent.
type ElementSpec struct {
	Type     string  `yaml:"type" json:"type"`
	Name     string  `yaml:"name,omitempty" json:"name,omitempty"`
	X        float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Strength float64 `yaml:"strength,omitempty" json:"strength,omitempty"`
	Alpha    float64 `yaml:"alpha,omitempty" json:"alpha,omitempty"`
	U        float64 `yaml:"u,omitempty" json:"u,omitempty"`
	V        float64 `yaml:"v,omitempty" json:"v,omitempty"`
	Vinf     float64 `yaml:"vinf,omitempty" json:"vinf,omitempty"`
	Radius   float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
}

// Scene is the top-level document of a scene file.
type Scene struct {
	Elements []ElementSpec `yaml:"elements"`
}

// Build constructs the element described by the spec.
func (es *ElementSpec) Build() (element.Element, error) {
	switch es.Type {
	case "uniform":
		return element.NewUniform(es.U, es.V), nil
	case "source", "sink":
		return element.NewSource(es.X, es.Y, es.Strength), nil
	case "doublet":
		return element.NewDoublet(es.X, es.Y, es.Strength, es.Alpha), nil
	case "vortex":
		return element.NewVortex(es.X, es.Y, es.Strength), nil
	case "cylinder":
		return element.NewCylinder(es.X, es.Y, es.Vinf, es.Radius), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, es.Type)
	}
}

// Field assembles the scene into an evaluable field. Unnamed elements
// receive generated names.
func (sc *Scene) Field() (*field.Field, error) {
	f := field.New()
	for i, es := range sc.Elements {
		el, err := es.Build()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if es.Name != "" {
			f.Add(es.Name, el)
		} else {
			f.AddAnon(el)
		}
	}
	return f, nil
}

// Parse decodes a YAML scene document.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &sc, nil
}

// Load reads and assembles a scene file into a field.
func Load(path string) (*field.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return sc.Field()
}
