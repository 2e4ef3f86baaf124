package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/flowvis/element"
)

const sampleScene = `
elements:
  - type: uniform
    name: freestream
    u: 1.0
  - type: doublet
    x: 0
    y: 0
    strength: 6.2832
  - type: vortex
    name: spin
    strength: -3.5
  - type: source
    x: 2
    y: -1
    strength: 4
`

func TestParseAndBuild(t *testing.T) {
	sc, err := Parse([]byte(sampleScene))
	require.NoError(t, err)
	require.Len(t, sc.Elements, 4)

	f, err := sc.Field()
	require.NoError(t, err)
	require.Len(t, f.Elements, 4)

	// Named elements keep their names; unnamed ones get generated ones.
	fs, ok := f.Elements["freestream"]
	require.True(t, ok)
	assert.Equal(t, element.Uniform, fs.Kind())
	assert.Equal(t, 1.0, fs.(*element.UniformFlow).U)

	spin, ok := f.Elements["spin"]
	require.True(t, ok)
	assert.Equal(t, element.Vortex, spin.Kind())
	assert.Equal(t, -3.5, spin.(*element.PointVortex).Strength)
}

func TestBuildVariants(t *testing.T) {
	for _, tc := range []struct {
		typ  string
		kind element.Kind
	}{
		{"uniform", element.Uniform},
		{"source", element.Source},
		{"sink", element.Source},
		{"doublet", element.Doublet},
		{"vortex", element.Vortex},
		{"cylinder", element.Cylinder},
	} {
		t.Run(tc.typ, func(t *testing.T) {
			es := ElementSpec{Type: tc.typ, Vinf: 1, Radius: 1}
			el, err := es.Build()
			require.NoError(t, err)
			assert.Equal(t, tc.kind, el.Kind())
		})
	}
}

func TestUnknownTypeRejected(t *testing.T) {
	es := ElementSpec{Type: "tornado"}
	_, err := es.Build()
	assert.ErrorIs(t, err, ErrUnknownType)

	sc := Scene{Elements: []ElementSpec{{Type: "tornado"}}}
	_, err = sc.Field()
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Elements, 4)

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("elements: {nope"), 0o644))
		_, err := Load(bad)
		assert.Error(t, err)
	})
}
