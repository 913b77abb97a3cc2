package tetris

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasSevenTemplates(t *testing.T) {
	c := NewCatalog()
	require.Equal(t, 7, c.Size())

	seen := map[int]bool{}
	for i := 0; i < c.Size(); i++ {
		tmpl := c.Template(i)
		assert.NotEmpty(t, tmpl.Name)
		assert.False(t, seen[tmpl.Color], "color %d used twice", tmpl.Color)
		seen[tmpl.Color] = true
		assert.GreaterOrEqual(t, tmpl.Color, 1)
		assert.LessOrEqual(t, tmpl.Color, 7)
	}
}

func TestCatalogRandomIsUniformlyCovered(t *testing.T) {
	c := NewCatalog()

	seen := map[string]bool{}
	for i := 0; i < 2000; i++ {
		seen[c.Random().Name] = true
	}
	assert.Len(t, seen, 7, "every template should come up over 2000 draws")
}

func TestRotatedClockwise(t *testing.T) {
	tee := NewShape([][]int{
		{0, 1, 0},
		{1, 1, 1},
	})

	turned := tee.Rotated(AxisZ)
	assert.Equal(t, [][]int{
		{1, 0},
		{1, 1},
		{1, 0},
	}, turned.Mask())
}

func TestRotatedFourTimesIsIdentity(t *testing.T) {
	c := NewCatalog()
	for i := 0; i < c.Size(); i++ {
		shape := c.Template(i).Shape
		turned := shape
		for n := 0; n < 4; n++ {
			turned = turned.Rotated(AxisZ)
		}
		assert.Equal(t, shape.Mask(), turned.Mask())
	}
}

func TestRotatedCollapsesEveryAxisToFlat(t *testing.T) {
	ell := NewShape([][]int{
		{1, 0, 0},
		{1, 1, 1},
	})

	// Axis X and Y requests currently behave exactly like the in-plane turn;
	// the volumetric build never produced multi-layer shapes.
	z := ell.Rotated(AxisZ)
	assert.Equal(t, z.Mask(), ell.Rotated(AxisX).Mask())
	assert.Equal(t, z.Mask(), ell.Rotated(AxisY).Mask())
}

func TestShapeCells(t *testing.T) {
	s := NewShape([][]int{
		{0, 1},
		{1, 1},
	})

	assert.ElementsMatch(t, []Coord{
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
	}, s.Cells())
}

func TestSpawnPositionCentersShape(t *testing.T) {
	flat := NewBoard(10, 20, 1)

	i := NewShape([][]int{{1, 1, 1, 1}})
	assert.Equal(t, Coord{X: 3, Y: 0, Z: 0}, SpawnPosition(i, flat))

	o := NewShape([][]int{{1, 1}, {1, 1}})
	assert.Equal(t, Coord{X: 4, Y: 0, Z: 0}, SpawnPosition(o, flat))

	cube := NewBoard(6, 20, 6)
	assert.Equal(t, Coord{X: 1, Y: 0, Z: 3}, SpawnPosition(i, cube))
}

func TestLoadCatalogFile(t *testing.T) {
	script := `
local shapes = {
    { name = "plus", color = 2, rows = { ".X.", "XXX", ".X." } },
    { name = "bar", rows = { "XX" } },
}
function get_shapes()
    return shapes
end
`
	path := filepath.Join(t.TempDir(), "shapes.lua")
	require.NoError(t, os.WriteFile(path, []byte(script), 0644))

	catalog, err := LoadCatalogFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Size())

	plus := catalog.Template(0)
	assert.Equal(t, "plus", plus.Name)
	assert.Equal(t, 2, plus.Color)
	assert.Equal(t, [][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	}, plus.Shape.Mask())

	bar := catalog.Template(1)
	assert.Equal(t, "bar", bar.Name)
	assert.Equal(t, 2, bar.Color, "missing color defaults to the entry index")
}

func TestLoadCatalogFileRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"no function":  `shapes = {}`,
		"empty result": `function get_shapes() return {} end`,
		"ragged rows":  `function get_shapes() return { { name = "bad", rows = { "XX", "X" } } } end`,
		"no cells":     `function get_shapes() return { { name = "bad", rows = { "..", ".." } } } end`,
		"missing name": `function get_shapes() return { { rows = { "XX" } } } end`,
		"not a table":  `function get_shapes() return 42 end`,
	}

	for name, script := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "shapes.lua")
			require.NoError(t, os.WriteFile(path, []byte(script), 0644))

			_, err := LoadCatalogFile(path)
			assert.Error(t, err)
		})
	}
}
