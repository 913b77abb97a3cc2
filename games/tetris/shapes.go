package tetris

import (
	"math/rand"
	"time"
)

// Axis selects the rotation plane for the volumetric variant. Flat boards
// only ever rotate around Z.
type Axis int

const (
	AxisZ Axis = iota
	AxisX
	AxisY
)

// Shape is an immutable binary mask in its minimal bounding grid. The depth
// extent is always 1: the volumetric variant embeds the same flat templates
// in a single layer.
type Shape struct {
	mask [][]int
}

// NewShape copies mask into an immutable shape. Rows must share one width.
func NewShape(mask [][]int) Shape {
	return Shape{mask: copyMask(mask)}
}

func (s Shape) Width() int  { return len(s.mask[0]) }
func (s Shape) Height() int { return len(s.mask) }

// Cells returns the offsets of every filled sub-cell relative to the shape's
// top-left anchor. Z is always 0.
func (s Shape) Cells() []Coord {
	cells := make([]Coord, 0, 4)
	for y, row := range s.mask {
		for x, v := range row {
			if v != 0 {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// Mask returns a copy of the binary grid for snapshots.
func (s Shape) Mask() [][]int {
	return copyMask(s.mask)
}

// Rotated returns the shape turned a clockwise quarter: transpose the grid,
// then reverse each resulting row.
//
// Every axis currently produces the same flat in-plane turn. The volumetric
// build this engine unifies collapsed any axis request back to a one-layer
// shape, so the X and Y cases are reproduced as-is rather than given new
// geometry. TODO: real cross-plane rotation needs multi-layer shape masks.
func (s Shape) Rotated(axis Axis) Shape {
	rows := s.Height()
	cols := s.Width()

	out := make([][]int, cols)
	for i := range out {
		out[i] = make([]int, rows)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c][rows-1-r] = s.mask[r][c]
		}
	}
	return Shape{mask: out}
}

func copyMask(mask [][]int) [][]int {
	out := make([][]int, len(mask))
	for i := range mask {
		out[i] = make([]int, len(mask[i]))
		copy(out[i], mask[i])
	}
	return out
}

// Template pairs a shape with its display name and the cell value (1..N)
// its locked cells write into the board.
type Template struct {
	Name  string
	Color int
	Shape Shape
}

// Catalog is an immutable library of piece templates. Selection is uniform
// random; there is no bag or anti-repeat policy.
type Catalog struct {
	templates []Template
	rng       *rand.Rand
}

// The 7 standard tetrominoes in minimal bounding grids.
var standardTemplates = []Template{
	{Name: "I", Color: 1, Shape: Shape{mask: [][]int{
		{1, 1, 1, 1},
	}}},
	{Name: "O", Color: 2, Shape: Shape{mask: [][]int{
		{1, 1},
		{1, 1},
	}}},
	{Name: "T", Color: 3, Shape: Shape{mask: [][]int{
		{0, 1, 0},
		{1, 1, 1},
	}}},
	{Name: "S", Color: 4, Shape: Shape{mask: [][]int{
		{0, 1, 1},
		{1, 1, 0},
	}}},
	{Name: "Z", Color: 5, Shape: Shape{mask: [][]int{
		{1, 1, 0},
		{0, 1, 1},
	}}},
	{Name: "J", Color: 6, Shape: Shape{mask: [][]int{
		{1, 0, 0},
		{1, 1, 1},
	}}},
	{Name: "L", Color: 7, Shape: Shape{mask: [][]int{
		{0, 0, 1},
		{1, 1, 1},
	}}},
}

// NewCatalog returns the standard 7-piece catalog.
func NewCatalog() *Catalog {
	return newCatalog(standardTemplates)
}

func newCatalog(templates []Template) *Catalog {
	if len(templates) == 0 {
		panic("tetris: catalog needs at least one template")
	}
	return &Catalog{
		templates: templates,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Random draws a template uniformly at random.
func (c *Catalog) Random() Template {
	return c.templates[c.rng.Intn(len(c.templates))]
}

// Size returns the number of templates in the catalog.
func (c *Catalog) Size() int {
	return len(c.templates)
}

// Template returns the template at index i. Out-of-range indices are a
// programming error.
func (c *Catalog) Template(i int) Template {
	return c.templates[i]
}

// SpawnPosition centers the shape at the top of the board: horizontally via
// floor(W/2)-floor(shapeW/2), depth-centered on volumetric boards, row 0.
func SpawnPosition(s Shape, b *Board) Coord {
	return Coord{
		X: b.Width/2 - s.Width()/2,
		Y: 0,
		Z: b.Depth / 2,
	}
}
