package tetris

import "fmt"

// Coord is a position in board space. Z is always 0 on flat boards.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Board is a fixed-size volume of cells: Width x Height for the flat
// variants, Width x Height x Depth for the volumetric one. A cell holds 0
// when empty or the catalog color (1..N) of the piece locked there.
// Dimensions never change after construction.
type Board struct {
	Width  int
	Height int
	Depth  int

	// Row-major, index = (z*Height + y)*Width + x
	cells []int
}

// NewBoard creates an empty board. Flat variants pass depth 1.
func NewBoard(width, height, depth int) *Board {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic(fmt.Sprintf("tetris: invalid board dimensions %dx%dx%d", width, height, depth))
	}
	return &Board{
		Width:  width,
		Height: height,
		Depth:  depth,
		cells:  make([]int, width*height*depth),
	}
}

func (b *Board) index(c Coord) int {
	return (c.Z*b.Height+c.Y)*b.Width + c.X
}

// InBounds reports whether c lies inside the board volume.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.Width &&
		c.Y >= 0 && c.Y < b.Height &&
		c.Z >= 0 && c.Z < b.Depth
}

// At returns the cell value at c, or 0 for coordinates outside the board so
// callers can probe freely.
func (b *Board) At(c Coord) int {
	if !b.InBounds(c) {
		return 0
	}
	return b.cells[b.index(c)]
}

// Fits reports whether shape can occupy pos. Every filled sub-cell must stay
// inside the side walls and above the floor; cells still above the visible
// board (negative Y) skip the occupancy check but must respect X/Z bounds,
// so a freshly spawned or kicked piece may hang over the top edge.
func (b *Board) Fits(shape Shape, pos Coord) bool {
	for _, off := range shape.Cells() {
		x := pos.X + off.X
		y := pos.Y + off.Y
		z := pos.Z + off.Z

		if x < 0 || x >= b.Width || z < 0 || z >= b.Depth || y >= b.Height {
			return false
		}
		if y >= 0 && b.cells[(z*b.Height+y)*b.Width+x] != 0 {
			return false
		}
	}
	return true
}

// Lock writes the piece's filled cells into the board. The placement must
// already have been validated through Fits; a write outside the volume means
// the collision checks were bypassed and is treated as a contract breach.
// Cells above the skyline (negative Y) are dropped silently, since a piece
// may legitimately come to rest poking over the top edge.
func (b *Board) Lock(p *Piece) {
	for _, off := range p.Shape.Cells() {
		c := Coord{X: p.Pos.X + off.X, Y: p.Pos.Y + off.Y, Z: p.Pos.Z + off.Z}
		if c.Y < 0 {
			continue
		}
		if !b.InBounds(c) {
			panic(fmt.Sprintf("tetris: lock outside board at (%d,%d,%d)", c.X, c.Y, c.Z))
		}
		b.cells[b.index(c)] = p.Color
	}
}

// ClearFullRows removes every fully occupied row, each depth layer handled
// independently. All full rows go at once, the remaining rows keep their
// relative order, and the layer is re-padded with empty rows at the top.
// Returns the total number of rows removed across all layers.
func (b *Board) ClearFullRows() int {
	cleared := 0

	for z := 0; z < b.Depth; z++ {
		kept := make([][]int, 0, b.Height)
		for y := 0; y < b.Height; y++ {
			row := b.copyRow(z, y)
			if rowFull(row) {
				cleared++
				continue
			}
			kept = append(kept, row)
		}

		pad := b.Height - len(kept)
		for y := 0; y < b.Height; y++ {
			if y < pad {
				b.fillRow(z, y, nil)
			} else {
				b.fillRow(z, y, kept[y-pad])
			}
		}
	}

	return cleared
}

func (b *Board) copyRow(z, y int) []int {
	start := (z*b.Height + y) * b.Width
	row := make([]int, b.Width)
	copy(row, b.cells[start:start+b.Width])
	return row
}

// fillRow writes row into layer z at height y; a nil row clears it.
func (b *Board) fillRow(z, y int, row []int) {
	start := (z*b.Height + y) * b.Width
	for x := 0; x < b.Width; x++ {
		if row == nil {
			b.cells[start+x] = 0
		} else {
			b.cells[start+x] = row[x]
		}
	}
}

func rowFull(row []int) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}

// Layers returns a deep copy of the board contents indexed [layer][row][col],
// for snapshots handed to renderers.
func (b *Board) Layers() [][][]int {
	layers := make([][][]int, b.Depth)
	for z := 0; z < b.Depth; z++ {
		layers[z] = make([][]int, b.Height)
		for y := 0; y < b.Height; y++ {
			layers[z][y] = b.copyRow(z, y)
		}
	}
	return layers
}
