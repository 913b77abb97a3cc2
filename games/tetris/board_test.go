package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill writes v at (x, y, z) directly, bypassing the collision engine.
func fill(b *Board, x, y, z, v int) {
	b.cells[b.index(Coord{X: x, Y: y, Z: z})] = v
}

func fillRow(b *Board, y, z, v int) {
	for x := 0; x < b.Width; x++ {
		fill(b, x, y, z, v)
	}
}

func TestFitsBounds(t *testing.T) {
	b := NewBoard(10, 20, 1)
	o := NewShape([][]int{{1, 1}, {1, 1}})

	assert.True(t, b.Fits(o, Coord{X: 0, Y: 0}))
	assert.True(t, b.Fits(o, Coord{X: 8, Y: 18}))

	assert.False(t, b.Fits(o, Coord{X: -1, Y: 0}), "left wall")
	assert.False(t, b.Fits(o, Coord{X: 9, Y: 0}), "right wall")
	assert.False(t, b.Fits(o, Coord{X: 0, Y: 19}), "floor")
	assert.False(t, b.Fits(o, Coord{X: 0, Y: 0, Z: 1}), "depth wall on a flat board")
	assert.False(t, b.Fits(o, Coord{X: 0, Y: 0, Z: -1}), "front depth wall")
}

func TestFitsAboveBoardSkipsOccupancy(t *testing.T) {
	b := NewBoard(10, 20, 1)
	i := NewShape([][]int{{1, 1, 1, 1}})

	// A piece hanging over the top edge is fine as long as it stays between
	// the side walls.
	o := NewShape([][]int{{1, 1}, {1, 1}})
	assert.True(t, b.Fits(o, Coord{X: 3, Y: -1}))
	assert.False(t, b.Fits(o, Coord{X: -1, Y: -1}), "walls still apply above the board")

	// Occupancy is only checked for rows at or below the top edge.
	fillRow(b, 0, 0, 5)
	assert.True(t, b.Fits(i, Coord{X: 3, Y: -1}))
	assert.False(t, b.Fits(i, Coord{X: 3, Y: 0}))
}

func TestFitsOccupiedCells(t *testing.T) {
	b := NewBoard(10, 20, 1)
	o := NewShape([][]int{{1, 1}, {1, 1}})

	fill(b, 4, 19, 0, 3)
	assert.True(t, b.Fits(o, Coord{X: 5, Y: 18}))
	assert.False(t, b.Fits(o, Coord{X: 4, Y: 18}))
	assert.False(t, b.Fits(o, Coord{X: 3, Y: 18}))
}

func TestLockWritesColor(t *testing.T) {
	b := NewBoard(10, 20, 1)
	p := &Piece{
		Color: 3,
		Shape: NewShape([][]int{{0, 1, 0}, {1, 1, 1}}),
		Pos:   Coord{X: 4, Y: 18},
	}

	b.Lock(p)

	assert.Equal(t, 3, b.At(Coord{X: 5, Y: 18}))
	assert.Equal(t, 3, b.At(Coord{X: 4, Y: 19}))
	assert.Equal(t, 3, b.At(Coord{X: 5, Y: 19}))
	assert.Equal(t, 3, b.At(Coord{X: 6, Y: 19}))
	assert.Equal(t, 0, b.At(Coord{X: 4, Y: 18}))
}

func TestLockAboveSkylineDropsCells(t *testing.T) {
	b := NewBoard(10, 20, 1)
	p := &Piece{
		Color: 2,
		Shape: NewShape([][]int{{1, 1}, {1, 1}}),
		Pos:   Coord{X: 4, Y: -1},
	}

	b.Lock(p)

	assert.Equal(t, 2, b.At(Coord{X: 4, Y: 0}))
	assert.Equal(t, 2, b.At(Coord{X: 5, Y: 0}))
	// The row above the board simply vanishes.
	for x := 0; x < b.Width; x++ {
		for y := 1; y < b.Height; y++ {
			assert.Equal(t, 0, b.At(Coord{X: x, Y: y}))
		}
	}
}

func TestLockOutOfBoundsPanics(t *testing.T) {
	b := NewBoard(10, 20, 1)
	p := &Piece{
		Color: 1,
		Shape: NewShape([][]int{{1, 1, 1, 1}}),
		Pos:   Coord{X: 8, Y: 5},
	}

	require.Panics(t, func() { b.Lock(p) })
}

func TestClearFullRowsEmptyBoard(t *testing.T) {
	b := NewBoard(10, 20, 1)
	before := b.Layers()

	assert.Equal(t, 0, b.ClearFullRows())
	assert.Equal(t, before, b.Layers(), "clearing with no full rows must not change the board")
}

func TestClearFullRowsPadsTopAndKeepsOrder(t *testing.T) {
	b := NewBoard(4, 6, 1)

	// Row 2 has a marker, rows 3 and 5 are full, row 4 has another marker.
	fill(b, 0, 2, 0, 7)
	fillRow(b, 3, 0, 1)
	fill(b, 1, 4, 0, 6)
	fillRow(b, 5, 0, 2)

	assert.Equal(t, 2, b.ClearFullRows())

	layers := b.Layers()
	require.Len(t, layers[0], 6, "board height must not change")

	// Two fresh empty rows on top, markers shifted down in order.
	for y := 0; y < 4; y++ {
		assert.Equal(t, []int{0, 0, 0, 0}, layers[0][y], "row %d should be empty", y)
	}
	assert.Equal(t, 7, layers[0][4][0], "upper marker lands above the lower one")
	assert.Equal(t, 6, layers[0][5][1], "lower marker sinks to the floor")
}

func TestClearFullRowsSimultaneous(t *testing.T) {
	b := NewBoard(4, 4, 1)
	fillRow(b, 1, 0, 1)
	fillRow(b, 2, 0, 1)
	fillRow(b, 3, 0, 1)
	fill(b, 2, 0, 0, 5)

	// All three full rows go at once; the survivor drops to the floor.
	assert.Equal(t, 3, b.ClearFullRows())
	assert.Equal(t, 5, b.At(Coord{X: 2, Y: 3}))
	assert.Equal(t, 0, b.At(Coord{X: 2, Y: 0}))
}

func TestClearFullRowsPerLayer(t *testing.T) {
	b := NewBoard(3, 4, 2)

	// Layer 0: bottom row full. Layer 1: same row only partially filled.
	fillRow(b, 3, 0, 1)
	fill(b, 0, 3, 1, 2)
	fill(b, 2, 2, 1, 4)

	assert.Equal(t, 1, b.ClearFullRows())

	// Layer 0 cleared, layer 1 untouched.
	assert.Equal(t, 0, b.At(Coord{X: 0, Y: 3, Z: 0}))
	assert.Equal(t, 2, b.At(Coord{X: 0, Y: 3, Z: 1}))
	assert.Equal(t, 4, b.At(Coord{X: 2, Y: 2, Z: 1}))
}

func TestLayersIsDeepCopy(t *testing.T) {
	b := NewBoard(4, 4, 1)
	fill(b, 1, 1, 0, 3)

	layers := b.Layers()
	layers[0][1][1] = 9

	assert.Equal(t, 3, b.At(Coord{X: 1, Y: 1}), "mutating a snapshot must not touch the board")
}
