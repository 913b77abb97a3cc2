package tetris

// Piece is an active, queued, or held tetromino: the current rotation of a
// template plus its anchor position on the board. The anchor is the shape's
// top-left (top-left-front on volumetric boards) bounding-box corner.
type Piece struct {
	Name  string
	Color int
	Shape Shape
	Pos   Coord
}

func newPiece(t Template) *Piece {
	return &Piece{Name: t.Name, Color: t.Color, Shape: t.Shape}
}

// Controller owns the active, next, and held piece slots and applies
// movement intents against its board. Blocked intents are policy no-ops,
// never errors.
type Controller struct {
	board    *Board
	catalog  *Catalog
	rules    Rules
	active   *Piece
	next     *Piece
	stored   *Piece
	canStore bool
}

func newController(board *Board, catalog *Catalog, rules Rules) *Controller {
	c := &Controller{
		board:    board,
		catalog:  catalog,
		rules:    rules,
		canStore: true,
	}
	c.next = c.draw()
	return c
}

func (c *Controller) draw() *Piece {
	p := newPiece(c.catalog.Random())
	p.Pos = SpawnPosition(p.Shape, c.board)
	return p
}

// spawn promotes the queued piece to active and refills the queue. It
// reports false when the queued piece has no room at its spawn position,
// which is the session's game-over condition; the blocked piece is never
// installed, it stays queued with no active piece.
func (c *Controller) spawn() bool {
	p := c.next
	p.Pos = SpawnPosition(p.Shape, c.board)
	if !c.board.Fits(p.Shape, p.Pos) {
		c.active = nil
		return false
	}
	c.active = p
	c.next = c.draw()
	return true
}

// move shifts the active piece by one step if the target placement is valid.
func (c *Controller) move(dx, dy, dz int) bool {
	if c.active == nil {
		return false
	}
	to := Coord{X: c.active.Pos.X + dx, Y: c.active.Pos.Y + dy, Z: c.active.Pos.Z + dz}
	if !c.board.Fits(c.active.Shape, to) {
		return false
	}
	c.active.Pos = to
	return true
}

// rotate applies a clockwise quarter-turn. When the in-place turn is blocked
// the variant's kick offsets are tried in order and the first valid one
// wins; if none fit the piece is left untouched.
func (c *Controller) rotate(axis Axis) bool {
	if c.active == nil {
		return false
	}

	turned := c.active.Shape.Rotated(axis)
	if c.board.Fits(turned, c.active.Pos) {
		c.active.Shape = turned
		return true
	}

	for _, kick := range c.rules.Kicks {
		to := Coord{
			X: c.active.Pos.X + kick.X,
			Y: c.active.Pos.Y + kick.Y,
			Z: c.active.Pos.Z + kick.Z,
		}
		if c.board.Fits(turned, to) {
			c.active.Shape = turned
			c.active.Pos = to
			return true
		}
	}
	return false
}

// dropDistance ray-casts the active piece down to the last valid row and
// returns how many rows it can fall. Bounded by the board height.
func (c *Controller) dropDistance() int {
	dist := 0
	for {
		to := Coord{X: c.active.Pos.X, Y: c.active.Pos.Y + dist + 1, Z: c.active.Pos.Z}
		if !c.board.Fits(c.active.Shape, to) {
			return dist
		}
		dist++
	}
}

// store sets the active piece aside, swapping in the held piece when one
// exists or pulling from the queue otherwise. Allowed once per piece
// lifetime; the lock re-arms on the next lock-and-advance.
func (c *Controller) store() bool {
	if !c.rules.EnableHold || !c.canStore || c.active == nil {
		return false
	}

	held := c.stored
	c.stored = &Piece{Name: c.active.Name, Color: c.active.Color, Shape: c.active.Shape}

	if held != nil {
		held.Pos = SpawnPosition(held.Shape, c.board)
		c.active = held
	} else {
		c.active = c.next
		c.active.Pos = SpawnPosition(c.active.Shape, c.board)
		c.next = c.draw()
	}

	c.canStore = false
	return true
}
