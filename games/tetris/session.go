package tetris

import "time"

const (
	// Gravity pacing: the interval shrinks by one step per level and never
	// goes below the floor.
	baseGravity = 1000 * time.Millisecond
	gravityStep = 100 * time.Millisecond
	minGravity  = 100 * time.Millisecond

	// Scoring: every lock pays a flat bonus, cleared rows pay quadratically,
	// and a hard drop adds the rows it covered.
	lockBonus = 10
	lineScore = 100

	// levelThreshold*level is the score needed to reach the next level.
	levelThreshold = 1000
)

// Session is the top-level state machine for one game: board, piece
// controller, score, level, gravity pacing, and terminal detection.
//
// A session is single-threaded by contract. It holds no timer of its own;
// an external scheduler calls AdvanceGravity at Interval() and must
// serialize those ticks with user intents onto one goroutine. Renderers
// only ever read the value returned by Snapshot.
type Session struct {
	rules   Rules
	board   *Board
	ctrl    *Controller
	score   int
	lines   int
	level   int
	gravity time.Duration
	over    bool
}

// NewSession starts a game with the standard piece catalog.
func NewSession(rules Rules) *Session {
	return NewSessionWithCatalog(rules, NewCatalog())
}

// NewSessionWithCatalog starts a game drawing pieces from catalog.
func NewSessionWithCatalog(rules Rules, catalog *Catalog) *Session {
	s := &Session{
		rules:   rules,
		board:   NewBoard(rules.Width, rules.Height, rules.Depth),
		level:   1,
		gravity: baseGravity,
	}
	s.ctrl = newController(s.board, catalog, rules)
	if !s.ctrl.spawn() {
		s.over = true
	}
	return s
}

// MoveLeft shifts the active piece one column left if that placement is
// valid; a blocked move changes nothing.
func (s *Session) MoveLeft() {
	if !s.over {
		s.ctrl.move(-1, 0, 0)
	}
}

// MoveRight shifts the active piece one column right.
func (s *Session) MoveRight() {
	if !s.over {
		s.ctrl.move(1, 0, 0)
	}
}

// MoveForward shifts the active piece one layer deeper. On flat boards this
// is always a no-op.
func (s *Session) MoveForward() {
	if !s.over {
		s.ctrl.move(0, 0, 1)
	}
}

// MoveBackward shifts the active piece one layer toward the front.
func (s *Session) MoveBackward() {
	if !s.over {
		s.ctrl.move(0, 0, -1)
	}
}

// MoveDown drops the active piece one row. A piece that cannot descend
// locks in place and the next piece comes in.
func (s *Session) MoveDown() {
	if s.over {
		return
	}
	if !s.ctrl.move(0, 1, 0) {
		s.lockAndAdvance(0)
	}
}

// AdvanceGravity is the tick entry point, equivalent to a down intent. The
// owning scheduler calls it at Interval() and re-reads the interval
// afterwards, since it shortens as the level climbs.
func (s *Session) AdvanceGravity() {
	s.MoveDown()
}

// HardDrop sends the active piece straight to the lowest valid position and
// locks it immediately. The rows covered count toward the score.
func (s *Session) HardDrop() {
	if s.over {
		return
	}
	dist := s.ctrl.dropDistance()
	s.ctrl.active.Pos.Y += dist
	s.lockAndAdvance(dist)
}

// Rotate turns the active piece clockwise around the given axis, kicking
// when the variant allows it. A rejected rotation changes nothing.
func (s *Session) Rotate(axis Axis) {
	if !s.over {
		s.ctrl.rotate(axis)
	}
}

// Store sets the active piece aside (hold-enabled variants only). A second
// store before the next lock is a no-op.
func (s *Session) Store() {
	if !s.over {
		s.ctrl.store()
	}
}

// lockAndAdvance merges the active piece, clears full rows, scores the
// lock, and brings in the next piece. dropBonus is the row count a hard
// drop covered, zero for gravity locks.
func (s *Session) lockAndAdvance(dropBonus int) {
	s.board.Lock(s.ctrl.active)

	cleared := s.board.ClearFullRows()
	s.lines += cleared
	s.score += cleared*cleared*lineScore + lockBonus + dropBonus

	if s.score >= s.level*levelThreshold {
		s.level++
		if s.gravity-gravityStep < minGravity {
			s.gravity = minGravity
		} else {
			s.gravity -= gravityStep
		}
	}

	s.ctrl.canStore = true
	if !s.ctrl.spawn() {
		s.over = true
	}
}

// Score returns the cumulative score.
func (s *Session) Score() int { return s.score }

// Lines returns the total rows cleared.
func (s *Session) Lines() int { return s.lines }

// Level returns the current level, starting at 1 and never decreasing.
func (s *Session) Level() int { return s.level }

// Interval returns the current gravity interval.
func (s *Session) Interval() time.Duration { return s.gravity }

// GameOver reports whether the session reached its terminal state. Once
// true it never reverts; all further intents are ignored.
func (s *Session) GameOver() bool { return s.over }
