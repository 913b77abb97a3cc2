package tetris

// PieceView is a read-only copy of a piece for rendering.
type PieceView struct {
	Name  string  `json:"name"`
	Color int     `json:"color"`
	Shape [][]int `json:"shape"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Z     int     `json:"z"`
}

// Snapshot is the immutable view of a session handed to renderers and the
// websocket transport. Board holds locked cells only, indexed
// [layer][row][col]; renderers overlay the active piece themselves.
type Snapshot struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Depth  int `json:"depth"`

	Board    [][][]int  `json:"board"`
	Active   *PieceView `json:"active,omitempty"`
	Next     *PieceView `json:"next,omitempty"`
	Stored   *PieceView `json:"stored,omitempty"`
	CanStore bool       `json:"canStore"`

	Score      int   `json:"score"`
	Lines      int   `json:"lines"`
	Level      int   `json:"level"`
	IntervalMS int64 `json:"intervalMs"`
	GameOver   bool  `json:"gameOver"`
}

// Snapshot captures the full session state. The copy shares nothing with
// the live session, so it stays valid across later ticks and intents.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:      s.board.Width,
		Height:     s.board.Height,
		Depth:      s.board.Depth,
		Board:      s.board.Layers(),
		Active:     pieceView(s.ctrl.active),
		Next:       pieceView(s.ctrl.next),
		Stored:     pieceView(s.ctrl.stored),
		CanStore:   s.ctrl.canStore,
		Score:      s.score,
		Lines:      s.lines,
		Level:      s.level,
		IntervalMS: s.gravity.Milliseconds(),
		GameOver:   s.over,
	}
}

func pieceView(p *Piece) *PieceView {
	if p == nil {
		return nil
	}
	return &PieceView{
		Name:  p.Name,
		Color: p.Color,
		Shape: p.Shape.Mask(),
		X:     p.Pos.X,
		Y:     p.Pos.Y,
		Z:     p.Pos.Z,
	}
}
