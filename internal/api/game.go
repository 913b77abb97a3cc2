package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/isaacjstriker/notris/games"
	"github.com/isaacjstriker/notris/games/tetris"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all connections for now. In production, you'd want to restrict this.
		return true
	},
}

// handleGetVariants lists the playable rule sets.
func (s *APIServer) handleGetVariants(w http.ResponseWriter, r *http.Request) {
	type variantInfo struct {
		Key         string `json:"key"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	var out []variantInfo
	for _, v := range games.Variants() {
		out = append(out, variantInfo{Key: v.Key, Name: v.Name, Description: v.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleGameConnection upgrades an HTTP request to a WebSocket connection
// and runs a live game session for the requested variant.
func (s *APIServer) handleGameConnection(w http.ResponseWriter, r *http.Request) {
	variantKey := r.URL.Query().Get("variant")
	if variantKey == "" {
		variantKey = "classic"
	}
	variant, ok := games.Lookup(variantKey)
	if !ok {
		http.Error(w, "unknown variant", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Failed to upgrade connection:", err)
		return
	}
	defer conn.Close()

	gameLoop(conn, tetris.NewSession(variant.Rules))
}

// gameLoop runs one game over a websocket. The loop is the session's only
// writer: client intents and gravity ticks are both applied here, and the
// gravity timer is re-armed from the session's current interval so the pace
// follows the level. A fresh snapshot goes out after every change.
func gameLoop(conn *websocket.Conn, session *tetris.Session) {
	inputChan := make(chan string)
	go func() {
		defer close(inputChan)
		for {
			var msg struct {
				Type string `json:"type"`
				Key  string `json:"key"`
			}
			err := conn.ReadJSON(&msg)
			if err != nil {
				// Client disconnected
				return
			}
			if msg.Type == "input" {
				inputChan <- msg.Key
			}
		}
	}()

	gravity := time.NewTimer(session.Interval())
	defer gravity.Stop()

	if err := conn.WriteJSON(session.Snapshot()); err != nil {
		return
	}

	for {
		select {
		case input, ok := <-inputChan:
			if !ok {
				// Client disconnected
				return
			}
			applyInput(session, input)

		case <-gravity.C:
			session.AdvanceGravity()
			gravity.Reset(session.Interval())
		}

		if session.GameOver() {
			conn.WriteJSON(map[string]interface{}{"type": "gameOver", "score": session.Score()})
			return
		}

		if err := conn.WriteJSON(session.Snapshot()); err != nil {
			// Client disconnected
			return
		}
	}
}

func applyInput(s *tetris.Session, key string) {
	switch key {
	case "left":
		s.MoveLeft()
	case "right":
		s.MoveRight()
	case "down":
		s.MoveDown()
	case "forward":
		s.MoveForward()
	case "backward":
		s.MoveBackward()
	case "rotate":
		s.Rotate(tetris.AxisZ)
	case "rotateX":
		s.Rotate(tetris.AxisX)
	case "rotateY":
		s.Rotate(tetris.AxisY)
	case "drop":
		s.HardDrop()
	case "store":
		s.Store()
	}
}
