package tetris

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/eiannone/keyboard"
)

type intent int

const (
	intentLeft intent = iota
	intentRight
	intentDown
	intentForward
	intentBackward
	intentRotateZ
	intentRotateX
	intentRotateY
	intentHardDrop
	intentStore
	intentQuit
)

var cellColors []string

func init() {
	// Check if terminal supports colors
	if supportsColor() {
		cellColors = []string{
			"\033[46m  \033[0m", // Cyan
			"\033[43m  \033[0m", // Yellow
			"\033[45m  \033[0m", // Magenta
			"\033[42m  \033[0m", // Green
			"\033[41m  \033[0m", // Red
			"\033[44m  \033[0m", // Blue
			"\033[47m  \033[0m", // White
		}
	} else {
		cellColors = []string{"##", "@@", "**", "%%", "&&", "++", "=="}
	}
}

func supportsColor() bool {
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// Play runs a terminal round of the given rules and returns the final
// score, or -1 when the player quit early. The session is mutated only in
// the select loop below: the keyboard goroutine just forwards intents, and
// gravity runs off a timer re-armed from the session's current interval.
func Play(rules Rules, catalog *Catalog) int {
	session := NewSessionWithCatalog(rules, catalog)

	if err := keyboard.Open(); err != nil {
		fmt.Println("Failed to open keyboard:", err)
		return -1
	}
	defer keyboard.Close()

	intents := make(chan intent, 8)
	quit := make(chan struct{})
	done := make(chan struct{})
	defer close(done)
	go readKeys(keyboard.GetKey, intents, quit, done)

	gravity := time.NewTimer(session.Interval())
	defer gravity.Stop()

	render(session.Snapshot())

	for {
		select {
		case <-quit:
			return -1
		case in := <-intents:
			apply(session, in)
		case <-gravity.C:
			session.AdvanceGravity()
			gravity.Reset(session.Interval())
		}

		snap := session.Snapshot()
		render(snap)
		if snap.GameOver {
			fmt.Printf("\n💀 GAME OVER! Final score: %d\n", snap.Score)
			return snap.Score
		}
	}
}

func apply(s *Session, in intent) {
	switch in {
	case intentLeft:
		s.MoveLeft()
	case intentRight:
		s.MoveRight()
	case intentDown:
		s.MoveDown()
	case intentForward:
		s.MoveForward()
	case intentBackward:
		s.MoveBackward()
	case intentRotateZ:
		s.Rotate(AxisZ)
	case intentRotateX:
		s.Rotate(AxisX)
	case intentRotateY:
		s.Rotate(AxisY)
	case intentHardDrop:
		s.HardDrop()
	case intentStore:
		s.Store()
	}
}

// readKeys forwards key presses as intents until the player quits or done
// closes. It never touches the session itself. Play closes done on return,
// which ends the reader through either the poll-error branch (GetKey fails
// once the keyboard is closed) or a pending intent send, so a finished round
// leaves no reader behind to steal the next round's keystrokes.
func readKeys(poll func() (rune, keyboard.Key, error), intents chan<- intent, quit chan<- struct{}, done <-chan struct{}) {
	for {
		char, key, err := poll()
		if err != nil {
			select {
			case <-done:
				return
			default:
			}
			time.Sleep(10 * time.Millisecond)
			continue
		}

		in, ok := keyIntent(char, key)
		if !ok {
			continue
		}
		if in == intentQuit {
			close(quit)
			return
		}

		select {
		case intents <- in:
		case <-done:
			return
		}
	}
}

// keyIntent maps a key press onto an intent; ok is false for unbound keys.
func keyIntent(char rune, key keyboard.Key) (in intent, ok bool) {
	switch {
	case char == 'q' || char == 'Q' || key == keyboard.KeyEsc:
		return intentQuit, true
	case char == 'a' || char == 'A' || key == keyboard.KeyArrowLeft:
		return intentLeft, true
	case char == 'd' || char == 'D' || key == keyboard.KeyArrowRight:
		return intentRight, true
	case char == 's' || char == 'S' || key == keyboard.KeyArrowDown:
		return intentDown, true
	case char == 'w' || char == 'W' || key == keyboard.KeyArrowUp:
		return intentRotateZ, true
	case char == 'i' || char == 'I':
		return intentForward, true
	case char == 'k' || char == 'K':
		return intentBackward, true
	case char == 'x' || char == 'X':
		return intentRotateX, true
	case char == 'y' || char == 'Y':
		return intentRotateY, true
	case char == 'c' || char == 'C':
		return intentStore, true
	case key == keyboard.KeySpace:
		return intentHardDrop, true
	}
	return 0, false
}

// render draws every depth layer of the snapshot side by side, with the
// active piece overlaid. Flat variants have exactly one layer.
func render(snap Snapshot) {
	fmt.Print("\033[2J\033[H")

	fmt.Printf("NOTRIS | Score: %d | Lines: %d | Level: %d\n", snap.Score, snap.Lines, snap.Level)
	fmt.Println(strings.Repeat("═", (snap.Width*2+2)*snap.Depth+2))

	display := buildDisplay(snap)

	for y := 0; y < snap.Height; y++ {
		for z := 0; z < snap.Depth; z++ {
			fmt.Print("║")
			for x := 0; x < snap.Width; x++ {
				fmt.Print(display[z][y][x])
			}
			fmt.Print("║ ")
		}
		fmt.Println()
	}
	for z := 0; z < snap.Depth; z++ {
		fmt.Print("╚" + strings.Repeat("═", snap.Width*2) + "╝ ")
	}
	fmt.Println()

	renderPreview("Next", snap.Next)
	if snap.Stored != nil {
		renderPreview("Held", snap.Stored)
	}

	fmt.Println("\nControls: A/D=Move, S=Down, W=Rotate, Space=Drop, C=Hold, Q=Quit")
	if snap.Depth > 1 {
		fmt.Println("          I/K=Depth, X/Y=Axis rotate")
	}
}

func buildDisplay(snap Snapshot) [][][]string {
	display := make([][][]string, snap.Depth)
	for z := 0; z < snap.Depth; z++ {
		display[z] = make([][]string, snap.Height)
		for y := 0; y < snap.Height; y++ {
			display[z][y] = make([]string, snap.Width)
			for x := 0; x < snap.Width; x++ {
				if v := snap.Board[z][y][x]; v != 0 {
					display[z][y][x] = colorCell(v)
				} else if supportsColor() {
					display[z][y][x] = "  "
				} else {
					display[z][y][x] = ".."
				}
			}
		}
	}

	if snap.Active != nil {
		for py, row := range snap.Active.Shape {
			for px, v := range row {
				if v == 0 {
					continue
				}
				x := snap.Active.X + px
				y := snap.Active.Y + py
				z := snap.Active.Z
				if x >= 0 && x < snap.Width && y >= 0 && y < snap.Height && z >= 0 && z < snap.Depth {
					display[z][y][x] = colorCell(snap.Active.Color)
				}
			}
		}
	}

	return display
}

func renderPreview(label string, piece *PieceView) {
	if piece == nil {
		return
	}
	fmt.Printf("\n%s: %s\n", label, piece.Name)
	for _, row := range piece.Shape {
		fmt.Print("  ")
		for _, v := range row {
			if v != 0 {
				fmt.Print(colorCell(piece.Color))
			} else {
				fmt.Print("  ")
			}
		}
		fmt.Println()
	}
}

// colorCell maps a cell value onto the palette. Custom catalogs may carry
// more colors than the palette has; wrap rather than fail.
func colorCell(v int) string {
	return cellColors[(v-1)%len(cellColors)]
}
