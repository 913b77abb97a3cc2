package tetris

// Rules is the policy bundle distinguishing the game variants. The engine
// itself is dimension-generic; a flat board is simply Depth 1.
type Rules struct {
	Width  int
	Height int
	Depth  int

	// EnableHold permits the store/hold slot.
	EnableHold bool

	// Kicks are tried in order when a plain rotation is blocked. A nil list
	// disables kicking, so blocked rotations are silently rejected.
	Kicks []Coord
}

// classicKicks is the exact offset list of the hold-enabled build: right,
// left, up, up-right, up-left. A policy constant carried over verbatim, not
// derived from any standard rotation system.
var classicKicks = []Coord{
	{X: 1},
	{X: -1},
	{Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: -1},
}

// Variant presets matching the original builds. The 3D single-layer build
// shares Simple's rules and differs only in rendering, which lives outside
// this package.
var (
	// Classic is the full-featured flat game: hold slot and wall kicks.
	Classic = Rules{Width: 10, Height: 20, Depth: 1, EnableHold: true, Kicks: classicKicks}

	// Simple is the plain flat game: rotation only, no hold, no kicks.
	Simple = Rules{Width: 10, Height: 20, Depth: 1}

	// Cube is the volumetric game: depth movement and axis rotation.
	Cube = Rules{Width: 6, Height: 20, Depth: 6}
)
