package games

import "github.com/isaacjstriker/notris/games/tetris"

// Variant describes one playable rule set of the falling-block engine.
type Variant struct {
	Key         string
	Name        string
	Description string
	Rules       tetris.Rules
}

// variants is the registry of playable rule sets, in menu order.
var variants = []Variant{
	{
		Key:         "classic",
		Name:        "Classic",
		Description: "10x20 board with hold slot and wall kicks",
		Rules:       tetris.Classic,
	},
	{
		Key:         "simple",
		Name:        "Simple",
		Description: "10x20 board, plain rotation only",
		Rules:       tetris.Simple,
	},
	{
		Key:         "cube",
		Name:        "Cube",
		Description: "6x20x6 volumetric board with depth moves and axis rotation",
		Rules:       tetris.Cube,
	},
}

// Variants returns all playable variants in menu order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Lookup finds a variant by its key.
func Lookup(key string) (Variant, bool) {
	for _, v := range variants {
		if v.Key == key {
			return v, true
		}
	}
	return Variant{}, false
}
