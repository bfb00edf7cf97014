package random

import (
	"math/rand"

	"github.com/they4kman/hexsweep/hexgrid"
	"github.com/they4kman/hexsweep/match"
)

// Director reveals hidden, unmarked tiles in a random order fixed at Init
type Director struct {
	rand  *rand.Rand
	tiles []*hexgrid.Tile
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Init(m *match.Match) {
	director.tiles = m.Grid().Tiles()

	director.rand.Shuffle(len(director.tiles), func(i, j int) {
		director.tiles[i], director.tiles[j] = director.tiles[j], director.tiles[i]
	})
}

func (director *Director) Act() (hexgrid.Point, bool) {
	for len(director.tiles) > 0 {
		tile := director.tiles[0]
		if !tile.IsRevealed() && !tile.IsMarked() {
			return tile.Center(), true
		}

		// Revealed tiles never become playable again; marked ones might
		if tile.IsRevealed() {
			director.tiles = director.tiles[1:]
			continue
		}

		for _, candidate := range director.tiles[1:] {
			if !candidate.IsRevealed() && !candidate.IsMarked() {
				return candidate.Center(), true
			}
		}
		break
	}
	return hexgrid.Point{}, false
}
