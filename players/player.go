package players

import (
	"fmt"

	"github.com/they4kman/hexsweep/hexgrid"
)

type Player struct {
	ID   hexgrid.PlayerID
	Name string

	// Tiles revealed by this player, cascades included
	Score int

	// Driven by a director instead of mouse input
	Computer bool

	Alive bool
}

func NewPlayer(id hexgrid.PlayerID, name string) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Alive: true,
	}
}

func (player *Player) String() string {
	return fmt.Sprintf("Player(%d, %q)", player.ID, player.Name)
}

// NextTurn is the rotation policy: a reveal of k tiles hands the turn k
// places onwards, so cascades grant extra turns.
func NextTurn(current, aliveCount, k int) int {
	if aliveCount <= 0 {
		return 0
	}
	next := (current + k) % aliveCount
	if next < 0 {
		next += aliveCount
	}
	return next
}
