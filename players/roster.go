package players

import (
	"errors"
	"fmt"

	"github.com/they4kman/hexsweep/hexgrid"
)

var ErrInvalidRoster = errors.New("invalid roster")

// Roster keeps players in turn order. The first Alive() entries are still
// playing; eliminated players are moved behind them, most recent last.
type Roster struct {
	players []*Player
	alive   int
	current int
}

func NewRoster(names ...string) (*Roster, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: need at least one player", ErrInvalidRoster)
	}
	if len(names) > hexgrid.MaxPlayers {
		return nil, fmt.Errorf("%w: at most %d players, got %d", ErrInvalidRoster, hexgrid.MaxPlayers, len(names))
	}

	roster := &Roster{
		players: make([]*Player, len(names)),
		alive:   len(names),
	}
	for i, name := range names {
		roster.players[i] = NewPlayer(hexgrid.PlayerID(i), name)
	}
	return roster, nil
}

func (roster *Roster) Len() int {
	return len(roster.players)
}

func (roster *Roster) Alive() int {
	return roster.alive
}

// CurrentIndex is the position of the player to move among the alive ones
func (roster *Roster) CurrentIndex() int {
	return roster.current
}

func (roster *Roster) Current() *Player {
	if roster.alive == 0 {
		return nil
	}
	return roster.players[roster.current]
}

// Players returns alive players in turn order followed by eliminated ones
func (roster *Roster) Players() []*Player {
	return append([]*Player(nil), roster.players...)
}

func (roster *Roster) Player(id hexgrid.PlayerID) *Player {
	for _, player := range roster.players {
		if player.ID == id {
			return player
		}
	}
	return nil
}

func (roster *Roster) Credit(k int) {
	if player := roster.Current(); player != nil {
		player.Score += k
	}
}

func (roster *Roster) Advance(k int) {
	roster.current = NextTurn(roster.current, roster.alive, k)
}

// Eliminate removes the current player from the rotation. The turn passes
// to whoever came after them.
func (roster *Roster) Eliminate() *Player {
	player := roster.Current()
	if player == nil {
		return nil
	}
	player.Alive = false

	copy(roster.players[roster.current:], roster.players[roster.current+1:])
	roster.players[len(roster.players)-1] = player
	roster.alive--

	roster.current = NextTurn(roster.current, roster.alive, 0)
	return player
}
