package match

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/hexsweep/hexgrid"
	"github.com/they4kman/hexsweep/players"
)

type State int

const (
	Ongoing State = iota
	// Every safe tile has been revealed
	Cleared
	// Only one player is left alive
	LastStanding
	// Nobody is left; only reachable in a single-player match
	Wiped
)

func (state State) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Cleared:
		return "cleared"
	case LastStanding:
		return "last standing"
	case Wiped:
		return "wiped"
	default:
		return "unknown"
	}
}

// Match applies grid results to the turn rotation
type Match struct {
	grid   *hexgrid.Grid
	roster *players.Roster

	state State
	onEnd func(*Match)
}

// New starts a match over grid. A grid restored from a finished board yields
// a match that is already over.
func New(grid *hexgrid.Grid, roster *players.Roster) *Match {
	match := &Match{
		grid:   grid,
		roster: roster,
		state:  Ongoing,
	}
	match.updateState()
	return match
}

// OnEnd registers a callback run once, when the match stops being ongoing
func (match *Match) OnEnd(callback func(*Match)) {
	match.onEnd = callback
}

func (match *Match) Grid() *hexgrid.Grid {
	return match.grid
}

func (match *Match) Roster() *players.Roster {
	return match.roster
}

func (match *Match) State() State {
	return match.state
}

func (match *Match) CanPlay() bool {
	return match.state == Ongoing
}

func (match *Match) Reveal(point hexgrid.Point) hexgrid.RevealResult {
	if !match.CanPlay() {
		return hexgrid.RevealResult{Outcome: hexgrid.Invalid}
	}

	player := match.roster.Current()
	result := match.grid.Reveal(point, player.ID)

	switch result.Outcome {
	case hexgrid.Revealed:
		match.roster.Credit(result.Count())
		match.roster.Advance(result.Count())

		logrus.WithFields(logrus.Fields{
			"player": player.Name,
			"count":  result.Count(),
			"score":  player.Score,
			"next":   match.roster.Current().Name,
		}).Debug("Player revealed tiles")

	case hexgrid.Mine:
		match.roster.Eliminate()

		logrus.WithFields(logrus.Fields{
			"player": player.Name,
			"tile":   result.Tiles[0],
			"alive":  match.roster.Alive(),
		}).Info("Player hit a mine")
	}

	match.updateState()
	return result
}

// Mark toggles a flag. Marking does not use up the turn.
func (match *Match) Mark(point hexgrid.Point) hexgrid.MarkResult {
	if !match.CanPlay() {
		return hexgrid.MarkInvalid
	}
	return match.grid.ToggleMark(point)
}

// Step lets director reveal a tile for the current player, if that player is
// computer-controlled. When the director passes because every hidden tile is
// marked, the first marked tile is unmarked and revealed instead.
func (match *Match) Step(director Director) hexgrid.RevealResult {
	if !match.CanPlay() || !match.roster.Current().Computer {
		return hexgrid.RevealResult{Outcome: hexgrid.Invalid}
	}

	point, ok := director.Act()
	if !ok {
		tile := match.firstMarked()
		if tile == nil {
			return hexgrid.RevealResult{Outcome: hexgrid.Invalid}
		}

		logrus.WithFields(logrus.Fields{
			"player": match.roster.Current().Name,
			"tile":   tile,
		}).Debug("Director passed; unmarking a tile")

		point = tile.Center()
		match.grid.ToggleMark(point)
	}
	return match.Reveal(point)
}

func (match *Match) firstMarked() *hexgrid.Tile {
	for _, tile := range match.grid.Tiles() {
		if tile.IsMarked() {
			return tile
		}
	}
	return nil
}

func (match *Match) updateState() {
	if match.state != Ongoing {
		return
	}

	switch {
	case match.grid.Cleared():
		match.state = Cleared
	case match.roster.Alive() == 0:
		match.state = Wiped
	case match.roster.Alive() == 1 && match.roster.Len() > 1:
		match.state = LastStanding
	default:
		return
	}

	fields := logrus.Fields{"state": match.state}
	if winner := match.Winner(); winner != nil {
		fields["winner"] = winner.Name
		fields["score"] = winner.Score
	}
	logrus.WithFields(fields).Info("Match over")

	if match.onEnd != nil {
		match.onEnd(match)
	}
}

// Winner is the sole survivor, or the best-scoring survivor of a cleared
// board. Ties go to whoever is earlier in the rotation.
func (match *Match) Winner() *players.Player {
	switch match.state {
	case LastStanding:
		return match.roster.Current()
	case Cleared:
		var winner *players.Player
		for _, player := range match.roster.Players()[:match.roster.Alive()] {
			if winner == nil || player.Score > winner.Score {
				winner = player
			}
		}
		return winner
	default:
		return nil
	}
}
