package hexgrid

import "errors"

type PlayerID int

// Outcome of a reveal, as seen by whoever owns the turn rotation
type Outcome int

const (
	Invalid Outcome = iota
	Revealed
	Mine
)

func (outcome Outcome) String() string {
	switch outcome {
	case Revealed:
		return "revealed"
	case Mine:
		return "mine"
	default:
		return "invalid"
	}
}

type MarkResult int

const (
	MarkInvalid MarkResult = iota
	MarkOK
)

const (
	DefaultTileSize = 50
	DefaultMargin   = 33

	// Snapshots store one owner glyph per revealed tile
	MaxPlayers = 9
)

var (
	ErrInvalidConfig   = errors.New("invalid grid config")
	ErrInvalidSnapshot = errors.New("invalid grid snapshot")
)
