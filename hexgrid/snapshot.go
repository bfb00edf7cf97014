package hexgrid

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Snapshot is a textual record of a board, one character per tile:
//
//	#  hidden        f  marked        0-8  revealed, owned by that player
//	O  hidden mine   F  marked mine   P-X  revealed mine, owned by player 0-8
type Snapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

// A mine revealed by player n is stored as revealedMine+n
const revealedMine = 'P'

func isMineGlyph(c byte) bool {
	return c == 'O' || c == 'F' || (c >= revealedMine && c < revealedMine+MaxPlayers)
}

func (tile *Tile) serialize() (byte, error) {
	if tile.isRevealed {
		if tile.owner < 0 || tile.owner >= MaxPlayers {
			return 0, fmt.Errorf("%w: owner %d of %v cannot be stored", ErrInvalidSnapshot, tile.owner, tile)
		}
		if tile.isMine {
			return revealedMine + byte(tile.owner), nil
		}
		return '0' + byte(tile.owner), nil
	}

	switch {
	case tile.isMine && tile.isMarked:
		return 'F', nil
	case tile.isMine:
		return 'O', nil
	case tile.isMarked:
		return 'f', nil
	default:
		return '#', nil
	}
}

func (tile *Tile) deserialize(c byte, fresh bool) bool {
	switch {
	case c == '#':
	case c == 'f':
		tile.isMarked = true
	case c == 'O':
		tile.isMine = true
	case c == 'F':
		tile.isMine = true
		tile.isMarked = true
	case c >= '0' && c < '0'+MaxPlayers:
		tile.isRevealed = true
		tile.owner = PlayerID(c - '0')
	case c >= revealedMine && c < revealedMine+MaxPlayers:
		tile.isMine = true
		tile.isRevealed = true
		tile.owner = PlayerID(c - revealedMine)
	default:
		return false
	}

	if fresh {
		tile.isMarked = false
		tile.isRevealed = false
		tile.owner = 0
	}
	return true
}

func (grid *Grid) Snapshot() (*Snapshot, error) {
	rows := make([]string, grid.height)
	for row := range grid.tiles {
		var builder strings.Builder
		for col := range grid.tiles[row] {
			c, err := grid.tiles[row][col].serialize()
			if err != nil {
				return nil, err
			}
			builder.WriteByte(c)
		}
		rows[row] = builder.String()
	}

	return &Snapshot{
		Seed:            grid.seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}, nil
}

func (snapshot *Snapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}

// CreateGrid rebuilds the recorded board. Width, height and seed come from
// the snapshot; a snapshot holding mines overrides config.NumMines. With
// fresh set, only the mine layout survives.
func (snapshot *Snapshot) CreateGrid(config Config, fresh bool) (*Grid, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	config.Height = len(rows)
	config.Width = len(rows[0])
	if config.Width == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidSnapshot)
	}
	for i, row := range rows {
		if len(row) != config.Width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrInvalidSnapshot, i, len(row), config.Width)
		}
	}

	numMines := 0
	for _, row := range rows {
		for i := 0; i < len(row); i++ {
			if isMineGlyph(row[i]) {
				numMines++
			}
		}
	}
	if numMines > 0 {
		config.NumMines = numMines
	}
	config.Seed = snapshot.Seed

	grid, err := config.Create()
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		for col := 0; col < len(line); col++ {
			tile := &grid.tiles[row][col]
			if !tile.deserialize(line[col], fresh) {
				return nil, fmt.Errorf("%w: unknown tile %q at %v", ErrInvalidSnapshot, line[col], tile.Coord())
			}

			if tile.isMine {
				grid.minesLoaded = true
			}
			if tile.isMarked {
				grid.numMarked++
			}
		}
	}

	// Counts depend on neighbours, so they can only be computed once every
	// mine is in place
	numRevealed := 0
	for _, tile := range grid.Tiles() {
		if tile.isMine || tile.isRevealed {
			grid.remainingTiles.Remove(tile)
		}
		if tile.isRevealed {
			tile.numMines = uint8(grid.CountMineNeighbors(tile.col, tile.row))
			numRevealed++
		}
	}

	// Mines are only placed before the first reveal, so a board with reveals
	// and no mines has lost them
	if numRevealed > 0 && !grid.minesLoaded {
		return nil, fmt.Errorf("%w: %d tiles revealed but no mines recorded", ErrInvalidSnapshot, numRevealed)
	}

	return grid, nil
}
