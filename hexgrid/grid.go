package hexgrid

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/hexsweep/util/collections"
)

type Config struct {
	Width, Height int // in number of tiles
	NumMines      int

	// Flat-to-flat width of a tile, and offset of the first tile center
	TileSize, Margin float64

	// Zero picks a seed from the clock
	Seed int64
}

func NewConfig() Config {
	return Config{
		Width:    10,
		Height:   10,
		NumMines: 10,
		TileSize: DefaultTileSize,
		Margin:   DefaultMargin,
	}
}

func (config Config) validate() error {
	if config.Width < 1 || config.Height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, config.Width, config.Height)
	}
	numTiles := config.Width * config.Height
	if config.NumMines <= 0 || config.NumMines >= numTiles {
		return fmt.Errorf("%w: need 0 < mines < %d, got %d", ErrInvalidConfig, numTiles, config.NumMines)
	}
	if config.TileSize <= 0 || math.IsInf(config.TileSize, 0) || math.IsNaN(config.TileSize) {
		return fmt.Errorf("%w: tile size must be positive, got %v", ErrInvalidConfig, config.TileSize)
	}
	return nil
}

// RowPitch is the vertical distance between the centers of adjacent rows in
// a pointy-top tiling.
func RowPitch(size float64) float64 {
	halfAngle := math.Pi / 6
	return size/2/math.Cos(halfAngle) + size/2*math.Tan(halfAngle)
}

type Grid struct {
	width, height int
	numMines      int

	tileSize, margin float64
	tiles            [][]Tile

	seed int64
	rand *rand.Rand

	minesLoaded bool
	numMarked   int

	// Safe tiles which have not been revealed yet
	remainingTiles collections.Set[*Tile]
}

func New(width, height, numMines int) (*Grid, error) {
	config := NewConfig()
	config.Width, config.Height, config.NumMines = width, height, numMines
	return config.Create()
}

func (config Config) Create() (*Grid, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := &Grid{
		width:          config.Width,
		height:         config.Height,
		numMines:       config.NumMines,
		tileSize:       config.TileSize,
		margin:         config.Margin,
		tiles:          make([][]Tile, config.Height),
		seed:           seed,
		rand:           rand.New(rand.NewSource(seed)),
		remainingTiles: make(collections.Set[*Tile], config.Width*config.Height),
	}

	pitch := RowPitch(config.TileSize)
	for row := 0; row < config.Height; row++ {
		grid.tiles[row] = make([]Tile, config.Width)

		shift := 0.0
		if row%2 == 1 {
			shift = config.TileSize / 2
		}

		for col := 0; col < config.Width; col++ {
			center := Point{
				X: float64(col)*config.TileSize + shift + config.Margin,
				Y: float64(row)*pitch + config.Margin,
			}

			tile := &grid.tiles[row][col]
			*tile = NewTile(config.TileSize, center)
			tile.col, tile.row = col, row

			grid.remainingTiles.Add(tile)
		}
	}

	return grid, nil
}

func (grid *Grid) Width() int {
	return grid.width
}

func (grid *Grid) Height() int {
	return grid.height
}

func (grid *Grid) TileCount() int {
	return grid.width * grid.height
}

func (grid *Grid) NumMines() int {
	return grid.numMines
}

func (grid *Grid) NumMarked() int {
	return grid.numMarked
}

func (grid *Grid) Seed() int64 {
	return grid.seed
}

func (grid *Grid) MinesLoaded() bool {
	return grid.minesLoaded
}

// Cleared reports whether every safe tile has been revealed
func (grid *Grid) Cleared() bool {
	return grid.minesLoaded && grid.remainingTiles.Len() == 0
}

// Bounds returns the bottom-right extent of the board, margins included
func (grid *Grid) Bounds() Point {
	width := float64(grid.width-1)*grid.tileSize + 2*grid.margin
	if grid.height > 1 {
		width += grid.tileSize / 2
	}
	height := float64(grid.height-1)*RowPitch(grid.tileSize) + 2*grid.margin
	return Point{width, height}
}

func (grid *Grid) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < grid.width && row < grid.height
}

func (grid *Grid) TileAt(col, row int) *Tile {
	if grid.inBounds(col, row) {
		return &grid.tiles[row][col]
	}
	return nil
}

// Tiles returns every tile in row-major order
func (grid *Grid) Tiles() []*Tile {
	tiles := make([]*Tile, 0, grid.TileCount())
	for row := range grid.tiles {
		for col := range grid.tiles[row] {
			tiles = append(tiles, &grid.tiles[row][col])
		}
	}
	return tiles
}

// TileContaining finds the tile whose hexagon holds p. Points on an edge
// shared by two tiles resolve to the first one in row-major order.
func (grid *Grid) TileContaining(p Point) *Tile {
	for row := range grid.tiles {
		for col := range grid.tiles[row] {
			tile := &grid.tiles[row][col]
			if tile.Contains(p) {
				return tile
			}
		}
	}
	return nil
}

// Neighbors lists the in-bounds coordinates sharing an edge with (col, row).
// Odd rows are shifted right by half a tile, so the diagonal neighbours of an
// even row lean left and those of an odd row lean right.
func (grid *Grid) Neighbors(col, row int) []Coord {
	neighbors := make([]Coord, 0, 6)
	add := func(col, row int) {
		if grid.inBounds(col, row) {
			neighbors = append(neighbors, Coord{col, row})
		}
	}

	add(col-1, row)
	add(col+1, row)

	left, right := col-1, col
	if row%2 == 1 {
		left, right = col, col+1
	}
	for _, diagonalRow := range []int{row - 1, row + 1} {
		add(left, diagonalRow)
		add(right, diagonalRow)
	}

	return neighbors
}

func (grid *Grid) CountMineNeighbors(col, row int) int {
	count := 0
	for _, coord := range grid.Neighbors(col, row) {
		if grid.tiles[coord.Row][coord.Col].isMine {
			count++
		}
	}
	return count
}

// GenerateMines places every mine by rejection sampling, never on the tile
// containing exclude. Later calls are no-ops.
func (grid *Grid) GenerateMines(exclude Point) {
	if grid.minesLoaded {
		return
	}

	excluded := grid.TileContaining(exclude)

	for placed := 0; placed < grid.numMines; {
		tile := &grid.tiles[grid.rand.Intn(grid.height)][grid.rand.Intn(grid.width)]
		if tile.isMine || tile == excluded {
			continue
		}

		tile.isMine = true
		grid.remainingTiles.Remove(tile)
		placed++
	}
	grid.minesLoaded = true

	logrus.WithFields(logrus.Fields{
		"mines":    grid.numMines,
		"excluded": excluded,
		"seed":     grid.seed,
	}).Debug("Placed mines")
}

type RevealResult struct {
	Outcome Outcome

	// Tiles revealed by the action, trigger first, then cascade order
	Tiles []Coord
}

// Count is the cascade size of a successful reveal
func (result RevealResult) Count() int {
	return len(result.Tiles)
}

// Reveal uncovers the tile containing point on behalf of player. Clicking
// outside the board, on a marked tile, or on a revealed one changes nothing.
func (grid *Grid) Reveal(point Point, player PlayerID) RevealResult {
	tile := grid.TileContaining(point)
	if tile == nil || tile.isMarked || tile.isRevealed {
		return RevealResult{Outcome: Invalid}
	}

	if !grid.minesLoaded {
		grid.GenerateMines(point)
	}

	grid.reveal(tile, player)
	result := RevealResult{Tiles: []Coord{tile.Coord()}}

	if tile.isMine {
		result.Outcome = Mine
		return result
	}

	result.Outcome = Revealed
	if tile.numMines == 0 {
		result.Tiles = grid.flood(tile, player, result.Tiles)
	}

	logrus.WithFields(logrus.Fields{
		"tile":   tile,
		"player": player,
		"count":  result.Count(),
	}).Debug("Revealed tiles")

	return result
}

func (grid *Grid) reveal(tile *Tile, player PlayerID) {
	tile.isRevealed = true
	tile.numMines = uint8(grid.CountMineNeighbors(tile.col, tile.row))
	tile.owner = player

	grid.remainingTiles.Remove(tile)
}

func (grid *Grid) ToggleMark(point Point) MarkResult {
	tile := grid.TileContaining(point)
	if tile == nil || tile.isRevealed {
		return MarkInvalid
	}

	grid.setMarked(tile, !tile.isMarked)
	return MarkOK
}

func (grid *Grid) setMarked(tile *Tile, isMarked bool) {
	if tile.isMarked == isMarked {
		return
	}
	tile.isMarked = isMarked

	if isMarked {
		grid.numMarked++
	} else {
		grid.numMarked--
	}
}
