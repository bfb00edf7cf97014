package hexgrid

import (
	"fmt"
	"math"
)

// Point is a position in the same space as tile centers; y grows downwards.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Cross returns the z component of the 3D cross product of p and q, both
// taken with z=0
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

type Coord struct {
	Col, Row int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Col, coord.Row)
}

type Tile struct {
	col, row int

	center   Point
	size     float64
	vertices [6]Point

	isMine, isMarked, isRevealed bool
	numMines                     uint8
	owner                        PlayerID
}

// NewTile builds a pointy-top hexagon whose flat-to-flat width is size.
func NewTile(size float64, center Point) Tile {
	tile := Tile{
		center: center,
		size:   size,
	}

	radius := size / (2 * math.Cos(math.Pi/6))
	for i := range tile.vertices {
		angle := 2*math.Pi/6*float64(i) + math.Pi/2
		tile.vertices[i] = center.Add(Point{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		})
	}

	return tile
}

func (tile *Tile) String() string {
	return fmt.Sprintf("Tile(%v, %v)", tile.col, tile.row)
}

// Contains treats the hexagon as a closed polygon: points on an edge are
// inside.
func (tile *Tile) Contains(p Point) bool {
	for i := range tile.vertices {
		from := tile.vertices[i].Sub(p)
		to := tile.vertices[(i+1)%len(tile.vertices)].Sub(p)

		if from.Cross(to) < 0 {
			return false
		}
	}
	return true
}

func (tile *Tile) Vertices() [6]Point {
	return tile.vertices
}

func (tile *Tile) Center() Point {
	return tile.center
}

func (tile *Tile) Size() float64 {
	return tile.size
}

func (tile *Tile) Col() int {
	return tile.col
}

func (tile *Tile) Row() int {
	return tile.row
}

func (tile *Tile) Coord() Coord {
	return Coord{tile.col, tile.row}
}

func (tile *Tile) IsMine() bool {
	return tile.isMine
}

func (tile *Tile) IsMarked() bool {
	return tile.isMarked
}

func (tile *Tile) IsRevealed() bool {
	return tile.isRevealed
}

// RevealedCount is the number of mined neighbours, known only once the tile
// has been revealed
func (tile *Tile) RevealedCount() (int, bool) {
	if !tile.isRevealed {
		return 0, false
	}
	return int(tile.numMines), true
}

func (tile *Tile) Owner() (PlayerID, bool) {
	if !tile.isRevealed {
		return 0, false
	}
	return tile.owner, true
}
