package random

import (
	"testing"

	"github.com/they4kman/hexsweep/hexgrid"
	"github.com/they4kman/hexsweep/match"
	"github.com/they4kman/hexsweep/players"
)

func newTestMatch(t *testing.T, width, height, numMines int) *match.Match {
	t.Helper()

	config := hexgrid.NewConfig()
	config.Width, config.Height, config.NumMines, config.Seed = width, height, numMines, 3
	grid, err := config.Create()
	if err != nil {
		t.Fatalf("unexpected grid error: %v", err)
	}
	roster, err := players.NewRoster("bot")
	if err != nil {
		t.Fatalf("unexpected roster error: %v", err)
	}
	roster.Current().Computer = true
	return match.New(grid, roster)
}

func TestActPicksPlayableTiles(t *testing.T) {
	m := newTestMatch(t, 6, 6, 5)
	director := New(11)
	director.Init(m)

	seen := make(map[hexgrid.Point]struct{})
	for m.CanPlay() {
		point, ok := director.Act()
		if !ok {
			t.Fatalf("director ran out of moves on an ongoing match")
		}

		tile := m.Grid().TileContaining(point)
		if tile == nil || tile.IsRevealed() || tile.IsMarked() {
			t.Fatalf("director picked unplayable tile %v", tile)
		}
		if _, repeated := seen[point]; repeated {
			t.Fatalf("director picked %v twice", tile)
		}
		seen[point] = struct{}{}

		if result := m.Step(director); result.Outcome == hexgrid.Invalid {
			t.Fatalf("step on %v was invalid", tile)
		}
		if m.Roster().Alive() == 0 {
			break
		}
	}
}

func TestActSkipsMarked(t *testing.T) {
	m := newTestMatch(t, 2, 1, 1)
	director := New(1)
	director.Init(m)

	first := m.Grid().TileAt(0, 0)
	m.Mark(first.Center())

	point, ok := director.Act()
	if !ok || point != m.Grid().TileAt(1, 0).Center() {
		t.Fatalf("expected the unmarked tile, got %v, %v", point, ok)
	}

	m.Mark(m.Grid().TileAt(1, 0).Center())
	if _, ok := director.Act(); ok {
		t.Errorf("no move expected with every tile marked")
	}

	m.Mark(first.Center())
	if point, ok := director.Act(); !ok || point != first.Center() {
		t.Errorf("unmarked tile should be playable again, got %v, %v", point, ok)
	}
}
