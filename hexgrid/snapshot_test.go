package hexgrid

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	grid := newTestGrid(t, 4, 3, 1, 42)
	placeMines(grid, Coord{3, 2})

	grid.ToggleMark(centerOf(grid, 3, 2))
	grid.Reveal(centerOf(grid, 2, 1), 1)
	grid.Reveal(centerOf(grid, 0, 0), 2)

	snapshot, err := grid.Snapshot()
	if err != nil {
		t.Fatalf("snapshot error: %v", err)
	}
	serialized, err := snapshot.Serialize()
	if err != nil {
		t.Fatalf("serialize error: %v", err)
	}

	loaded, err := LoadSnapshot(serialized)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if loaded.Seed != 42 || loaded.SerializedBoard != snapshot.SerializedBoard {
		t.Fatalf("mismatch after roundtrip: %+v vs %+v", loaded, snapshot)
	}

	restored, err := loaded.CreateGrid(NewConfig(), false)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if restored.Width() != 4 || restored.Height() != 3 || restored.NumMines() != 1 {
		t.Fatalf("restored %dx%d with %d mines", restored.Width(), restored.Height(), restored.NumMines())
	}
	if !restored.MinesLoaded() || restored.NumMarked() != 1 {
		t.Errorf("restored MinesLoaded = %v, NumMarked = %d", restored.MinesLoaded(), restored.NumMarked())
	}

	for _, tile := range grid.Tiles() {
		other := restored.TileAt(tile.Col(), tile.Row())
		if tile.IsMine() != other.IsMine() || tile.IsMarked() != other.IsMarked() || tile.IsRevealed() != other.IsRevealed() {
			t.Errorf("%v differs after restore", tile)
		}

		count, _ := tile.RevealedCount()
		otherCount, _ := other.RevealedCount()
		owner, _ := tile.Owner()
		otherOwner, _ := other.Owner()
		if count != otherCount || owner != otherOwner {
			t.Errorf("%v count/owner %d/%d, restored %d/%d", tile, count, owner, otherCount, otherOwner)
		}
	}

	if grid.Cleared() != restored.Cleared() {
		t.Errorf("Cleared() = %v, restored %v", grid.Cleared(), restored.Cleared())
	}
}

func TestSnapshotCharacters(t *testing.T) {
	grid := newTestGrid(t, 3, 1, 2, 1)
	placeMines(grid, Coord{0, 0}, Coord{2, 0})
	grid.ToggleMark(centerOf(grid, 2, 0))
	grid.Reveal(centerOf(grid, 0, 0), 3)

	snapshot, err := grid.Snapshot()
	if err != nil {
		t.Fatalf("snapshot error: %v", err)
	}
	if snapshot.SerializedBoard != "S#F" {
		t.Errorf("SerializedBoard = %q, expected %q", snapshot.SerializedBoard, "S#F")
	}
}

func TestSnapshotRevealedMineOwners(t *testing.T) {
	for owner := PlayerID(0); owner < MaxPlayers; owner++ {
		t.Run(fmt.Sprintf("player %d", owner), func(t *testing.T) {
			grid := newTestGrid(t, 3, 1, 1, 1)
			placeMines(grid, Coord{1, 0})
			if result := grid.Reveal(centerOf(grid, 1, 0), owner); result.Outcome != Mine {
				t.Fatalf("Reveal() = %v, expected Mine", result.Outcome)
			}

			snapshot, err := grid.Snapshot()
			if err != nil {
				t.Fatalf("snapshot error: %v", err)
			}
			restored, err := snapshot.CreateGrid(NewConfig(), false)
			if err != nil {
				t.Fatalf("create error for %q: %v", snapshot.SerializedBoard, err)
			}

			tile := restored.TileAt(1, 0)
			restoredOwner, ok := tile.Owner()
			if !tile.IsMine() || !tile.IsRevealed() || tile.IsMarked() || !ok || restoredOwner != owner {
				t.Errorf("%q restored as mine=%v revealed=%v marked=%v owner=%d",
					snapshot.SerializedBoard, tile.IsMine(), tile.IsRevealed(), tile.IsMarked(), restoredOwner)
			}
			if restored.NumMines() != 1 {
				t.Errorf("NumMines() = %d, expected 1", restored.NumMines())
			}
		})
	}
}

func TestSnapshotMineCount(t *testing.T) {
	tests := []struct {
		board string
		mines int
	}{
		{board: "O###\n####", mines: 1},
		{board: "F###\n####", mines: 1},
		{board: "Ff##\n#O##", mines: 2},
		{board: "P0##\nX#F#", mines: 3},
	}

	for _, tc := range tests {
		t.Run(tc.board, func(t *testing.T) {
			snapshot := &Snapshot{SerializedBoard: tc.board}
			grid, err := snapshot.CreateGrid(NewConfig(), false)
			if err != nil {
				t.Fatalf("create error: %v", err)
			}
			if grid.NumMines() != tc.mines {
				t.Errorf("NumMines() = %d, expected %d", grid.NumMines(), tc.mines)
			}
		})
	}
}

func TestSnapshotFresh(t *testing.T) {
	snapshot := &Snapshot{Seed: 5, SerializedBoard: "01f\nO#P"}

	grid, err := snapshot.CreateGrid(NewConfig(), true)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if grid.NumMines() != 2 || !grid.MinesLoaded() {
		t.Errorf("NumMines() = %d, MinesLoaded() = %v", grid.NumMines(), grid.MinesLoaded())
	}
	for _, tile := range grid.Tiles() {
		if tile.IsRevealed() || tile.IsMarked() {
			t.Errorf("%v should be reset by a fresh load", tile)
		}
	}
	if !grid.TileAt(0, 1).IsMine() || !grid.TileAt(2, 1).IsMine() {
		t.Errorf("mines should survive a fresh load")
	}
	if grid.Seed() != 5 {
		t.Errorf("Seed() = %d, expected 5", grid.Seed())
	}
}

func TestSnapshotWithoutMines(t *testing.T) {
	snapshot := &Snapshot{SerializedBoard: "###\n###\n"}

	config := NewConfig()
	config.NumMines = 2
	grid, err := snapshot.CreateGrid(config, false)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if grid.MinesLoaded() || grid.NumMines() != 2 || grid.Height() != 2 {
		t.Errorf("MinesLoaded() = %v, NumMines() = %d, Height() = %d", grid.MinesLoaded(), grid.NumMines(), grid.Height())
	}
}

func TestSnapshotInvalid(t *testing.T) {
	tests := []struct {
		name  string
		board string
	}{
		{name: "empty", board: ""},
		{name: "ragged rows", board: "###\n##\nO##"},
		{name: "unknown tile", board: "#?#\nO##"},
		{name: "all mines", board: "OO\nFO"},
		{name: "revealed without mines", board: "01##\n####\n####"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snapshot := &Snapshot{SerializedBoard: tc.board}
			if _, err := snapshot.CreateGrid(NewConfig(), false); err == nil {
				t.Errorf("expected an error for %q", tc.board)
			}
		})
	}

	if _, err := LoadSnapshot("board: [unclosed"); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("expected ErrInvalidSnapshot, got %v", err)
	}
}

func TestSnapshotOwnerOutOfRange(t *testing.T) {
	grid := newTestGrid(t, 3, 3, 1, 1)
	placeMines(grid, Coord{2, 2})
	grid.Reveal(centerOf(grid, 1, 1), MaxPlayers)

	if _, err := grid.Snapshot(); err == nil || !strings.Contains(err.Error(), "cannot be stored") {
		t.Errorf("expected an owner range error, got %v", err)
	}
}
