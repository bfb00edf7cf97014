package hexgrid

import "github.com/gammazero/deque"

// flood reveals outwards from an already-revealed zero-count origin,
// breadth-first. Only zero-count tiles spread further; marked and revealed
// tiles are skipped, so each tile is visited at most once.
func (grid *Grid) flood(origin *Tile, player PlayerID, revealed []Coord) []Coord {
	var queue deque.Deque
	queue.PushBack(origin)

	for queue.Len() > 0 {
		tile := queue.PopFront().(*Tile)

		for _, coord := range grid.Neighbors(tile.col, tile.row) {
			neighbor := &grid.tiles[coord.Row][coord.Col]
			if neighbor.isRevealed || neighbor.isMarked {
				continue
			}

			grid.reveal(neighbor, player)
			revealed = append(revealed, coord)

			if neighbor.numMines == 0 {
				queue.PushBack(neighbor)
			}
		}
	}

	return revealed
}
