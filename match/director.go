package match

import "github.com/they4kman/hexsweep/hexgrid"

// Director plays on behalf of computer-controlled players
type Director interface {
	/**
	 * Bind the director to a match
	 */
	Init(*Match)

	/**
	 * Pick the point the current player reveals, or false if there is no move
	 */
	Act() (hexgrid.Point, bool)
}
