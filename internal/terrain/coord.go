package terrain

import "fmt"

// TileCoord is an integer tile-space coordinate. World +Y is up.
type TileCoord struct {
	X int
	Y int
}

// CoordFromSlice builds a TileCoord from a positional [x, y] pair, validating
// arity up front. Anything other than exactly two elements is a programming
// error at the call site and fails loudly.
func CoordFromSlice(vals []int) (TileCoord, error) {
	if len(vals) != 2 {
		return TileCoord{}, fmt.Errorf("coordinate pair must have exactly 2 elements, got %d", len(vals))
	}
	return TileCoord{X: vals[0], Y: vals[1]}, nil
}

func (c TileCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
