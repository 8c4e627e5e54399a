package lights

import (
	"fmt"
	"math/rand/v2"
)

// ApplyRandomChanges toggles the patterns of n distinct cells picked at
// random, 1 <= n <= CellCount. Any board reached this way can be brought
// back to the solved state by toggling the same cells again, in any order.
// The board is left untouched when n is out of range.
func (g *Grid) ApplyRandomChanges(n int, r *rand.Rand) error {
	if n < 1 || n > g.CellCount() {
		return fmt.Errorf(
			"%d changes on a board of %d cells: %w",
			n, g.CellCount(), ErrChangeCount,
		)
	}

	cells := make([]int, g.CellCount())
	for i := range cells {
		cells[i] = i
	}

	// Pick n cells off the list at random, without replacement.
	k := len(cells)
	for range n {
		i := r.IntN(k)
		g.state ^= g.patterns[cells[i]]
		k--
		cells[i] = cells[k]
	}

	return nil
}
