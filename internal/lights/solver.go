package lights

import (
	"errors"
	"slices"

	"github.com/sirupsen/logrus"
)

// Cell is a single addressable board position.
type Cell struct {
	X, Y int
}

// Solution is a list of cells whose patterns, applied in any order, bring
// the board to the solved state. No cell appears twice.
type Solution []Cell

// Solve finds every distinct set of cells whose combined toggles bring the
// board to the solved state, as move lists in display order, shortest
// first. Boards built by toggling patterns alone always stay solvable.
// Hand-edited states may not be, and those come back as an
// [AssertionError].
func Solve(g *Grid) (solutions []Solution, err error) {
	defer func() {
		var assertionError AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &assertionError) {
				solutions, err = nil, assertionError
			} else {
				panic(r)
			}
		}
	}()

	masks := g.solveMasks()
	if len(masks) == 0 {
		panic(AssertionError{"no solutions found, puzzle is unsolvable"})
	}

	solutions = make([]Solution, len(masks))
	for i, mask := range masks {
		solutions[i] = g.moves(mask)
	}
	slices.SortStableFunc(solutions, func(a, b Solution) int {
		return len(a) - len(b)
	})

	Log.WithFields(logrus.Fields{
		"board":     g.String(),
		"solutions": len(solutions),
		"shortest":  len(solutions[0]),
	}).Debug("solved")

	return solutions, nil
}

// solveMasks enumerates every cell subset that solves the board, each as a
// bit vector over bit positions.
func (g *Grid) solveMasks() []word {
	/*
	 * Toggling a set of cells flips each bit once per chosen pattern
	 * covering it, so a bit ends up enabled iff the number of chosen
	 * cells covering it has the right parity: even to keep an enabled
	 * bit, odd to fix a disabled one. Enumerate, for every bit, each
	 * subset of its covering cells with that parity, then search for
	 * combinations that agree wherever their bits overlap.
	 */
	candidates := make([][]word, g.CellCount())
	state := g.state
	for bitN := range g.CellCount() {
		need := iif(state&1 == 1, 0, 1)
		state >>= 1

		covering := g.influence[bitN]
		var set []word
		for sub := range 1 << len(covering) {
			if word(sub).bitCount()&1 != need {
				continue
			}
			var mask word
			for j, pos := range covering {
				if sub&(1<<j) != 0 {
					mask |= 1 << pos
				}
			}
			set = append(set, mask)
		}
		candidates[bitN] = set
	}

	var (
		masks []word
		walk  func(bitN int, covered, decided word)
	)
	walk = func(bitN int, covered, decided word) {
		if bitN == len(candidates) {
			masks = append(masks, decided)
			return
		}
		pattern := g.patterns[bitN]
		for _, candidate := range candidates[bitN] {
			if candidate&covered == decided&pattern {
				walk(bitN+1, covered|pattern, decided|candidate)
			}
		}
	}
	walk(0, 0, 0)

	return masks
}

// moves lists the cells of a solution mask in display order, top left
// first.
func (g *Grid) moves(mask word) Solution {
	moves := make(Solution, 0, mask.bitCount())
	for y := range g.height {
		for x := range g.width {
			if mask&g.bit(x, y) != 0 {
				moves = append(moves, Cell{x, y})
			}
		}
	}
	return moves
}
