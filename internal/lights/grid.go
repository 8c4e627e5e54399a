package lights

import (
	"fmt"
	"strings"
)

// MaxSize bounds board width and height so that any board state fits in a
// single word.
const MaxSize = 8

// Grid is one puzzle board. A set state bit is an enabled cell; the puzzle
// is solved when every cell is enabled. Each cell carries a fixed toggle
// pattern covering itself and its orthogonal neighbors.
//
// Cells are addressed by zero-based (x, y) with the origin in the top left
// corner. Bit positions run the other way round, least significant bit at
// the bottom right, so that the binary literal of a one-row board reads the
// same as its textual form.
type Grid struct {
	width, height int
	state         word
	patterns      []word  // bit position -> cells toggled together
	influence     [][]int // bit position -> positions of its pattern bits
}

// NewGrid creates a width x height board with every cell enabled.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 || width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf(
			"%dx%d board (min 1x1, max %dx%d): %w",
			width, height, MaxSize, MaxSize, ErrInvalidSize,
		)
	}
	g := &Grid{width: width, height: height}
	g.state = g.allMask()
	g.initPatterns()
	return g, nil
}

func (g *Grid) bitPos(x, y int) int {
	return (g.width - x - 1) + (g.height-y-1)*g.width
}

func (g *Grid) bit(x, y int) word {
	return 1 << g.bitPos(x, y)
}

func (g *Grid) allMask() word {
	return ^word(0) >> (64 - g.width*g.height)
}

func (g *Grid) initPatterns() {
	n := g.width * g.height
	g.patterns = make([]word, n)
	for y := range g.height {
		for x := range g.width {
			pattern := g.bit(x, y)
			if x > 0 {
				pattern |= g.bit(x-1, y)
			}
			if x < g.width-1 {
				pattern |= g.bit(x+1, y)
			}
			if y > 0 {
				pattern |= g.bit(x, y-1)
			}
			if y < g.height-1 {
				pattern |= g.bit(x, y+1)
			}
			g.patterns[g.bitPos(x, y)] = pattern
		}
	}
	g.influence = make([][]int, n)
	for pos, pattern := range g.patterns {
		for b := range n {
			if pattern&(1<<b) != 0 {
				g.influence[pos] = append(g.influence[pos], b)
			}
		}
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) CellCount() int { return g.width * g.height }

// IsSolved reports whether every cell is enabled.
func (g *Grid) IsSolved() bool {
	return g.state == g.allMask()
}

// ValidateCoords reports whether (x, y) addresses a cell on this board.
func (g *Grid) ValidateCoords(x, y int) bool {
	return 0 <= x && x < g.width && 0 <= y && y < g.height
}

// EnabledAt reports the state of a single cell. Coordinates must be valid.
func (g *Grid) EnabledAt(x, y int) bool {
	return g.state&g.bit(x, y) != 0
}

// SetCell enables or disables a single cell. Coordinates must be valid.
func (g *Grid) SetCell(x, y int, enabled bool) {
	if enabled {
		g.state |= g.bit(x, y)
	} else {
		g.state &^= g.bit(x, y)
	}
}

// ApplyPattern toggles the cell at (x, y) together with its orthogonal
// neighbors. Coordinates must be valid.
func (g *Grid) ApplyPattern(x, y int) {
	g.state ^= g.patterns[g.bitPos(x, y)]
}

// SetState overwrites the whole board at once. Bits past the last cell are
// dropped.
func (g *Grid) SetState(bits uint64) {
	g.state = word(bits) & g.allMask()
}

func (g *Grid) State() uint64 {
	return uint64(g.state)
}

// Clone returns an independent copy of the board. The pattern tables are
// shared, they never change after construction.
func (g *Grid) Clone() *Grid {
	clone := *g
	return &clone
}

// Rows returns the board as one "0"/"1" string per row, top row first.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var row strings.Builder
	for y := range g.height {
		row.Reset()
		for x := range g.width {
			row.WriteByte(iif[byte](g.EnabledAt(x, y), '1', '0'))
		}
		rows[y] = row.String()
	}
	return rows
}

// String renders the rows joined by single spaces, the same shape that
// ImportRows accepts.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), " ")
}

// ImportRows overwrites the board from Rows-shaped bit strings, top row
// first. The board is left untouched unless every row parses.
func (g *Grid) ImportRows(rows []string) error {
	if len(rows) != g.height {
		return fmt.Errorf("%d rows, want %d: %w", len(rows), g.height, ErrFormat)
	}
	var bits word
	for y, row := range rows {
		if len(row) != g.width {
			return fmt.Errorf(
				"row %d is %d chars, want %d: %w",
				y+1, len(row), g.width, ErrFormat,
			)
		}
		for x := range g.width {
			switch row[x] {
			case '1':
				bits |= g.bit(x, y)
			case '0':
			default:
				return fmt.Errorf(
					"row %d contains %q, want 0 or 1: %w",
					y+1, row[x], ErrFormat,
				)
			}
		}
	}
	g.state = bits
	return nil
}
