package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vancomm/lightsout/internal/lights"
)

var errCoordOutOfRange = errors.New("coordinate out of range")

func parseInt(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("argument %q is not a number", arg)
	}
	return n, nil
}

// parseCoord reads a letter-digit cell address like a1, column letter
// first, both axes starting at the top left corner.
func parseCoord(arg string, g *lights.Grid) (lights.Cell, error) {
	if len(arg) != 2 || arg[0] < 'a' || arg[0] > 'z' {
		return lights.Cell{}, fmt.Errorf("argument %q is not a cell coordinate like a1", arg)
	}
	y, err := strconv.Atoi(arg[1:])
	if err != nil {
		return lights.Cell{}, fmt.Errorf("argument %q is not a cell coordinate like a1", arg)
	}
	cell := lights.Cell{X: int(arg[0] - 'a'), Y: y - 1}
	if !g.ValidateCoords(cell.X, cell.Y) {
		return lights.Cell{}, fmt.Errorf(
			"%q on a %dx%d board: %w",
			arg, g.Width(), g.Height(), errCoordOutOfRange,
		)
	}
	return cell, nil
}

// formatCoord renders a cell the way commands accept it.
func formatCoord(cell lights.Cell) string {
	return fmt.Sprintf("%c%d", 'a'+cell.X, cell.Y+1)
}
