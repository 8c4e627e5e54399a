package main

import (
	"fmt"
	"strings"

	"github.com/vancomm/lightsout/internal/lights"
)

// renderBoard draws the boxed view of the board: column letters on top,
// 1-based row numbers on the left, shaded blocks for enabled cells. A
// solved board swaps the border glyphs.
func renderBoard(g *lights.Grid) string {
	hChar, vChar := "-", "|"
	if g.IsSolved() {
		hChar, vChar = "+", "!"
	}

	hLine := "  " + strings.Repeat(hChar, 4+3*(g.Width()-1))

	var b strings.Builder
	b.WriteString("  ")
	for x := range g.Width() {
		fmt.Fprintf(&b, " %c ", 'a'+x)
	}
	b.WriteString("\n")

	for y := range g.Height() {
		b.WriteString(hLine)
		fmt.Fprintf(&b, "\n%d %s", y+1, vChar)
		for x := range g.Width() {
			if g.EnabledAt(x, y) {
				b.WriteString("▒▒")
			} else {
				b.WriteString("  ")
			}
			b.WriteString(vChar)
		}
		b.WriteString("\n")
	}
	b.WriteString(hLine)

	return b.String()
}
