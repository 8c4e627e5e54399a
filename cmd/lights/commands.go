package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vancomm/lightsout/internal/lights"
)

// Maps known commands to number of arguments. The s command is listed with
// zero, with a board around it takes one bit row per board row instead.
var commandNargs = map[string]int{
	"x":  0,
	"n":  2,
	"c":  0,
	"p":  0,
	"pb": 0,
	"r":  1,
	"rr": 0,
	"s":  0,
	"e":  1,
	"d":  1,
	"f":  1,
	"a":  0,
}

// execute runs a single input line against the session and reports whether
// the session should end.
func (s *session) execute(line string) (quit bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		s.prevHadOutput = false
		return false
	}
	log.Debug("> ", line)

	if slices.Contains(fields, "?") || slices.Contains(fields, "h") {
		s.printHelp()
		return false
	}

	cmd, args := fields[0], fields[1:]

	nargs, known := commandNargs[cmd]
	if !known {
		s.errorf("Unknown command %q", strings.Join(fields, " "))
		s.printBasicHelp()
		return false
	}
	if cmd == "s" && s.board != nil {
		nargs = s.board.Height()
	}
	if len(args) != nargs {
		s.errorf("Invalid number of arguments for command %q: %d != %d",
			cmd, len(args), nargs)
		return false
	}

	switch cmd {
	case "x":
		return true
	case "n":
		s.createBoard(args)
	case "c":
		s.clearBoard()
	case "p":
		s.printBoard()
	case "pb":
		s.printBoardBits()
	case "r":
		s.randomChanges(args)
	case "rr":
		s.randomRandomChanges()
	case "s":
		s.setBoardState(args)
	case "e":
		s.setBoardCell(args, true)
	case "d":
		s.setBoardCell(args, false)
	case "f":
		s.flipPattern(args)
	case "a":
		s.solveBoard()
	}
	return false
}

func (s *session) errorf(format string, args ...any) {
	fmt.Fprintf(s.out, "[Error] "+format+"\n", args...)
}

func (s *session) requireBoard() bool {
	if s.board == nil {
		s.errorf("No board, please create one")
		return false
	}
	return true
}

func (s *session) createBoard(args []string) {
	width, err := parseInt(args[0])
	if err != nil {
		s.errorf("%v", err)
		return
	}
	height, err := parseInt(args[1])
	if err != nil {
		s.errorf("%v", err)
		return
	}
	if width < 1 || height < 1 {
		s.errorf("Board size must be >= 1")
		return
	}
	if width > lights.MaxSize || height > lights.MaxSize {
		s.errorf("Board size must be <= %d", lights.MaxSize)
		return
	}
	board, err := lights.NewGrid(width, height)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.board = board
	s.printBoard()
}

func (s *session) clearBoard() {
	if !s.requireBoard() {
		return
	}
	s.board.SetState(0)
	s.printBoard()
}

func (s *session) printBoard() {
	if !s.requireBoard() {
		return
	}
	fmt.Fprintln(s.out, renderBoard(s.board))
}

func (s *session) printBoardBits() {
	if !s.requireBoard() {
		return
	}
	fmt.Fprintln(s.out, s.board.String())
}

func (s *session) randomChanges(args []string) {
	if !s.requireBoard() {
		return
	}
	n, err := parseInt(args[0])
	if err != nil {
		s.errorf("%v", err)
		return
	}
	if n < 1 {
		s.errorf("Number of random changes must be >= 1")
		return
	}
	if n > s.board.CellCount() {
		s.errorf("Number of random changes must be <= %d", s.board.CellCount())
		return
	}
	if err := s.board.ApplyRandomChanges(n, s.rnd); err != nil {
		s.errorf("%v", err)
		return
	}
	s.printBoard()
}

func (s *session) randomRandomChanges() {
	if !s.requireBoard() {
		return
	}
	n := 1 + s.rnd.IntN(s.board.CellCount())
	if err := s.board.ApplyRandomChanges(n, s.rnd); err != nil {
		s.errorf("%v", err)
		return
	}
	s.printBoard()
}

func (s *session) setBoardState(args []string) {
	if !s.requireBoard() {
		return
	}
	if err := s.board.ImportRows(args); err != nil {
		s.errorf("%v", err)
		return
	}
	s.printBoard()
}

func (s *session) setBoardCell(args []string, enabled bool) {
	if !s.requireBoard() {
		return
	}
	cell, err := parseCoord(args[0], s.board)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.board.SetCell(cell.X, cell.Y, enabled)
	s.printBoard()
}

func (s *session) flipPattern(args []string) {
	if !s.requireBoard() {
		return
	}
	cell, err := parseCoord(args[0], s.board)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.board.ApplyPattern(cell.X, cell.Y)
	s.printBoard()
}

func (s *session) solveBoard() {
	if !s.requireBoard() {
		return
	}
	solutions, err := lights.Solve(s.board)
	if err != nil {
		log.Fatal("solver: ", err)
	}

	if len(solutions) > 1 {
		counts := make([]string, len(solutions))
		for i, solution := range solutions {
			counts[i] = fmt.Sprintf("%d steps", len(solution))
		}
		fmt.Fprintln(s.out, "More than one solution found: "+strings.Join(counts, ", "))
		fmt.Fprintln(s.out, "Will show one of the shortest.")
		fmt.Fprintln(s.out)
	}
	solution := solutions[0]

	demo := s.board.Clone()
	fmt.Fprintln(s.out, "0)")
	fmt.Fprintln(s.out, renderBoard(demo))
	fmt.Fprintln(s.out)

	if len(solution) == 0 {
		fmt.Fprintln(s.out, "Already solved!")
		return
	}

	for n, move := range solution {
		fmt.Fprintf(s.out, "%d) f %s\n", n+1, formatCoord(move))
		demo.ApplyPattern(move.X, move.Y)
		fmt.Fprintln(s.out, renderBoard(demo))
		fmt.Fprintln(s.out)
	}

	if !demo.IsSolved() {
		log.Fatal("solver produced wrong solution")
	}

	fmt.Fprintln(s.out, "Steps:")
	for n, move := range solution {
		fmt.Fprintf(s.out, "%2d) f %s\n", n+1, formatCoord(move))
	}
}

func (s *session) printBasicHelp() {
	fmt.Fprintln(s.out, `# type "?" or "h" for help`)
}

func (s *session) printHelp() {
	for _, line := range []string{
		"?",
		"h",
		"    Print this help message.",
		"",
		"x",
		"    Exit.",
		"",
		"n <W> <H>",
		"    Create board with specified <W>idth and <H>eight.",
		fmt.Sprintf("    <W>idth and <H>eight must be >= 1 and <= %d", lights.MaxSize),
		`    All cells are set to "1" (enabled) by default.`,
		"",
		"c",
		`    Clear board: set all cells to "0" (disabled).`,
		"",
		"p",
		"    Print current board.",
		"",
		"pb",
		"    Print current board in binary form.",
		"",
		"r <N>",
		"    Apply <N>umber of random changes to board.",
		"    <N>umber must be >= 1 and <= (Width * Height).",
		"",
		"rr",
		"    Apply random number of random changes to board.",
		"",
		"s <ROW1> <ROW2> ... <ROWn>",
		"    Set board state from bit strings.",
		`    Argument format is the same as the output format of command "pb".`,
		"",
		"e <XY>",
		`    Set cell with coordinates <X>:<Y> to "1" (enable).`,
		"    <X> is specified as letter and must be >= 1 and <= Width.",
		"    <Y> is specified as number and must be >= 1 and <= Height.",
		"",
		"d <XY>",
		`    Set cell with coordinates <X>:<Y> to "0" (disable).`,
		"    <X> is specified as letter and must be >= 1 and <= Width.",
		"    <Y> is specified as number and must be >= 1 and <= Height.",
		"",
		"f <XY>",
		"    Flip cells around coordinates <X>:<Y>.",
		"",
		"a",
		"    Automatically solve puzzle and show the solution.",
	} {
		fmt.Fprintf(s.out, "    %s\n", line)
	}
}
