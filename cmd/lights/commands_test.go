package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() (*session, *bytes.Buffer) {
	var out bytes.Buffer
	return newSession(&out, rand.New(rand.NewPCG(1, 2)), true), &out
}

func TestExecuteEmptyLine(t *testing.T) {
	s, out := newTestSession()
	assert.False(t, s.execute(""))
	assert.False(t, s.execute("   "))
	assert.Empty(t, out.String())
	assert.False(t, s.prevHadOutput)
}

func TestExecuteQuit(t *testing.T) {
	s, out := newTestSession()
	assert.True(t, s.execute("x"))
	assert.True(t, s.execute("X"))
	assert.Empty(t, out.String())
}

func TestExecuteUnknownCommand(t *testing.T) {
	s, out := newTestSession()
	s.execute("zzz 1 2")
	assert.Equal(t,
		"[Error] Unknown command \"zzz 1 2\"\n# type \"?\" or \"h\" for help\n",
		out.String())
}

func TestExecuteArity(t *testing.T) {
	s, out := newTestSession()
	s.execute("n 3")
	assert.Equal(t,
		"[Error] Invalid number of arguments for command \"n\": 1 != 2\n",
		out.String())

	out.Reset()
	s.execute("p 1")
	assert.Equal(t,
		"[Error] Invalid number of arguments for command \"p\": 1 != 0\n",
		out.String())
}

func TestExecuteHelp(t *testing.T) {
	s, out := newTestSession()
	s.execute("?")
	text := out.String()
	for _, fragment := range []string{"n <W> <H>", "r <N>", "pb", "Exit."} {
		assert.Contains(t, text, fragment)
	}
	assert.Contains(t, text, "must be >= 1 and <= 8")

	out.Reset()
	s.execute("h")
	assert.Equal(t, text, out.String())

	// A question mark anywhere on the line wins.
	out.Reset()
	s.execute("n ? 3")
	assert.Equal(t, text, out.String())
}

func TestExecuteRequiresBoard(t *testing.T) {
	for _, line := range []string{
		"c", "p", "pb", "r 3", "rr", "s", "e a1", "d a1", "f a1", "a",
	} {
		t.Run(line, func(t *testing.T) {
			s, out := newTestSession()
			assert.False(t, s.execute(line))
			assert.Equal(t, "[Error] No board, please create one\n", out.String())
		})
	}
}

func TestExecuteNewBoard(t *testing.T) {
	s, out := newTestSession()
	s.execute("n 2 2")
	require.NotNil(t, s.board)
	assert.Equal(t, "11 11", s.board.String())
	assert.Contains(t, out.String(), "!▒▒!▒▒!")
}

func TestExecuteNewBoardErrors(t *testing.T) {
	for line, want := range map[string]string{
		"n 0 5": "[Error] Board size must be >= 1\n",
		"n 5 0": "[Error] Board size must be >= 1\n",
		"n 9 5": "[Error] Board size must be <= 8\n",
		"n 5 9": "[Error] Board size must be <= 8\n",
		"n x 5": "[Error] argument \"x\" is not a number\n",
	} {
		s, out := newTestSession()
		s.execute(line)
		assert.Nil(t, s.board, line)
		assert.Equal(t, want, out.String(), line)
	}
}

func TestExecuteEnableDisableFlip(t *testing.T) {
	s, _ := newTestSession()
	s.execute("n 3 3")

	s.execute("d b2")
	assert.Equal(t, "111 101 111", s.board.String())

	s.execute("e b2")
	assert.Equal(t, "111 111 111", s.board.String())

	s.execute("f b2")
	assert.Equal(t, "101 000 101", s.board.String())

	s.execute("f b2")
	assert.True(t, s.board.IsSolved())
}

func TestExecuteCoordinateErrors(t *testing.T) {
	s, out := newTestSession()
	s.execute("n 2 2")
	out.Reset()

	s.execute("e c1")
	assert.Contains(t, out.String(), "[Error] ")
	assert.Contains(t, out.String(), "out of range")
	assert.True(t, s.board.IsSolved(), "board must be unchanged")

	out.Reset()
	s.execute("f 11")
	assert.Contains(t, out.String(), "not a cell coordinate")
}

func TestExecuteClearAndSet(t *testing.T) {
	s, out := newTestSession()
	s.execute("n 2 2")

	s.execute("c")
	assert.Equal(t, "00 00", s.board.String())

	s.execute("s 10 01")
	assert.Equal(t, "10 01", s.board.String())

	out.Reset()
	s.execute("pb")
	assert.Equal(t, "10 01\n", out.String())
}

func TestExecuteSetStateErrors(t *testing.T) {
	s, out := newTestSession()
	s.execute("n 2 2")
	out.Reset()

	s.execute("s 10 0")
	assert.Contains(t, out.String(), "[Error] ")
	assert.Equal(t, "11 11", s.board.String(), "board must be unchanged")

	out.Reset()
	s.execute("s 10 01 11")
	assert.Contains(t, out.String(), "Invalid number of arguments")

	out.Reset()
	s.execute("s 10 02")
	assert.Contains(t, out.String(), "[Error] ")
	assert.Equal(t, "11 11", s.board.String())
}

func TestExecuteRandom(t *testing.T) {
	s, out := newTestSession()
	s.execute("n 3 3")

	s.execute("r 4")
	assert.False(t, s.board.IsSolved())

	other, _ := newTestSession()
	other.execute("n 3 3")
	other.execute("r 4")
	assert.Equal(t, other.board.String(), s.board.String(), "same seed, same board")

	out.Reset()
	s.execute("r 0")
	assert.Equal(t, "[Error] Number of random changes must be >= 1\n", out.String())

	out.Reset()
	s.execute("r 10")
	assert.Equal(t, "[Error] Number of random changes must be <= 9\n", out.String())
}

func TestExecuteRandomRandom(t *testing.T) {
	s, _ := newTestSession()
	s.execute("n 3 3")
	s.execute("rr")
	assert.False(t, s.board.IsSolved())
}

func TestExecuteSolveAlreadySolved(t *testing.T) {
	s, out := newTestSession()
	s.execute("n 1 1")
	out.Reset()

	s.execute("a")
	assert.Contains(t, out.String(), "0)")
	assert.Contains(t, out.String(), "Already solved!")
}

func TestExecuteSolveShowsSteps(t *testing.T) {
	s, out := newTestSession()
	s.execute("n 3 3")
	s.execute("f b2")
	out.Reset()

	s.execute("a")
	text := out.String()
	assert.Contains(t, text, "1) f b2")
	assert.Contains(t, text, "Steps:")
	assert.True(t, strings.HasSuffix(text, " 1) f b2\n"), text)
	assert.NotContains(t, text, "More than one solution")

	assert.Equal(t, "101 000 101", s.board.String(), "board must not change")
}

func TestExecuteSolveMultipleSolutions(t *testing.T) {
	s, out := newTestSession()
	s.execute("n 4 4")
	s.execute("f a1")
	out.Reset()

	s.execute("a")
	text := out.String()
	assert.Contains(t, text, "More than one solution found: ")
	assert.Contains(t, text, "Will show one of the shortest.")
	assert.Contains(t, text, "Steps:")
}

func TestRunLoop(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, rand.New(rand.NewPCG(1, 2)), true)
	lines := make(chan string, 3)
	lines <- "n 1 1"
	lines <- ""
	lines <- "x"
	close(lines)

	s.run(context.Background(), lines)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "# type \"?\" or \"h\" for help\n\n> "), text)
	assert.Contains(t, text, "!▒▒!")
}

func TestRunLoopEOF(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, rand.New(rand.NewPCG(1, 2)), true)
	lines := make(chan string)
	close(lines)

	s.run(context.Background(), lines)

	assert.True(t, strings.HasSuffix(out.String(), "> \n"), out.String())
}

func TestRunLoopContextCancel(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, rand.New(rand.NewPCG(1, 2)), true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.run(ctx, make(chan string))

	assert.True(t, strings.HasSuffix(out.String(), "> \n"), out.String())
}

func TestRunLoopPipedInputEchoesBlank(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, rand.New(rand.NewPCG(1, 2)), false)
	lines := make(chan string, 1)
	lines <- "x"
	close(lines)

	s.run(context.Background(), lines)

	assert.Equal(t, "# type \"?\" or \"h\" for help\n\n> \n", out.String())
}
