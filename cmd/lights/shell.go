package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/vancomm/lightsout/internal/lights"
)

// session is one interactive play-through: at most one board at a time plus
// the RNG behind the r and rr commands.
type session struct {
	board *lights.Grid
	rnd   *rand.Rand
	out   io.Writer

	// tty suppresses the blank line echoed after piped input.
	tty bool

	// prevHadOutput separates command output from the next prompt.
	prevHadOutput bool
}

func newSession(out io.Writer, rnd *rand.Rand, tty bool) *session {
	return &session{
		rnd:           rnd,
		out:           out,
		tty:           tty,
		prevHadOutput: true,
	}
}

// run drives the prompt loop until the line source closes, the context ends
// or the player quits.
func (s *session) run(ctx context.Context, lines <-chan string) {
	s.printBasicHelp()

	for {
		if s.prevHadOutput {
			fmt.Fprintln(s.out)
		}
		s.prevHadOutput = true
		fmt.Fprint(s.out, "> ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				return
			}
			if !s.tty {
				fmt.Fprintln(s.out)
			}
			if quit := s.execute(line); quit {
				return
			}
		}
	}
}
