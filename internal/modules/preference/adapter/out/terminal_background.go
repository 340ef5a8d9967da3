package out

import (
	"io"

	"github.com/muesli/termenv"
)

// TerminalBackground asks the terminal whether it draws on a dark background.
type TerminalBackground struct {
	out io.Writer
}

func NewTerminalBackground(out io.Writer) TerminalBackground {
	return TerminalBackground{out: out}
}

func (b TerminalBackground) DarkBackground() bool {
	return termenv.NewOutput(b.out).HasDarkBackground()
}
