package out

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"folio/internal/modules/capability/domain"
)

const fallbackColumns = 80

type TerminalOptions struct {
	CellWidthPx   int
	ReducedMotion bool
	Mouse         bool
}

// TerminalSignals samples the controlling terminal. The network signal is
// left unknown; the monitor takes it from the network probe.
type TerminalSignals struct {
	out  *os.File
	opts TerminalOptions

	getenv  func(string) string
	winsize func(fd uintptr) (cols, rows, xpixel int, ok bool)
	isTTY   func(fd uintptr) bool
	profile func() termenv.Profile
	cores   func() int
}

func NewTerminalSignals(out *os.File, opts TerminalOptions) *TerminalSignals {
	if opts.CellWidthPx <= 0 {
		opts.CellWidthPx = 8
	}
	return &TerminalSignals{
		out:     out,
		opts:    opts,
		getenv:  os.Getenv,
		winsize: windowSize,
		isTTY: func(fd uintptr) bool {
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		profile: func() termenv.Profile { return termenv.NewOutput(out).EnvColorProfile() },
		cores:   runtime.NumCPU,
	}
}

func (s *TerminalSignals) Sample(context.Context) domain.Signals {
	fd := s.out.Fd()
	tty := s.isTTY(fd)
	return domain.Signals{
		ViewportWidth:   s.width(fd),
		Cores:           s.cores(),
		ReducedMotion:   s.opts.ReducedMotion,
		FeaturesPresent: tty && s.profile() != termenv.Ascii,
		HoverPointer:    tty && s.opts.Mouse && s.getenv("TERM") != "linux",
	}
}

func (s *TerminalSignals) width(fd uintptr) int {
	cols, _, xpixel, ok := s.winsize(fd)
	if ok && xpixel > 0 {
		return xpixel
	}
	if !ok || cols <= 0 {
		cols = fallbackColumns
		if n, err := strconv.Atoi(s.getenv("COLUMNS")); err == nil && n > 0 {
			cols = n
		}
	}
	return cols * s.opts.CellWidthPx
}
