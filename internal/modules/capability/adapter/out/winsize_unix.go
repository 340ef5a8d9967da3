//go:build unix

package out

import "golang.org/x/sys/unix"

// windowSize reads the terminal size of fd in cells and, when the terminal
// reports it, in pixels.
func windowSize(fd uintptr) (cols, rows, xpixel int, ok bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(ws.Col), int(ws.Row), int(ws.Xpixel), true
}
