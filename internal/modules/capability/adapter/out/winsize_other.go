//go:build !unix

package out

func windowSize(uintptr) (cols, rows, xpixel int, ok bool) {
	return 0, 0, 0, false
}
