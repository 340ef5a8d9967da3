package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	resumeout "folio/internal/modules/resume/port/out"
)

type OSLauncher struct {
	goos string
}

func NewOSLauncher() resumeout.Launcher {
	return &OSLauncher{goos: runtime.GOOS}
}

func (l *OSLauncher) Open(ctx context.Context, target string) error {
	name, args, err := openCommand(l.goos, target)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open external target: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func openCommand(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	default:
		return "", nil, fmt.Errorf("external open is not supported on %s", goos)
	}
}
