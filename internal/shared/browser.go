package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

// goos is swapped in tests to exercise the per-platform branches.
var goos = func() string { return runtime.GOOS }

// OpenBrowser hands url to the platform's URL opener, detached from the
// calling terminal so the qBittorrent Web UI can come up next to a running
// TUI session.
func OpenBrowser(url string) error {
	name, args := openerCommand(goos(), url)
	if name == "" {
		return fmt.Errorf("unsupported platform: %s", goos())
	}

	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

// openerCommand maps an OS onto its URL-opening command line. An empty name
// means the platform has no known opener.
func openerCommand(os, url string) (name string, args []string) {
	switch os {
	case "darwin":
		return "open", []string{url}
	case "linux":
		return "xdg-open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", url}
	}
	return "", nil
}
