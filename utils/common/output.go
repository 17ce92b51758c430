package commonutils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// OutputHandler delivers a generated URL to the user beyond stdout.
type OutputHandler interface {
	CopyToClipboard(text string) error
	OpenInBrowser(url string) error
}

type DefaultOutputHandler struct{}

func NewOutputHandler() OutputHandler {
	return &DefaultOutputHandler{}
}

func (h *DefaultOutputHandler) CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

func (h *DefaultOutputHandler) OpenInBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		if isWSL() {
			// Windows default browser via cmd.exe start.
			return exec.Command("cmd.exe", "/c", "start", url).Start()
		}
		for _, opener := range []string{"xdg-open", "sensible-browser", "x-www-browser", "gnome-open", "kde-open"} {
			if _, err := exec.LookPath(opener); err == nil {
				return exec.Command(opener, url).Start()
			}
		}
		return fmt.Errorf("no browser opener found on PATH")
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}

	return cmd.Start()
}

func isWSL() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	if data, err := os.ReadFile("/proc/version"); err == nil {
		return strings.Contains(strings.ToLower(string(data)), "wsl")
	}
	return false
}
