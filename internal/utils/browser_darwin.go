//go:build darwin

package utils

import (
	"os/exec"
)

// OpenBrowser opens url with the macOS open command
func OpenBrowser(url string) error {
	return exec.Command("open", url).Run()
}
