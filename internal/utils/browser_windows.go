//go:build windows

package utils

import (
	"os/exec"
)

// OpenBrowser opens url through the URL protocol handler, which avoids
// cmd.exe parsing the URL
func OpenBrowser(url string) error {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Run()
}
