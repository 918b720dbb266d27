package tui

import (
	"os"
	"path/filepath"
)

// LogFileEnv overrides the log file location.
const LogFileEnv = "GISSY_LOG_FILE"

// GetLogFilePath returns the path to the log file, or "" when file logging
// is disabled. flagValue (from --log-file) wins over GISSY_LOG_FILE, which
// wins over configured. The value "default" selects ~/.gissy/logs/gissy.log.
func GetLogFilePath(flagValue, configured string) string {
	path := flagValue
	if path == "" {
		path = os.Getenv(LogFileEnv)
	}
	if path == "" {
		path = configured
	}
	if path != "default" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gissy.log"
	}
	return filepath.Join(homeDir, ".gissy", "logs", "gissy.log")
}
