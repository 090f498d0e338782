package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If ZIKKYCAL_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.zikkycal/logs/zikkycal.log
func GetLogFilePath() string {
	if customPath := os.Getenv("ZIKKYCAL_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "zikkycal.log"
	}

	return filepath.Join(homeDir, ".zikkycal", "logs", "zikkycal.log")
}
