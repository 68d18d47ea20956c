package data

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileLocator implements FileLocator for standard file system operations
type DefaultFileLocator struct{}

// NewDefaultFileLocator creates a new default file locator
func NewDefaultFileLocator() *DefaultFileLocator {
	return &DefaultFileLocator{}
}

// FindDataFile attempts to locate the daily data file for a symbol.
// Structure: {dataRoot}/{SYMBOL}.csv, with lowercase and _daily
// fallbacks. Returns empty string if no file is found.
func (f *DefaultFileLocator) FindDataFile(dataRoot, symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return ""
	}

	candidates := []string{
		filepath.Join(dataRoot, strings.ToUpper(symbol)+".csv"),
		filepath.Join(dataRoot, strings.ToLower(symbol)+".csv"),
		filepath.Join(dataRoot, strings.ToUpper(symbol)+"_daily.csv"),
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return ""
}
