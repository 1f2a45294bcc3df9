// Package logger sends the standard log package to an append-only file so
// that operational detail stays out of the command output.
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Prefix starts every log line.
const Prefix = "aieo-schema: "

// InitLogger opens logFile for appending, creating missing parent directories,
// and makes it the output of the standard logger. The caller closes the file.
func InitLogger(logFile string) (*os.File, error) {
	if dir := filepath.Dir(logFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(file)
	log.SetPrefix(Prefix)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	return file, nil
}
