package app

import (
	"os"

	"flora-partner-assignment/internal/logx"
)

// NewLogger returns a JSON logger writing to stdout at the given level.
func NewLogger(level string) logx.Logger {
	return logx.NewJSON(os.Stdout, logx.ParseLevel(level))
}
