package app

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns the structured logger shared by the drivers.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sand",
		Level:           lvl,
	})
	return logger, nil
}
