// Package tui runs a sandbox in the terminal with Bubble Tea. Each terminal
// character shows two vertically stacked pixels using a half block glyph.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg is sent once per rendered frame.
type frameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at fps.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
