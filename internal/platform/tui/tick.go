// Package tui provides the Bubble Tea integration for the spawner playground.
// It handles the terminal UI loop, input mapping, and scenario orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-spawner/internal/config"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// ReloadMsg is sent when the watched preset file changes on disk.
type ReloadMsg struct {
	Path string
}

// WatchErrorMsg carries an error reported by the preset watcher.
type WatchErrorMsg struct {
	Err error
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchCmd waits for the next watcher event. Returns nil once the watcher is closed.
func watchCmd(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ReloadMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}
