package events

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommandOutputMsg carries what one console command printed to the TUI.
type CommandOutputMsg struct {
	Command string
	Content string
}

// ExitTUIMsg is sent when a command ended the session.
type ExitTUIMsg struct{}

// Compile-time check to ensure our messages implement tea.Msg
var _ tea.Msg = CommandOutputMsg{}
var _ tea.Msg = ExitTUIMsg{}
