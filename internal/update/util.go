package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 5 * time.Second

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

// setStatus shows text on the status line and records it as a notification.
func (m *Model) setStatus(title, text string, isErr bool) {
	m.Status = StatusBar{Text: text, IsError: isErr}
	m.notify(title, text, levelFromError(isErr))
}

// expireStatus clears the current status after statusTTL unless another
// status replaced it first.
func (m *Model) expireStatus() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}

func reportError(err error) tea.Cmd {
	return func() tea.Msg { return AppErrorMsg{Err: err} }
}
