package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Giddy-K/AirBnB-clone/pkg/events"
)

type fakeConsole struct {
	lines []string
}

func (f *fakeConsole) ExecuteTo(ctx context.Context, line string, output io.Writer) bool {
	f.lines = append(f.lines, line)
	if line == "quit" {
		return true
	}
	fmt.Fprintf(output, "ran %s\n", line)
	return false
}

func TestSubmitRunsCommandOnce(t *testing.T) {
	fc := &fakeConsole{}
	m := New(context.Background(), fc, "hbnb", zap.NewNop())

	cmd := m.submit("count User")
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"count User"}, fc.lines)

	msg := cmd()
	assert.Equal(t, events.CommandOutputMsg{Command: "count User", Content: "ran count User\n"}, msg)
}

func TestCommandOutputIsAppended(t *testing.T) {
	m := New(context.Background(), &fakeConsole{}, "hbnb", zap.NewNop())
	_, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := m.Update(events.CommandOutputMsg{Command: "show User 1", Content: "** no instance found **\n"})
	assert.Nil(t, cmd)
	require.Len(t, m.messages, 2)
	assert.Contains(t, m.messages[1], "no instance found")
	assert.True(t, strings.Contains(m.View(), "hbnb"))
}

func TestEnterSubmitsInput(t *testing.T) {
	fc := &fakeConsole{}
	m := New(context.Background(), fc, "hbnb", zap.NewNop())
	m.textarea.SetValue("create User")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"create User"}, fc.lines)
	assert.Empty(t, m.textarea.Value())
}

func TestExitMessageQuits(t *testing.T) {
	m := New(context.Background(), &fakeConsole{}, "hbnb", zap.NewNop())
	_, cmd := m.Update(events.ExitTUIMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
