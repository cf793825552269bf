package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Giddy-K/AirBnB-clone/pkg/events"
)

// Executor runs one console line, writing its output to output, and reports
// whether the session should end.
type Executor interface {
	ExecuteTo(ctx context.Context, line string, output io.Writer) bool
}

// Model is the state of the full-screen console.
type Model struct {
	ctx         context.Context
	viewport    viewport.Model
	textarea    textarea.Model
	messages    []string
	console     Executor
	logger      *zap.Logger
	senderStyle lipgloss.Style
	outputStyle lipgloss.Style
	errorStyle  lipgloss.Style
	ready       bool
	title       string
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles key presses, resizes and command results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		vpCmd tea.Cmd
		taCmd tea.Cmd
	)

	m.viewport, vpCmd = m.viewport.Update(msg)
	m.textarea, taCmd = m.textarea.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlD:
			return m, m.submit("EOF")
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input != "" {
				m.appendMessage(m.senderStyle.Render("(hbnb) ") + input)
				return m, m.submit(input)
			}
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		verticalMarginHeight := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMarginHeight)
			m.viewport.YPosition = headerHeight
			m.viewport.SetContent(strings.Join(m.messages, "\n"))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMarginHeight
		}
		m.textarea.SetWidth(msg.Width)

	case events.CommandOutputMsg:
		content := strings.TrimRight(msg.Content, "\n")
		if content == "" {
			return m, nil
		}
		for _, line := range strings.Split(content, "\n") {
			style := m.outputStyle
			if strings.HasPrefix(line, "**") {
				style = m.errorStyle
			}
			m.appendMessage(style.Render(line))
		}
		return m, nil

	case events.ExitTUIMsg:
		m.logger.Debug("session ended from the console")
		return m, tea.Quit
	}

	return m, tea.Batch(vpCmd, taCmd)
}

// submit runs line right away, keeping one command at a time, and hands its
// output back to Update as a message.
func (m *Model) submit(line string) tea.Cmd {
	var out bytes.Buffer
	quit := m.console.ExecuteTo(m.ctx, line, &out)
	outputMsg := events.CommandOutputMsg{Command: line, Content: out.String()}
	if quit {
		return tea.Sequence(
			func() tea.Msg { return outputMsg },
			func() tea.Msg { return events.ExitTUIMsg{} },
		)
	}
	return func() tea.Msg { return outputMsg }
}

func (m *Model) appendMessage(s string) {
	m.messages = append(m.messages, s)
	m.viewport.SetContent(strings.Join(m.messages, "\n"))
	m.viewport.GotoBottom()
}

// View renders the header, the scrollback and the input line.
func (m *Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	return fmt.Sprintf(
		"%s\n%s\n%s",
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m *Model) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render(m.title)
	line := strings.Repeat("─", m.viewport.Width)
	return lipgloss.JoinVertical(lipgloss.Left, title, line)
}

func (m *Model) footerView() string {
	return m.textarea.View()
}

// New initializes a TUI model over console.
func New(ctx context.Context, console Executor, title string, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ta := textarea.New()
	ta.Placeholder = "Type a command, e.g. create User"
	ta.Focus()

	ta.Prompt = "┃ "
	ta.CharLimit = 1024

	ta.SetWidth(50) // adjusted on the first WindowSizeMsg
	ta.SetHeight(1)

	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	return &Model{
		ctx:         ctx,
		textarea:    ta,
		messages:    []string{"Type help for the list of commands."},
		console:     console,
		logger:      logger,
		title:       title,
		senderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		outputStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		errorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, console Executor, title string, logger *zap.Logger) error {
	p := tea.NewProgram(New(ctx, console, title, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.Wrap(err, "run tui")
	}
	return nil
}
