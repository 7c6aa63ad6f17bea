// Package tui is the full-screen front end built on Bubble Tea. The board
// and a sidebar sit on top, the message log scrolls below them, and
// commands are typed into an input line at the bottom.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/klondike/internal/command"
	"github.com/lox/klondike/internal/gameid"
	"github.com/lox/klondike/internal/render"
	"github.com/lox/klondike/internal/session"
)

const (
	logPane   = 0
	inputPane = 1

	sidebarMinWidth = 24
)

// tickMsg refreshes the elapsed time in the sidebar
type tickMsg time.Time

// Model is the Bubble Tea model for a solitaire session
type Model struct {
	sess     *session.Session
	renderer *render.Renderer
	logger   *log.Logger

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	// State
	gameLog     []string
	quitting    bool
	focusedPane int

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
}

// NewModel creates the model for an interactive session
func NewModel(sess *session.Session, renderer *render.Renderer, logger *log.Logger) *Model {
	return NewModelWithOptions(sess, renderer, logger, false)
}

// NewModelWithOptions creates the model. In test mode log entries are
// captured for assertions and the viewport is left alone.
func NewModelWithOptions(sess *session.Session, renderer *render.Renderer, logger *log.Logger, testMode bool) *Model {
	// Sized properly once the first WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "draw, waste, 1-7, h/c/d/s, new, help, q"
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 40
	ti.PromptStyle = renderer.Styles.Prompt
	ti.TextStyle = ValueStyle
	ti.Prompt = "> "

	m := &Model{
		sess:        sess,
		renderer:    renderer,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		focusedPane: inputPane,
		testMode:    testMode,
	}
	m.AddLogEntry(fmt.Sprintf("Dealt %s (seed %d). Type 'help' for commands.", gameid.Short(sess.DealID()), sess.Seed()))
	return m
}

// Run starts a full-screen program for m and blocks until the player quits
// or ctx is cancelled.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// Init starts the cursor blink and the sidebar clock
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.sess.Execute(command.Command{Kind: command.Quit})
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == logPane {
				m.focusedPane = inputPane
				m.input.Focus()
			} else {
				m.focusedPane = logPane
				m.input.Blur()
			}
			return m, nil
		case "enter":
			if m.focusedPane == inputPane {
				line := m.input.Value()
				m.input.SetValue("")
				return m, m.submit(line)
			}
		}

		if m.focusedPane == logPane {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == inputPane {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		m.logViewport, cmd = m.logViewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// submit runs one line of input and records the result in the log
func (m *Model) submit(line string) tea.Cmd {
	out := m.sess.ExecuteLine(line)
	switch {
	case out.Ignored:
		if strings.TrimSpace(line) != "" {
			m.AddLogEntry(HintStyle.Render(fmt.Sprintf("Unrecognised command %q; type 'help' for the list", strings.TrimSpace(line))))
		}
		return nil
	case out.Help:
		for _, l := range command.HelpText() {
			m.AddLogEntry(HintStyle.Render(l))
		}
		return nil
	case out.Quit:
		m.quitting = true
		return tea.Sequence(tea.ClearScreen, tea.Quit)
	case out.Won && out.Err == nil:
		m.AddLogEntry(m.renderer.Win(out.Message))
		m.AddLogEntry(HintStyle.Render("Type 'new' to deal again or 'q' to quit"))
		return nil
	}

	if out.Message != "" {
		m.AddLogEntry(m.renderer.Message(out.Message, out.Err != nil))
	}
	return nil
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Board pane (top left, sized to its content)
	boardContent := m.renderBoardPane()
	boardPane := paneStyle(BlurColor).Render(boardContent)

	// Sidebar (top right, fills the remaining width)
	sidebarWidth := max(m.width-lipgloss.Width(boardPane)-2, sidebarMinWidth)
	sidebarPane := paneStyle(BlurColor).
		Width(sidebarWidth).
		Height(lipgloss.Height(boardContent)).
		Render(m.renderSidebarPane())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, boardPane, sidebarPane)

	// Action pane (bottom, full width)
	actionBorder := BlurColor
	if m.focusedPane == inputPane {
		actionBorder = FocusColor
	}
	actionPane := paneStyle(actionBorder).
		Width(max(m.width-2, 1)).
		Render(m.renderActionPane())

	// Log pane fills what is left
	logWidth := max(m.width-2, 1)
	logHeight := max(m.height-lipgloss.Height(topRow)-lipgloss.Height(actionPane)-2, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	if !m.initialized && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logBorder := BlurColor
	if m.focusedPane == logPane {
		logBorder = FocusColor
	}
	logBox := paneStyle(logBorder).
		Width(logWidth).
		Height(logHeight).
		Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, topRow, logBox, actionPane)
}

func (m *Model) renderBoardPane() string {
	snap := m.sess.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderer.Heading())
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Board(snap))
	b.WriteString("\n")
	b.WriteString(m.renderer.Status(snap))
	b.WriteString("\n")
	b.WriteString(m.renderer.Counts(snap))
	return b.String()
}

func (m *Model) renderSidebarPane() string {
	var b strings.Builder

	field := func(label, value string) {
		b.WriteString(LabelStyle.Render(label + ": "))
		b.WriteString(ValueStyle.Render(value))
		b.WriteString("\n")
	}

	field("Deal", gameid.Short(m.sess.DealID()))
	field("Seed", fmt.Sprintf("%d", m.sess.Seed()))
	field("Time", m.sess.Elapsed().Truncate(time.Second).String())
	field("Moves", fmt.Sprintf("%d", m.sess.Moves()))
	field("Games", fmt.Sprintf("%d", m.sess.Deals()))
	if rec, ok := m.sess.Stats(); ok {
		field("Record", fmt.Sprintf("%d/%d won", rec.Won, rec.Played))
		if rec.BestSeconds > 0 {
			field("Best", rec.BestTime().String())
		}
	}

	foundations := "by suit"
	if !m.sess.Game().Config().StrictFoundations {
		foundations = "any suit"
	}
	field("Foundations", foundations)

	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Commands"))
	b.WriteString("\n")
	for _, e := range command.Vocabulary {
		b.WriteString(HintStyle.Render(fmt.Sprintf("  %-6s %s", e.Name, e.Description)))
		b.WriteString("\n")
	}

	if m.sess.IsOver() {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render("Game over"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderActionPane() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.focusedPane == logPane {
		b.WriteString(HintStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn page, Tab to input"))
	} else {
		b.WriteString(HintStyle.Render("Enter to submit • Tab to scroll log • Esc to quit"))
	}
	return b.String()
}

// AddLogEntry appends an entry to the message log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the model captures its log
func (m *Model) IsTestMode() bool {
	return m.testMode
}

// Quitting reports whether the player has left
func (m *Model) Quitting() bool {
	return m.quitting
}
