package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	FooterStyle = lipgloss.NewStyle().Align(lipgloss.Center)

	TextStyle       = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"})
	SubtextStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#a6adc8"})
	AltTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5c5f77", Dark: "#bac2de"})
	AccentTextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04a5e5", Dark: "#89dceb"})
)

const inputHeight = 3

// Widget is the chat view: a transcript, a text input, and a loading guard
// that keeps at most one request in flight.
type Widget struct {
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool

	input   chan string
	output  chan Msg
	msgs    []Msg
	loading bool
	version string
}

func New(version string, input chan string, output chan Msg) Widget {
	ta := textarea.New()
	ta.Placeholder = "Ask me anything..."
	ta.CharLimit = 2000
	ta.SetHeight(inputHeight)
	ta.ShowLineNumbers = false
	// Plain enter submits, so newlines move to the modifier variant.
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.Focus()

	s := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Widget{
		viewport: viewport.New(0, 0),
		textarea: ta,
		spinner:  s,

		input:   input,
		output:  output,
		msgs:    []Msg{},
		version: version,
	}
}

func (m Widget) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textarea.Blink,
		m.waitForReply(),
	)
}

func (m Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	cmds := []tea.Cmd{}

	switch msg := msg.(type) {

	case Msg:
		m.msgs = append(m.msgs, msg)
		m.loading = false
		m.refresh()
		cmds = append(cmds, m.textarea.Focus())
		cmds = append(cmds, m.waitForReply())

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			(&m).submit()
		case "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - inputHeight - 1
		m.textarea.SetWidth(msg.Width)
		m.ready = true
		m.refresh()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// The input is disabled while a request is in flight
	if !m.loading {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit relays the trimmed input to the worker. Empty input and submissions
// while a request is in flight are no-ops.
func (m *Widget) submit() {
	text := strings.TrimSpace(m.textarea.Value())
	if text == "" || m.loading {
		return
	}

	m.msgs = append(m.msgs, Msg{Text: text, Kind: MsgUser})
	m.textarea.Reset()
	m.textarea.Blur()
	m.loading = true
	m.input <- text
	m.refresh()
}

// refresh re-renders the transcript and keeps the newest message visible.
func (m *Widget) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Widget) renderTranscript() string {
	var b strings.Builder
	for _, msg := range m.msgs {
		switch msg.Kind {
		case MsgUser:
			b.WriteString(AccentTextStyle.Render("You: ") + TextStyle.Render(msg.Text))
		case MsgBot:
			b.WriteString(AltTextStyle.Render("Bot: ") + TextStyle.Render(msg.Text))
		}
		b.WriteString("\n\n")
	}

	if m.viewport.Width > 0 {
		return lipgloss.NewStyle().Width(m.viewport.Width).Render(b.String())
	}
	return b.String()
}

func (m Widget) waitForReply() tea.Cmd {
	return func() tea.Msg {
		return <-m.output
	}
}

func (m Widget) View() string {
	if !m.ready {
		return ""
	}

	var footer string
	if m.loading {
		footer = m.spinner.View() + SubtextStyle.Render(" waiting for reply")
	} else {
		footer = SubtextStyle.Render(fmt.Sprintf("cvchat v%s | enter to send, alt+enter for newline, esc to quit", m.version))
	}

	return lipgloss.JoinVertical(lipgloss.Top,
		m.viewport.View(),
		m.textarea.View(),
		FooterStyle.Width(m.width).Render(footer),
	)
}
