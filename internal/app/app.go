// Package app is the Bubble Tea shell around a tutoring session: a
// scrolling transcript, a single input line, and a thinking indicator
// while content generation is in flight.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentor/internal/tutor"
	"github.com/abhisek/mentor/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

type role int

const (
	roleTutor role = iota
	roleLearner
)

type entry struct {
	role role
	text string
}

// Model is the root Bubble Tea model for one session.
type Model struct {
	session *tutor.Session
	input   textinput.Model

	transcript []entry
	waiting    bool
	frame      int
	width      int
	height     int

	final string // summary to print after the program exits
	ended bool
}

func newModel(session *tutor.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Your answer, or a command ('help' lists them)"
	ti.Focus()
	return Model{session: session, input: ti}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Focus(),
		func() tea.Msg {
			return sessionOpenedMsg{Resp: m.session.Start(context.Background())}
		},
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionOpenedMsg:
		m.transcript = append(m.transcript, entry{roleTutor, msg.Resp.Text})
		return m, nil

	case tutorReplyMsg:
		m.waiting = false
		m.transcript = append(m.transcript, entry{roleTutor, msg.Resp.Text})
		if msg.Resp.Ended {
			m.final = msg.Resp.Text
			m.ended = true
			return m, tea.Quit
		}
		return m, nil

	case spinnerTickMsg:
		if !m.waiting {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, spinnerTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			// Hard exit without saving; 'quit' is the graceful path.
			return m, tea.Quit
		case "enter":
			return m.submit(m.input.Value())
		}
	}

	if !m.waiting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit sends one line to the orchestrator. Only one call is ever in
// flight: input is ignored until the reply lands.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	text = strings.TrimSpace(text)
	if m.waiting || m.ended || text == "" {
		return m, nil
	}

	m.transcript = append(m.transcript, entry{roleLearner, text})
	m.input.Reset()
	m.waiting = true

	session := m.session
	return m, tea.Batch(
		spinnerTick(),
		func() tea.Msg {
			return tutorReplyMsg{Resp: session.Handle(context.Background(), text)}
		},
	)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	header := theme.Header.Width(m.width).Render(theme.Title.Render("mentor") + theme.Subtitle.Render("  personal tutor"))
	footer := theme.Footer.Width(m.width).Render(theme.Hint.Render("Enter to send · 'help' for commands · 'quit' to save and exit"))

	var inputLine string
	if m.waiting {
		inputLine = theme.Hint.Render(spinnerFrames[m.frame] + " thinking...")
	} else {
		inputLine = m.input.View()
	}

	chrome := lipgloss.Height(header) + lipgloss.Height(footer) + lipgloss.Height(inputLine) + 1
	body := m.renderTranscript(m.height - chrome)

	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, body, inputLine, footer))
	return v
}

// renderTranscript wraps and tails the conversation to fit the window.
func (m Model) renderTranscript(height int) string {
	if height < 1 {
		height = 1
	}
	wrap := lipgloss.NewStyle().Width(m.width - 2)

	var lines []string
	for _, e := range m.transcript {
		styled := theme.Tutor.Render(e.text)
		if e.role == roleLearner {
			styled = theme.Learner.Render("> " + e.text)
		}
		lines = append(lines, strings.Split(wrap.Render(styled), "\n")...)
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Run starts the Bubble Tea program and prints the closing summary once
// the alternate screen is torn down.
func Run(session *tutor.Session) error {
	p := tea.NewProgram(newModel(session))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if m, ok := final.(Model); ok && m.final != "" {
		fmt.Println(m.final)
	}
	return nil
}
