package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fastreader/internal/rsvp"
)

var (
	frameStyle  = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type tickMsg struct{}

// Model plays the frames of one document sequentially.
type Model struct {
	frames        []rsvp.Frame
	index         int
	wpm           int
	chunkSize     int
	paused        bool
	done          bool
	width, height int
}

// InitialModel chunks the content and starts at the first frame.
func InitialModel(content string, wpm, chunkSize int) Model {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return Model{
		frames:    rsvp.Chunk(rsvp.Words(content), chunkSize),
		wpm:       wpm,
		chunkSize: chunkSize,
	}
}

func (m Model) Init() tea.Cmd {
	return m.schedule()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if m.done {
				return m, nil
			}
			m.paused = !m.paused
			if !m.paused {
				return m, m.schedule()
			}
			return m, nil
		case "r":
			m.index = 0
			m.done = false
			m.paused = false
			return m, m.schedule()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		if m.paused || m.done {
			return m, nil
		}
		if m.index+1 >= len(m.frames) {
			m.done = true
			return m, nil
		}
		m.index++
		return m, m.schedule()
	}
	return m, nil
}

func (m Model) View() string {
	current := ""
	if len(m.frames) > 0 && m.index < len(m.frames) {
		current = strings.Join(m.frames[m.index], " ")
	}

	status := fmt.Sprintf("frame %d/%d · %d wpm · %d word(s)/frame", m.index+1, len(m.frames), m.wpm, m.chunkSize)
	switch {
	case m.done:
		status += " · done"
	case m.paused:
		status += " · paused"
	}
	help := "space pause/resume · r restart · q quit"

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		frameStyle.Render(current),
		"",
		statusStyle.Render(status),
		statusStyle.Render(help),
	)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

// schedule emits the next tick after the current frame's display time.
func (m Model) schedule() tea.Cmd {
	d := rsvp.FrameDuration(m.wpm, m.chunkSize)
	if d <= 0 || len(m.frames) == 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
