package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timekeep/internal/models"
)

// TimerModel is the TUI model for the live session timer
type TimerModel struct {
	width  int
	height int
	active *models.ActiveSession

	// Timer state
	elapsedTime time.Duration
	spin        spinner.Model

	// Exit state
	stopping bool // True when user pressed S and we're stopping
	exiting  bool // True when user pressed ESC/Q and we're leaving the timer running
}

// timerTickMsg is sent every second to update the timer
type timerTickMsg struct{}

// NewTimerModel creates a new timer TUI model
func NewTimerModel(active *models.ActiveSession) TimerModel {
	spin := spinner.New()
	spin.Spinner = spinner.Points
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return TimerModel{
		active:      active,
		elapsedTime: time.Since(active.StartedAt),
		spin:        spin,
	}
}

// Init starts the timer and spinner tickers
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return timerTickMsg{}
		}),
		m.spin.Tick,
	)
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsedTime = time.Since(m.active.StartedAt)
		if !m.stopping && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return timerTickMsg{}
			})
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			// Stop the timer and save the session
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Leave the timer running in the background
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(fmt.Sprintf("%s  TRACKING TIME  %s", m.spin.View(), m.spin.View())))

	categoryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, categoryStyle.Render(m.active.CategoryName()))

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Width(m.width)
	for _, line := range strings.Split(renderBigClock(m.elapsedTime), "\n") {
		components = append(components, clockStyle.Render(line))
	}

	startedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, "", startedStyle.Render(fmt.Sprintf("Started at %s", m.active.StartedAt.Format("15:04:05"))))

	content := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderHelpBar())
}

// renderHelpBar renders the bottom help bar
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Align(lipgloss.Center).
		Width(m.width)
	return helpStyle.Render("s stop and save  •  q keep running in background")
}

// bigDigits is a 5-row figure font for the clock display
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", " ███ "},
	'2': {" ███ ", "    █", " ███ ", "█    ", " ███ "},
	'3': {" ███ ", "    █", " ███ ", "    █", " ███ "},
	'4': {"█   █", "█   █", " ████", "    █", "    █"},
	'5': {" ███ ", "█    ", " ███ ", "    █", " ███ "},
	'6': {" ███ ", "█    ", " ███ ", "█   █", " ███ "},
	'7': {" ███ ", "    █", "   █ ", "  █  ", "  █  "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders the elapsed time as ASCII art
func renderBigClock(elapsed time.Duration) string {
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	seconds := int(elapsed.Seconds()) % 60
	display := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)

	var rows [5]string
	for _, ch := range display {
		digit, ok := bigDigits[ch]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			rows[i] += digit[i] + " "
		}
	}
	return strings.Join(rows[:], "\n")
}
