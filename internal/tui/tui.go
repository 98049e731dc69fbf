package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"timekeep/internal/models"
	"timekeep/internal/tracker"
)

// RunTimerTUI runs the live timer for the active session. Stopping from
// the TUI finishes the session through the tracker; quitting leaves it
// running.
func RunTimerTUI(service *tracker.Service, active *models.ActiveSession) error {
	p := tea.NewProgram(NewTimerModel(active), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := finalModel.(TimerModel)
	if !ok {
		return nil
	}

	if m.stopping {
		session, err := service.Stop()
		if err != nil {
			return err
		}
		duration := time.Duration(session.DurationSeconds) * time.Second
		fmt.Printf("⏹️  Stopped tracking time: %s (%s)\n", session.CategoryName(), duration)
		return nil
	}
	if m.exiting {
		fmt.Println("Timer still running. Use 'timekeep stop' to finish the session.")
	}
	return nil
}
