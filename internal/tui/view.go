package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/zenhabits/zenhabits/internal/constants"
	"github.com/zenhabits/zenhabits/internal/tracker"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateAddHabit, constants.StateEditNote, constants.StateConfirmDelete:
		return docStyle.Render(m.form.View())
	}

	stats := tracker.ComputeStats(m.habitList.Habits())
	header := headerStyle.Render("zenhabits") +
		subtleStyle.Render(fmt.Sprintf("%s · %s", m.sess.Username, m.today())) +
		subtleStyle.Render(fmt.Sprintf("%d/%d done · combined streak %d", stats.Completed, stats.Habits, stats.TotalStreak))

	body := m.habitList.View()

	footer := m.help.View(m.keys)
	if m.errMsg != "" {
		footer = dangerStyle.Render("Error: "+m.errMsg) + "\n" + footer
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}
