package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zenhabits/zenhabits/internal/constants"
	"github.com/zenhabits/zenhabits/internal/storage"
	"github.com/zenhabits/zenhabits/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.habitList.SetSize(msg.Width-h, msg.Height-v-3)
		return m, nil

	case tea.KeyMsg:
		if m.state == constants.StateHabits {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	switch m.state {
	case constants.StateAddHabit:
		return m.updateAddHabit(msg)
	case constants.StateEditNote:
		return m.updateEditNote(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateHabits(msg)
	}
}

func (m Model) updateHabits(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = constants.StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		if _, err := m.tracker.ToggleHabit(msg.Habit); err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		m.refreshHabits()
		return m, nil

	case habitlist.RemoveHabitMsg:
		m.habitToDelete = msg.Habit.ID
		m.confirmForm = &ConfirmFormModel{}
		m.form = newConfirmForm(msg.Habit.Title, m.confirmForm)
		m.state = constants.StateConfirmDelete
		return m, m.form.Init()

	case habitlist.EditNoteMsg:
		m.noteForm = &NoteFormModel{}
		if note, err := m.tracker.GetNote(m.sess.UserID, m.today()); err == nil {
			m.noteForm.Text = note.Text
		}
		m.form = newNoteForm(m.noteForm)
		m.state = constants.StateEditNote
		return m, m.form.Init()
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if _, err := m.tracker.AddHabit(m.sess.UserID, m.habitForm.Title); err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		m.refreshHabits()
		m.state = constants.StateHabits
	case huh.StateAborted:
		m.state = constants.StateHabits
	}
	return m, cmd
}

func (m Model) updateEditNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		// An emptied note form means delete.
		var err error
		if m.noteForm.Text == "" {
			err = m.tracker.DeleteNote(m.sess.UserID, m.today())
		} else {
			err = m.tracker.SaveNote(m.sess.UserID, m.today(), m.noteForm.Text)
		}
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		m.state = constants.StateHabits
	case huh.StateAborted:
		m.state = constants.StateHabits
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.confirmForm.Confirmed {
			if err := m.tracker.RemoveHabit(m.habitToDelete); err != nil {
				m.errMsg = err.Error()
			} else {
				m.errMsg = ""
			}
			m.refreshHabits()
		}
		m.habitToDelete = 0
		m.state = constants.StateHabits
	case huh.StateAborted:
		m.habitToDelete = 0
		m.state = constants.StateHabits
	}
	return m, cmd
}

func newConfirmForm(title string, fm *ConfirmFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete habit \"" + title + "\"?").
				Affirmative("Delete").
				Negative("Keep").
				Value(&fm.Confirmed),
		),
	)
}
