package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zenhabits/zenhabits/internal/constants"
	"github.com/zenhabits/zenhabits/internal/session"
	"github.com/zenhabits/zenhabits/internal/tracker"
	"github.com/zenhabits/zenhabits/internal/tui/components/habitlist"
)

type HabitFormModel struct {
	Title string
}

type NoteFormModel struct {
	Text string
}

type ConfirmFormModel struct {
	Confirmed bool
}

type Model struct {
	tracker       *tracker.Service
	sess          session.Session
	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	noteForm      *NoteFormModel
	confirmForm   *ConfirmFormModel
	habitToDelete int64
	errMsg        string
	width         int
	height        int
	quitting      bool
}

func NewModel(svc *tracker.Service, sess session.Session) Model {
	m := Model{
		tracker: svc,
		sess:    sess,
		state:   constants.StateHabits,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}

	habits, err := svc.ListHabits(sess.UserID)
	if err != nil {
		m.errMsg = err.Error()
	}
	m.habitList = habitlist.New(habits, 80, 20)

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshHabits re-fetches the authoritative habit list after a
// mutation instead of patching the displayed copy.
func (m *Model) refreshHabits() {
	habits, err := m.tracker.ListHabits(m.sess.UserID)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.habitList.SetHabits(habits)
}

func (m *Model) today() string {
	return time.Now().Format(constants.DateFormat)
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit title").
				Value(&fm.Title),
		),
	)
}

func newNoteForm(fm *NoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Note for today").
				Description("Leave empty to delete the note").
				Value(&fm.Text),
		),
	)
}
