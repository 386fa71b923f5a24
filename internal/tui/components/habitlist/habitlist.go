package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zenhabits/zenhabits/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	Habit models.Habit
}

type RemoveHabitMsg struct {
	Habit models.Habit
}

type EditNoteMsg struct{}

type Item struct {
	Habit models.Habit
}

func (i Item) Title() string {
	marker := "○"
	if i.Habit.Completed {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s", marker, i.Habit.Title)
}

func (i Item) Description() string {
	if i.Habit.Streak == 1 {
		return "streak: 1 day"
	}
	return fmt.Sprintf("streak: %d days", i.Habit.Streak)
}

func (i Item) FilterValue() string { return i.Habit.Title }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Remove key.Binding
	Note   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "t"),
			key.WithHelp("space", "toggle"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Note: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "today's note"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, width, height int) Model {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Note, keys.Remove}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{
		list: l,
		keys: keys,
	}
}

// SetHabits replaces the list contents with a fresh fetch from the
// store, keeping the cursor in range.
func (m *Model) SetHabits(habits []models.Habit) {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}
	selected := m.list.Index()
	m.list.SetItems(items)
	if selected >= len(items) && len(items) > 0 {
		m.list.Select(len(items) - 1)
	}
}

// Habits returns the current list contents.
func (m Model) Habits() []models.Habit {
	items := m.list.Items()
	habits := make([]models.Habit, 0, len(items))
	for _, it := range items {
		if item, ok := it.(Item); ok {
			habits = append(habits, item.Habit)
		}
	}
	return habits
}

// Selected returns the habit under the cursor, or false when the list
// is empty.
func (m Model) Selected() (models.Habit, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Habit{}, false
	}
	return item.Habit, true
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if habit, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{Habit: habit} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Remove):
			if habit, ok := m.Selected(); ok {
				return m, func() tea.Msg { return RemoveHabitMsg{Habit: habit} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Note):
			return m, func() tea.Msg { return EditNoteMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
