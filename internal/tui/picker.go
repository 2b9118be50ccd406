// Package tui provides the interactive task picker used by import --pick.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmuir/todomark/internal/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Toggle:  key.NewBinding(key.WithKeys(" ")),
	All:     key.NewBinding(key.WithKeys("a")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// Picker is the bubbletea model for selecting which fetched tasks get
// imported. Every task starts selected; confirming with none toggled off
// imports everything, matching the non-interactive path.
type Picker struct {
	tasks    []models.Task
	projects models.ProjectLookup
	cursor   int
	selected map[int]bool
	canceled bool
	done     bool
}

// NewPicker creates a picker over one import's fetched tasks
func NewPicker(tasks []models.Task, projects models.ProjectLookup) *Picker {
	selected := make(map[int]bool, len(tasks))
	for i := range tasks {
		selected[i] = true
	}
	return &Picker{
		tasks:    tasks,
		projects: projects,
		selected: selected,
	}
}

// Run blocks until the user confirms or cancels, returning the chosen
// tasks in their original order. canceled reports whether the user backed
// out, in which case nothing should be inserted.
func Run(tasks []models.Task, projects models.ProjectLookup) (chosen []models.Task, canceled bool, err error) {
	p := tea.NewProgram(NewPicker(tasks, projects))
	out, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	final := out.(*Picker)
	if final.canceled {
		return nil, true, nil
	}
	return final.Chosen(), false, nil
}

// Chosen returns the selected tasks in upstream order
func (m *Picker) Chosen() []models.Task {
	chosen := make([]models.Task, 0, len(m.tasks))
	for i, task := range m.tasks {
		if m.selected[i] {
			chosen = append(chosen, task)
		}
	}
	return chosen
}

func (m *Picker) Init() tea.Cmd {
	return nil
}

func (m *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.canceled = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Confirm):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Toggle):
		m.selected[m.cursor] = !m.selected[m.cursor]
	case key.Matches(keyMsg, keys.All):
		all := true
		for i := range m.tasks {
			if !m.selected[i] {
				all = false
				break
			}
		}
		for i := range m.tasks {
			m.selected[i] = !all
		}
	}

	return m, nil
}

func (m *Picker) View() string {
	if m.done || m.canceled {
		return ""
	}

	s := titleStyle.Render("Select tasks to import") + "\n"

	for i, task := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := "[ ]"
		line := task.Content
		if m.selected[i] {
			mark = selectedStyle.Render("[x]")
		}
		if project, ok := m.projects[task.ProjectID]; ok {
			line += dimStyle.Render("  #" + project.Name)
		}

		s += cursor + mark + " " + line + "\n"
	}

	s += helpStyle.Render("space toggle · a all · enter confirm · q cancel")
	return s
}
