package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clinictrack/internal/db"
	"clinictrack/internal/models"
)

const (
	visitFieldName = iota
	visitFieldID
	visitFieldSymptoms
	visitFieldCount
)

// VisitModel is the TUI model for recording a new clinic visit
type VisitModel struct {
	inputs   []textinput.Model
	focus    int
	loggedBy string

	// State
	err           error
	validationErr string
	completed     bool
	cancelled     bool
	visit         *models.Visit
}

// NewVisitModel creates a visit-entry form. prefilled may carry "name",
// "id", and "symptoms" values.
func NewVisitModel(prefilled map[string]string, loggedBy string) VisitModel {
	inputs := make([]textinput.Model, visitFieldCount)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[visitFieldName].Placeholder = "Student name (required)"
	inputs[visitFieldName].CharLimit = 100
	inputs[visitFieldName].Focus()

	inputs[visitFieldID].Placeholder = "Student ID (required)"
	inputs[visitFieldID].CharLimit = 30

	inputs[visitFieldSymptoms].Placeholder = "Symptoms (Enter to skip)"
	inputs[visitFieldSymptoms].CharLimit = 300

	inputs[visitFieldName].SetValue(prefilled["name"])
	inputs[visitFieldID].SetValue(prefilled["id"])
	inputs[visitFieldSymptoms].SetValue(prefilled["symptoms"])

	return VisitModel{
		inputs:   inputs,
		loggedBy: loggedBy,
	}
}

func (m VisitModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m VisitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "down":
			m.focus = (m.focus + 1) % visitFieldCount
			return m.updateFocus(), nil

		case "shift+tab", "up":
			m.focus = (m.focus + visitFieldCount - 1) % visitFieldCount
			return m.updateFocus(), nil

		case "enter":
			if m.focus < visitFieldCount-1 {
				m.focus++
				return m.updateFocus(), nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m VisitModel) updateFocus() VisitModel {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m VisitModel) submit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[visitFieldName].Value())
	studentID := strings.TrimSpace(m.inputs[visitFieldID].Value())

	if name == "" || studentID == "" {
		m.validationErr = "Please enter both student name and ID!"
		return m, nil
	}

	visit, err := db.LogVisit(db.LogVisitRequest{
		Name:      name,
		StudentID: studentID,
		Symptoms:  m.inputs[visitFieldSymptoms].Value(),
		LoggedBy:  m.loggedBy,
	})
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.visit = visit
	m.completed = true
	return m, tea.Quit
}

func (m VisitModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	focusedLabelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder

	b.WriteString(titleStyle.Render("Log Clinic Visit"))
	b.WriteString("\n\n")

	labels := []string{"Student Name", "Student ID", "Symptoms"}
	for i, input := range m.inputs {
		label := labelStyle.Render(labels[i])
		if i == m.focus {
			label = focusedLabelStyle.Render(labels[i])
		}
		b.WriteString(fmt.Sprintf("%s\n%s\n\n", label, input.View()))
	}

	if m.validationErr != "" {
		b.WriteString(errorStyle.Render(m.validationErr))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("tab: next field • enter: log visit • esc: cancel"))
	b.WriteString("\n")

	return b.String()
}
