package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clinictrack/internal/auth"
	"clinictrack/internal/config"
	"clinictrack/internal/db"
	"clinictrack/internal/models"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// roleTitles maps a role to the form heading
var roleTitles = map[string]string{
	models.RoleFaculty: "Sign In as Faculty",
	models.RoleClinic:  "Sign In as Clinic Staff",
	models.RoleStudent: "Sign In as Student",
}

// LoginModel is the TUI model for the sign-in form
type LoginModel struct {
	role   string
	inputs []textinput.Model
	focus  int

	// State
	err           error
	validationErr string
	completed     bool
	cancelled     bool
	session       *models.Session
}

// NewLoginModel creates a sign-in form for the given role
func NewLoginModel(role string) LoginModel {
	inputs := make([]textinput.Model, loginFieldCount)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[loginFieldEmail].Placeholder = "email@klh.edu.in"
	inputs[loginFieldEmail].CharLimit = 100
	inputs[loginFieldEmail].Focus()

	inputs[loginFieldPassword].Placeholder = "password"
	inputs[loginFieldPassword].CharLimit = 100
	inputs[loginFieldPassword].EchoMode = textinput.EchoPassword
	inputs[loginFieldPassword].EchoCharacter = '•'

	return LoginModel{
		role:   role,
		inputs: inputs,
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "down":
			m.focus = (m.focus + 1) % loginFieldCount
			return m.updateFocus(), nil

		case "shift+tab", "up":
			m.focus = (m.focus + loginFieldCount - 1) % loginFieldCount
			return m.updateFocus(), nil

		case "enter":
			if m.focus < loginFieldCount-1 {
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

// updateFocus moves the textinput focus to the selected field
func (m LoginModel) updateFocus() LoginModel {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

// submit attempts authentication; validation failures keep the form open
func (m LoginModel) submit() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[loginFieldEmail].Value())
	password := m.inputs[loginFieldPassword].Value()

	if email == "" || password == "" {
		m.validationErr = "Please enter both email and password"
		return m, nil
	}

	cfg := config.Load()
	session, err := auth.Authenticate(auth.NewStaticProvider(), email, password, m.role, cfg.Domain)
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	if err := db.SaveSession(session); err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.session = session
	m.completed = true
	return m, tea.Quit
}

func (m LoginModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	focusedLabelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder

	title := roleTitles[m.role]
	if title == "" {
		title = "Sign In"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Email", "Password"}
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

	b.WriteString(helpStyle.Render("tab: next field • enter: sign in • esc: cancel"))
	b.WriteString("\n")

	return b.String()
}
