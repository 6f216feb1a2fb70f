package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunLoginTUI starts the interactive sign-in form for the given role
func RunLoginTUI(role string) error {
	model := NewLoginModel(role)

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(LoginModel); ok {
		if m.cancelled {
			fmt.Println("❌ Sign-in cancelled.")
		} else if m.completed && m.session != nil {
			fmt.Printf("✅ Welcome %s! Logged in as %s\n", m.session.Name, m.session.Role)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunVisitTUI starts the interactive visit-entry form. prefilled may carry
// "name", "id", and "symptoms" values, typically from a QR scan.
func RunVisitTUI(prefilled map[string]string, loggedBy string) error {
	model := NewVisitModel(prefilled, loggedBy)

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(VisitModel); ok {
		if m.cancelled {
			fmt.Println("❌ Visit entry cancelled.")
		} else if m.completed && m.visit != nil {
			fmt.Printf("✅ Visit logged for %s (%s) at %s\n",
				m.visit.Name, m.visit.StudentID, m.visit.EntryTime.Format("15:04:05"))
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
