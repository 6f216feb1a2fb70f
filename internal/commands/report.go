package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"clinictrack/internal/db"
	"clinictrack/internal/models"
	"clinictrack/internal/report"
	"clinictrack/internal/tui"
)

var reportCmd = &cobra.Command{
	Use:   "report [student-id]",
	Short: "Print a visit report table",
	Long: `Print a formatted table of visit records, for the whole log or a
single student.

Examples:
  clinictrack report
  clinictrack report KLU001`,
	Args: cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session := requireSession("")
		if session == nil {
			return
		}

		var (
			visits []models.Visit
			title  string
			err    error
		)

		if len(args) == 1 {
			studentID := strings.TrimSpace(args[0])
			visits, err = db.VisitsByStudentID(studentID)
			title = fmt.Sprintf("Student Records - ID: %s", studentID)
			if session.Role == models.RoleFaculty {
				title = fmt.Sprintf("Student Verification Report - ID: %s", studentID)
			}
		} else {
			visits, err = db.AllVisits()
			title = "Complete Clinic Records"
		}
		if err != nil {
			fmt.Printf("Error fetching visits: %v\n", err)
			return
		}
		if len(visits) == 0 {
			fmt.Println("No records found.")
			return
		}

		renderReport(report.NewReport(visits, title))
	}),
}

// column widths for a wide terminal table
var reportWidths = []int{20, 12, 20, 20, 14, 20, 24}

func renderReport(r report.Report) {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tui.ColorAccentMain)).
		Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorAccentBright)).Bold(true)

	fmt.Println(titleStyle.Render(r.Title))
	fmt.Printf("Generated on: %s\n\n", r.GeneratedAt.Format("02 Jan 2006 15:04"))

	var header strings.Builder
	for i, col := range r.Columns {
		header.WriteString(pad(col, reportWidths[i]))
	}
	fmt.Println(headerStyle.Render(header.String()))
	fmt.Println(strings.Repeat("-", sum(reportWidths)))

	for _, row := range r.Rows {
		var line strings.Builder
		for i, cell := range row {
			line.WriteString(pad(cell, reportWidths[i]))
		}
		fmt.Println(line.String())
	}
}

// pad truncates or right-pads a cell to the column width
func pad(s string, width int) string {
	if len(s) > width-2 {
		s = s[:width-5] + "..."
	}
	return fmt.Sprintf("%-*s", width, s)
}

func sum(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total
}
