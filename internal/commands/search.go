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

var searchCmd = &cobra.Command{
	Use:   "search [student-id]",
	Short: "Look up visit records for a student",
	Long: `Look up all visit records for a student ID. Flags frequent
visitors (more than 3 visits in the result set). Faculty sessions also see
who logged each visit.

Examples:
  clinictrack search KLU001
  clinictrack search KLU001 --daily`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session := requireSession("")
		if session == nil {
			return
		}

		studentID := strings.TrimSpace(args[0])
		visits, err := db.VisitsByStudentID(studentID)
		if err != nil {
			fmt.Printf("Error fetching visits: %v\n", err)
			return
		}

		if len(visits) == 0 {
			fmt.Printf("No visit records found for student ID: %s\n", studentID)
			return
		}

		counts := report.CountVisitsByID(visits)
		if report.IsFrequentVisitor(counts[studentID]) {
			badge := lipgloss.NewStyle().
				Foreground(lipgloss.Color(tui.ColorError)).
				Bold(true).
				Render("⚠ Frequent Visitor")
			fmt.Printf("%s (%d visits)\n\n", badge, counts[studentID])
		}

		renderVisitList(visits, session.Role == models.RoleFaculty)

		if daily, _ := cmd.Flags().GetBool("daily"); daily {
			renderDailyCounts()
		}
	}),
}

// renderDailyCounts prints a bar per day over the whole log, the terminal
// version of the faculty dashboard's visit-trend chart. The last 7 days
// with visits are shown.
func renderDailyCounts() {
	visits, err := db.AllVisits()
	if err != nil {
		fmt.Printf("Error fetching visits: %v\n", err)
		return
	}

	counts := report.DailyCounts(visits)
	if len(counts) > 7 {
		counts = counts[len(counts)-7:]
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorAccentBright))

	fmt.Println("Daily clinic visits:")
	for _, dc := range counts {
		fmt.Printf("  %s  %s %d\n", dc.Date, barStyle.Render(strings.Repeat("█", dc.Count)), dc.Count)
	}
}

func init() {
	searchCmd.Flags().Bool("daily", false, "Also show daily visit counts across all records")
}
