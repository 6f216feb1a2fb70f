package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"clinictrack/internal/db"
	"clinictrack/internal/models"
	"clinictrack/internal/qr"
	"clinictrack/internal/report"
	"clinictrack/internal/tui"
)

var visitCmd = &cobra.Command{
	Use:   "visit",
	Short: "Record and review clinic visits",
}

var visitLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a student entering the clinic",
	Long: `Record a new clinic visit. Opens an interactive form by default;
pass --name and --id to log directly.

Examples:
  clinictrack visit log
  clinictrack visit log --name "Rahul Kumar" --id KLU001 --symptoms "Fever"
  clinictrack visit log --name "Rahul Kumar" --id KLU001 --qr visit.png`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session := requireSession(models.RoleClinic)
		if session == nil {
			return
		}

		name, _ := cmd.Flags().GetString("name")
		studentID, _ := cmd.Flags().GetString("id")
		symptoms, _ := cmd.Flags().GetString("symptoms")
		qrPath, _ := cmd.Flags().GetString("qr")
		noUI, _ := cmd.Flags().GetBool("no-ui")

		if name == "" || studentID == "" {
			if noUI {
				fmt.Println("Error: --name and --id are required with --no-ui")
				return
			}
			prefilled := map[string]string{
				"name":     name,
				"id":       studentID,
				"symptoms": symptoms,
			}
			if err := tui.RunVisitTUI(prefilled, session.Email); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		visit, err := db.LogVisit(db.LogVisitRequest{
			Name:      name,
			StudentID: studentID,
			Symptoms:  symptoms,
			LoggedBy:  session.Email,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Visit logged for %s (%s)\n", visit.Name, visit.StudentID)
		fmt.Printf("Entry time: %s\n", visit.EntryTime.Format("15:04:05"))

		if qrPath != "" {
			writeVisitQR(*visit, qrPath)
		}
	}),
}

// writeVisitQR saves a QR image for the visit. Failures only warn; the
// record is already persisted.
func writeVisitQR(visit models.Visit, path string) {
	png, err := qr.Encode(visit)
	if err != nil {
		fmt.Printf("⚠️  QR code generation failed: %v\n", err)
		return
	}
	if err := os.WriteFile(path, png, 0644); err != nil {
		fmt.Printf("⚠️  Could not write QR code: %v\n", err)
		return
	}
	fmt.Printf("QR code saved to %s\n", path)
}

var visitExitCmd = &cobra.Command{
	Use:   "exit [student-id]",
	Short: "Mark a student's exit from the clinic",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session := requireSession(models.RoleClinic)
		if session == nil {
			return
		}

		visit, err := db.MarkExit(args[0])
		if err != nil {
			if errors.Is(err, db.ErrNoOpenVisit) {
				fmt.Println("No active visit found for this student ID.")
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		fmt.Printf("🚪 Exit marked for %s (%s)\n", visit.Name, visit.StudentID)
		fmt.Printf("Duration: %s\n", report.Duration(*visit))
	}),
}

var visitRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent clinic visits",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if requireSession("") == nil {
			return
		}

		limit, _ := cmd.Flags().GetInt("limit")
		visits, err := db.RecentVisits(limit)
		if err != nil {
			fmt.Printf("Error fetching visits: %v\n", err)
			return
		}

		if len(visits) == 0 {
			fmt.Println("No recent visits")
			return
		}

		renderVisitList(visits, false)
	}),
}

// renderVisitList prints visits as styled entries. withProvenance adds the
// logged-by line shown on the faculty view.
func renderVisitList(visits []models.Visit, withProvenance bool) {
	nameStyle := lipgloss.NewStyle().Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorWarning)).Bold(true)
	completedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSuccess)).Bold(true)

	for _, v := range visits {
		status := string(report.Status(v))
		styled := completedStyle.Render(status)
		if v.Open() {
			styled = activeStyle.Render(status)
		}

		symptoms := v.Symptoms
		if symptoms == "" {
			symptoms = "Not specified"
		}

		fmt.Printf("%s  ID: %s\n", nameStyle.Render(v.Name), v.StudentID)
		fmt.Printf("  Entry: %s   Status: %s   Duration: %s\n",
			v.EntryTime.Format("02 Jan 2006 15:04"), styled, report.Duration(v))
		fmt.Printf("  Symptoms: %s\n", symptoms)
		if withProvenance {
			loggedBy := v.LoggedBy
			if loggedBy == "" {
				loggedBy = "Unknown"
			}
			fmt.Printf("  Logged by: %s\n", loggedBy)
		}
		fmt.Println()
	}
}

func init() {
	visitLogCmd.Flags().StringP("name", "n", "", "Student name")
	visitLogCmd.Flags().StringP("id", "i", "", "Student ID")
	visitLogCmd.Flags().StringP("symptoms", "s", "", "Symptoms")
	visitLogCmd.Flags().String("qr", "", "Write a QR code image for the visit to this path")
	visitLogCmd.Flags().Bool("no-ui", false, "Log without the interactive form")

	visitRecentCmd.Flags().IntP("limit", "l", 5, "Number of visits to show")

	visitCmd.AddCommand(visitLogCmd)
	visitCmd.AddCommand(visitExitCmd)
	visitCmd.AddCommand(visitRecentCmd)
}
