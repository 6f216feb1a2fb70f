package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clinictrack/internal/db"
	"clinictrack/internal/models"
	"clinictrack/internal/qr"
	"clinictrack/internal/tui"
)

var scanCmd = &cobra.Command{
	Use:   "scan [payload]",
	Short: "Handle a decoded student QR payload",
	Long: `Extract a student ID from a decoded QR payload and open the visit
form pre-filled with it. The payload may be JSON with a studentId/id/
rollNumber field, free text containing an ID, or a bare ID.

Examples:
  clinictrack scan KLU001
  clinictrack scan '{"studentId":"KLU003"}'
  clinictrack scan "Student ID: KLU002" --log --symptoms "Headache"`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session := requireSession(models.RoleClinic)
		if session == nil {
			return
		}

		studentID := qr.ParsePayload(args[0])
		fmt.Printf("✅ Scanned: %s\n", studentID)

		name := ""
		if info, ok := qr.LookupStudent(studentID); ok {
			name = info.Name
			fmt.Printf("Student found: %s (%s), %s\n", info.Name, studentID, info.Year)
		} else {
			fmt.Println("Student ID scanned. Please enter student name.")
		}

		symptoms, _ := cmd.Flags().GetString("symptoms")
		logNow, _ := cmd.Flags().GetBool("log")

		if logNow && name != "" {
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
			fmt.Printf("✅ Visit logged for %s (%s) at %s\n",
				visit.Name, visit.StudentID, visit.EntryTime.Format("15:04:05"))
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
	}),
}

func init() {
	scanCmd.Flags().StringP("symptoms", "s", "", "Symptoms to record with the visit")
	scanCmd.Flags().Bool("log", false, "Log the visit immediately when the student is in the directory")
}
