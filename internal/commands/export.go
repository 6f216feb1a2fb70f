package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"clinictrack/internal/db"
	"clinictrack/internal/models"
	"clinictrack/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export clinic records as CSV",
	Long: `Export all clinic visit records to a CSV file. Faculty only.

Examples:
  clinictrack export
  clinictrack export -o records.csv`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if requireSession(models.RoleFaculty) == nil {
			return
		}

		visits, err := db.AllVisits()
		if err != nil {
			fmt.Printf("Error fetching visits: %v\n", err)
			return
		}
		if len(visits) == 0 {
			fmt.Println("No data available to export!")
			return
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = fmt.Sprintf("clinic_logs_%s.csv", time.Now().Format("2006-01-02"))
		}

		csv := report.ToCSV(visits)
		if err := os.WriteFile(output, []byte(csv), 0644); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}

		fmt.Printf("📥 Exported %d records to %s\n", len(visits), output)
	}),
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default clinic_logs_<date>.csv)")
}
