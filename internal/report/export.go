package report

import (
	"strings"
	"time"

	"clinictrack/internal/models"
)

// Columns is the shared column set of the CSV export and printable report
var Columns = []string{"Name", "Student ID", "Entry Time", "Exit Time", "Duration", "Symptoms", "Logged By"}

const (
	notSpecified = "Not specified"
	unknown      = "Unknown"
)

// ToCSV renders the visits as CSV in the given order, header first.
// Every field is wrapped in double quotes without escaping embedded quotes
// or commas; files produced by the original exporter have this exact shape
// and downstream consumers rely on it staying unchanged.
func ToCSV(visits []models.Visit) string {
	var b strings.Builder

	b.WriteString(strings.Join(Columns, ","))
	b.WriteString("\n")

	for _, v := range visits {
		exit := StillInside
		if v.ExitTime != nil {
			exit = v.ExitTime.Format(time.RFC3339)
		}

		fields := []string{
			v.Name,
			v.StudentID,
			v.EntryTime.Format(time.RFC3339),
			exit,
			Duration(v),
			orDefault(v.Symptoms, notSpecified),
			orDefault(v.LoggedBy, unknown),
		}

		for i, f := range fields {
			fields[i] = `"` + f + `"`
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\n")
	}

	return b.String()
}

// Report is a printable projection of a set of visits
type Report struct {
	Title       string
	GeneratedAt time.Time
	Columns     []string
	Rows        [][]string
}

// NewReport projects the visits into a titled table with the same columns
// and empty-value fallbacks as the CSV export, using human-readable times.
func NewReport(visits []models.Visit, title string) Report {
	rows := make([][]string, 0, len(visits))

	for _, v := range visits {
		exit := StillInside
		if v.ExitTime != nil {
			exit = v.ExitTime.Format("02 Jan 2006 15:04")
		}

		rows = append(rows, []string{
			v.Name,
			v.StudentID,
			v.EntryTime.Format("02 Jan 2006 15:04"),
			exit,
			Duration(v),
			orDefault(v.Symptoms, notSpecified),
			orDefault(v.LoggedBy, unknown),
		})
	}

	return Report{
		Title:       title,
		GeneratedAt: time.Now(),
		Columns:     Columns,
		Rows:        rows,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
