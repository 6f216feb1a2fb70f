// Package report computes views over visit records and projects them into
// exportable shapes. Nothing in here mutates the store: every function works
// on whatever slice of visits it is given, so a "frequent visitor" count is
// always relative to the filtered set passed in.
package report

import (
	"fmt"
	"math"
	"sort"

	"clinictrack/internal/models"
)

// StillInside is shown in place of a duration or exit time while a visit
// is open.
const StillInside = "Still inside"

// FrequentVisitThreshold is the visit count a student must exceed to be
// flagged as a frequent visitor.
const FrequentVisitThreshold = 3

// VisitStatus is the derived state of a visit
type VisitStatus string

const (
	StatusActive    VisitStatus = "Active"
	StatusCompleted VisitStatus = "Completed"
)

// Status reports whether the visit is still active or completed
func Status(v models.Visit) VisitStatus {
	if v.Open() {
		return StatusActive
	}
	return StatusCompleted
}

// Duration formats the visit length as "<hours>h <minutes>m", or
// StillInside while the visit is open. Whole-minute floor arithmetic;
// negative differences pass through unclamped.
func Duration(v models.Visit) string {
	if v.ExitTime == nil {
		return StillInside
	}

	minutes := v.ExitTime.Sub(v.EntryTime).Minutes()
	h := int(math.Floor(minutes / 60))
	m := int(math.Floor(math.Mod(minutes, 60)))

	return fmt.Sprintf("%dh %dm", h, m)
}

// CountVisitsByID builds a visit-count frequency map over the given set,
// keyed by exact student ID.
func CountVisitsByID(visits []models.Visit) map[string]int {
	counts := make(map[string]int)
	for _, v := range visits {
		counts[v.StudentID]++
	}
	return counts
}

// IsFrequentVisitor reports whether a visit count crosses the frequent
// threshold (strictly greater than).
func IsFrequentVisitor(count int) bool {
	return count > FrequentVisitThreshold
}

// DailyCount pairs a calendar day with its number of visits
type DailyCount struct {
	Date  string
	Count int
}

// DailyCounts aggregates visits per entry day, ascending by date
func DailyCounts(visits []models.Visit) []DailyCount {
	byDate := make(map[string]int)
	for _, v := range visits {
		byDate[v.EntryTime.Format("2006-01-02")]++
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	counts := make([]DailyCount, 0, len(dates))
	for _, date := range dates {
		counts = append(counts, DailyCount{Date: date, Count: byDate[date]})
	}

	return counts
}
