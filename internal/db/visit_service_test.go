package db

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"clinictrack/internal/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.Visit{}, &models.Session{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	DB = gdb
}

func TestLogVisit(t *testing.T) {
	setupTestDB(t)

	visit, err := LogVisit(LogVisitRequest{
		Name:      "Rahul Kumar",
		StudentID: "KLU001",
		Symptoms:  "Fever",
		LoggedBy:  "clinic@klh.edu.in",
	})
	if err != nil {
		t.Fatalf("LogVisit failed: %v", err)
	}

	if visit.EntryTime.IsZero() {
		t.Error("expected entry time to be set")
	}
	if visit.ExitTime != nil {
		t.Error("expected a new visit to be open")
	}
	if visit.LoggedBy != "clinic@klh.edu.in" {
		t.Errorf("expected provenance to be recorded, got %q", visit.LoggedBy)
	}

	all, err := AllVisits()
	if err != nil {
		t.Fatalf("AllVisits failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != visit.ID {
		t.Errorf("expected the new visit to appear last in the store, got %d records", len(all))
	}
}

func TestLogVisitDefaultsProvenance(t *testing.T) {
	setupTestDB(t)

	visit, err := LogVisit(LogVisitRequest{Name: "Priya Sharma", StudentID: "KLU002"})
	if err != nil {
		t.Fatalf("LogVisit failed: %v", err)
	}
	if visit.LoggedBy != "Unknown" {
		t.Errorf("expected LoggedBy to default to Unknown, got %q", visit.LoggedBy)
	}
}

func TestLogVisitValidation(t *testing.T) {
	setupTestDB(t)

	if _, err := LogVisit(LogVisitRequest{Name: "", StudentID: "KLU001"}); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected missing-field error for empty name, got %v", err)
	}
	if _, err := LogVisit(LogVisitRequest{Name: "Rahul Kumar", StudentID: ""}); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected missing-field error for empty ID, got %v", err)
	}
	if _, err := LogVisit(LogVisitRequest{Name: "   ", StudentID: "KLU001"}); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected whitespace-only name to fail validation, got %v", err)
	}

	all, err := AllVisits()
	if err != nil {
		t.Fatalf("AllVisits failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no records after failed validation, got %d", len(all))
	}
}

func TestMarkExitClosesMostRecentFirst(t *testing.T) {
	setupTestDB(t)

	first, err := LogVisit(LogVisitRequest{Name: "Amit Singh", StudentID: "KLU003"})
	if err != nil {
		t.Fatalf("LogVisit failed: %v", err)
	}
	second, err := LogVisit(LogVisitRequest{Name: "Amit Singh", StudentID: "KLU003"})
	if err != nil {
		t.Fatalf("LogVisit failed: %v", err)
	}

	closed, err := MarkExit("KLU003")
	if err != nil {
		t.Fatalf("MarkExit failed: %v", err)
	}
	if closed.ID != second.ID {
		t.Errorf("expected the most recent open visit #%d to close first, closed #%d", second.ID, closed.ID)
	}
	if closed.ExitTime == nil {
		t.Fatal("expected exit time to be set")
	}
	if closed.ExitTime.Before(closed.EntryTime) {
		t.Error("exit time precedes entry time")
	}

	closed, err = MarkExit("KLU003")
	if err != nil {
		t.Fatalf("second MarkExit failed: %v", err)
	}
	if closed.ID != first.ID {
		t.Errorf("expected the remaining open visit #%d to close next, closed #%d", first.ID, closed.ID)
	}

	if _, err := MarkExit("KLU003"); !errors.Is(err, ErrNoOpenVisit) {
		t.Errorf("expected ErrNoOpenVisit once everything is closed, got %v", err)
	}
}

func TestMarkExitUnknownID(t *testing.T) {
	setupTestDB(t)

	if _, err := LogVisit(LogVisitRequest{Name: "Sneha Reddy", StudentID: "KLU004"}); err != nil {
		t.Fatalf("LogVisit failed: %v", err)
	}

	if _, err := MarkExit("unknown-id"); !errors.Is(err, ErrNoOpenVisit) {
		t.Errorf("expected ErrNoOpenVisit for unknown ID, got %v", err)
	}

	all, err := AllVisits()
	if err != nil {
		t.Fatalf("AllVisits failed: %v", err)
	}
	if len(all) != 1 || all[0].ExitTime != nil {
		t.Error("expected the store to be unchanged after a missed exit")
	}
}

func TestVisitsByStudentID(t *testing.T) {
	setupTestDB(t)

	for _, id := range []string{"KLU001", "KLU002", "KLU001", "KLU001"} {
		if _, err := LogVisit(LogVisitRequest{Name: "Student", StudentID: id}); err != nil {
			t.Fatalf("LogVisit failed: %v", err)
		}
	}

	visits, err := VisitsByStudentID("KLU001")
	if err != nil {
		t.Fatalf("VisitsByStudentID failed: %v", err)
	}
	if len(visits) != 3 {
		t.Fatalf("expected 3 visits for KLU001, got %d", len(visits))
	}
	for i := 1; i < len(visits); i++ {
		if visits[i].ID < visits[i-1].ID {
			t.Error("expected visits in insertion order, oldest first")
		}
	}
}

func TestRecentVisits(t *testing.T) {
	setupTestDB(t)

	var ids []uint
	for i := 0; i < 8; i++ {
		visit, err := LogVisit(LogVisitRequest{Name: "Student", StudentID: "KLU005"})
		if err != nil {
			t.Fatalf("LogVisit failed: %v", err)
		}
		ids = append(ids, visit.ID)
	}

	recent, err := RecentVisits(5)
	if err != nil {
		t.Fatalf("RecentVisits failed: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected exactly 5 visits, got %d", len(recent))
	}
	// newest first: the last 5 appended, in reverse append order
	for i, v := range recent {
		want := ids[len(ids)-1-i]
		if v.ID != want {
			t.Errorf("position %d: expected visit #%d, got #%d", i, want, v.ID)
		}
	}
}

func TestRecentVisitsDefaultsToFive(t *testing.T) {
	setupTestDB(t)

	for i := 0; i < 8; i++ {
		if _, err := LogVisit(LogVisitRequest{Name: "Student", StudentID: "KLU005"}); err != nil {
			t.Fatalf("LogVisit failed: %v", err)
		}
	}

	recent, err := RecentVisits(0)
	if err != nil {
		t.Fatalf("RecentVisits failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("expected the default of 5 visits, got %d", len(recent))
	}
}

func TestEntryTimeImmutableAcrossExit(t *testing.T) {
	setupTestDB(t)

	visit, err := LogVisit(LogVisitRequest{Name: "Vikram Patel", StudentID: "KLU005"})
	if err != nil {
		t.Fatalf("LogVisit failed: %v", err)
	}
	entry := visit.EntryTime

	time.Sleep(10 * time.Millisecond)
	closed, err := MarkExit("KLU005")
	if err != nil {
		t.Fatalf("MarkExit failed: %v", err)
	}

	// allow for timestamp round-tripping through the database
	if diff := closed.EntryTime.Sub(entry); diff < -time.Second || diff > time.Second {
		t.Errorf("entry time changed on exit: %v != %v", closed.EntryTime, entry)
	}
}
