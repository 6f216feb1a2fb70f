package db

import (
	"testing"
	"time"

	"clinictrack/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	setupTestDB(t)

	session, err := CurrentSession()
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if session != nil {
		t.Fatal("expected no session before login")
	}

	err = SaveSession(&models.Session{
		Email:     "clinic@klh.edu.in",
		Role:      models.RoleClinic,
		Name:      "Clinic",
		LoginTime: time.Now(),
	})
	if err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	session, err = CurrentSession()
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if session == nil || session.Email != "clinic@klh.edu.in" {
		t.Fatalf("expected the saved session back, got %+v", session)
	}

	if err := ClearSession(); err != nil {
		t.Fatalf("ClearSession failed: %v", err)
	}

	session, err = CurrentSession()
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if session != nil {
		t.Error("expected no session after logout")
	}
}

func TestSaveSessionReplacesPrevious(t *testing.T) {
	setupTestDB(t)

	for _, email := range []string{"nurse@klh.edu.in", "faculty@klh.edu.in"} {
		err := SaveSession(&models.Session{Email: email, Role: models.RoleClinic, LoginTime: time.Now()})
		if err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
	}

	var count int64
	if err := DB.Model(&models.Session{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single session slot, found %d rows", count)
	}

	session, err := CurrentSession()
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if session.Email != "faculty@klh.edu.in" {
		t.Errorf("expected the latest login to win, got %q", session.Email)
	}
}
