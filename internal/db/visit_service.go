package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"clinictrack/internal/models"
)

// ErrNoOpenVisit is returned by MarkExit when no open visit matches the
// student ID. It is an expected outcome, not a failure.
var ErrNoOpenVisit = errors.New("no active visit found for this student ID")

// ErrMissingField is wrapped by validation errors on visit creation.
var ErrMissingField = errors.New("required field is empty")

// LogVisitRequest holds the data needed to record a new visit
type LogVisitRequest struct {
	Name      string
	StudentID string
	Symptoms  string
	LoggedBy  string
}

// LogVisit records a new clinic visit with the entry time set to now.
// The visit stays open until MarkExit closes it.
func LogVisit(req LogVisitRequest) (*models.Visit, error) {
	name := strings.TrimSpace(req.Name)
	studentID := strings.TrimSpace(req.StudentID)

	if name == "" {
		return nil, fmt.Errorf("%w: student name", ErrMissingField)
	}
	if studentID == "" {
		return nil, fmt.Errorf("%w: student ID", ErrMissingField)
	}

	loggedBy := req.LoggedBy
	if loggedBy == "" {
		loggedBy = "Unknown"
	}

	visit := models.Visit{
		Name:      name,
		StudentID: studentID,
		Symptoms:  strings.TrimSpace(req.Symptoms),
		EntryTime: time.Now(),
		LoggedBy:  loggedBy,
	}

	if err := DB.Create(&visit).Error; err != nil {
		return nil, err
	}

	return &visit, nil
}

// MarkExit closes the most recently created open visit for the student.
// When a student has several open visits (a data-quality anomaly the store
// does not prevent), the latest one is closed first. Returns ErrNoOpenVisit
// when nothing matches.
func MarkExit(studentID string) (*models.Visit, error) {
	var visit models.Visit

	err := DB.Where("student_id = ? AND exit_time IS NULL", studentID).
		Order("id DESC").
		First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpenVisit
		}
		return nil, err
	}

	now := time.Now()
	visit.ExitTime = &now

	if err := DB.Save(&visit).Error; err != nil {
		return nil, err
	}

	return &visit, nil
}

// AllVisits returns every visit in insertion order, oldest first
func AllVisits() ([]models.Visit, error) {
	var visits []models.Visit

	if err := DB.Order("id ASC").Find(&visits).Error; err != nil {
		return nil, err
	}

	return visits, nil
}

// VisitsByStudentID returns the visits for one student, oldest first
func VisitsByStudentID(studentID string) ([]models.Visit, error) {
	var visits []models.Visit

	err := DB.Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}

	return visits, nil
}

// RecentVisits returns the n most recently recorded visits, newest first.
// n defaults to 5 when zero or negative.
func RecentVisits(n int) ([]models.Visit, error) {
	if n <= 0 {
		n = 5
	}

	var visits []models.Visit

	err := DB.Order("id DESC").Limit(n).Find(&visits).Error
	if err != nil {
		return nil, err
	}

	return visits, nil
}
