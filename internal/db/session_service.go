package db

import (
	"errors"

	"gorm.io/gorm"

	"clinictrack/internal/models"
)

// SaveSession persists the session as the single active login, replacing
// any previous one.
func SaveSession(session *models.Session) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Create(session).Error
	})
}

// CurrentSession returns the persisted login session, or nil when nobody
// is signed in.
func CurrentSession() (*models.Session, error) {
	var session models.Session

	err := DB.Order("id DESC").First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // not signed in is not an error
		}
		return nil, err
	}

	return &session, nil
}

// ClearSession removes the persisted login session, if any
func ClearSession() error {
	return DB.Where("1 = 1").Delete(&models.Session{}).Error
}
