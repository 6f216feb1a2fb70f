package models

import (
	"time"
)

// Roles a user can sign in as.
const (
	RoleFaculty = "faculty"
	RoleClinic  = "clinic"
	RoleStudent = "student"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleFaculty, RoleClinic, RoleStudent:
		return true
	}
	return false
}

// Session is the persisted identity of the signed-in user.
// There is at most one session row at a time.
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"not null" json:"email"`
	Role      string    `gorm:"not null" json:"role"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"login_time"`
}
