package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"clinictrack/internal/models"
)

// ErrInvalidCredentials is returned for every credential failure: unknown
// role, unknown email, or wrong password. The caller cannot tell which part
// failed.
var ErrInvalidCredentials = errors.New("invalid email or password for this role")

// ErrWrongDomain is wrapped by the institutional-domain precheck failure.
var ErrWrongDomain = errors.New("email is not an institutional address")

// CredentialProvider verifies a credential triple. The role is part of the
// lookup key: the same email/password pair may be valid under one role and
// not another.
type CredentialProvider interface {
	Verify(email, password, role string) bool
}

// StaticProvider checks credentials against a fixed role -> email -> password
// table. Passwords are compared as exact strings.
type StaticProvider struct {
	credentials map[string]map[string]string
}

// NewStaticProvider returns the provider backed by the built-in test accounts.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		credentials: map[string]map[string]string{
			models.RoleFaculty: {
				"faculty@klh.edu.in":    "faculty123",
				"prof.smith@klh.edu.in": "prof123",
				"dr.johnson@klh.edu.in": "doctor123",
			},
			models.RoleClinic: {
				"clinic@klh.edu.in": "clinic123",
				"nurse@klh.edu.in":  "nurse123",
				"staff@klh.edu.in":  "staff123",
			},
			models.RoleStudent: {
				"student@klh.edu.in":    "student123",
				"john.doe@klh.edu.in":   "john123",
				"jane.smith@klh.edu.in": "jane123",
			},
		},
	}
}

// Verify implements CredentialProvider
func (p *StaticProvider) Verify(email, password, role string) bool {
	roleCredentials, ok := p.credentials[role]
	if !ok {
		return false
	}
	stored, ok := roleCredentials[email]
	return ok && stored == password
}

// Authenticate checks the email domain and then the credentials, returning
// a fresh session on success. The domain check runs first and short-circuits
// before the credential table is consulted.
func Authenticate(provider CredentialProvider, email, password, role, domain string) (*models.Session, error) {
	email = strings.TrimSpace(email)

	if !strings.HasSuffix(email, domain) {
		return nil, fmt.Errorf("%w: please use a valid %s email address", ErrWrongDomain, domain)
	}

	if !provider.Verify(email, password, role) {
		return nil, ErrInvalidCredentials
	}

	return &models.Session{
		Email:     email,
		Role:      role,
		Name:      DisplayName(email),
		LoginTime: time.Now(),
	}, nil
}

// DisplayName derives a display name from an email address: the local part
// with dots as spaces and each word capitalized, so "jane.smith@klh.edu.in"
// becomes "Jane Smith".
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	words := strings.Fields(strings.ReplaceAll(local, ".", " "))

	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
