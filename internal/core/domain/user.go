package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountExists = errors.New("account already exists")

// User is a durable registered-account record. The account store is the only
// writer. PasswordHash carries a bcrypt hash; it is serialized under the
// legacy "password" key to keep the stored schema stable.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the redacted projection of a User that represents the currently
// authenticated identity. It never carries the password hash.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewSession builds the session projection for a user record.
func NewSession(u *User) *Session {
	return &Session{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NormalizeEmail lower-cases and trims an email address. All uniqueness
// checks and lookups on the user table go through this, which is what makes
// the email constraint case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
