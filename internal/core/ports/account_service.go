package ports

import (
	"context"

	"github.com/urbanova/storefront/internal/core/domain"
)

// AccountService owns the durable user table and the current session.
//
// Failed signups and logins leave the session untouched; successful ones
// replace it and persist it so it survives a restart.
type AccountService interface {
	// Signup registers a new account and logs it in. Returns
	// domain.ErrAccountExists when the normalized email is already taken.
	Signup(ctx context.Context, name, email, password string) (*domain.Session, error)
	// Login authenticates by email and password. Unknown email and wrong
	// password both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	// Logout clears the current session, in memory and in the durable store.
	Logout(ctx context.Context) error
	// Current returns the active session, or nil when anonymous.
	Current() *domain.Session
	// IsAuthenticated reports whether a session is active.
	IsAuthenticated() bool
}
