package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/urbanova/storefront/internal/core/domain"
	"github.com/urbanova/storefront/internal/core/ports"
)

// AccountService implements registration, login, and session persistence on
// top of the key-value persistence adapter. It is the only writer of the
// durable user table, and holds the single process-wide session.
type AccountService struct {
	store  ports.KV
	logger zerolog.Logger

	mu      sync.RWMutex
	session *domain.Session
	lastID  int64
}

// NewAccountService builds an AccountService and restores the persisted
// session, if any, so authentication survives a restart. A session record
// that fails to deserialize is treated as absent.
func NewAccountService(ctx context.Context, store ports.KV, logger zerolog.Logger) *AccountService {
	s := &AccountService{store: store, logger: logger}
	if session, ok := s.readSession(ctx); ok {
		s.session = session
		logger.Info().Str("email", session.Email).Msg("session restored")
	}
	return s
}

func (s *AccountService) Signup(ctx context.Context, name, email, password string) (*domain.Session, error) {
	email = domain.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.readUsers(ctx)
	for i := range users {
		if domain.NormalizeEmail(users[i].Email) == email {
			return nil, domain.ErrAccountExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           s.nextID(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	users = append(users, user)

	if err := s.writeUsers(ctx, users); err != nil {
		return nil, err
	}

	// Auto-login after signup.
	session := domain.NewSession(&user)
	if err := s.writeSession(ctx, session); err != nil {
		return nil, err
	}
	s.session = session

	s.logger.Info().Str("email", user.Email).Str("user_id", user.ID).Msg("account created")
	return session, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = domain.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.readUsers(ctx)
	for i := range users {
		if domain.NormalizeEmail(users[i].Email) != email {
			continue
		}
		// Wrong password and unknown email return the same error so the
		// response never leaks which one failed.
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}

		session := domain.NewSession(&users[i])
		if err := s.writeSession(ctx, session); err != nil {
			return nil, err
		}
		s.session = session

		s.logger.Info().Str("email", session.Email).Msg("login succeeded")
		return session, nil
	}

	return nil, domain.ErrInvalidCredentials
}

func (s *AccountService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if err := s.store.Remove(ctx, ports.KeySession); err != nil {
		// The in-memory state is already anonymous; a failed removal only
		// means the stale record may resurface after a restart.
		s.logger.Warn().Err(err).Msg("failed to remove persisted session")
	}
	return nil
}

func (s *AccountService) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

func (s *AccountService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

// readUsers loads the durable user table. An absent key, a read error, or
// malformed JSON all degrade to an empty table rather than failing the
// operation.
func (s *AccountService) readUsers(ctx context.Context) []domain.User {
	raw, ok, err := s.store.Read(ctx, ports.KeyUsers)
	if err != nil {
		s.logger.Warn().Err(err).Msg("user table read failed, treating as empty")
		return nil
	}
	if !ok {
		return nil
	}

	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		s.logger.Warn().Err(err).Msg("user table is malformed, treating as empty")
		return nil
	}
	return users
}

func (s *AccountService) writeUsers(ctx context.Context, users []domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user table: %w", err)
	}
	if err := s.store.Write(ctx, ports.KeyUsers, raw); err != nil {
		return fmt.Errorf("persist user table: %w", err)
	}
	return nil
}

func (s *AccountService) readSession(ctx context.Context) (*domain.Session, bool) {
	raw, ok, err := s.store.Read(ctx, ports.KeySession)
	if err != nil || !ok {
		return nil, false
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.logger.Warn().Err(err).Msg("persisted session is malformed, ignoring")
		return nil, false
	}
	return &session, true
}

func (s *AccountService) writeSession(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Write(ctx, ports.KeySession, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// nextID synthesizes a time-derived user id, bumped when two signups land in
// the same millisecond.
func (s *AccountService) nextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
