package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/urbanova/storefront/internal/core/domain"
	"github.com/urbanova/storefront/internal/core/ports"
)

type stubKV struct {
	data     map[string][]byte
	readErr  error
	writeErr error
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string][]byte)}
}

func (s *stubKV) Read(_ context.Context, key string) ([]byte, bool, error) {
	if s.readErr != nil {
		return nil, false, s.readErr
	}
	raw, ok := s.data[key]
	return raw, ok, nil
}

func (s *stubKV) Write(_ context.Context, key string, value []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.data[key] = value
	return nil
}

func (s *stubKV) Remove(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func newTestAccounts(kv ports.KV) *AccountService {
	return NewAccountService(context.Background(), kv, zerolog.Nop())
}

func TestAccountService_Signup_Success(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	session, err := svc.Signup(context.Background(), "  Alice ", "Alice@Example.COM", "secret1")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if session.Name != "Alice" {
		t.Fatalf("expected trimmed name, got %q", session.Name)
	}
	if session.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", session.Email)
	}
	if session.ID == "" {
		t.Fatalf("expected synthesized id")
	}

	// Auto-login: session is active and persisted.
	if !svc.IsAuthenticated() {
		t.Fatalf("expected authenticated after signup")
	}
	if _, ok := kv.data[ports.KeySession]; !ok {
		t.Fatalf("expected session persisted")
	}

	// The durable record carries a hash, never the cleartext password.
	var users []domain.User
	if err := json.Unmarshal(kv.data[ports.KeyUsers], &users); err != nil {
		t.Fatalf("user table invalid: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if users[0].CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestAccountService_Signup_DuplicateEmailCaseInsensitive(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	if _, err := svc.Signup(context.Background(), "A", "a@x.com", "secret1"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "B", "A@X.COM", "other1"); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}

	// The failed signup must not have created a record or touched the session.
	var users []domain.User
	_ = json.Unmarshal(kv.data[ports.KeyUsers], &users)
	if len(users) != 1 {
		t.Fatalf("expected 1 user after duplicate signup, got %d", len(users))
	}
	if got := svc.Current(); got == nil || got.Email != "a@x.com" {
		t.Fatalf("expected original session to survive, got %+v", got)
	}
}

func TestAccountService_Signup_UniqueIDs(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	seen := make(map[string]bool)
	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		session, err := svc.Signup(context.Background(), "U", email, "secret1")
		if err != nil {
			t.Fatalf("signup %d failed: %v", i, err)
		}
		if seen[session.ID] {
			t.Fatalf("duplicate id %q", session.ID)
		}
		seen[session.ID] = true
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	created, err := svc.Signup(context.Background(), "A", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	session, err := svc.Login(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.ID != created.ID || session.Email != created.Email {
		t.Fatalf("session mismatch: %+v vs %+v", session, created)
	}
	if !svc.IsAuthenticated() {
		t.Fatalf("expected authenticated after login")
	}
}

func TestAccountService_Login_NormalizesEmail(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	_, _ = svc.Signup(context.Background(), "A", "a@x.com", "secret1")
	_ = svc.Logout(context.Background())

	if _, err := svc.Login(context.Background(), "  A@X.com ", "secret1"); err != nil {
		t.Fatalf("expected case-insensitive login, got %v", err)
	}
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	_, _ = svc.Signup(context.Background(), "A", "a@x.com", "secret1")
	_ = svc.Logout(context.Background())

	// Wrong password and unknown email return the same error value, so the
	// caller cannot tell which one failed.
	_, wrongPass := svc.Login(context.Background(), "a@x.com", "wrong")
	_, unknown := svc.Login(context.Background(), "ghost@x.com", "secret1")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPass, unknown)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("failed login must leave the session anonymous")
	}
}

func TestAccountService_Logout_ClearsDurableSession(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	_, _ = svc.Signup(context.Background(), "A", "a@x.com", "secret1")
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if svc.IsAuthenticated() {
		t.Fatalf("expected anonymous after logout")
	}
	if svc.Current() != nil {
		t.Fatalf("expected nil session after logout")
	}
	if _, ok := kv.data[ports.KeySession]; ok {
		t.Fatalf("expected no persisted session after logout")
	}
}

func TestAccountService_RestartRestoresSession(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	created, err := svc.Signup(context.Background(), "A", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// A new service over the same store stands in for a process restart.
	restarted := newTestAccounts(kv)
	if !restarted.IsAuthenticated() {
		t.Fatalf("expected session restored after restart")
	}
	got := restarted.Current()
	if got.ID != created.ID || got.Email != created.Email || got.Name != created.Name {
		t.Fatalf("restored session mismatch: %+v vs %+v", got, created)
	}
}

func TestAccountService_MalformedStateDegradesToEmpty(t *testing.T) {
	kv := newStubKV()
	kv.data[ports.KeyUsers] = []byte("{not json")
	kv.data[ports.KeySession] = []byte("also not json")

	svc := newTestAccounts(kv)

	if svc.IsAuthenticated() {
		t.Fatalf("malformed session must be treated as absent")
	}
	// A malformed user table reads as empty, so this signup succeeds.
	if _, err := svc.Signup(context.Background(), "A", "a@x.com", "secret1"); err != nil {
		t.Fatalf("signup over malformed table failed: %v", err)
	}
}

func TestAccountService_ReadErrorDegradesToEmpty(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	_, _ = svc.Signup(context.Background(), "A", "a@x.com", "secret1")
	_ = svc.Logout(context.Background())

	kv.readErr = errors.New("store unavailable")
	if _, err := svc.Login(context.Background(), "a@x.com", "secret1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials over unreadable table, got %v", err)
	}
}

func TestAccountService_WriteFailureFailsSignup(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	kv.writeErr = errors.New("disk full")
	if _, err := svc.Signup(context.Background(), "A", "a@x.com", "secret1"); err == nil {
		t.Fatalf("expected signup to surface the write failure")
	}
	if svc.IsAuthenticated() {
		t.Fatalf("failed signup must not establish a session")
	}
}

func TestAccountService_SessionHasNoPassword(t *testing.T) {
	kv := newStubKV()
	svc := newTestAccounts(kv)

	_, _ = svc.Signup(context.Background(), "A", "a@x.com", "secret1")

	var raw map[string]any
	if err := json.Unmarshal(kv.data[ports.KeySession], &raw); err != nil {
		t.Fatalf("session record invalid: %v", err)
	}
	if _, ok := raw["password"]; ok {
		t.Fatalf("session record must not carry a password field")
	}
}
