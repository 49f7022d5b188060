package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/infrastructure/auth"
)

type stubCredentialStore struct {
	users        map[string]*domain.User
	statusWrites int
	failOnUpdate error
}

func newStubCredentialStore(users ...*domain.User) *stubCredentialStore {
	s := &stubCredentialStore{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := *u
		s.users[u.Users] = &clone
	}
	return s
}

func (s *stubCredentialStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *stubCredentialStore) FindByID(_ context.Context, userID int) (*domain.User, error) {
	for _, u := range s.users {
		if u.UserID == userID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubCredentialStore) UpdateStatus(_ context.Context, userID, status int) error {
	if s.failOnUpdate != nil {
		return s.failOnUpdate
	}
	for _, u := range s.users {
		if u.UserID == userID {
			u.Status = status
			s.statusWrites++
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// md5("s3cret") as stored by the legacy system.
const s3cretMD5 = "33e1b232a4e6fa0028a6670753749a17"

func testUser() *domain.User {
	return &domain.User{
		UserID: 7,
		Users:  "somchai",
		Passw:  s3cretMD5,
		Fname:  "Somchai",
		RoleID: 1,
		Status: domain.StatusLoggedOut,
	}
}

func newTestAuthService(store *stubCredentialStore) *AuthService {
	issuer := auth.NewTokenIssuer("test-secret", "echart-api", "echart-frontend", 180)
	return NewAuthService(store, auth.MD5Hasher{}, issuer, zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	store := newStubCredentialStore(testUser())
	svc := newTestAuthService(store)

	res, err := svc.Login(context.Background(), "somchai", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.AccessToken == "" {
		t.Fatalf("expected access token, got empty")
	}
	if res.Role != domain.RoleAdministrator {
		t.Fatalf("expected role %q, got %q", domain.RoleAdministrator, res.Role)
	}
	if res.UserID != "7" || res.Users != "somchai" || res.RoleID != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	issuer := auth.NewTokenIssuer("test-secret", "echart-api", "echart-frontend", 180)
	claims, err := issuer.Parse(res.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != "7" || claims.Name != "somchai" || claims.Role != domain.RoleAdministrator {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if got, _ := store.FindByID(context.Background(), 7); got.Status != domain.StatusLoggedIn {
		t.Fatalf("expected status %d after login, got %d", domain.StatusLoggedIn, got.Status)
	}
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	svc := newTestAuthService(newStubCredentialStore())

	for _, tc := range []struct{ users, passw string }{
		{"", "s3cret"},
		{"somchai", ""},
		{"", ""},
	} {
		if _, err := svc.Login(context.Background(), tc.users, tc.passw); !errors.Is(err, domain.ErrMissingCredentials) {
			t.Fatalf("Login(%q, %q): expected ErrMissingCredentials, got %v", tc.users, tc.passw, err)
		}
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newTestAuthService(newStubCredentialStore())

	if _, err := svc.Login(context.Background(), "ghost", "whatever"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	store := newStubCredentialStore(testUser())
	svc := newTestAuthService(store)

	if _, err := svc.Login(context.Background(), "somchai", "wrong"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if got, _ := store.FindByID(context.Background(), 7); got.Status != domain.StatusLoggedOut {
		t.Fatalf("failed login must not flip status, got %d", got.Status)
	}
}

func TestAuthService_Login_AlreadyLoggedIn(t *testing.T) {
	u := testUser()
	u.Status = domain.StatusLoggedIn
	store := newStubCredentialStore(u)
	svc := newTestAuthService(store)

	res, err := svc.Login(context.Background(), "somchai", "s3cret")
	if err != nil {
		t.Fatalf("second login must succeed: %v", err)
	}
	if res.AccessToken == "" {
		t.Fatalf("expected a fresh token on repeated login")
	}
	if store.statusWrites != 0 {
		t.Fatalf("already-logged-in account must not be rewritten, got %d writes", store.statusWrites)
	}
}

// stubIssuer hands back a canned token so issuance faults can be forced.
type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue(_ *domain.User) (string, error) {
	return s.token, s.err
}

func TestAuthService_Login_MalformedTokenOutput(t *testing.T) {
	store := newStubCredentialStore(testUser())
	svc := NewAuthService(store, auth.MD5Hasher{}, stubIssuer{token: "no-dots"}, zerolog.Nop())

	res, err := svc.Login(context.Background(), "somchai", "s3cret")
	if !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
	if res != nil {
		t.Fatalf("malformed token must never reach the caller, got %+v", res)
	}
	if store.statusWrites != 0 {
		t.Fatalf("malformed issuance must leave status untouched, got %d writes", store.statusWrites)
	}
}

func TestAuthService_Login_MissingJWTConfig(t *testing.T) {
	store := newStubCredentialStore(testUser())
	issuer := auth.NewTokenIssuer("", "", "", 180)
	svc := NewAuthService(store, auth.MD5Hasher{}, issuer, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "somchai", "s3cret"); !errors.Is(err, domain.ErrJWTConfigMissing) {
		t.Fatalf("expected ErrJWTConfigMissing, got %v", err)
	}
	if got, _ := store.FindByID(context.Background(), 7); got.Status != domain.StatusLoggedOut {
		t.Fatalf("issuance failure must leave status untouched, got %d", got.Status)
	}
}

func TestAuthService_Login_StatusWriteFails(t *testing.T) {
	store := newStubCredentialStore(testUser())
	store.failOnUpdate = errors.New("connection reset")
	svc := newTestAuthService(store)

	if _, err := svc.Login(context.Background(), "somchai", "s3cret"); err == nil {
		t.Fatalf("expected store error to surface")
	}
}

func TestAuthService_Logout_Success(t *testing.T) {
	u := testUser()
	u.Status = domain.StatusLoggedIn
	store := newStubCredentialStore(u)
	svc := newTestAuthService(store)

	if err := svc.Logout(context.Background(), 7); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if got, _ := store.FindByID(context.Background(), 7); got.Status != domain.StatusLoggedOut {
		t.Fatalf("expected status %d, got %d", domain.StatusLoggedOut, got.Status)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	store := newStubCredentialStore(testUser())
	svc := newTestAuthService(store)

	if err := svc.Logout(context.Background(), 7); err != nil {
		t.Fatalf("logout on logged-out account must succeed: %v", err)
	}
	if store.statusWrites != 0 {
		t.Fatalf("expected no status write, got %d", store.statusWrites)
	}
}

func TestAuthService_Logout_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newStubCredentialStore())

	if err := svc.Logout(context.Background(), 99999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
