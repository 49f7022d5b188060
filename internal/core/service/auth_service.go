package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

// AuthService orchestrates the login and logout state transitions over the
// per-account status flag. The flag is a coarse marker, not a session: the
// read-modify-write against the store is not atomic and concurrent calls
// for the same account race, last writer wins.
type AuthService struct {
	store  ports.CredentialStore
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(store ports.CredentialStore, hasher ports.PasswordHasher, issuer ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{store: store, hasher: hasher, issuer: issuer, logger: logger}
}

// Login verifies credentials, issues a bearer token and marks the account
// logged in. The token is issued before the status write so a store failure
// after verification can never leave the account stuck at status=1 without
// a token having been handed out.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.TokenResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(password, user.Passw) {
		return nil, domain.ErrWrongPassword
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	if strings.Count(token, ".") != 2 {
		s.logger.Error().Str("users", user.Users).Int("segments", strings.Count(token, ".")+1).
			Msg("issued token is not in compact three-segment form")
		return nil, domain.ErrTokenMalformed
	}

	// Idempotent: logging in an already-logged-in account is a no-op here.
	if user.Status != domain.StatusLoggedIn {
		if err := s.store.UpdateStatus(ctx, user.UserID, domain.StatusLoggedIn); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Str("users", user.Users).Int("userId", user.UserID).Msg("login succeeded")

	return &ports.TokenResult{
		AccessToken: token,
		Role:        domain.RoleName(user.RoleID),
		UserID:      strconv.Itoa(user.UserID),
		Users:       user.Users,
		RoleID:      user.RoleID,
	}, nil
}

// Logout flips the status flag back to logged out. It is idempotent: an
// account already at status=0 still reports success. The bearer token stays
// cryptographically valid until its own expiry; logout is a UI-level
// signal, not a revocation.
func (s *AuthService) Logout(ctx context.Context, userID int) error {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Status == domain.StatusLoggedOut {
		s.logger.Debug().Int("userId", userID).Msg("logout on already logged-out account")
		return nil
	}

	if err := s.store.UpdateStatus(ctx, userID, domain.StatusLoggedOut); err != nil {
		return err
	}

	s.logger.Info().Int("userId", userID).Msg("logout succeeded")
	return nil
}
