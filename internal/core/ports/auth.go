package ports

import (
	"context"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
)

// CredentialStore is the persistence interface the auth flow depends on.
// UpdateStatus is a plain read-modify-write: it is not atomic with the
// preceding lookup, and concurrent calls for the same account race.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	UpdateStatus(ctx context.Context, userID, status int) error
}

// PasswordHasher turns a plaintext password into a storable digest and
// verifies candidates against stored digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenIssuer builds a signed, time-limited bearer token for an account.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenResult is what a successful login returns to the client.
// Field names are part of the wire contract with the existing frontend.
type TokenResult struct {
	AccessToken string `json:"AccessToken"`
	Role        string `json:"Role"`
	UserID      string `json:"UserId"`
	Users       string `json:"Users"`
	RoleID      int    `json:"RoleID"`
}

// AuthService orchestrates login and logout against the credential store.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*TokenResult, error)
	Logout(ctx context.Context, userID int) error
}
