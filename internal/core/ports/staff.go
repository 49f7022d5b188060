package ports

import (
	"context"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
)

// ListUsersInput carries pagination and filters for the staff user listing.
// Zero-valued filters are ignored.
type ListUsersInput struct {
	Page     int
	Limit    int
	Keyword  string
	RoleID   int
	ClinicID string
}

// UserPatch carries a partial staff user update. Nil fields are left untouched.
type UserPatch struct {
	License   *string
	Fname     *string
	Lname     *string
	StudentID *string
	RoleID    *int
	Status    *int
	Users     *string
	Passw     *string
	Tname     *string
	Sort      *float64
	Type      *string
	ClinicID  *string
}

// UserPage is one page of staff users plus pagination totals.
type UserPage struct {
	Data      []domain.User
	Total     int64
	PageCount int
}

// UserRepository persists staff accounts beyond the credential-store surface.
type UserRepository interface {
	CredentialStore
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context, in ListUsersInput) (*UserPage, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID int) error
}

// StaffService exposes the administrator-facing staff account operations.
type StaffService interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context, in ListUsersInput) (*UserPage, error)
	Get(ctx context.Context, userID int) (*domain.User, error)
	Patch(ctx context.Context, userID int, patch UserPatch) error
	Delete(ctx context.Context, userID int) error
}
