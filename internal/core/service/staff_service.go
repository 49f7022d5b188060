package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

// StaffService manages staff accounts. Passwords are digested before they
// ever reach the repository.
type StaffService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewStaffService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *StaffService {
	return &StaffService{repo: repo, hasher: hasher, logger: logger}
}

func (s *StaffService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	digest, err := s.hasher.Hash(user.Passw)
	if err != nil {
		return nil, err
	}
	user.Passw = digest

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("userId", created.UserID).Str("users", created.Users).Msg("staff user created")
	return created, nil
}

func (s *StaffService) List(ctx context.Context, in ports.ListUsersInput) (*ports.UserPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 1
	}
	return s.repo.List(ctx, in)
}

func (s *StaffService) Get(ctx context.Context, userID int) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// Patch applies non-nil fields only. A new password is re-digested with the
// configured scheme.
func (s *StaffService) Patch(ctx context.Context, userID int, patch ports.UserPatch) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if patch.License != nil {
		user.License = *patch.License
	}
	if patch.Fname != nil {
		user.Fname = *patch.Fname
	}
	if patch.Lname != nil {
		user.Lname = *patch.Lname
	}
	if patch.StudentID != nil {
		user.StudentID = *patch.StudentID
	}
	if patch.RoleID != nil {
		user.RoleID = *patch.RoleID
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.Users != nil {
		user.Users = *patch.Users
	}
	if patch.Passw != nil {
		digest, err := s.hasher.Hash(*patch.Passw)
		if err != nil {
			return err
		}
		user.Passw = digest
	}
	if patch.Tname != nil {
		user.Tname = *patch.Tname
	}
	if patch.Sort != nil {
		user.Sort = *patch.Sort
	}
	if patch.Type != nil {
		user.Type = *patch.Type
	}
	if patch.ClinicID != nil {
		user.ClinicID = *patch.ClinicID
	}

	return s.repo.Update(ctx, user)
}

func (s *StaffService) Delete(ctx context.Context, userID int) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int("userId", userID).Msg("staff user deleted")
	return nil
}
