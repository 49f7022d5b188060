package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

// ClinicService lists the clinic reference table.
type ClinicService struct {
	repo ports.ClinicRepository
}

func NewClinicService(repo ports.ClinicRepository) *ClinicService {
	return &ClinicService{repo: repo}
}

func (s *ClinicService) List(ctx context.Context) ([]domain.Clinic, error) {
	return s.repo.List(ctx)
}

// ICD10Service serves paged diagnosis code lookups.
type ICD10Service struct {
	repo ports.ICD10Repository
}

func NewICD10Service(repo ports.ICD10Repository) *ICD10Service {
	return &ICD10Service{repo: repo}
}

func (s *ICD10Service) List(ctx context.Context, in ports.ListICD10Input) (*ports.ICD10Page, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 1
	}
	return s.repo.List(ctx, in)
}

// ScreeningService records pre-treatment screenings.
type ScreeningService struct {
	repo   ports.ScreeningRepository
	logger zerolog.Logger
}

func NewScreeningService(repo ports.ScreeningRepository, logger zerolog.Logger) *ScreeningService {
	return &ScreeningService{repo: repo, logger: logger}
}

func (s *ScreeningService) Create(ctx context.Context, rec *domain.Screening) (*domain.Screening, error) {
	if !domain.ValidUrgency(rec.TreatmentUrgency) {
		rec.TreatmentUrgency = domain.UrgencyNonUrgent
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("dn", created.DN).Int("screeningId", created.ScreeningID).Msg("screening recorded")
	return created, nil
}

func (s *ScreeningService) ListByDN(ctx context.Context, dn string) ([]domain.Screening, error) {
	return s.repo.ListByDN(ctx, dn)
}
