package ports

import (
	"context"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
)

// ClinicRepository reads the clinic reference table.
type ClinicRepository interface {
	List(ctx context.Context) ([]domain.Clinic, error)
}

// ClinicService lists clinics ordered by clinic id.
type ClinicService interface {
	List(ctx context.Context) ([]domain.Clinic, error)
}

// ListICD10Input carries pagination and the keyword filter over code/descp.
type ListICD10Input struct {
	Page    int
	Limit   int
	Keyword string
}

// ICD10Page is one page of ICD-10-TM codes plus pagination totals.
type ICD10Page struct {
	Data      []domain.ICD10
	Total     int64
	PageCount int
}

// ICD10Repository reads the ICD-10-TM code table.
type ICD10Repository interface {
	List(ctx context.Context, in ListICD10Input) (*ICD10Page, error)
}

// ICD10Service exposes the diagnosis code lookup.
type ICD10Service interface {
	List(ctx context.Context, in ListICD10Input) (*ICD10Page, error)
}

// ScreeningRepository persists screening records.
type ScreeningRepository interface {
	Create(ctx context.Context, s *domain.Screening) (*domain.Screening, error)
	ListByDN(ctx context.Context, dn string) ([]domain.Screening, error)
}

// ScreeningService exposes screening record operations.
type ScreeningService interface {
	Create(ctx context.Context, s *domain.Screening) (*domain.Screening, error)
	ListByDN(ctx context.Context, dn string) ([]domain.Screening, error)
}
