package ports

import (
	"context"
	"time"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
)

// ListPatientsInput carries pagination and the keyword filter for the
// patient listing. Keyword matches dn, idNo and the Thai name fields.
type ListPatientsInput struct {
	Page    int
	Limit   int
	Keyword string
}

// PatientPage is one page of patient summaries plus pagination totals.
type PatientPage struct {
	Data      []domain.PatientSummary
	Total     int64
	PageCount int
}

// PatientPatch carries a partial patient update. Nil fields are left untouched.
type PatientPatch struct {
	TitleTh         *string
	NameTh          *string
	SurnameTh       *string
	TitleEn         *string
	NameEn          *string
	SurnameEn       *string
	Sex             *string
	MaritalStatus   *string
	IDNo            *string
	Age             *string
	Occupation      *string
	Address         *string
	PhoneHome       *string
	PhoneOffice     *string
	EmerNotify      *string
	EmerAddress     *string
	Parent          *string
	ParentPhone     *string
	Physician       *string
	PhysicianOffice *string
	PhysicianPhone  *string
	RegDate         *string
	BirthDate       *string
	Priv            *string
	OtherAddress    *string
	Rdate           *time.Time
	Bdate           *time.Time
	FromHospital    *string
	UpdateByUserID  *int
}

// PatientRepository persists patient charts.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) error
	FindByDN(ctx context.Context, dn string) (*domain.Patient, error)
	List(ctx context.Context, in ListPatientsInput) (*PatientPage, error)
	Update(ctx context.Context, p *domain.Patient) error
	Delete(ctx context.Context, dn string) error
}

// PatientService exposes patient chart operations.
type PatientService interface {
	Create(ctx context.Context, p *domain.Patient) error
	List(ctx context.Context, in ListPatientsInput) (*PatientPage, error)
	Get(ctx context.Context, dn string) (*domain.Patient, error)
	Patch(ctx context.Context, dn string, patch PatientPatch) error
	Delete(ctx context.Context, dn string) error
}
