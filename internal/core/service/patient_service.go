package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

// PatientService manages patient chart headers keyed by dental number.
type PatientService struct {
	repo   ports.PatientRepository
	logger zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, logger zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, logger: logger}
}

func (s *PatientService) Create(ctx context.Context, p *domain.Patient) error {
	p.UpdateTime = time.Now().UTC()
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	s.logger.Info().Str("dn", p.DN).Msg("patient created")
	return nil
}

func (s *PatientService) List(ctx context.Context, in ports.ListPatientsInput) (*ports.PatientPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 1
	}
	return s.repo.List(ctx, in)
}

func (s *PatientService) Get(ctx context.Context, dn string) (*domain.Patient, error) {
	return s.repo.FindByDN(ctx, dn)
}

func (s *PatientService) Patch(ctx context.Context, dn string, patch ports.PatientPatch) error {
	p, err := s.repo.FindByDN(ctx, dn)
	if err != nil {
		return err
	}

	applyPatientPatch(p, patch)
	p.UpdateTime = time.Now().UTC()

	return s.repo.Update(ctx, p)
}

func (s *PatientService) Delete(ctx context.Context, dn string) error {
	if err := s.repo.Delete(ctx, dn); err != nil {
		return err
	}
	s.logger.Info().Str("dn", dn).Msg("patient deleted")
	return nil
}

func applyPatientPatch(p *domain.Patient, patch ports.PatientPatch) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&p.TitleTh, patch.TitleTh)
	setString(&p.NameTh, patch.NameTh)
	setString(&p.SurnameTh, patch.SurnameTh)
	setString(&p.TitleEn, patch.TitleEn)
	setString(&p.NameEn, patch.NameEn)
	setString(&p.SurnameEn, patch.SurnameEn)
	setString(&p.Sex, patch.Sex)
	setString(&p.MaritalStatus, patch.MaritalStatus)
	setString(&p.IDNo, patch.IDNo)
	setString(&p.Age, patch.Age)
	setString(&p.Occupation, patch.Occupation)
	setString(&p.Address, patch.Address)
	setString(&p.PhoneHome, patch.PhoneHome)
	setString(&p.PhoneOffice, patch.PhoneOffice)
	setString(&p.EmerNotify, patch.EmerNotify)
	setString(&p.EmerAddress, patch.EmerAddress)
	setString(&p.Parent, patch.Parent)
	setString(&p.ParentPhone, patch.ParentPhone)
	setString(&p.Physician, patch.Physician)
	setString(&p.PhysicianOffice, patch.PhysicianOffice)
	setString(&p.PhysicianPhone, patch.PhysicianPhone)
	setString(&p.RegDate, patch.RegDate)
	setString(&p.BirthDate, patch.BirthDate)
	setString(&p.Priv, patch.Priv)
	setString(&p.OtherAddress, patch.OtherAddress)
	setString(&p.FromHospital, patch.FromHospital)
	if patch.Rdate != nil {
		p.Rdate = patch.Rdate
	}
	if patch.Bdate != nil {
		p.Bdate = patch.Bdate
	}
	if patch.UpdateByUserID != nil {
		p.UpdateByUserID = *patch.UpdateByUserID
	}
}
