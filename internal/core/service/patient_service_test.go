package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

type stubPatientRepo struct {
	patients map[string]*domain.Patient
	updated  *domain.Patient
}

func newStubPatientRepo(patients ...*domain.Patient) *stubPatientRepo {
	r := &stubPatientRepo{patients: make(map[string]*domain.Patient)}
	for _, p := range patients {
		clone := *p
		r.patients[p.DN] = &clone
	}
	return r
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) error {
	if _, ok := r.patients[p.DN]; ok {
		return domain.ErrPatientExists
	}
	clone := *p
	r.patients[p.DN] = &clone
	return nil
}

func (r *stubPatientRepo) FindByDN(_ context.Context, dn string) (*domain.Patient, error) {
	p, ok := r.patients[dn]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) List(_ context.Context, _ ports.ListPatientsInput) (*ports.PatientPage, error) {
	return &ports.PatientPage{}, nil
}

func (r *stubPatientRepo) Update(_ context.Context, p *domain.Patient) error {
	if _, ok := r.patients[p.DN]; !ok {
		return domain.ErrPatientNotFound
	}
	r.updated = p
	return nil
}

func (r *stubPatientRepo) Delete(_ context.Context, dn string) error {
	if _, ok := r.patients[dn]; !ok {
		return domain.ErrPatientNotFound
	}
	delete(r.patients, dn)
	return nil
}

func TestPatientService_Create_SetsUpdateTime(t *testing.T) {
	repo := newStubPatientRepo()
	svc := NewPatientService(repo, zerolog.Nop())

	p := &domain.Patient{DN: "630001", NameTh: "สมชาย"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.UpdateTime.IsZero() {
		t.Fatalf("expected update time to be set")
	}
}

func TestPatientService_Create_Duplicate(t *testing.T) {
	repo := newStubPatientRepo(&domain.Patient{DN: "630001"})
	svc := NewPatientService(repo, zerolog.Nop())

	if err := svc.Create(context.Background(), &domain.Patient{DN: "630001"}); !errors.Is(err, domain.ErrPatientExists) {
		t.Fatalf("expected ErrPatientExists, got %v", err)
	}
}

func TestPatientService_Patch_AppliesOnlyGivenFields(t *testing.T) {
	repo := newStubPatientRepo(&domain.Patient{DN: "630001", NameTh: "สมชาย", SurnameTh: "ใจดี", Sex: "M"})
	svc := NewPatientService(repo, zerolog.Nop())

	name := "สมหญิง"
	if err := svc.Patch(context.Background(), "630001", ports.PatientPatch{NameTh: &name}); err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	if repo.updated == nil {
		t.Fatalf("expected repository update")
	}
	if repo.updated.NameTh != "สมหญิง" {
		t.Fatalf("patched field not applied: %+v", repo.updated)
	}
	if repo.updated.SurnameTh != "ใจดี" || repo.updated.Sex != "M" {
		t.Fatalf("untouched fields must survive: %+v", repo.updated)
	}
	if repo.updated.UpdateTime.IsZero() {
		t.Fatalf("expected update time to be refreshed")
	}
}

func TestPatientService_Patch_UnknownDN(t *testing.T) {
	svc := NewPatientService(newStubPatientRepo(), zerolog.Nop())

	name := "x"
	if err := svc.Patch(context.Background(), "999999", ports.PatientPatch{NameTh: &name}); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestPatientService_Delete(t *testing.T) {
	repo := newStubPatientRepo(&domain.Patient{DN: "630001"})
	svc := NewPatientService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "630001"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), "630001"); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound on second delete, got %v", err)
	}
}
