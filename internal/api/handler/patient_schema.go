package handler

import (
	"time"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

// createPatientRequest mirrors the legacy patient chart columns.
type createPatientRequest struct {
	DN              string     `json:"dn" validate:"required,max=10"`
	TitleTh         string     `json:"titleTh,omitempty"`
	NameTh          string     `json:"nameTh,omitempty"`
	SurnameTh       string     `json:"surnameTh,omitempty"`
	TitleEn         string     `json:"titleEn,omitempty"`
	NameEn          string     `json:"nameEn,omitempty"`
	SurnameEn       string     `json:"surnameEn,omitempty"`
	Sex             string     `json:"sex,omitempty"`
	MaritalStatus   string     `json:"maritalStatus,omitempty"`
	IDNo            string     `json:"idNo,omitempty" validate:"max=20"`
	Age             string     `json:"age,omitempty"`
	Occupation      string     `json:"occupation,omitempty"`
	Address         string     `json:"address,omitempty"`
	PhoneHome       string     `json:"phoneHome,omitempty"`
	PhoneOffice     string     `json:"phoneOffice,omitempty"`
	EmerNotify      string     `json:"emerNotify,omitempty"`
	EmerAddress     string     `json:"emerAddress,omitempty"`
	Parent          string     `json:"parent,omitempty"`
	ParentPhone     string     `json:"parentPhone,omitempty"`
	Physician       string     `json:"physician,omitempty"`
	PhysicianOffice string     `json:"physicianOffice,omitempty"`
	PhysicianPhone  string     `json:"physicianPhone,omitempty"`
	RegDate         string     `json:"regDate,omitempty"`
	BirthDate       string     `json:"birthDate,omitempty"`
	Priv            string     `json:"priv,omitempty"`
	OtherAddress    string     `json:"otherAddress,omitempty"`
	Rdate           *time.Time `json:"rdate,omitempty"`
	Bdate           *time.Time `json:"bdate,omitempty"`
	FromHospital    string     `json:"fromHospital,omitempty"`
	UpdateByUserID  int        `json:"updateByUserId,omitempty"`
}

func (r createPatientRequest) toDomain() *domain.Patient {
	return &domain.Patient{
		DN:              r.DN,
		TitleTh:         r.TitleTh,
		NameTh:          r.NameTh,
		SurnameTh:       r.SurnameTh,
		TitleEn:         r.TitleEn,
		NameEn:          r.NameEn,
		SurnameEn:       r.SurnameEn,
		Sex:             r.Sex,
		MaritalStatus:   r.MaritalStatus,
		IDNo:            r.IDNo,
		Age:             r.Age,
		Occupation:      r.Occupation,
		Address:         r.Address,
		PhoneHome:       r.PhoneHome,
		PhoneOffice:     r.PhoneOffice,
		EmerNotify:      r.EmerNotify,
		EmerAddress:     r.EmerAddress,
		Parent:          r.Parent,
		ParentPhone:     r.ParentPhone,
		Physician:       r.Physician,
		PhysicianOffice: r.PhysicianOffice,
		PhysicianPhone:  r.PhysicianPhone,
		RegDate:         r.RegDate,
		BirthDate:       r.BirthDate,
		Priv:            r.Priv,
		OtherAddress:    r.OtherAddress,
		Rdate:           r.Rdate,
		Bdate:           r.Bdate,
		FromHospital:    r.FromHospital,
		UpdateByUserID:  r.UpdateByUserID,
	}
}

// patchPatientRequest carries a partial update; absent keys stay untouched.
type patchPatientRequest struct {
	TitleTh         *string    `json:"titleTh"`
	NameTh          *string    `json:"nameTh"`
	SurnameTh       *string    `json:"surnameTh"`
	TitleEn         *string    `json:"titleEn"`
	NameEn          *string    `json:"nameEn"`
	SurnameEn       *string    `json:"surnameEn"`
	Sex             *string    `json:"sex"`
	MaritalStatus   *string    `json:"maritalStatus"`
	IDNo            *string    `json:"idNo"`
	Age             *string    `json:"age"`
	Occupation      *string    `json:"occupation"`
	Address         *string    `json:"address"`
	PhoneHome       *string    `json:"phoneHome"`
	PhoneOffice     *string    `json:"phoneOffice"`
	EmerNotify      *string    `json:"emerNotify"`
	EmerAddress     *string    `json:"emerAddress"`
	Parent          *string    `json:"parent"`
	ParentPhone     *string    `json:"parentPhone"`
	Physician       *string    `json:"physician"`
	PhysicianOffice *string    `json:"physicianOffice"`
	PhysicianPhone  *string    `json:"physicianPhone"`
	RegDate         *string    `json:"regDate"`
	BirthDate       *string    `json:"birthDate"`
	Priv            *string    `json:"priv"`
	OtherAddress    *string    `json:"otherAddress"`
	Rdate           *time.Time `json:"rdate"`
	Bdate           *time.Time `json:"bdate"`
	FromHospital    *string    `json:"fromHospital"`
	UpdateByUserID  *int       `json:"updateByUserId"`
}

func (r patchPatientRequest) toPatch() ports.PatientPatch {
	return ports.PatientPatch{
		TitleTh:         r.TitleTh,
		NameTh:          r.NameTh,
		SurnameTh:       r.SurnameTh,
		TitleEn:         r.TitleEn,
		NameEn:          r.NameEn,
		SurnameEn:       r.SurnameEn,
		Sex:             r.Sex,
		MaritalStatus:   r.MaritalStatus,
		IDNo:            r.IDNo,
		Age:             r.Age,
		Occupation:      r.Occupation,
		Address:         r.Address,
		PhoneHome:       r.PhoneHome,
		PhoneOffice:     r.PhoneOffice,
		EmerNotify:      r.EmerNotify,
		EmerAddress:     r.EmerAddress,
		Parent:          r.Parent,
		ParentPhone:     r.ParentPhone,
		Physician:       r.Physician,
		PhysicianOffice: r.PhysicianOffice,
		PhysicianPhone:  r.PhysicianPhone,
		RegDate:         r.RegDate,
		BirthDate:       r.BirthDate,
		Priv:            r.Priv,
		OtherAddress:    r.OtherAddress,
		Rdate:           r.Rdate,
		Bdate:           r.Bdate,
		FromHospital:    r.FromHospital,
		UpdateByUserID:  r.UpdateByUserID,
	}
}
