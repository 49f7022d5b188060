package domain

import "time"

// Patient is a hospital patient chart header. DN (dental number) is the
// natural key assigned by medical records at registration.
type Patient struct {
	DN              string     `json:"dn" bson:"dn"`
	TitleTh         string     `json:"titleTh,omitempty" bson:"titleTh,omitempty"`
	NameTh          string     `json:"nameTh,omitempty" bson:"nameTh,omitempty"`
	SurnameTh       string     `json:"surnameTh,omitempty" bson:"surnameTh,omitempty"`
	TitleEn         string     `json:"titleEn,omitempty" bson:"titleEn,omitempty"`
	NameEn          string     `json:"nameEn,omitempty" bson:"nameEn,omitempty"`
	SurnameEn       string     `json:"surnameEn,omitempty" bson:"surnameEn,omitempty"`
	Sex             string     `json:"sex,omitempty" bson:"sex,omitempty"`
	MaritalStatus   string     `json:"maritalStatus,omitempty" bson:"maritalStatus,omitempty"`
	IDNo            string     `json:"idNo,omitempty" bson:"idNo,omitempty"`
	Age             string     `json:"age,omitempty" bson:"age,omitempty"`
	Occupation      string     `json:"occupation,omitempty" bson:"occupation,omitempty"`
	Address         string     `json:"address,omitempty" bson:"address,omitempty"`
	PhoneHome       string     `json:"phoneHome,omitempty" bson:"phoneHome,omitempty"`
	PhoneOffice     string     `json:"phoneOffice,omitempty" bson:"phoneOffice,omitempty"`
	EmerNotify      string     `json:"emerNotify,omitempty" bson:"emerNotify,omitempty"`
	EmerAddress     string     `json:"emerAddress,omitempty" bson:"emerAddress,omitempty"`
	Parent          string     `json:"parent,omitempty" bson:"parent,omitempty"`
	ParentPhone     string     `json:"parentPhone,omitempty" bson:"parentPhone,omitempty"`
	Physician       string     `json:"physician,omitempty" bson:"physician,omitempty"`
	PhysicianOffice string     `json:"physicianOffice,omitempty" bson:"physicianOffice,omitempty"`
	PhysicianPhone  string     `json:"physicianPhone,omitempty" bson:"physicianPhone,omitempty"`
	RegDate         string     `json:"regDate,omitempty" bson:"regDate,omitempty"`
	BirthDate       string     `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Priv            string     `json:"priv,omitempty" bson:"priv,omitempty"`
	OtherAddress    string     `json:"otherAddress,omitempty" bson:"otherAddress,omitempty"`
	Rdate           *time.Time `json:"rdate,omitempty" bson:"rdate,omitempty"`
	Bdate           *time.Time `json:"bdate,omitempty" bson:"bdate,omitempty"`
	FromHospital    string     `json:"fromHospital,omitempty" bson:"fromHospital,omitempty"`
	UpdateByUserID  int        `json:"updateByUserId,omitempty" bson:"updateByUserId,omitempty"`
	UpdateTime      time.Time  `json:"updateTime" bson:"updateTime"`
}

// PatientSummary is the lightweight projection used in list responses.
type PatientSummary struct {
	DN        string `json:"dn" bson:"dn"`
	TitleTh   string `json:"titleTh,omitempty" bson:"titleTh,omitempty"`
	NameTh    string `json:"nameTh,omitempty" bson:"nameTh,omitempty"`
	SurnameTh string `json:"surnameTh,omitempty" bson:"surnameTh,omitempty"`
	IDNo      string `json:"idNo,omitempty" bson:"idNo,omitempty"`
}
