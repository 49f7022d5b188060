package domain

import "time"

// TreatmentUrgency classifies how soon a screened patient must be treated.
type TreatmentUrgency string

const (
	UrgencyEmergency TreatmentUrgency = "emergency"
	UrgencyUrgent    TreatmentUrgency = "urgency"
	UrgencyNonUrgent TreatmentUrgency = "nonurgency"
)

// ValidUrgency reports whether u is one of the enumerated urgency levels.
func ValidUrgency(u TreatmentUrgency) bool {
	switch u {
	case UrgencyEmergency, UrgencyUrgent, UrgencyNonUrgent:
		return true
	}
	return false
}

// Screening is a pre-treatment screening record for a patient visit.
// The tri-state medical history flags use *bool: nil means not asked.
type Screening struct {
	ScreeningID      int              `json:"screeningId" bson:"screeningId"`
	DN               string           `json:"dn" bson:"dn"`
	Sys              uint             `json:"sys,omitempty" bson:"sys,omitempty"`
	Dia              uint             `json:"dia,omitempty" bson:"dia,omitempty"`
	PR               uint             `json:"pr,omitempty" bson:"pr,omitempty"`
	Temperature      uint             `json:"temperature,omitempty" bson:"temperature,omitempty"`
	TreatmentUrgency TreatmentUrgency `json:"treatmentUrgency" bson:"treatmentUrgency"`
	BloodPressure    *bool            `json:"bloodpressure,omitempty" bson:"bloodpressure,omitempty"`
	Diabetes         *bool            `json:"diabete,omitempty" bson:"diabete,omitempty"`
	HeartDisease     *bool            `json:"heartdisease,omitempty" bson:"heartdisease,omitempty"`
	Thyroid          *bool            `json:"thyroid,omitempty" bson:"thyroid,omitempty"`
	Stroke           *bool            `json:"stroke,omitempty" bson:"stroke,omitempty"`
	Immunodeficiency *bool            `json:"immunodeficiency,omitempty" bson:"immunodeficiency,omitempty"`
	Pregnant         uint             `json:"pregnant,omitempty" bson:"pregnant,omitempty"`
	Other            string           `json:"other,omitempty" bson:"other,omitempty"`
	CreatedAt        time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time        `json:"updateAt" bson:"updateAt"`
}
