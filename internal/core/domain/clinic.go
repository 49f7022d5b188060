package domain

// Clinic is a treatment clinic within the hospital.
type Clinic struct {
	ClinicID   int    `json:"clinicID" bson:"clinicID"`
	ClinicName string `json:"clinicName" bson:"clinicName"`
}
