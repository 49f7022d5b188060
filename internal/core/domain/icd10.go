package domain

// ICD10 is a row of the ICD-10-TM diagnosis code table.
type ICD10 struct {
	ID      int    `json:"Id" bson:"Id"`
	Code    string `json:"code,omitempty" bson:"code,omitempty"`
	CodeSet string `json:"codeSet,omitempty" bson:"codeSet,omitempty"`
	Descp   string `json:"descp,omitempty" bson:"descp,omitempty"`
}
