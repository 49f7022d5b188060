package domain

// Account login state. The status flag is a last-known login/logout marker
// only, not a session object: concurrent logins from several devices share
// the same flag and the last writer wins.
const (
	StatusLoggedOut = 0
	StatusLoggedIn  = 1
)

// User is a staff account in the dental record user table.
// Passw holds the password digest and is never serialised to JSON.
type User struct {
	UserID    int     `json:"userId" bson:"userId"`
	License   string  `json:"license,omitempty" bson:"license,omitempty"`
	Fname     string  `json:"fName" bson:"fName"`
	Lname     string  `json:"lName,omitempty" bson:"lName,omitempty"`
	StudentID string  `json:"studentID,omitempty" bson:"studentID,omitempty"`
	RoleID    int     `json:"roleID" bson:"roleID"`
	Status    int     `json:"status" bson:"status"`
	Users     string  `json:"users" bson:"users"`
	Passw     string  `json:"-" bson:"passw"`
	Tname     string  `json:"tName,omitempty" bson:"tName,omitempty"`
	Sort      float64 `json:"sort,omitempty" bson:"sort,omitempty"`
	Type      string  `json:"type,omitempty" bson:"type,omitempty"`
	ClinicID  string  `json:"clinicid,omitempty" bson:"clinicid,omitempty"`
}
