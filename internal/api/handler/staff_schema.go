package handler

import "github.com/echart-dentnu/echart-api/internal/core/domain"

// createUserRequest mirrors the legacy staff user columns; validation tags
// reproduce the original field constraints.
type createUserRequest struct {
	License   string  `json:"license,omitempty" validate:"max=10"`
	Fname     string  `json:"fName" validate:"required,max=50"`
	Lname     string  `json:"lName,omitempty" validate:"max=50"`
	StudentID string  `json:"studentID,omitempty" validate:"max=15"`
	RoleID    int     `json:"roleID" validate:"required"`
	Status    *int    `json:"status" validate:"required,gte=0,lte=1"`
	Users     string  `json:"users" validate:"required,max=50"`
	Passw     string  `json:"passw" validate:"required,max=32"`
	Tname     string  `json:"tName,omitempty" validate:"max=45"`
	Sort      float64 `json:"sort,omitempty" validate:"gte=0,lte=3"`
	Type      string  `json:"type,omitempty" validate:"max=10"`
	ClinicID  string  `json:"clinicid,omitempty" validate:"max=255"`
}

func (r createUserRequest) toDomain() *domain.User {
	status := 0
	if r.Status != nil {
		status = *r.Status
	}
	return &domain.User{
		License:   r.License,
		Fname:     r.Fname,
		Lname:     r.Lname,
		StudentID: r.StudentID,
		RoleID:    r.RoleID,
		Status:    status,
		Users:     r.Users,
		Passw:     r.Passw,
		Tname:     r.Tname,
		Sort:      r.Sort,
		Type:      r.Type,
		ClinicID:  r.ClinicID,
	}
}

// patchUserRequest carries a partial update; absent keys stay untouched.
type patchUserRequest struct {
	License   *string  `json:"license"`
	Fname     *string  `json:"fName"`
	Lname     *string  `json:"lName"`
	StudentID *string  `json:"studentID"`
	RoleID    *int     `json:"roleID" validate:"omitempty,gte=1,lte=12"`
	Status    *int     `json:"status" validate:"omitempty,gte=0,lte=1"`
	Users     *string  `json:"users"`
	Passw     *string  `json:"passw"`
	Tname     *string  `json:"tName"`
	Sort      *float64 `json:"sort" validate:"omitempty,gte=0,lte=3"`
	Type      *string  `json:"type"`
	ClinicID  *string  `json:"clinicid"`
}

// userSummary is the staff directory projection; it never exposes the
// password digest or the login status flag.
type userSummary struct {
	UserID    int    `json:"userId"`
	License   string `json:"license,omitempty"`
	Fname     string `json:"fName"`
	Lname     string `json:"lName,omitempty"`
	StudentID string `json:"studentID,omitempty"`
	RoleID    int    `json:"roleID"`
	Tname     string `json:"tName,omitempty"`
	ClinicID  string `json:"clinicid,omitempty"`
}

func toUserSummary(u domain.User) userSummary {
	return userSummary{
		UserID:    u.UserID,
		License:   u.License,
		Fname:     u.Fname,
		Lname:     u.Lname,
		StudentID: u.StudentID,
		RoleID:    u.RoleID,
		Tname:     u.Tname,
		ClinicID:  u.ClinicID,
	}
}

// paginatedUsersResponse is the legacy list envelope.
type paginatedUsersResponse struct {
	Data      []userSummary `json:"data"`
	Total     int64         `json:"Total"`
	PageCount int           `json:"PageCount"`
}
