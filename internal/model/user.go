package model

import "time"

// Role is the closed set of account roles. All permission decisions are
// made against this enum, never against raw strings from the wire.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// User represents a teacher or admin account.
// PromotedBy is set only for admins that were promoted by another admin;
// the seeded admin carries nil.
type User struct {
	ID           int       `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	PromotedBy   *int      `json:"promotedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSummary is the admin-facing listing row. ClassID is the lowest-id
// class the user teaches, nil when they own none.
type UserSummary struct {
	ID         int    `json:"id"`
	Login      string `json:"login"`
	Role       Role   `json:"role"`
	ClassID    *int   `json:"classId"`
	PromotedBy *int   `json:"promotedBy"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Login    string `json:"login" binding:"required,min=1,max=64"`
	Password string `json:"password" binding:"required,min=1,max=128"`
}

// CreateTeacherRequest is the payload for registering a teacher account.
type CreateTeacherRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// UpdateCredentialsRequest carries an optional new login and/or password.
// At least one field must be present; the handler rejects empty patches.
type UpdateCredentialsRequest struct {
	Login    *string `json:"login" binding:"omitempty,min=3,max=64"`
	Password *string `json:"password" binding:"omitempty,min=6,max=128"`
}

// UpdateRoleRequest is the payload for changing an account's role.
type UpdateRoleRequest struct {
	Role Role `json:"role" binding:"required,oneof=teacher admin"`
}
