package model

import "time"

// Student belongs to exactly one class. Students are deactivated via
// IsActive, never hard-deleted.
type Student struct {
	ID        int       `json:"id"`
	FullName  string    `json:"fullName"`
	IsActive  bool      `json:"isActive"`
	ClassID   int       `json:"classId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateStudentRequest is the payload for adding a student to a class.
type CreateStudentRequest struct {
	FullName string `json:"fullName" binding:"required,min=1,max=200"`
}

// UpdateStudentRequest carries optional student fields. An empty patch is
// a no-op, not an error.
type UpdateStudentRequest struct {
	FullName *string `json:"fullName" binding:"omitempty,min=1,max=200"`
	IsActive *bool   `json:"isActive"`
}
