package model

import "time"

// Class represents a school class owned by exactly one teacher.
type Class struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	TeacherID int       `json:"teacherId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateClassRequest is the payload for creating a class.
type CreateClassRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	TeacherID int    `json:"teacherId" binding:"required"`
}
