package service

import "errors"

// Domain errors surfaced by services. Handlers map these onto the HTTP
// error taxonomy; anything else is treated as an internal failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("resource already exists")
	ErrNoUpdateFields     = errors.New("no update fields provided")
	ErrClassIDRequired    = errors.New("classId is required")
	ErrStudentNotInClass  = errors.New("student does not belong to class")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
