package model

import "time"

// AttendanceStatus is the closed set of persisted attendance marks.
type AttendanceStatus string

const (
	StatusPresent   AttendanceStatus = "present"
	StatusExcused   AttendanceStatus = "excused"
	StatusUnexcused AttendanceStatus = "unexcused"
)

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusExcused || s == StatusUnexcused
}

// DefaultStatus is the derived status shown for students without a
// persisted row on a given date. It is never written to the database
// on its own; only an explicit save creates rows.
const DefaultStatus = StatusUnexcused

// AttendanceRecord is a persisted mark, unique per (date, class, student).
type AttendanceRecord struct {
	ID        int              `json:"id"`
	Date      time.Time        `json:"date"`
	ClassID   int              `json:"classId"`
	StudentID int              `json:"studentId"`
	Status    AttendanceStatus `json:"status"`
}

// AttendanceEntry is one student's line in a rendered register sheet.
// The status may be the derived default rather than a persisted value.
type AttendanceEntry struct {
	StudentID int              `json:"studentId"`
	FullName  string           `json:"fullName"`
	IsActive  bool             `json:"isActive"`
	Status    AttendanceStatus `json:"status"`
}

// AttendanceSheet is the register for one class on one date. IsFilled is
// true when at least one row is persisted for the (class, date) pair; it
// does not imply every student has been marked.
type AttendanceSheet struct {
	Date     string            `json:"date"`
	ClassID  int               `json:"classId"`
	IsFilled bool              `json:"isFilled"`
	Records  []AttendanceEntry `json:"records"`
}

// AttendanceRecordInput is one submitted (student, status) pair.
type AttendanceRecordInput struct {
	StudentID int              `json:"studentId" binding:"required"`
	Status    AttendanceStatus `json:"status" binding:"required"`
}

// SaveAttendanceRequest is the payload for the attendance upsert. The
// batch is applied atomically: any invalid record rejects the whole batch.
type SaveAttendanceRequest struct {
	ClassID int                     `json:"classId" binding:"required"`
	Records []AttendanceRecordInput `json:"records" binding:"required,dive"`
}
