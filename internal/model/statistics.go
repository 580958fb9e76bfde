package model

// StatusCounts tallies attendance records per status.
type StatusCounts struct {
	Present   int `json:"present"`
	Excused   int `json:"excused"`
	Unexcused int `json:"unexcused"`
}

// StudentWeeklyStats is one student's breakdown inside a weekly report.
// Students with no records in the window appear with all counts zero.
type StudentWeeklyStats struct {
	StudentID int    `json:"studentId"`
	FullName  string `json:"fullName"`
	Present   int    `json:"present"`
	Excused   int    `json:"excused"`
	Unexcused int    `json:"unexcused"`
}

// WeeklyStatistics is the 7-day report for one class, covering the
// inclusive window [From, To] where To = From + 6 days.
type WeeklyStatistics struct {
	ClassID  int                  `json:"classId"`
	From     string               `json:"from"`
	To       string               `json:"to"`
	Summary  StatusCounts         `json:"summary"`
	Students []StudentWeeklyStats `json:"students"`
}
