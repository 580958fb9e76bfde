package service

import (
	"testing"
	"time"

	"github.com/dnevnik/dnevnik-backend/internal/model"
)

func TestWeekWindow(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	from, to := WeekWindow(start)

	if !from.Equal(start) {
		t.Errorf("from: got %v, want %v", from, start)
	}
	want := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	if !to.Equal(want) {
		t.Errorf("to: got %v, want %v", to, want)
	}
}

func TestWeekWindowCrossesMonthBoundary(t *testing.T) {
	start := time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)
	_, to := WeekWindow(start)
	want := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	if !to.Equal(want) {
		t.Errorf("to: got %v, want %v", to, want)
	}
}

func TestBuildWeekly(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	students := []model.Student{
		{ID: 1, FullName: "Anna Ivanova", ClassID: 10},
		{ID: 2, FullName: "Boris Petrov", ClassID: 10},
	}
	rows := []model.AttendanceRecord{
		{StudentID: 1, Status: model.StatusPresent},
		{StudentID: 1, Status: model.StatusPresent},
		{StudentID: 1, Status: model.StatusExcused},
		{StudentID: 2, Status: model.StatusUnexcused},
	}

	report := BuildWeekly(10, start, students, rows)

	if report.ClassID != 10 {
		t.Errorf("class id: got %d", report.ClassID)
	}
	if report.From != "2026-03-02" || report.To != "2026-03-08" {
		t.Errorf("window: got [%s, %s], want [2026-03-02, 2026-03-08]", report.From, report.To)
	}

	if report.Summary != (model.StatusCounts{Present: 2, Excused: 1, Unexcused: 1}) {
		t.Errorf("summary: got %+v", report.Summary)
	}

	if len(report.Students) != 2 {
		t.Fatalf("students: got %d, want 2", len(report.Students))
	}
	anna := report.Students[0]
	if anna.StudentID != 1 || anna.Present != 2 || anna.Excused != 1 || anna.Unexcused != 0 {
		t.Errorf("first student: got %+v", anna)
	}
	boris := report.Students[1]
	if boris.StudentID != 2 || boris.Present != 0 || boris.Unexcused != 1 {
		t.Errorf("second student: got %+v", boris)
	}
}

func TestBuildWeeklyZeroFillsStudentsWithoutRecords(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	students := []model.Student{
		{ID: 1, FullName: "Anna Ivanova", ClassID: 10},
	}

	report := BuildWeekly(10, start, students, nil)

	if len(report.Students) != 1 {
		t.Fatalf("students: got %d, want 1", len(report.Students))
	}
	if report.Students[0] != (model.StudentWeeklyStats{StudentID: 1, FullName: "Anna Ivanova"}) {
		t.Errorf("student not zero-filled: %+v", report.Students[0])
	}
	if report.Summary != (model.StatusCounts{}) {
		t.Errorf("summary not zero: %+v", report.Summary)
	}
}

func TestBuildWeeklyCountsDepartedStudentsInSummary(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	students := []model.Student{
		{ID: 1, FullName: "Anna Ivanova", ClassID: 10},
	}
	// Student 99 has records in the window but is no longer enrolled.
	rows := []model.AttendanceRecord{
		{StudentID: 1, Status: model.StatusPresent},
		{StudentID: 99, Status: model.StatusUnexcused},
	}

	report := BuildWeekly(10, start, students, rows)

	if report.Summary != (model.StatusCounts{Present: 1, Unexcused: 1}) {
		t.Errorf("summary: got %+v", report.Summary)
	}
	if len(report.Students) != 1 {
		t.Fatalf("departed student must not appear in the per-student list: %+v", report.Students)
	}
}
