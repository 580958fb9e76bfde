package service

import (
	"testing"
	"time"

	"github.com/dnevnik/dnevnik-backend/internal/model"
)

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func testRoster() []model.Student {
	return []model.Student{
		{ID: 1, FullName: "Anna Ivanova", IsActive: true, ClassID: 10},
		{ID: 2, FullName: "Boris Petrov", IsActive: true, ClassID: 10},
		{ID: 3, FullName: "Vera Sidorova", IsActive: false, ClassID: 10},
	}
}

func TestBuildSheetEmpty(t *testing.T) {
	sheet := BuildSheet(10, testDate, testRoster(), nil)

	if sheet.IsFilled {
		t.Error("sheet with zero persisted rows reported as filled")
	}
	if sheet.Date != "2026-03-02" {
		t.Errorf("date: got %q", sheet.Date)
	}
	if len(sheet.Records) != 3 {
		t.Fatalf("records: got %d, want 3", len(sheet.Records))
	}
	for _, rec := range sheet.Records {
		if rec.Status != model.StatusUnexcused {
			t.Errorf("student %d: got %q, want default unexcused", rec.StudentID, rec.Status)
		}
	}
}

func TestBuildSheetMergesPersistedRows(t *testing.T) {
	rows := []model.AttendanceRecord{
		{StudentID: 2, Status: model.StatusPresent},
	}
	sheet := BuildSheet(10, testDate, testRoster(), rows)

	if !sheet.IsFilled {
		t.Error("sheet with one persisted row reported as unfilled")
	}

	// Order must follow roster order, not row order.
	if sheet.Records[0].StudentID != 1 || sheet.Records[1].StudentID != 2 || sheet.Records[2].StudentID != 3 {
		t.Fatalf("roster order not preserved: %+v", sheet.Records)
	}

	if sheet.Records[0].Status != model.StatusUnexcused {
		t.Errorf("unmarked student: got %q", sheet.Records[0].Status)
	}
	if sheet.Records[1].Status != model.StatusPresent {
		t.Errorf("marked student: got %q, want present", sheet.Records[1].Status)
	}
}

func TestBuildSheetEmptyRoster(t *testing.T) {
	sheet := BuildSheet(10, testDate, nil, nil)
	if sheet.Records == nil {
		t.Error("records must be an empty slice, not nil, for JSON output")
	}
	if len(sheet.Records) != 0 {
		t.Errorf("records: got %d, want 0", len(sheet.Records))
	}
}

func TestValidateBatch(t *testing.T) {
	ids := map[int]struct{}{1: {}, 2: {}}

	ok := []model.AttendanceRecordInput{
		{StudentID: 1, Status: model.StatusPresent},
		{StudentID: 2, Status: model.StatusExcused},
	}
	if err := ValidateBatch(ok, ids); err != nil {
		t.Errorf("valid batch rejected: %v", err)
	}

	foreign := []model.AttendanceRecordInput{
		{StudentID: 1, Status: model.StatusPresent},
		{StudentID: 99, Status: model.StatusPresent},
	}
	if err := ValidateBatch(foreign, ids); err != ErrStudentNotInClass {
		t.Errorf("foreign student: got %v, want ErrStudentNotInClass", err)
	}

	badStatus := []model.AttendanceRecordInput{
		{StudentID: 1, Status: "sleeping"},
	}
	if err := ValidateBatch(badStatus, ids); err != ErrInvalidStatus {
		t.Errorf("unknown status: got %v, want ErrInvalidStatus", err)
	}

	if err := ValidateBatch(nil, ids); err != nil {
		t.Errorf("empty batch rejected: %v", err)
	}
}

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []model.AttendanceStatus{model.StatusPresent, model.StatusExcused, model.StatusUnexcused} {
		if !s.Valid() {
			t.Errorf("%q reported invalid", s)
		}
	}
	if model.AttendanceStatus("absent").Valid() {
		t.Error("unknown status reported valid")
	}
}
