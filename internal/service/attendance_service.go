package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dnevnik/dnevnik-backend/internal/config"
	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/repository"
)

// DateFormat is the wire format for register dates.
const DateFormat = "2006-01-02"

// AttendanceService reconciles submitted rosters against persisted
// attendance rows and renders register sheets.
type AttendanceService struct {
	studentRepo    *repository.StudentRepository
	attendanceRepo *repository.AttendanceRepository
	classRepo      *repository.ClassRepository
	guard          *GuardService
	rdb            *redis.Client
	log            zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(
	studentRepo *repository.StudentRepository,
	attendanceRepo *repository.AttendanceRepository,
	classRepo *repository.ClassRepository,
	guard *GuardService,
	rdb *redis.Client,
	log zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		classRepo:      classRepo,
		guard:          guard,
		rdb:            rdb,
		log:            log,
	}
}

// Sheet renders the register for one class on one date, scoped to the
// caller. A nil classID resolves to the teacher's own class; for admins a
// nil classID is handled by Sheets instead.
func (s *AttendanceService) Sheet(ctx context.Context, claims *Claims, date time.Time, classID *int) (*model.AttendanceSheet, error) {
	resolved, err := s.guard.ResolveClassID(ctx, claims, classID)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.EnsureClassAccess(ctx, claims, resolved); err != nil {
		return nil, err
	}
	return s.sheetForClass(ctx, resolved, date)
}

// Sheets renders the register of every class on one date, ordered by
// class id ascending. Admin-only aggregate view.
func (s *AttendanceService) Sheets(ctx context.Context, date time.Time) ([]model.AttendanceSheet, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sheets := make([]model.AttendanceSheet, 0, len(classes))
	for _, class := range classes {
		sheet, err := s.sheetForClass(ctx, class.ID, date)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, *sheet)
	}
	return sheets, nil
}

// Save validates and applies an attendance batch. The whole batch is
// rejected before any write when a student is outside the class or a
// status is unknown; the persistence layer then applies all records in
// one transaction.
func (s *AttendanceService) Save(ctx context.Context, claims *Claims, date time.Time, req *model.SaveAttendanceRequest) error {
	if _, err := s.guard.EnsureClassAccess(ctx, claims, req.ClassID); err != nil {
		return err
	}

	ids, err := s.studentRepo.IDSetByClass(ctx, req.ClassID)
	if err != nil {
		return err
	}
	if err := ValidateBatch(req.Records, ids); err != nil {
		return err
	}

	if err := s.attendanceRepo.UpsertBatch(ctx, req.ClassID, date, req.Records); err != nil {
		return err
	}

	s.invalidateWeeklyCache(ctx, req.ClassID, date)
	return nil
}

func (s *AttendanceService) sheetForClass(ctx context.Context, classID int, date time.Time) (*model.AttendanceSheet, error) {
	students, err := s.studentRepo.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	rows, err := s.attendanceRepo.ListByClassDate(ctx, classID, date)
	if err != nil {
		return nil, err
	}
	sheet := BuildSheet(classID, date, students, rows)
	return &sheet, nil
}

// invalidateWeeklyCache drops the cached weekly reports whose 7-day
// window contains the written date. Cache trouble is logged, never
// surfaced: the report is recomputed on the next read anyway.
func (s *AttendanceService) invalidateWeeklyCache(ctx context.Context, classID int, date time.Time) {
	keys := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		start := date.AddDate(0, 0, -i)
		keys = append(keys, config.CacheKey.WeeklyStatsKey(classID, start))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Int("class_id", classID).Msg("weekly stats cache invalidation failed")
	}
}

// BuildSheet merges the class roster with persisted rows. Students without
// a row get the derived default status; IsFilled is true iff at least one
// row exists for the (class, date) pair. Entry order follows roster order.
func BuildSheet(classID int, date time.Time, students []model.Student, rows []model.AttendanceRecord) model.AttendanceSheet {
	statusByStudent := make(map[int]model.AttendanceStatus, len(rows))
	for _, row := range rows {
		statusByStudent[row.StudentID] = row.Status
	}

	records := make([]model.AttendanceEntry, 0, len(students))
	for _, student := range students {
		status, ok := statusByStudent[student.ID]
		if !ok {
			status = model.DefaultStatus
		}
		records = append(records, model.AttendanceEntry{
			StudentID: student.ID,
			FullName:  student.FullName,
			IsActive:  student.IsActive,
			Status:    status,
		})
	}

	return model.AttendanceSheet{
		Date:     date.Format(DateFormat),
		ClassID:  classID,
		IsFilled: len(rows) > 0,
		Records:  records,
	}
}

// ValidateBatch checks every submitted record against the class roster
// and the status enum. Any violation rejects the whole batch.
func ValidateBatch(records []model.AttendanceRecordInput, classStudentIDs map[int]struct{}) error {
	for _, rec := range records {
		if _, ok := classStudentIDs[rec.StudentID]; !ok {
			return ErrStudentNotInClass
		}
		if !rec.Status.Valid() {
			return ErrInvalidStatus
		}
	}
	return nil
}
