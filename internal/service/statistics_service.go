package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dnevnik/dnevnik-backend/internal/config"
	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/repository"
)

// StatisticsService computes weekly attendance reports. Reports are
// cached in Redis per (class, window start); the attendance service
// invalidates the covering windows on every save.
type StatisticsService struct {
	studentRepo    *repository.StudentRepository
	attendanceRepo *repository.AttendanceRepository
	classRepo      *repository.ClassRepository
	guard          *GuardService
	rdb            *redis.Client
	cacheTTL       time.Duration
	log            zerolog.Logger
}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService(
	studentRepo *repository.StudentRepository,
	attendanceRepo *repository.AttendanceRepository,
	classRepo *repository.ClassRepository,
	guard *GuardService,
	rdb *redis.Client,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *StatisticsService {
	return &StatisticsService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		classRepo:      classRepo,
		guard:          guard,
		rdb:            rdb,
		cacheTTL:       cacheTTL,
		log:            log,
	}
}

// Weekly returns the 7-day report for one class, scoped to the caller.
func (s *StatisticsService) Weekly(ctx context.Context, claims *Claims, startDate time.Time, classID *int) (*model.WeeklyStatistics, error) {
	resolved, err := s.guard.ResolveClassID(ctx, claims, classID)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.EnsureClassAccess(ctx, claims, resolved); err != nil {
		return nil, err
	}
	return s.weeklyForClass(ctx, resolved, startDate)
}

// WeeklyAll returns the 7-day report of every class, ordered by class id
// ascending. Admin-only aggregate view.
func (s *StatisticsService) WeeklyAll(ctx context.Context, startDate time.Time) ([]model.WeeklyStatistics, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]model.WeeklyStatistics, 0, len(classes))
	for _, class := range classes {
		report, err := s.weeklyForClass(ctx, class.ID, startDate)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

func (s *StatisticsService) weeklyForClass(ctx context.Context, classID int, startDate time.Time) (*model.WeeklyStatistics, error) {
	cacheKey := config.CacheKey.WeeklyStatsKey(classID, startDate)

	if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var report model.WeeklyStatistics
		if err := json.Unmarshal(cached, &report); err == nil {
			return &report, nil
		}
		// Corrupt entry; fall through and recompute.
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Str("key", cacheKey).Msg("weekly stats cache read failed")
	}

	students, err := s.studentRepo.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	from, to := WeekWindow(startDate)
	rows, err := s.attendanceRepo.ListByClassRange(ctx, classID, from, to)
	if err != nil {
		return nil, err
	}

	report := BuildWeekly(classID, startDate, students, rows)

	if payload, err := json.Marshal(report); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", cacheKey).Msg("weekly stats cache write failed")
		}
	}
	return &report, nil
}

// WeekWindow returns the inclusive 7-day window starting at startDate.
func WeekWindow(startDate time.Time) (from, to time.Time) {
	return startDate, startDate.AddDate(0, 0, 6)
}

// BuildWeekly tallies records per status, class-wide and per student.
// Every current student appears, zero-filled when they have no records in
// the window. Rows for students no longer in the class still count toward
// the class summary.
func BuildWeekly(classID int, startDate time.Time, students []model.Student, rows []model.AttendanceRecord) model.WeeklyStatistics {
	from, to := WeekWindow(startDate)

	byStudent := make(map[int]*model.StudentWeeklyStats, len(students))
	ordered := make([]model.StudentWeeklyStats, len(students))
	for i, student := range students {
		ordered[i] = model.StudentWeeklyStats{
			StudentID: student.ID,
			FullName:  student.FullName,
		}
		byStudent[student.ID] = &ordered[i]
	}

	var summary model.StatusCounts
	for _, row := range rows {
		bump(&summary, row.Status)
		if stats, ok := byStudent[row.StudentID]; ok {
			switch row.Status {
			case model.StatusPresent:
				stats.Present++
			case model.StatusExcused:
				stats.Excused++
			case model.StatusUnexcused:
				stats.Unexcused++
			}
		}
	}

	return model.WeeklyStatistics{
		ClassID:  classID,
		From:     from.Format(DateFormat),
		To:       to.Format(DateFormat),
		Summary:  summary,
		Students: ordered,
	}
}

func bump(counts *model.StatusCounts, status model.AttendanceStatus) {
	switch status {
	case model.StatusPresent:
		counts.Present++
	case model.StatusExcused:
		counts.Excused++
	case model.StatusUnexcused:
		counts.Unexcused++
	}
}
