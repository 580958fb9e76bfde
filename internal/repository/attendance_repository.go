package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dnevnik/dnevnik-backend/internal/model"
)

// AttendanceRepository handles attendance record data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// ListByClassDate retrieves the persisted rows for one class on one date.
func (r *AttendanceRepository) ListByClassDate(ctx context.Context, classID int, date time.Time) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, date, class_id, student_id, status
		 FROM attendance WHERE class_id = $1 AND date = $2`,
		classID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ListByClassRange retrieves rows for one class with date in [from, to]
// inclusive.
func (r *AttendanceRepository) ListByClassRange(ctx context.Context, classID int, from, to time.Time) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, date, class_id, student_id, status
		 FROM attendance WHERE class_id = $1 AND date >= $2 AND date <= $3`,
		classID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// UpsertBatch applies a validated batch of (student, status) pairs for one
// (class, date) in a single transaction. Each record is an atomic
// conditional upsert keyed by the (date, class_id, student_id) unique
// constraint, so concurrent submissions for the same key serialize to
// last-write-wins instead of racing into duplicate rows.
func (r *AttendanceRepository) UpsertBatch(ctx context.Context, classID int, date time.Time, records []model.AttendanceRecordInput) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, rec := range records {
		_, err := tx.Exec(ctx,
			`INSERT INTO attendance (date, class_id, student_id, status)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (date, class_id, student_id)
			 DO UPDATE SET status = EXCLUDED.status`,
			date, classID, rec.StudentID, rec.Status,
		)
		if err != nil {
			return fmt.Errorf("upsert attendance for student %d: %w", rec.StudentID, err)
		}
	}

	return tx.Commit(ctx)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRecords(rows pgxRows) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.ClassID, &rec.StudentID, &rec.Status); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
