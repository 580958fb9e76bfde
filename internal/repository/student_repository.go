package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dnevnik/dnevnik-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name, is_active, class_id, created_at, updated_at
		 FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.FullName, &s.IsActive, &s.ClassID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListByClass retrieves all students of a class ordered by id. Inactive
// students are included; callers decide how to present them.
func (r *StudentRepository) ListByClass(ctx context.Context, classID int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, is_active, class_id, created_at, updated_at
		 FROM students WHERE class_id = $1 ORDER BY id`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.FullName, &s.IsActive, &s.ClassID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// IDSetByClass returns the set of student ids belonging to a class.
func (r *StudentRepository) IDSetByClass(ctx context.Context, classID int) (map[int]struct{}, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM students WHERE class_id = $1`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int]struct{})
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (full_name, class_id)
		 VALUES ($1, $2)
		 RETURNING id, is_active, created_at, updated_at`,
		s.FullName, s.ClassID,
	).Scan(&s.ID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
}

// Update rewrites the supplied fields only. Nil fields are left untouched.
func (r *StudentRepository) Update(ctx context.Context, id int, fullName *string, isActive *bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students
		 SET full_name = COALESCE($1, full_name),
		     is_active = COALESCE($2, is_active),
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		fullName, isActive, id,
	)
	return err
}
