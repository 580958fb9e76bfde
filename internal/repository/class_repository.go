package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dnevnik/dnevnik-backend/internal/model"
)

// ErrDuplicateClassName is returned when a class name collides with the
// unique constraint on classes.name.
var ErrDuplicateClassName = errors.New("class with this name already exists")

// ClassRepository handles class data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByID retrieves a class by its ID.
func (r *ClassRepository) GetByID(ctx context.Context, id int) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, teacher_id, created_at FROM classes WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.TeacherID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves all classes ordered by id.
func (r *ClassRepository) List(ctx context.Context) ([]model.Class, error) {
	return r.queryClasses(ctx,
		`SELECT id, name, teacher_id, created_at FROM classes ORDER BY id`)
}

// ListByTeacher retrieves the classes owned by one teacher, ordered by id.
func (r *ClassRepository) ListByTeacher(ctx context.Context, teacherID int) ([]model.Class, error) {
	return r.queryClasses(ctx,
		`SELECT id, name, teacher_id, created_at FROM classes WHERE teacher_id = $1 ORDER BY id`,
		teacherID)
}

// FirstByTeacher retrieves the teacher's lowest-id class, used when the
// teacher omits classId on attendance and statistics endpoints.
func (r *ClassRepository) FirstByTeacher(ctx context.Context, teacherID int) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, teacher_id, created_at
		 FROM classes WHERE teacher_id = $1 ORDER BY id LIMIT 1`, teacherID,
	).Scan(&c.ID, &c.Name, &c.TeacherID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// PrimaryClassByTeacher maps each teacher id to their lowest-id class.
func (r *ClassRepository) PrimaryClassByTeacher(ctx context.Context) (map[int]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT ON (teacher_id) teacher_id, id
		 FROM classes ORDER BY teacher_id, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int]int)
	for rows.Next() {
		var teacherID, classID int
		if err := rows.Scan(&teacherID, &classID); err != nil {
			return nil, err
		}
		result[teacherID] = classID
	}
	return result, rows.Err()
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO classes (name, teacher_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		c.Name, c.TeacherID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateClassName
		}
		return err
	}
	return nil
}

func (r *ClassRepository) queryClasses(ctx context.Context, query string, args ...interface{}) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.TeacherID, &c.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
