package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/repository"
)

// StudentService handles the student registry. Every operation is scoped
// through the guard: admin or owning teacher only.
type StudentService struct {
	studentRepo *repository.StudentRepository
	guard       *GuardService
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, guard *GuardService) *StudentService {
	return &StudentService{studentRepo: studentRepo, guard: guard}
}

// ListByClass returns the students of a class the caller may access.
func (s *StudentService) ListByClass(ctx context.Context, claims *Claims, classID int) ([]model.Student, error) {
	if _, err := s.guard.EnsureClassAccess(ctx, claims, classID); err != nil {
		return nil, err
	}
	return s.studentRepo.ListByClass(ctx, classID)
}

// Add creates a student in a class the caller may access.
func (s *StudentService) Add(ctx context.Context, claims *Claims, classID int, fullName string) (*model.Student, error) {
	if _, err := s.guard.EnsureClassAccess(ctx, claims, classID); err != nil {
		return nil, err
	}

	student := &model.Student{FullName: fullName, ClassID: classID}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update patches a student's name and/or active flag. Deactivation is the
// only removal path; students are never hard-deleted.
func (s *StudentService) Update(ctx context.Context, claims *Claims, studentID int, req *model.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.guard.EnsureClassAccess(ctx, claims, student.ClassID); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, studentID, req.FullName, req.IsActive); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(ctx, studentID)
}
