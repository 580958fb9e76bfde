package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/repository"
)

// ClassService handles class registry logic.
type ClassService struct {
	classRepo *repository.ClassRepository
	userRepo  *repository.UserRepository
}

// NewClassService creates a new ClassService.
func NewClassService(classRepo *repository.ClassRepository, userRepo *repository.UserRepository) *ClassService {
	return &ClassService{classRepo: classRepo, userRepo: userRepo}
}

// ListFor returns all classes for admins, owned classes for teachers.
func (s *ClassService) ListFor(ctx context.Context, claims *Claims) ([]model.Class, error) {
	if claims.Role == model.RoleAdmin {
		return s.classRepo.List(ctx)
	}
	return s.classRepo.ListByTeacher(ctx, claims.UserID)
}

// Create registers a class for a teacher. The target must exist and hold
// the teacher role; class names are globally unique.
func (s *ClassService) Create(ctx context.Context, name string, teacherID int) (*model.Class, error) {
	teacher, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if teacher.Role != model.RoleTeacher {
		return nil, ErrNotFound
	}

	class := &model.Class{Name: name, TeacherID: teacherID}
	if err := s.classRepo.Create(ctx, class); err != nil {
		if errors.Is(err, repository.ErrDuplicateClassName) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return class, nil
}
