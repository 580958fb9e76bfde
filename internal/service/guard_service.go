package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/repository"
)

// GuardService centralizes ownership and role-protection decisions.
// Role gating for whole endpoints lives in middleware; everything that
// needs data (class ownership, promoted-by protection, class resolution)
// lives here so handlers never re-implement permission logic.
type GuardService struct {
	classRepo *repository.ClassRepository
}

// NewGuardService creates a new GuardService.
func NewGuardService(classRepo *repository.ClassRepository) *GuardService {
	return &GuardService{classRepo: classRepo}
}

// EnsureClassAccess loads the class and verifies the caller may write to
// it: admins always pass, teachers must own the class.
func (s *GuardService) EnsureClassAccess(ctx context.Context, claims *Claims, classID int) (*model.Class, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanAccessClass(claims, class) {
		return nil, ErrForbidden
	}
	return class, nil
}

// ResolveClassID picks the class for attendance/statistics requests that
// omit classId. Teachers get their lowest-id owned class (ErrNotFound when
// they own none). Admins must name a class here; callers handle the
// all-classes aggregate before resolving.
func (s *GuardService) ResolveClassID(ctx context.Context, claims *Claims, requested *int) (int, error) {
	if requested != nil {
		return *requested, nil
	}
	if claims.Role == model.RoleAdmin {
		return 0, ErrClassIDRequired
	}
	class, err := s.classRepo.FirstByTeacher(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return class.ID, nil
}

// CanAccessClass reports whether the caller may read/write the class.
func CanAccessClass(claims *Claims, class *model.Class) bool {
	if claims.Role == model.RoleAdmin {
		return true
	}
	return class.TeacherID == claims.UserID
}

// CanChangeRole reports whether the acting admin may change the target's
// role. An admin promoted by X may not change X's role; this blocks an
// appointee from demoting their own appointer. Everything else passes.
func CanChangeRole(actor, target *model.User) bool {
	return actor.PromotedBy == nil || *actor.PromotedBy != target.ID
}
