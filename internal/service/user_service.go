package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/repository"
)

// UserService handles account management: login, registration, credential
// and role updates.
type UserService struct {
	userRepo  *repository.UserRepository
	classRepo *repository.ClassRepository
	auth      *AuthService
	log       zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, classRepo *repository.ClassRepository, auth *AuthService, log zerolog.Logger) *UserService {
	return &UserService{userRepo: userRepo, classRepo: classRepo, auth: auth, log: log}
}

// Login verifies credentials and issues a token. A missing login, a wrong
// password and a malformed stored hash all collapse to
// ErrInvalidCredentials so the endpoint cannot be used for enumeration.
func (s *UserService) Login(ctx context.Context, login, password string) (string, *model.User, error) {
	user, err := s.userRepo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.auth.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// List returns all accounts with their primary class id, for the admin
// user screen.
func (s *UserService) List(ctx context.Context) ([]model.UserSummary, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	classByTeacher, err := s.classRepo.PrimaryClassByTeacher(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.UserSummary, 0, len(users))
	for _, u := range users {
		summary := model.UserSummary{
			ID:         u.ID,
			Login:      u.Login,
			Role:       u.Role,
			PromotedBy: u.PromotedBy,
		}
		if classID, ok := classByTeacher[u.ID]; ok {
			summary.ClassID = &classID
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// RegisterTeacher creates a teacher account.
func (s *UserService) RegisterTeacher(ctx context.Context, login, password string) (*model.User, error) {
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Login:        login,
		PasswordHash: hash,
		Role:         model.RoleTeacher,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateLogin) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// UpdateTeacherCredentials is the admin path: the target must exist and be
// a teacher.
func (s *UserService) UpdateTeacherCredentials(ctx context.Context, targetID int, req *model.UpdateCredentialsRequest) error {
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if target.Role != model.RoleTeacher {
		return ErrNotFound
	}
	return s.updateCredentials(ctx, targetID, req)
}

// UpdateOwnCredentials is the self-service path for any authenticated user.
func (s *UserService) UpdateOwnCredentials(ctx context.Context, userID int, req *model.UpdateCredentialsRequest) error {
	return s.updateCredentials(ctx, userID, req)
}

func (s *UserService) updateCredentials(ctx context.Context, userID int, req *model.UpdateCredentialsRequest) error {
	if req.Login == nil && req.Password == nil {
		return ErrNoUpdateFields
	}

	var passwordHash *string
	if req.Password != nil {
		hash, err := s.auth.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		passwordHash = &hash
	}

	if err := s.userRepo.UpdateCredentials(ctx, userID, req.Login, passwordHash); err != nil {
		if errors.Is(err, repository.ErrDuplicateLogin) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// UpdateRole changes the target's role on behalf of the acting admin.
// Promotion records the actor in promoted_by; demotion clears it. The
// promoted-by protection rule is enforced before any write.
func (s *UserService) UpdateRole(ctx context.Context, actorID, targetID int, newRole model.Role) error {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Token refers to a deleted account.
			return ErrInvalidCredentials
		}
		return err
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if !CanChangeRole(actor, target) {
		return ErrForbidden
	}

	var promotedBy *int
	if newRole == model.RoleAdmin {
		promotedBy = &actor.ID
	}

	if err := s.userRepo.UpdateRole(ctx, target.ID, newRole, promotedBy); err != nil {
		return err
	}

	s.log.Info().
		Int("actor_id", actor.ID).
		Int("target_id", target.ID).
		Str("role", string(newRole)).
		Msg("user role changed")
	return nil
}

// EnsureSeedAdmin creates the initial admin account when it does not exist
// yet. Called once at startup; a no-op when the login is taken or no seed
// password is configured.
func (s *UserService) EnsureSeedAdmin(ctx context.Context, login, password string) error {
	if password == "" {
		return nil
	}
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return err
	}
	created, err := s.userRepo.SeedAdmin(ctx, login, hash)
	if err != nil {
		return err
	}
	if created {
		s.log.Info().Str("login", login).Msg("seed admin created")
	}
	return nil
}
