package service

import (
	"testing"

	"github.com/dnevnik/dnevnik-backend/internal/model"
)

func intPtr(v int) *int { return &v }

func TestCanChangeRole(t *testing.T) {
	tests := []struct {
		name   string
		actor  model.User
		target model.User
		want   bool
	}{
		{
			name:   "seeded admin may change anyone",
			actor:  model.User{ID: 1, Role: model.RoleAdmin},
			target: model.User{ID: 2, Role: model.RoleAdmin},
			want:   true,
		},
		{
			name:   "appointee may not change their appointer",
			actor:  model.User{ID: 2, Role: model.RoleAdmin, PromotedBy: intPtr(1)},
			target: model.User{ID: 1, Role: model.RoleAdmin},
			want:   false,
		},
		{
			name:   "appointer may change their appointee",
			actor:  model.User{ID: 1, Role: model.RoleAdmin},
			target: model.User{ID: 2, Role: model.RoleAdmin, PromotedBy: intPtr(1)},
			want:   true,
		},
		{
			name:   "appointee may change unrelated users",
			actor:  model.User{ID: 2, Role: model.RoleAdmin, PromotedBy: intPtr(1)},
			target: model.User{ID: 3, Role: model.RoleTeacher},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanChangeRole(&tt.actor, &tt.target); got != tt.want {
				t.Errorf("CanChangeRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccessClass(t *testing.T) {
	class := &model.Class{ID: 10, TeacherID: 7}

	admin := &Claims{UserID: 1, Role: model.RoleAdmin}
	if !CanAccessClass(admin, class) {
		t.Error("admin denied access to a class they do not own")
	}

	owner := &Claims{UserID: 7, Role: model.RoleTeacher}
	if !CanAccessClass(owner, class) {
		t.Error("owning teacher denied access")
	}

	other := &Claims{UserID: 8, Role: model.RoleTeacher}
	if CanAccessClass(other, class) {
		t.Error("non-owning teacher granted access")
	}
}
