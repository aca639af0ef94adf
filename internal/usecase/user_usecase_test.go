package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops/internal/adapter/persistence/memory"
	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

func newUserUseCase(t *testing.T) (*UserUseCase, access.Subject) {
	t.Helper()
	uc := NewUserUseCase(memory.NewStore().Users())
	uc.now = func() time.Time { return time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC) }
	admin, created, err := uc.EnsureAdmin(context.Background(), UserInput{FirstName: "Admin", LastName: "Root", Email: "admin@example.com", Password: "secreto"})
	if err != nil || !created {
		t.Fatalf("seed admin: created=%v err=%v", created, err)
	}
	return uc, access.Subject{ID: admin.ID, Role: admin.Role}
}

func TestUserUseCase_EnsureAdmin(t *testing.T) {
	uc, admin := newUserUseCase(t)

	again, created, err := uc.EnsureAdmin(context.Background(), UserInput{FirstName: "Otro", LastName: "Admin", Email: "other@example.com", Password: "secreto"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created || again.ID != admin.ID {
		t.Fatalf("expected the existing admin to be kept, got created=%v id=%s", created, again.ID)
	}
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc, admin := newUserUseCase(t)
	valid := UserInput{FirstName: "Tomas", LastName: "Test", Email: "Tech@Example.com", Password: "secreto", Role: entities.RoleTechnician}

	t.Run("admins only", func(t *testing.T) {
		tech := access.Subject{ID: "tech-1", Role: entities.RoleTechnician}
		if _, err := uc.Create(ctx, tech, valid); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := map[string]UserInput{
			"bad email":      {FirstName: "a", LastName: "b", Email: "nope", Password: "secreto", Role: entities.RoleClient},
			"short password": {FirstName: "a", LastName: "b", Email: "a@b.cl", Password: "123", Role: entities.RoleClient},
			"no last name":   {FirstName: "a", Email: "a@b.cl", Password: "secreto", Role: entities.RoleClient},
			"bad role":       {FirstName: "a", LastName: "b", Email: "a@b.cl", Password: "secreto", Role: "owner"},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := uc.Create(ctx, admin, in); !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
			})
		}
	})

	t.Run("created with a lowercase email and a hashed password", func(t *testing.T) {
		u, err := uc.Create(ctx, admin, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Email != "tech@example.com" || !u.Active {
			t.Fatalf("unexpected user: %+v", u)
		}
		if u.PasswordHash == "" || u.PasswordHash == "secreto" {
			t.Fatalf("expected a bcrypt hash, got %q", u.PasswordHash)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		if _, err := uc.Create(ctx, admin, valid); !errors.Is(err, ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}
	})
}

func TestUserUseCase_Deactivate(t *testing.T) {
	ctx := context.Background()
	uc, admin := newUserUseCase(t)

	if err := uc.Deactivate(ctx, admin, admin.ID); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected the last admin to be protected, got %v", err)
	}

	second, err := uc.Create(ctx, admin, UserInput{FirstName: "Ana", LastName: "Admin", Email: "ana@example.com", Password: "secreto", Role: entities.RoleAdmin})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if err := uc.Deactivate(ctx, admin, second.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := uc.Get(ctx, admin, second.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Active {
		t.Fatalf("expected the account to be inactive")
	}
	if err := uc.Deactivate(ctx, admin, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserUseCase_List(t *testing.T) {
	ctx := context.Background()
	uc, admin := newUserUseCase(t)
	for i, name := range []string{"Ana", "Berta", "Carla"} {
		uc.now = func() time.Time { return time.Date(2025, 5, 3+i, 8, 0, 0, 0, time.UTC) }
		if _, err := uc.Create(ctx, admin, UserInput{FirstName: name, LastName: "Cliente", Email: name + "@example.com", Password: "secreto", Role: entities.RoleClient}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	users, total, err := uc.List(ctx, admin, UserFilter{Role: entities.RoleClient, PageQuery: interfaces.PageQuery{Page: 1, Limit: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(users) != 2 || users[0].FirstName != "Carla" {
		t.Fatalf("expected newest first page of 2 out of 3, got total=%d page=%+v", total, users)
	}

	users, total, err = uc.List(ctx, admin, UserFilter{Search: "berta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || users[0].FirstName != "Berta" {
		t.Fatalf("expected the search to match Berta, got %+v", users)
	}
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	uc, admin := newUserUseCase(t)

	if _, err := uc.UpdateProfile(ctx, admin, ProfileUpdate{NewPassword: "nuevo123"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation without the current password, got %v", err)
	}
	if _, err := uc.UpdateProfile(ctx, admin, ProfileUpdate{CurrentPassword: "wrong", NewPassword: "nuevo123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	phone := "+56 9 1234 5678"
	u, err := uc.UpdateProfile(ctx, admin, ProfileUpdate{Phone: &phone, CurrentPassword: "secreto", NewPassword: "nuevo123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Phone != phone {
		t.Fatalf("expected phone to be updated, got %q", u.Phone)
	}
}
