package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops/internal/adapter/persistence/memory"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newAuthUseCase(t *testing.T, blacklist interfaces.ITokenBlacklist) (*AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	hash, err := hashPassword("secreto")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	for _, u := range []entities.User{
		{ID: "tech-1", FirstName: "Tomas", Email: "tech@example.com", Role: entities.RoleTechnician, Active: true, PasswordHash: hash},
		{ID: "tech-2", FirstName: "Ida", Email: "idle@example.com", Role: entities.RoleTechnician, Active: false, PasswordHash: hash},
	} {
		if _, err := store.Users().Create(context.Background(), u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	uc := NewAuthUseCase(store.Users(), blacklist, "test-secret", time.Hour)
	uc.now = func() time.Time { return time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC) }
	return uc, store
}

func TestAuthUseCase_Login(t *testing.T) {
	uc, store := newAuthUseCase(t, nil)
	ctx := context.Background()

	t.Run("wrong password", func(t *testing.T) {
		if _, err := uc.Login(ctx, "tech@example.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, err := uc.Login(ctx, "ghost@example.com", "secreto"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		if _, err := uc.Login(ctx, "idle@example.com", "secreto"); !errors.Is(err, ErrInactiveUser) {
			t.Fatalf("expected ErrInactiveUser, got %v", err)
		}
	})

	t.Run("email is case insensitive", func(t *testing.T) {
		s, err := uc.Login(ctx, "  TECH@example.com ", "secreto")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Token == "" || s.User.ID != "tech-1" {
			t.Fatalf("unexpected session: %+v", s)
		}
		if !s.ExpiresAt.Equal(uc.now().Add(time.Hour)) {
			t.Fatalf("expected one hour session, got %v", s.ExpiresAt)
		}
		stored, _ := store.Users().GetByID(ctx, "tech-1")
		if stored.LastLogin == nil || !stored.LastLogin.Equal(uc.now()) {
			t.Fatalf("expected last login to be recorded, got %v", stored.LastLogin)
		}
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		uc, _ := newAuthUseCase(t, nil)
		s, err := uc.Login(ctx, "tech@example.com", "secreto")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		p, err := uc.Authenticate(ctx, s.Token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "tech-1" || p.Role != entities.RoleTechnician || p.TokenID == "" {
			t.Fatalf("unexpected principal: %+v", p)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		uc, _ := newAuthUseCase(t, nil)
		if _, err := uc.Authenticate(ctx, "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		uc, _ := newAuthUseCase(t, nil)
		s, err := uc.Login(ctx, "tech@example.com", "secreto")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		uc.now = func() time.Time { return time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC) }
		if _, err := uc.Authenticate(ctx, s.Token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("revoked token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		blacklist := mock_interfaces.NewMockITokenBlacklist(ctrl)
		uc, _ := newAuthUseCase(t, blacklist)

		s, err := uc.Login(ctx, "tech@example.com", "secreto")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		blacklist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(true, nil)

		if _, err := uc.Authenticate(ctx, s.Token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("deactivated after login", func(t *testing.T) {
		uc, store := newAuthUseCase(t, nil)
		s, err := uc.Login(ctx, "tech@example.com", "secreto")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		u, _ := store.Users().GetByID(ctx, "tech-1")
		u.Active = false
		if _, err := store.Users().Update(ctx, u); err != nil {
			t.Fatalf("update: %v", err)
		}
		if _, err := uc.Authenticate(ctx, s.Token); !errors.Is(err, ErrInactiveUser) {
			t.Fatalf("expected ErrInactiveUser, got %v", err)
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	blacklist := mock_interfaces.NewMockITokenBlacklist(ctrl)
	uc, _ := newAuthUseCase(t, blacklist)

	s, err := uc.Login(ctx, "tech@example.com", "secreto")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	blacklist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
	p, err := uc.Authenticate(ctx, s.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	blacklist.EXPECT().Revoke(gomock.Any(), p.TokenID, time.Hour).Return(nil)
	if err := uc.Logout(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("without a blacklist", func(t *testing.T) {
		plain, _ := newAuthUseCase(t, nil)
		if err := plain.Logout(ctx, p); err == nil {
			t.Fatalf("expected an error when revocation is unavailable")
		}
	})
}
