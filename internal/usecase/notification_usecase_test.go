package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_MarkRead(t *testing.T) {
	at := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	owner := access.Subject{ID: "client-1", Role: entities.RoleClient}

	tests := []struct {
		name    string
		stored  entities.Notification
		mock    func(repo *mock_interfaces.MockINotificationRepository)
		wantErr error
	}{
		{
			name:    "missing",
			stored:  entities.Notification{},
			wantErr: ErrNotificationNotFound,
		},
		{
			name:    "someone else's",
			stored:  entities.Notification{ID: "n-1", Recipient: "client-2"},
			wantErr: ErrNotificationNotFound,
		},
		{
			name:   "already read is returned as is",
			stored: entities.Notification{ID: "n-1", Recipient: "client-1", Read: true},
		},
		{
			name:   "unread",
			stored: entities.Notification{ID: "n-1", Recipient: "client-1"},
			mock: func(repo *mock_interfaces.MockINotificationRepository) {
				repo.EXPECT().MarkRead(gomock.Any(), "n-1", at).
					Return(entities.Notification{ID: "n-1", Recipient: "client-1", Read: true}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockINotificationRepository(ctrl)
			repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(tt.stored, nil)
			if tt.mock != nil {
				tt.mock(repo)
			}
			uc := NewNotificationUseCase(repo)
			uc.now = func() time.Time { return at }

			n, err := uc.MarkRead(context.Background(), owner, "n-1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !n.Read {
				t.Fatalf("expected a read notification, got %+v", n)
			}
		})
	}
}

func TestNotificationUseCase_ListAndMarkAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo)
	at := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return at }
	me := access.Subject{ID: "tech-1", Role: entities.RoleTechnician}

	repo.EXPECT().ListByRecipient(gomock.Any(), "tech-1", true, interfaces.PageQuery{Page: 1, Limit: interfaces.DefaultLimit}).
		Return([]entities.Notification{{ID: "n-1"}}, 1, nil)
	items, total, err := uc.List(context.Background(), me, true, interfaces.PageQuery{})
	if err != nil || total != 1 || len(items) != 1 {
		t.Fatalf("unexpected listing: items=%v total=%d err=%v", items, total, err)
	}

	repo.EXPECT().MarkAllRead(gomock.Any(), "tech-1", at).Return(3, nil)
	count, err := uc.MarkAllRead(context.Background(), me)
	if err != nil || count != 3 {
		t.Fatalf("expected 3 marked, got %d err=%v", count, err)
	}
}

func TestNotificationUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo)
	me := access.Subject{ID: "tech-1", Role: entities.RoleTechnician}

	if err := uc.Delete(context.Background(), me, " "); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", Recipient: "tech-1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "n-1").Return(nil)
	if err := uc.Delete(context.Background(), me, "n-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
