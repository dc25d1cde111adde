package usecase

import (
	"context"
	"errors"
	"testing"

	"patoz_consumer/internal/domain/entities"
	mock_interfaces "patoz_consumer/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestHistoryUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIHistoryRepository(ctrl)
	uc := NewHistoryUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.HistoryItem{
		{ID: "h1", ReceivedDate: "2025-03-12"},
		{ID: "h2", ReceivedDate: "2025-01-19", CompletedDate: "2025-01-22"},
		{ID: "h3", ReceivedDate: "2025-04-02"},
	}, nil)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "h3" || got[1].ID != "h1" || got[2].ID != "h2" {
		t.Fatalf("unexpected display order: %v", got)
	}
}

func TestHistoryUseCase_ListByDevice(t *testing.T) {
	t.Run("invalid device id", func(t *testing.T) {
		uc := NewHistoryUseCase(nil)
		_, err := uc.ListByDevice(context.Background(), "")
		if !errors.Is(err, ErrInvalidDeviceID) {
			t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewHistoryUseCase(repo)

		repo.EXPECT().ListByDeviceID(gomock.Any(), "dev-1").Return([]entities.HistoryItem{{ID: "h1", DeviceID: "dev-1"}}, nil)

		got, err := uc.ListByDevice(context.Background(), " dev-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].DeviceID != "dev-1" {
			t.Fatalf("unexpected items: %v", got)
		}
	})
}

func TestHistoryUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewHistoryUseCase(nil)
		_, err := uc.Get(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidHistoryID) {
			t.Fatalf("expected ErrInvalidHistoryID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewHistoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.HistoryItem{}, nil)

		_, err := uc.Get(context.Background(), "ghost")
		if !errors.Is(err, ErrHistoryNotFound) {
			t.Fatalf("expected ErrHistoryNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewHistoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "h1").Return(entities.HistoryItem{ID: "h1", Title: "필터 교체"}, nil)

		got, err := uc.Get(context.Background(), "h1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "필터 교체" {
			t.Fatalf("unexpected item: %+v", got)
		}
	})
}
