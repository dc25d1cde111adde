package usecase

import (
	"context"
	"errors"
	"testing"

	"patoz_consumer/internal/domain/entities"
	mock_interfaces "patoz_consumer/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeviceUseCase_Register(t *testing.T) {
	t.Run("empty serial", func(t *testing.T) {
		uc := NewDeviceUseCase(nil, nil, nil)
		_, err := uc.Register(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidSerialNumber) {
			t.Fatalf("expected ErrInvalidSerialNumber, got %v", err)
		}
	})

	t.Run("serial too short", func(t *testing.T) {
		uc := NewDeviceUseCase(nil, nil, nil)
		_, err := uc.Register(context.Background(), " ST1 ")
		if !errors.Is(err, ErrSerialNumberTooShort) {
			t.Fatalf("expected ErrSerialNumberTooShort, got %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Device{}, errors.New("db"))

		_, err := uc.Register(context.Background(), "ST12345678")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success selects new device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		var createdID string
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Device{})).DoAndReturn(
			func(_ context.Context, d entities.Device) (entities.Device, error) {
				if d.ID == "" {
					t.Fatalf("expected generated id")
				}
				if d.SerialNumber != "ST12345678" {
					t.Fatalf("serial not trimmed/kept: %q", d.SerialNumber)
				}
				if d.ModelName == "" || d.Brand == "" {
					t.Fatalf("expected catalog defaults, got %+v", d)
				}
				if d.ServiceStatus != entities.ServiceStatusNone {
					t.Fatalf("new device must not carry a service status")
				}
				createdID = d.ID
				return d, nil
			},
		)
		repo.EXPECT().SetSelectedID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				if id != createdID {
					t.Fatalf("selection must follow the new device")
				}
				return nil
			},
		)

		d, err := uc.Register(context.Background(), "  ST12345678  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != createdID {
			t.Fatalf("returned device id mismatch")
		}
	})

	t.Run("unique ids across registrations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		seen := map[string]bool{}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Device) (entities.Device, error) {
				if seen[d.ID] {
					t.Fatalf("duplicate device id %s", d.ID)
				}
				seen[d.ID] = true
				return d, nil
			},
		).Times(3)
		repo.EXPECT().SetSelectedID(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		for _, serial := range []string{"SN-0001", "SN-0002", "SN-0003"} {
			if _, err := uc.Register(context.Background(), serial); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if len(seen) != 3 {
			t.Fatalf("expected 3 devices, got %d", len(seen))
		}
	})
}

func TestDeviceUseCase_Select(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Device{}, nil)

		_, err := uc.Select(context.Background(), "ghost")
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "dev-2").Return(entities.Device{ID: "dev-2"}, nil)
		repo.EXPECT().SetSelectedID(gomock.Any(), "dev-2").Return(nil)

		d, err := uc.Select(context.Background(), " dev-2 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "dev-2" {
			t.Fatalf("unexpected device: %+v", d)
		}
	})
}

func TestDeviceUseCase_Selected(t *testing.T) {
	t.Run("none selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().GetSelectedID(gomock.Any()).Return("", nil)

		_, err := uc.Selected(context.Background())
		if !errors.Is(err, ErrNoDeviceSelected) {
			t.Fatalf("expected ErrNoDeviceSelected, got %v", err)
		}
	})
}

func TestDeviceUseCase_Reorder(t *testing.T) {
	current := []entities.Device{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	t.Run("wrong length", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return(current, nil)

		_, err := uc.Reorder(context.Background(), []string{"a", "b"})
		if !errors.Is(err, ErrInvalidReorder) {
			t.Fatalf("expected ErrInvalidReorder, got %v", err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return(current, nil)

		_, err := uc.Reorder(context.Background(), []string{"a", "b", "b"})
		if !errors.Is(err, ErrInvalidReorder) {
			t.Fatalf("expected ErrInvalidReorder, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return(current, nil)

		_, err := uc.Reorder(context.Background(), []string{"a", "b", "x"})
		if !errors.Is(err, ErrInvalidReorder) {
			t.Fatalf("expected ErrInvalidReorder, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		reordered := []entities.Device{{ID: "c"}, {ID: "a"}, {ID: "b"}}
		repo.EXPECT().List(gomock.Any()).Return(current, nil)
		repo.EXPECT().SaveOrder(gomock.Any(), []string{"c", "a", "b"}).Return(nil)
		repo.EXPECT().List(gomock.Any()).Return(reordered, nil)

		got, err := uc.Reorder(context.Background(), []string{"c", "a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "c" || got[2].ID != "b" {
			t.Fatalf("unexpected order: %v", got)
		}
	})
}

func TestDeviceUseCase_Move(t *testing.T) {
	devices := []entities.Device{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	t.Run("move up at first is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return(devices, nil)

		got, err := uc.MoveUp(context.Background(), "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "a" {
			t.Fatalf("sequence must be unchanged, got %v", got)
		}
	})

	t.Run("move down at last is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return(devices, nil)

		got, err := uc.MoveDown(context.Background(), "c")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[2].ID != "c" {
			t.Fatalf("sequence must be unchanged, got %v", got)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return(devices, nil)

		_, err := uc.MoveUp(context.Background(), "ghost")
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})

	t.Run("move up swaps with previous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return(devices, nil)
		repo.EXPECT().SaveOrder(gomock.Any(), []string{"b", "a", "c"}).Return(nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Device{{ID: "b"}, {ID: "a"}, {ID: "c"}}, nil)

		got, err := uc.MoveUp(context.Background(), "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "b" || got[1].ID != "a" {
			t.Fatalf("unexpected order: %v", got)
		}
	})
}

func TestDeviceUseCase_SubmitInquiry(t *testing.T) {
	t.Run("both fields blank", func(t *testing.T) {
		uc := NewDeviceUseCase(nil, nil, nil)
		_, err := uc.SubmitInquiry(context.Background(), "  ", "")
		if !errors.Is(err, ErrInvalidInquiry) {
			t.Fatalf("expected ErrInvalidInquiry, got %v", err)
		}
	})

	t.Run("no devices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().GetSelectedID(gomock.Any()).Return("", nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		_, err := uc.SubmitInquiry(context.Background(), "브레이크 점검", "")
		if !errors.Is(err, ErrNoDevices) {
			t.Fatalf("expected ErrNoDevices, got %v", err)
		}
	})

	t.Run("falls back to first device when none selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		historyRepo := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewDeviceUseCase(repo, historyRepo, nil)

		repo.EXPECT().GetSelectedID(gomock.Any()).Return("", nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Device{{ID: "dev-1"}, {ID: "dev-2"}}, nil)
		repo.EXPECT().UpdateServiceStatus(gomock.Any(), "dev-1", entities.ServiceStatusRegistered).Return(entities.Device{ID: "dev-1", ServiceStatus: entities.ServiceStatusRegistered}, nil)
		historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.HistoryItem) (entities.HistoryItem, error) {
				if h.DeviceID != "dev-1" {
					t.Fatalf("inquiry must target the first device, got %s", h.DeviceID)
				}
				return h, nil
			},
		)

		if _, err := uc.SubmitInquiry(context.Background(), "", "출발 시 소음"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("success with selected device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		historyRepo := mock_interfaces.NewMockIHistoryRepository(ctrl)
		publisher := mock_interfaces.NewMockIRepairEventPublisher(ctrl)
		uc := NewDeviceUseCase(repo, historyRepo, publisher)

		repo.EXPECT().GetSelectedID(gomock.Any()).Return("dev-9", nil)
		repo.EXPECT().GetByID(gomock.Any(), "dev-9").Return(entities.Device{ID: "dev-9"}, nil)
		repo.EXPECT().UpdateServiceStatus(gomock.Any(), "dev-9", entities.ServiceStatusRegistered).Return(entities.Device{ID: "dev-9", ServiceStatus: entities.ServiceStatusRegistered}, nil)
		historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.HistoryItem) (entities.HistoryItem, error) {
				if h.ID == "" || h.ReceivedDate == "" {
					t.Fatalf("expected generated id and received date: %+v", h)
				}
				if h.CompletedDate != "" {
					t.Fatalf("new inquiry must be in progress")
				}
				if h.Status != "접수 완료" {
					t.Fatalf("unexpected status label: %q", h.Status)
				}
				return h, nil
			},
		)
		publisher.EXPECT().Publish(gomock.Any())

		item, err := uc.SubmitInquiry(context.Background(), "브레이크 소음", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.DeviceID != "dev-9" {
			t.Fatalf("unexpected target: %+v", item)
		}
	})
}

func TestDeviceUseCase_UpdateServiceStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewDeviceUseCase(nil, nil, nil)
		_, err := uc.UpdateServiceStatus(context.Background(), "dev-1", "Broken")
		if !errors.Is(err, ErrInvalidServiceStatus) {
			t.Fatalf("expected ErrInvalidServiceStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().UpdateServiceStatus(gomock.Any(), "ghost", entities.ServiceStatusInRepair).Return(entities.Device{}, nil)

		_, err := uc.UpdateServiceStatus(context.Background(), "ghost", "In-Repair")
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().UpdateServiceStatus(gomock.Any(), "dev-1", entities.ServiceStatusReceived).Return(entities.Device{ID: "dev-1", ServiceStatus: entities.ServiceStatusReceived}, nil)

		d, err := uc.UpdateServiceStatus(context.Background(), "dev-1", "Received")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ServiceStatus != entities.ServiceStatusReceived {
			t.Fatalf("unexpected status: %+v", d)
		}
	})

	t.Run("empty status resets to never-repaired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().UpdateServiceStatus(gomock.Any(), "dev-1", entities.ServiceStatusNone).Return(entities.Device{ID: "dev-1"}, nil)

		d, err := uc.UpdateServiceStatus(context.Background(), "dev-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ServiceStatus != entities.ServiceStatusNone || d.Stage() != entities.StageRegistered {
			t.Fatalf("unexpected device: %+v", d)
		}
	})
}

func TestDeviceUseCase_AdvanceStage(t *testing.T) {
	t.Run("repair start needs confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", ServiceStatus: entities.ServiceStatusRegistered}, nil)

		_, err := uc.AdvanceStage(context.Background(), "dev-1", entities.StageRepairing)
		if !errors.Is(err, ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
	})

	t.Run("skip rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", ServiceStatus: entities.ServiceStatusRegistered}, nil)

		_, err := uc.AdvanceStage(context.Background(), "dev-1", entities.StageRepairCompleted)
		if !errors.Is(err, ErrInvalidStageTransition) {
			t.Fatalf("expected ErrInvalidStageTransition, got %v", err)
		}
	})

	t.Run("regression rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", ServiceStatus: entities.ServiceStatusRepairFinished}, nil)

		_, err := uc.AdvanceStage(context.Background(), "dev-1", entities.StageRepairing)
		if !errors.Is(err, ErrInvalidStageTransition) {
			t.Fatalf("expected ErrInvalidStageTransition, got %v", err)
		}
	})

	t.Run("repair completed stamps open history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		historyRepo := mock_interfaces.NewMockIHistoryRepository(ctrl)
		publisher := mock_interfaces.NewMockIRepairEventPublisher(ctrl)
		uc := NewDeviceUseCase(repo, historyRepo, publisher)

		repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", ServiceStatus: entities.ServiceStatusInRepair}, nil)
		repo.EXPECT().UpdateServiceStatus(gomock.Any(), "dev-1", entities.ServiceStatusRepairFinished).Return(entities.Device{ID: "dev-1", ServiceStatus: entities.ServiceStatusRepairFinished}, nil)
		historyRepo.EXPECT().CompleteOpen(gomock.Any(), "dev-1", gomock.Any()).Return(entities.HistoryItem{ID: "h1"}, nil)
		publisher.EXPECT().Publish(gomock.Any())

		d, err := uc.AdvanceStage(context.Background(), "dev-1", entities.StageRepairCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Stage() != entities.StageRepairCompleted {
			t.Fatalf("unexpected stage: %v", d.Stage())
		}
	})

	t.Run("pickup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		publisher := mock_interfaces.NewMockIRepairEventPublisher(ctrl)
		uc := NewDeviceUseCase(repo, nil, publisher)

		repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", ServiceStatus: entities.ServiceStatusRepairFinished}, nil)
		repo.EXPECT().UpdateServiceStatus(gomock.Any(), "dev-1", entities.ServiceStatusReceived).Return(entities.Device{ID: "dev-1", ServiceStatus: entities.ServiceStatusReceived}, nil)
		publisher.EXPECT().Publish(gomock.Any())

		d, err := uc.AdvanceStage(context.Background(), "dev-1", entities.StagePickedUp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Stage() != entities.StagePickedUp {
			t.Fatalf("unexpected stage: %v", d.Stage())
		}
	})
}

func TestDeviceUseCase_Timeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
	uc := NewDeviceUseCase(repo, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", ServiceStatus: entities.ServiceStatusInRepair}, nil)

	steps, err := uc.Timeline(context.Background(), "dev-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if steps[0].State != entities.StepCompleted || steps[1].State != entities.StepActive {
		t.Fatalf("unexpected projection: %+v", steps)
	}
}
