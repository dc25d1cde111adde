package repository

import (
	"context"
	"testing"

	"patoz_consumer/internal/domain/entities"
)

func seedDevices() []entities.Device {
	return []entities.Device{
		{ID: "dev-1", Brand: "PATOZ", ModelName: "EZ-BIKE S1", SerialNumber: "ST12345678"},
		{ID: "dev-2", Brand: "PATOZ", ModelName: "EZ-BIKE S2", SerialNumber: "ST87654321"},
	}
}

func TestDeviceMemoryRepository_SeedSelection(t *testing.T) {
	repo := NewDeviceMemoryRepository(seedDevices())

	selected, err := repo.GetSelectedID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if selected != "dev-1" {
		t.Errorf("expected first seeded device selected, got %q", selected)
	}
}

func TestDeviceMemoryRepository_CreateAppendsWithPosition(t *testing.T) {
	repo := NewDeviceMemoryRepository(seedDevices())

	created, err := repo.Create(context.Background(), entities.Device{ID: "dev-3", SerialNumber: "ST00000001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Position != 2 {
		t.Errorf("expected position 2, got %d", created.Position)
	}

	devices, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(devices) != 3 || devices[2].ID != "dev-3" {
		t.Errorf("expected dev-3 appended last, got %+v", devices)
	}
}

func TestDeviceMemoryRepository_GetByID(t *testing.T) {
	repo := NewDeviceMemoryRepository(seedDevices())

	t.Run("found", func(t *testing.T) {
		d, err := repo.GetByID(context.Background(), "dev-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "dev-2" {
			t.Errorf("expected dev-2, got %+v", d)
		}
	})

	t.Run("not found returns zero value", func(t *testing.T) {
		d, err := repo.GetByID(context.Background(), "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "" {
			t.Errorf("expected zero value, got %+v", d)
		}
	})
}

func TestDeviceMemoryRepository_SaveOrder(t *testing.T) {
	repo := NewDeviceMemoryRepository(seedDevices())

	if err := repo.SaveOrder(context.Background(), []string{"dev-2", "dev-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	devices, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if devices[0].ID != "dev-2" || devices[1].ID != "dev-1" {
		t.Errorf("expected order dev-2, dev-1, got %+v", devices)
	}
	if devices[0].Position != 0 || devices[1].Position != 1 {
		t.Errorf("expected positions reassigned, got %+v", devices)
	}
}

func TestDeviceMemoryRepository_UpdateConfirmedEstimate(t *testing.T) {
	repo := NewDeviceMemoryRepository(seedDevices())

	updated, err := repo.UpdateConfirmedEstimate(context.Background(), "dev-1", "est-1", entities.ServiceStatusInRepair)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ConfirmedEstimateID != "est-1" {
		t.Errorf("expected confirmed estimate est-1, got %q", updated.ConfirmedEstimateID)
	}
	if updated.ServiceStatus != entities.ServiceStatusInRepair {
		t.Errorf("expected status %q, got %q", entities.ServiceStatusInRepair, updated.ServiceStatus)
	}
}
