package repository

import (
	"context"
	"sync"

	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase/interfaces"
)

// DeviceMemoryRepository is the in-process device store used by the demo
// deployment. One RWMutex guards the whole sequence plus the selection;
// there is a single writer path and no partial-failure semantics, so
// store-level granularity is enough.

type DeviceMemoryRepository struct {
	mu         sync.RWMutex
	devices    []entities.Device
	selectedID string
}

var _ interfaces.IDeviceRepository = (*DeviceMemoryRepository)(nil)

// NewDeviceMemoryRepository seeds the store. The first seeded device (if
// any) starts out selected, mirroring the app's initial state.
func NewDeviceMemoryRepository(seed []entities.Device) *DeviceMemoryRepository {
	r := &DeviceMemoryRepository{devices: make([]entities.Device, len(seed))}
	copy(r.devices, seed)
	for i := range r.devices {
		r.devices[i].Position = i
	}
	if len(r.devices) > 0 {
		r.selectedID = r.devices[0].ID
	}
	return r
}

func (r *DeviceMemoryRepository) Create(_ context.Context, d entities.Device) (entities.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.Position = len(r.devices)
	r.devices = append(r.devices, d)
	return d, nil
}

func (r *DeviceMemoryRepository) GetByID(_ context.Context, id string) (entities.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.devices {
		if d.ID == id {
			return d, nil
		}
	}
	return entities.Device{}, nil
}

func (r *DeviceMemoryRepository) List(_ context.Context) ([]entities.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Device, len(r.devices))
	copy(out, r.devices)
	return out, nil
}

func (r *DeviceMemoryRepository) SaveOrder(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID := make(map[string]entities.Device, len(r.devices))
	for _, d := range r.devices {
		byID[d.ID] = d
	}

	reordered := make([]entities.Device, 0, len(ids))
	for i, id := range ids {
		d, ok := byID[id]
		if !ok {
			continue
		}
		d.Position = i
		reordered = append(reordered, d)
	}
	r.devices = reordered
	return nil
}

func (r *DeviceMemoryRepository) UpdateServiceStatus(_ context.Context, id string, status entities.ServiceStatus) (entities.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.devices {
		if r.devices[i].ID == id {
			r.devices[i].ServiceStatus = status
			return r.devices[i], nil
		}
	}
	return entities.Device{}, nil
}

func (r *DeviceMemoryRepository) UpdateConfirmedEstimate(_ context.Context, id, estimateID string, status entities.ServiceStatus) (entities.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.devices {
		if r.devices[i].ID == id {
			r.devices[i].ConfirmedEstimateID = estimateID
			r.devices[i].ServiceStatus = status
			return r.devices[i], nil
		}
	}
	return entities.Device{}, nil
}

func (r *DeviceMemoryRepository) GetSelectedID(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selectedID, nil
}

func (r *DeviceMemoryRepository) SetSelectedID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selectedID = id
	return nil
}
