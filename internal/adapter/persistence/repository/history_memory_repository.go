package repository

import (
	"context"
	"sync"

	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase/interfaces"
)

// HistoryMemoryRepository keeps the maintenance log in insertion order,
// most recent first (Create prepends).

type HistoryMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.HistoryItem
}

var _ interfaces.IHistoryRepository = (*HistoryMemoryRepository)(nil)

func NewHistoryMemoryRepository(seed []entities.HistoryItem) *HistoryMemoryRepository {
	r := &HistoryMemoryRepository{items: make([]entities.HistoryItem, len(seed))}
	copy(r.items, seed)
	return r
}

func (r *HistoryMemoryRepository) Create(_ context.Context, h entities.HistoryItem) (entities.HistoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]entities.HistoryItem{h}, r.items...)
	return h, nil
}

func (r *HistoryMemoryRepository) GetByID(_ context.Context, id string) (entities.HistoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.items {
		if h.ID == id {
			return h, nil
		}
	}
	return entities.HistoryItem{}, nil
}

func (r *HistoryMemoryRepository) List(_ context.Context) ([]entities.HistoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.HistoryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *HistoryMemoryRepository) ListByDeviceID(_ context.Context, deviceID string) ([]entities.HistoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.HistoryItem, 0)
	for _, h := range r.items {
		if h.DeviceID == deviceID {
			out = append(out, h)
		}
	}
	return out, nil
}

// CompleteOpen stamps the most recent in-progress item for the device.
// Items are stored most-recent-first, so the first open match wins.
func (r *HistoryMemoryRepository) CompleteOpen(_ context.Context, deviceID, completedDate string) (entities.HistoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].DeviceID == deviceID && r.items[i].CompletedDate == "" {
			r.items[i].CompletedDate = completedDate
			return r.items[i], nil
		}
	}
	return entities.HistoryItem{}, nil
}
