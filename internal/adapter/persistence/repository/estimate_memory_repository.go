package repository

import (
	"context"
	"sync"

	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase/interfaces"
)

// EstimateMemoryRepository serves the static vendor catalog. In the demo
// every open repair request sees the same candidate set; a production
// deployment would swap this for the vendor-bidding feed.

type EstimateMemoryRepository struct {
	mu      sync.RWMutex
	catalog []entities.EstimateDetail
}

var _ interfaces.IEstimateRepository = (*EstimateMemoryRepository)(nil)

func NewEstimateMemoryRepository(catalog []entities.EstimateDetail) *EstimateMemoryRepository {
	r := &EstimateMemoryRepository{catalog: make([]entities.EstimateDetail, len(catalog))}
	copy(r.catalog, catalog)
	return r
}

func (r *EstimateMemoryRepository) ListByDeviceID(_ context.Context, _ string) ([]entities.EstimateDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.EstimateDetail, len(r.catalog))
	copy(out, r.catalog)
	return out, nil
}

func (r *EstimateMemoryRepository) GetByID(_ context.Context, id string) (entities.EstimateDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.catalog {
		if e.ID == id {
			return e, nil
		}
	}
	return entities.EstimateDetail{}, nil
}
