package repository

import (
	"context"

	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase/interfaces"
)

// StoreMemoryRepository serves the static partner-store list and the default
// map region. Read-only, so no locking is needed.

type StoreMemoryRepository struct {
	stores []entities.Store
	region entities.Region
}

var _ interfaces.IStoreRepository = (*StoreMemoryRepository)(nil)

func NewStoreMemoryRepository(stores []entities.Store, region entities.Region) *StoreMemoryRepository {
	r := &StoreMemoryRepository{stores: make([]entities.Store, len(stores)), region: region}
	copy(r.stores, stores)
	return r
}

func (r *StoreMemoryRepository) List(_ context.Context) ([]entities.Store, error) {
	out := make([]entities.Store, len(r.stores))
	copy(out, r.stores)
	return out, nil
}

func (r *StoreMemoryRepository) DefaultRegion(_ context.Context) (entities.Region, error) {
	return r.region, nil
}
