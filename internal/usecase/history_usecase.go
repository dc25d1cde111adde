package usecase

import (
	"context"
	"errors"
	"strings"

	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase/interfaces"
)

var (
	ErrInvalidHistoryID = errors.New("invalid history id")
	ErrHistoryNotFound  = errors.New("history item not found")
)

// IHistoryUseCase exposes read-only projections over the maintenance log.
// Listings come back display-sorted: in-progress episodes first, then by
// received date descending.

type IHistoryUseCase interface {
	List(ctx context.Context) ([]entities.HistoryItem, error)
	ListByDevice(ctx context.Context, deviceID string) ([]entities.HistoryItem, error)
	Get(ctx context.Context, id string) (entities.HistoryItem, error)
}

type HistoryUseCase struct {
	repo interfaces.IHistoryRepository
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(repo interfaces.IHistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

func (u *HistoryUseCase) List(ctx context.Context) ([]entities.HistoryItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return entities.SortHistory(items), nil
}

func (u *HistoryUseCase) ListByDevice(ctx context.Context, deviceID string) ([]entities.HistoryItem, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, ErrInvalidDeviceID
	}

	items, err := u.repo.ListByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	return entities.SortHistory(items), nil
}

func (u *HistoryUseCase) Get(ctx context.Context, id string) (entities.HistoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.HistoryItem{}, ErrInvalidHistoryID
	}

	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.HistoryItem{}, err
	}
	if h.ID == "" {
		return entities.HistoryItem{}, ErrHistoryNotFound
	}
	return h, nil
}
