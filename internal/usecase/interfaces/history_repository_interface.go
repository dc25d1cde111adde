package interfaces

import (
	"context"

	"patoz_consumer/internal/domain/entities"
)

// IHistoryRepository abstracts persistence for maintenance history.
//
// Create prepends (most-recent-first insertion order); List returns items in
// that insertion order and the use case applies the display sort.
// CompleteOpen stamps the completed date on the device's most recent
// in-progress item and returns a zero-value item when the device has none.

type IHistoryRepository interface {
	Create(ctx context.Context, h entities.HistoryItem) (entities.HistoryItem, error)
	GetByID(ctx context.Context, id string) (entities.HistoryItem, error)
	List(ctx context.Context) ([]entities.HistoryItem, error)
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.HistoryItem, error)
	CompleteOpen(ctx context.Context, deviceID, completedDate string) (entities.HistoryItem, error)
}
