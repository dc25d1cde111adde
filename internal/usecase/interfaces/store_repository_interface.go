package interfaces

import (
	"context"

	"patoz_consumer/internal/domain/entities"
)

// IStoreRepository abstracts the partner-store locator source (static list
// in the demo, an external locator service in production).

type IStoreRepository interface {
	List(ctx context.Context) ([]entities.Store, error)
	DefaultRegion(ctx context.Context) (entities.Region, error)
}
