package interfaces

import (
	"context"

	"patoz_consumer/internal/domain/entities"
)

// IEstimateRepository abstracts the estimate candidate catalog.
//
// In the demo deployment this is the static vendor catalog; in production it
// would be fed by the vendor-bidding collaborator. Lookups return a
// zero-value EstimateDetail when the id is absent.

type IEstimateRepository interface {
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.EstimateDetail, error)
	GetByID(ctx context.Context, id string) (entities.EstimateDetail, error)
}
