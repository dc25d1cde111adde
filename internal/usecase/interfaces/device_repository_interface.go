package interfaces

import (
	"context"

	"patoz_consumer/internal/domain/entities"
)

// IDeviceRepository abstracts persistence for the ordered device sequence
// and the single-device selection.
//
// Conventions (shared by the memory and DynamoDB backends):
//   - lookups return a zero-value Device when the id is absent; the use case
//     converts that into its NotFound sentinel
//   - Create appends at the end of the sequence
//   - SaveOrder replaces the sequence wholesale; the use case has already
//     validated that ids form a permutation of the current identities

type IDeviceRepository interface {
	Create(ctx context.Context, d entities.Device) (entities.Device, error)
	GetByID(ctx context.Context, id string) (entities.Device, error)
	List(ctx context.Context) ([]entities.Device, error)
	SaveOrder(ctx context.Context, ids []string) error
	UpdateServiceStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Device, error)
	UpdateConfirmedEstimate(ctx context.Context, id, estimateID string, status entities.ServiceStatus) (entities.Device, error)
	GetSelectedID(ctx context.Context) (string, error)
	SetSelectedID(ctx context.Context, id string) error
}
