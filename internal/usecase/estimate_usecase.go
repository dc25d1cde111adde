package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase/interfaces"
)

var (
	ErrInvalidEstimateID        = errors.New("invalid estimate id")
	ErrEstimateNotFound         = errors.New("estimate not found")
	ErrEstimateAlreadyConfirmed = errors.New("estimate already confirmed for this repair cycle")
	ErrNoConfirmedEstimate      = errors.New("no confirmed estimate")
)

// IEstimateUseCase exposes the estimate catalog and the confirmation flow.
//
// Confirm is the sole trigger for REGISTERED -> REPAIRING. Confirming while
// the device is already repairing (or later) is rejected and never replaces
// the previously confirmed estimate.

type IEstimateUseCase interface {
	ListIncoming(ctx context.Context, deviceID string) ([]entities.EstimateDetail, error)
	Get(ctx context.Context, id string) (entities.EstimateDetail, error)
	Confirm(ctx context.Context, deviceID, estimateID string) (entities.EstimateDetail, error)
	Confirmed(ctx context.Context, deviceID string) (entities.EstimateDetail, error)
}

type EstimateUseCase struct {
	repo       interfaces.IEstimateRepository
	deviceRepo interfaces.IDeviceRepository
	publisher  interfaces.IRepairEventPublisher
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, deviceRepo interfaces.IDeviceRepository, publisher interfaces.IRepairEventPublisher) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, deviceRepo: deviceRepo, publisher: publisher}
}

// ListIncoming returns the candidate estimates for a device's open repair
// request. Candidates are only offered while the device waits at
// REGISTERED; once a vendor is confirmed the incoming list is empty.
func (u *EstimateUseCase) ListIncoming(ctx context.Context, deviceID string) ([]entities.EstimateDetail, error) {
	d, err := u.device(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if d.Stage() != entities.StageRegistered {
		return []entities.EstimateDetail{}, nil
	}
	return u.repo.ListByDeviceID(ctx, d.ID)
}

func (u *EstimateUseCase) Get(ctx context.Context, id string) (entities.EstimateDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateDetail{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateDetail{}, err
	}
	if e.ID == "" {
		return entities.EstimateDetail{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) Confirm(ctx context.Context, deviceID, estimateID string) (entities.EstimateDetail, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.EstimateDetail{}, ErrInvalidEstimateID
	}

	d, err := u.device(ctx, deviceID)
	if err != nil {
		return entities.EstimateDetail{}, err
	}
	if d.Stage() != entities.StageRegistered {
		return entities.EstimateDetail{}, ErrEstimateAlreadyConfirmed
	}

	e, err := u.Get(ctx, estimateID)
	if err != nil {
		return entities.EstimateDetail{}, err
	}

	if _, err := u.deviceRepo.UpdateConfirmedEstimate(ctx, d.ID, e.ID, entities.ServiceStatusInRepair); err != nil {
		return entities.EstimateDetail{}, err
	}

	log.Printf("[estimate][usecase] estimate confirmed device_id=%s estimate_id=%s vendor=%s", d.ID, e.ID, e.VendorName)
	if u.publisher != nil {
		u.publisher.Publish(interfaces.RepairEvent{
			Type:     interfaces.EventEstimateConfirmed,
			DeviceID: d.ID,
			Stage:    entities.StageRepairing.String(),
			Detail:   e.ID,
		})
	}
	return e, nil
}

// Confirmed resolves the estimate confirmed for the device's active repair
// cycle. It exists iff the stage is REPAIRING or later.
func (u *EstimateUseCase) Confirmed(ctx context.Context, deviceID string) (entities.EstimateDetail, error) {
	d, err := u.device(ctx, deviceID)
	if err != nil {
		return entities.EstimateDetail{}, err
	}
	if d.ConfirmedEstimateID == "" {
		return entities.EstimateDetail{}, ErrNoConfirmedEstimate
	}
	return u.Get(ctx, d.ConfirmedEstimateID)
}

func (u *EstimateUseCase) device(ctx context.Context, deviceID string) (entities.Device, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return entities.Device{}, ErrInvalidDeviceID
	}

	d, err := u.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return entities.Device{}, err
	}
	if d.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}
	return d, nil
}
