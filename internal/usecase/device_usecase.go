package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidDeviceID        = errors.New("invalid device id")
	ErrDeviceNotFound         = errors.New("device not found")
	ErrInvalidSerialNumber    = errors.New("invalid serial number")
	ErrSerialNumberTooShort   = errors.New("serial number too short")
	ErrNoDevices              = errors.New("no devices registered")
	ErrNoDeviceSelected       = errors.New("no device selected")
	ErrInvalidReorder         = errors.New("reorder must permute the current device ids")
	ErrInvalidInquiry         = errors.New("inquiry requires intake or symptoms")
	ErrInvalidServiceStatus   = errors.New("invalid service status")
	ErrInvalidStageTransition = errors.New("invalid stage transition")
	ErrConfirmationRequired   = errors.New("repair start requires estimate confirmation")
)

// Registration defaults for a newly added device. The consumer app only asks
// for the serial number; the remaining fields come from the product catalog.
const (
	defaultBrand          = "PATOZ"
	defaultModelName      = "EZ-BIKE S1"
	defaultColor          = "Midnight Navy"
	defaultRegisteredYear = 2024

	inquiryTitle  = "정비 접수"
	inquiryCenter = "PATOZ Service (Auto)"
	inquiryStatus = "접수 완료"
)

const minSerialNumberLength = 4

// IDeviceUseCase exposes the device/inquiry store operations:
// registration, selection, ordering, repair intake and the external
// stage-advance hook.

type IDeviceUseCase interface {
	Register(ctx context.Context, serialNumber string) (entities.Device, error)
	List(ctx context.Context) ([]entities.Device, error)
	Get(ctx context.Context, id string) (entities.Device, error)
	Selected(ctx context.Context) (entities.Device, error)
	Select(ctx context.Context, id string) (entities.Device, error)
	Reorder(ctx context.Context, ids []string) ([]entities.Device, error)
	MoveUp(ctx context.Context, id string) ([]entities.Device, error)
	MoveDown(ctx context.Context, id string) ([]entities.Device, error)
	SubmitInquiry(ctx context.Context, intake, symptoms string) (entities.HistoryItem, error)
	UpdateServiceStatus(ctx context.Context, id string, status string) (entities.Device, error)
	AdvanceStage(ctx context.Context, id string, next entities.RepairStage) (entities.Device, error)
	Timeline(ctx context.Context, id string) ([]entities.TimelineStep, error)
}

type DeviceUseCase struct {
	repo        interfaces.IDeviceRepository
	historyRepo interfaces.IHistoryRepository
	publisher   interfaces.IRepairEventPublisher
}

var _ IDeviceUseCase = (*DeviceUseCase)(nil)

func NewDeviceUseCase(repo interfaces.IDeviceRepository, historyRepo interfaces.IHistoryRepository, publisher interfaces.IRepairEventPublisher) *DeviceUseCase {
	return &DeviceUseCase{repo: repo, historyRepo: historyRepo, publisher: publisher}
}

func (u *DeviceUseCase) Register(ctx context.Context, serialNumber string) (entities.Device, error) {
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		return entities.Device{}, ErrInvalidSerialNumber
	}
	if len(serialNumber) < minSerialNumberLength {
		return entities.Device{}, ErrSerialNumberTooShort
	}

	d := entities.Device{
		ID:             uuid.NewString(),
		Brand:          defaultBrand,
		ModelName:      defaultModelName,
		SerialNumber:   serialNumber,
		Color:          defaultColor,
		RegisteredYear: defaultRegisteredYear,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Device{}, err
	}

	// A freshly registered device always becomes the selection.
	if err := u.repo.SetSelectedID(ctx, created.ID); err != nil {
		return entities.Device{}, err
	}
	return created, nil
}

func (u *DeviceUseCase) List(ctx context.Context) ([]entities.Device, error) {
	return u.repo.List(ctx)
}

func (u *DeviceUseCase) Get(ctx context.Context, id string) (entities.Device, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Device{}, ErrInvalidDeviceID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Device{}, err
	}
	if d.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}
	return d, nil
}

func (u *DeviceUseCase) Selected(ctx context.Context) (entities.Device, error) {
	id, err := u.repo.GetSelectedID(ctx)
	if err != nil {
		return entities.Device{}, err
	}
	if id == "" {
		return entities.Device{}, ErrNoDeviceSelected
	}
	return u.Get(ctx, id)
}

func (u *DeviceUseCase) Select(ctx context.Context, id string) (entities.Device, error) {
	d, err := u.Get(ctx, id)
	if err != nil {
		return entities.Device{}, err
	}
	if err := u.repo.SetSelectedID(ctx, d.ID); err != nil {
		return entities.Device{}, err
	}
	return d, nil
}

// Reorder replaces the device sequence. The ids must be a permutation of the
// current identities; duplicates and unknown ids are rejected rather than
// passed through to storage.
func (u *DeviceUseCase) Reorder(ctx context.Context, ids []string) ([]entities.Device, error) {
	current, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) != len(current) {
		return nil, ErrInvalidReorder
	}

	remaining := make(map[string]struct{}, len(current))
	for _, d := range current {
		remaining[d.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := remaining[id]; !ok {
			return nil, ErrInvalidReorder
		}
		delete(remaining, id)
	}

	if err := u.repo.SaveOrder(ctx, ids); err != nil {
		return nil, err
	}
	return u.repo.List(ctx)
}

func (u *DeviceUseCase) MoveUp(ctx context.Context, id string) ([]entities.Device, error) {
	return u.move(ctx, id, -1)
}

func (u *DeviceUseCase) MoveDown(ctx context.Context, id string) ([]entities.Device, error) {
	return u.move(ctx, id, +1)
}

func (u *DeviceUseCase) move(ctx context.Context, id string, delta int) ([]entities.Device, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidDeviceID
	}

	devices, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, d := range devices {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrDeviceNotFound
	}

	target := idx + delta
	if target < 0 || target >= len(devices) {
		// Already at the boundary: sequence unchanged.
		return devices, nil
	}

	ids := make([]string, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}
	ids[idx], ids[target] = ids[target], ids[idx]

	if err := u.repo.SaveOrder(ctx, ids); err != nil {
		return nil, err
	}
	return u.repo.List(ctx)
}

// SubmitInquiry files a repair request against the selected device (falling
// back to the first registered device), moves it to Registered and opens a
// history episode.
func (u *DeviceUseCase) SubmitInquiry(ctx context.Context, intake, symptoms string) (entities.HistoryItem, error) {
	intake = strings.TrimSpace(intake)
	symptoms = strings.TrimSpace(symptoms)
	if intake == "" && symptoms == "" {
		return entities.HistoryItem{}, ErrInvalidInquiry
	}

	target, err := u.inquiryTarget(ctx)
	if err != nil {
		return entities.HistoryItem{}, err
	}

	if _, err := u.repo.UpdateServiceStatus(ctx, target.ID, entities.ServiceStatusRegistered); err != nil {
		return entities.HistoryItem{}, err
	}

	item := entities.HistoryItem{
		ID:           uuid.NewString(),
		DeviceID:     target.ID,
		Title:        inquiryTitle,
		Center:       inquiryCenter,
		ReceivedDate: isoDate(time.Now().UTC()),
		Status:       inquiryStatus,
	}
	created, err := u.historyRepo.Create(ctx, item)
	if err != nil {
		return entities.HistoryItem{}, err
	}

	log.Printf("[device][usecase] inquiry registered device_id=%s history_id=%s", target.ID, created.ID)
	u.publish(interfaces.RepairEvent{
		Type:     interfaces.EventInquiryRegistered,
		DeviceID: target.ID,
		Stage:    entities.StageRegistered.String(),
		Detail:   created.ID,
	})
	return created, nil
}

func (u *DeviceUseCase) inquiryTarget(ctx context.Context) (entities.Device, error) {
	if id, err := u.repo.GetSelectedID(ctx); err != nil {
		return entities.Device{}, err
	} else if id != "" {
		if d, err := u.repo.GetByID(ctx, id); err != nil {
			return entities.Device{}, err
		} else if d.ID != "" {
			return d, nil
		}
	}

	devices, err := u.repo.List(ctx)
	if err != nil {
		return entities.Device{}, err
	}
	if len(devices) == 0 {
		return entities.Device{}, ErrNoDevices
	}
	return devices[0], nil
}

func (u *DeviceUseCase) UpdateServiceStatus(ctx context.Context, id string, status string) (entities.Device, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Device{}, ErrInvalidDeviceID
	}
	parsed, ok := entities.ParseServiceStatus(strings.TrimSpace(status))
	if !ok {
		return entities.Device{}, ErrInvalidServiceStatus
	}

	updated, err := u.repo.UpdateServiceStatus(ctx, id, parsed)
	if err != nil {
		return entities.Device{}, err
	}
	if updated.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}
	return updated, nil
}

// AdvanceStage accepts the externally driven lifecycle transitions
// (REPAIRING -> REPAIR_COMPLETED -> PICKED_UP). Only the immediate successor
// of the current stage is accepted, and REGISTERED -> REPAIRING is refused
// here: starting a repair goes through estimate confirmation.
func (u *DeviceUseCase) AdvanceStage(ctx context.Context, id string, next entities.RepairStage) (entities.Device, error) {
	d, err := u.Get(ctx, id)
	if err != nil {
		return entities.Device{}, err
	}

	current := d.Stage()
	if !current.CanAdvanceTo(next) {
		return entities.Device{}, ErrInvalidStageTransition
	}
	if next == entities.StageRepairing {
		return entities.Device{}, ErrConfirmationRequired
	}

	updated, err := u.repo.UpdateServiceStatus(ctx, d.ID, entities.ServiceStatusForStage(next))
	if err != nil {
		return entities.Device{}, err
	}
	if updated.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}

	if next == entities.StageRepairCompleted {
		// Close the episode opened by the inquiry. A device without an open
		// item (legacy data) completes without history changes.
		if _, err := u.historyRepo.CompleteOpen(ctx, d.ID, isoDate(time.Now().UTC())); err != nil {
			return entities.Device{}, err
		}
	}

	log.Printf("[device][usecase] stage advanced device_id=%s from=%s to=%s", d.ID, current, next)
	u.publish(interfaces.RepairEvent{
		Type:     interfaces.EventStageAdvanced,
		DeviceID: d.ID,
		Stage:    next.String(),
	})
	return updated, nil
}

func (u *DeviceUseCase) Timeline(ctx context.Context, id string) ([]entities.TimelineStep, error) {
	d, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return entities.Timeline(d.Stage()), nil
}

func (u *DeviceUseCase) publish(event interfaces.RepairEvent) {
	if u.publisher == nil {
		return
	}
	u.publisher.Publish(event)
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}
