package request

import (
	"strings"

	"patoz_consumer/internal/domain/entities"
)

// RegisterDeviceRequest registers a scooter by serial number. The remaining
// device fields come from the registration catalog, not the caller.
type RegisterDeviceRequest struct {
	SerialNumber string `json:"serial_number" binding:"required"`
}

func (r RegisterDeviceRequest) ResolveSerialNumber() string {
	return strings.TrimSpace(r.SerialNumber)
}

type SelectDeviceRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}

func (r SelectDeviceRequest) ResolveDeviceID() string {
	return strings.TrimSpace(r.DeviceID)
}

// ReorderRequest carries the full desired device order. The list must be a
// permutation of the stored ids; the use case rejects anything else.
type ReorderRequest struct {
	DeviceIDs []string `json:"device_ids" binding:"required"`
}

func (r ReorderRequest) ResolveDeviceIDs() []string {
	ids := make([]string, 0, len(r.DeviceIDs))
	for _, id := range r.DeviceIDs {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}

// ServiceStatusRequest sets the raw service status. The empty string is a
// valid value and resets the device to the never-repaired state.
type ServiceStatusRequest struct {
	ServiceStatus string `json:"service_status"`
}

func (r ServiceStatusRequest) ResolveServiceStatus() string {
	return strings.TrimSpace(r.ServiceStatus)
}

type AdvanceStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// ResolveStage parses the stage name; ok is false for anything that is not
// one of the four lifecycle stage names.
func (r AdvanceStageRequest) ResolveStage() (entities.RepairStage, bool) {
	return entities.ParseRepairStage(strings.TrimSpace(r.Stage))
}
