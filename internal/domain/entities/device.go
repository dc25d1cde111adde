package entities

// ServiceStatus is the device-facing repair status shown in the consumer app.
//
// Domain notes:
//   - The consumer-service is the source of truth for device/repair state.
//   - An empty status means the device has never entered a repair flow.
//   - Status transitions are driven by inquiry intake, estimate confirmation
//     and the external stage-advance hook (see RepairStage).

type ServiceStatus string

const (
	ServiceStatusNone           ServiceStatus = ""
	ServiceStatusRegistered     ServiceStatus = "Registered"
	ServiceStatusInRepair       ServiceStatus = "In-Repair"
	ServiceStatusRepairFinished ServiceStatus = "Repair-Finished"
	ServiceStatusReceived       ServiceStatus = "Received"
)

// ParseServiceStatus validates a caller-supplied status string.
func ParseServiceStatus(s string) (ServiceStatus, bool) {
	switch ServiceStatus(s) {
	case ServiceStatusNone, ServiceStatusRegistered, ServiceStatusInRepair,
		ServiceStatusRepairFinished, ServiceStatusReceived:
		return ServiceStatus(s), true
	}
	return ServiceStatusNone, false
}

// Device is a registered personal-mobility unit tracked by serial number.
//
// Ordering:
//   - Devices form an ordered sequence (insertion order by default).
//   - Position is the explicit slot in that sequence; reorder operations
//     permute positions without changing identity.
//
// ConfirmedEstimateID is set exactly once per repair cycle, by estimate
// confirmation, and is non-empty iff the repair stage is REPAIRING or later.

type Device struct {
	ID                  string        `json:"id"`
	Brand               string        `json:"brand"`
	ModelName           string        `json:"model_name"`
	SerialNumber        string        `json:"serial_number"`
	Color               string        `json:"color"`
	RegisteredYear      int           `json:"registered_year"`
	ImageURI            string        `json:"image_uri,omitempty"`
	ServiceStatus       ServiceStatus `json:"service_status"`
	ConfirmedEstimateID string        `json:"confirmed_estimate_id,omitempty"`
	Position            int           `json:"position"`
}

// Stage maps the stored service status onto the repair lifecycle.
// Unknown values fall back to StageRegistered.
func (d Device) Stage() RepairStage {
	return StageFromServiceStatus(d.ServiceStatus)
}
