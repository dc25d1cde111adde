package interfaces

// RepairEvent is a lifecycle notification pushed to connected clients
// (inquiry registered, estimate confirmed, stage advanced).

type RepairEvent struct {
	Type     string `json:"type"`
	DeviceID string `json:"device_id"`
	Stage    string `json:"stage"`
	Detail   string `json:"detail,omitempty"`
}

const (
	EventInquiryRegistered = "inquiry_registered"
	EventEstimateConfirmed = "estimate_confirmed"
	EventStageAdvanced     = "stage_advanced"
)

// IRepairEventPublisher abstracts the realtime fan-out (websocket hub).
// Publishing is fire-and-forget; use cases tolerate a nil publisher.

type IRepairEventPublisher interface {
	Publish(event RepairEvent)
}
