package response

import (
	"patoz_consumer/internal/domain/entities"
)

type DeviceResponse struct {
	ID                  string `json:"id"`
	Brand               string `json:"brand"`
	ModelName           string `json:"model_name"`
	SerialNumber        string `json:"serial_number"`
	Color               string `json:"color"`
	RegisteredYear      int    `json:"registered_year"`
	ImageURI            string `json:"image_uri,omitempty"`
	ServiceStatus       string `json:"service_status,omitempty"`
	Stage               string `json:"stage"`
	ConfirmedEstimateID string `json:"confirmed_estimate_id,omitempty"`
	Position            int    `json:"position"`
}

func FromDevice(d entities.Device) DeviceResponse {
	return DeviceResponse{
		ID:                  d.ID,
		Brand:               d.Brand,
		ModelName:           d.ModelName,
		SerialNumber:        d.SerialNumber,
		Color:               d.Color,
		RegisteredYear:      d.RegisteredYear,
		ImageURI:            d.ImageURI,
		ServiceStatus:       string(d.ServiceStatus),
		Stage:               d.Stage().String(),
		ConfirmedEstimateID: d.ConfirmedEstimateID,
		Position:            d.Position,
	}
}

func FromDevices(devices []entities.Device) []DeviceResponse {
	out := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, FromDevice(d))
	}
	return out
}

type TimelineStepResponse struct {
	Stage string `json:"stage"`
	Label string `json:"label"`
	State string `json:"state"`
}

type TimelineResponse struct {
	Steps []TimelineStepResponse `json:"steps"`
}

func FromTimeline(steps []entities.TimelineStep) TimelineResponse {
	out := make([]TimelineStepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, TimelineStepResponse{
			Stage: s.Stage.String(),
			Label: s.Label,
			State: string(s.State),
		})
	}
	return TimelineResponse{Steps: out}
}
