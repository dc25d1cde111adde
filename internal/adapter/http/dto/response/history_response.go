package response

import "patoz_consumer/internal/domain/entities"

type HistoryItemResponse struct {
	ID            string `json:"id"`
	DeviceID      string `json:"device_id"`
	Title         string `json:"title"`
	Center        string `json:"center"`
	ReceivedDate  string `json:"received_date"`
	CompletedDate string `json:"completed_date,omitempty"`
	Status        string `json:"status"`
	InProgress    bool   `json:"in_progress"`
}

func FromHistoryItem(h entities.HistoryItem) HistoryItemResponse {
	return HistoryItemResponse{
		ID:            h.ID,
		DeviceID:      h.DeviceID,
		Title:         h.Title,
		Center:        h.Center,
		ReceivedDate:  h.ReceivedDate,
		CompletedDate: h.CompletedDate,
		Status:        h.Status,
		InProgress:    h.InProgress(),
	}
}

func FromHistoryItems(items []entities.HistoryItem) []HistoryItemResponse {
	out := make([]HistoryItemResponse, 0, len(items))
	for _, h := range items {
		out = append(out, FromHistoryItem(h))
	}
	return out
}
