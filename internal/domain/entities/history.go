package entities

import "sort"

// HistoryItem is one maintenance/repair episode for a device.
//
// CompletedDate is empty while the episode is still in progress; it is set
// once, when the repair reaches the completed stage. Items are otherwise
// immutable after creation.
//
// DeviceID is a weak reference: history does not own the device and survives
// reordering of the device sequence.

type HistoryItem struct {
	ID            string `json:"id"`
	DeviceID      string `json:"device_id"`
	Title         string `json:"title"`
	Center        string `json:"center"`
	ReceivedDate  string `json:"received_date"`
	CompletedDate string `json:"completed_date,omitempty"`
	Status        string `json:"status"`
}

// InProgress reports whether the episode has not completed yet.
func (h HistoryItem) InProgress() bool {
	return h.CompletedDate == ""
}

// SortHistory orders items for display: in-progress episodes first, then by
// received date descending. The sort is stable so equal keys keep their
// insertion order. Dates are ISO yyyy-mm-dd strings, which compare correctly
// as plain strings.
func SortHistory(items []HistoryItem) []HistoryItem {
	sorted := make([]HistoryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.InProgress() != b.InProgress() {
			return a.InProgress()
		}
		return a.ReceivedDate > b.ReceivedDate
	})
	return sorted
}
