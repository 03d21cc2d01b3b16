package report

import "sort"

// EventKind discriminates the two calendar sources.
type EventKind string

const (
	EventHarvest  EventKind = "harvest"
	EventPlanting EventKind = "planting"
)

// Event is one dashboard calendar entry.
type Event struct {
	ID     string    `json:"id"`
	Date   string    `json:"date"` // YYYY-MM-DD
	Label  string    `json:"label"`
	Kind   EventKind `json:"kind"`
	Status string    `json:"status"`
}

// MergeEvents concatenates the given event lists, sorts ascending by date and
// keeps the first max entries. The sort is stable, so events sharing a date
// keep their relative concatenation order. Dates are ISO strings, which order
// lexicographically the same as chronologically.
func MergeEvents(max int, lists ...[]Event) []Event {
	var merged []Event
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })
	if len(merged) > max {
		merged = merged[:max]
	}
	return merged
}
