package event

// Statuses hidden from members: rejected and cancelled bookings only
// clutter the calendar once the decision is final.
var hiddenFromMembers = map[uint]bool{2: true, 3: true}

// ApplyFilters narrows a list of events with the AND of all set criteria.
// An empty Filters value returns the input unchanged.
func ApplyFilters(events []Event, f Filters) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if f.GroupID != nil && e.GroupID != *f.GroupID {
			continue
		}
		if f.StatusID != nil && e.StatusID != *f.StatusID {
			continue
		}
		if f.RoomID != nil && e.RoomID != *f.RoomID {
			continue
		}
		if f.From != nil && e.DateEnd.Before(*f.From) {
			continue
		}
		if f.To != nil && e.DateStart.After(*f.To) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// MemberVisible drops the events a non-admin should not see.
func MemberVisible(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if hiddenFromMembers[e.StatusID] {
			continue
		}
		out = append(out, e)
	}
	return out
}
