package gcalendar

import "time"

// EventInput is the input for mirroring one schedule entry to a calendar.
// StartTime/EndTime zero means an all-day event on Date.
type EventInput struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Seoul"
}

// Event is a simplified representation of a calendar event.
type Event struct {
	ID       string
	Summary  string
	HTMLLink string
}
