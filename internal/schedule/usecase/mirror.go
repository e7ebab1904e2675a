package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"teamsched/internal/model"
	"teamsched/pkg/gcalendar"
)

var timeRangeParts = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})$`)
var singleTimeParts = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// mirrorToCalendar pushes newly imported entries to the configured
// external calendar. Failures are logged and never fail the import.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, created []model.ScheduleEntry) {
	if uc.calendar == nil {
		return
	}

	for _, entry := range created {
		input := gcalendar.EventInput{
			CalendarID:  uc.calendarID,
			Summary:     entry.Title,
			Description: fmt.Sprintf("Organizer: %s", entry.Organizer),
			Date:        entry.DueDate,
			Timezone:    uc.timezone,
		}
		input.StartTime, input.EndTime = uc.eventTimes(entry)

		if _, err := uc.calendar.CreateEvent(ctx, input); err != nil {
			uc.l.Warnf(ctx, "Import: calendar mirror failed for %q (non-fatal): %v", entry.Title, err)
		}
	}
}

// eventTimes converts the entry's DueTime string to concrete start/end
// times in the configured timezone. Unparseable or all-day values yield
// zero times, i.e. an all-day event.
func (uc *implUseCase) eventTimes(entry model.ScheduleEntry) (time.Time, time.Time) {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}

	at := func(hour, minute int) time.Time {
		return time.Date(entry.DueDate.Year(), entry.DueDate.Month(), entry.DueDate.Day(), hour, minute, 0, 0, loc)
	}
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}

	if m := timeRangeParts.FindStringSubmatch(entry.DueTime); m != nil {
		return at(atoi(m[1]), atoi(m[2])), at(atoi(m[3]), atoi(m[4]))
	}
	if m := singleTimeParts.FindStringSubmatch(entry.DueTime); m != nil {
		start := at(atoi(m[1]), atoi(m[2]))
		return start, start.Add(time.Hour)
	}
	return time.Time{}, time.Time{}
}
