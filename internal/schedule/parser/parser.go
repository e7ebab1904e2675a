package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// AllDayMarker is the literal the external tool emits for all-day slots.
const AllDayMarker = "종일"

var (
	// "01 Wed", "7 Mon" — a day number followed by a 3-letter weekday abbreviation.
	dateLineRe = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3})`)
	// "09:00 - 10:00"
	timeRangeRe = regexp.MustCompile(`^\d{1,2}:\d{2}\s*-\s*\d{1,2}:\d{2}$`)
	// "09:00" (legacy dumps only)
	bareTimeRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// state is the parsing context threaded through the line loop. It replaces
// what would otherwise be shared mutable state, keeping Parse reentrant.
type state struct {
	haveDate        bool
	current         time.Time
	year            int
	month           time.Month
	lastDay         int
	rolloverChecked bool
}

func (st *state) advanceMonth() {
	st.month++
	if st.month > time.December {
		st.month = time.January
		st.year++
	}
}

// Parse converts a raw schedule dump into ordered schedule records for the
// given target year and month. It never fails: lines it cannot interpret
// are skipped, and identical input always yields identical output in
// source order.
//
// Only "HH:MM - HH:MM" time lines are recognized; for dumps from the older
// tool version use ParseLegacy.
func Parse(text string, year int, month time.Month, rules Rules) []ParsedSchedule {
	return parse(text, year, month, rules, false)
}

// ParseLegacy parses dumps from the older tool version: bare "HH:MM" and
// all-day time lines are accepted, and no month-rollover correction is
// applied.
func ParseLegacy(text string, year int, month time.Month, rules Rules) []ParsedSchedule {
	return parse(text, year, month, rules, true)
}

func parse(text string, year int, month time.Month, rules Rules, legacy bool) []ParsedSchedule {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}

	st := state{year: year, month: month}
	var records []ParsedSchedule

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if m := dateLineRe.FindStringSubmatch(line); m != nil {
			day, _ := strconv.Atoi(m[1])
			if !legacy {
				st.applyRollover(day, m[2])
			}
			st.current = time.Date(st.year, st.month, day, 0, 0, 0, 0, time.UTC)
			st.haveDate = true
			st.lastDay = day
			continue
		}

		if !isTimeLine(line, legacy) {
			continue
		}
		// A time line before any date line carries no usable context.
		if !st.haveDate {
			continue
		}
		// The next line is the title, unless it is itself a date or time
		// line — then this time line produces no record.
		if i+1 >= len(lines) {
			continue
		}
		titleLine := lines[i+1]
		if dateLineRe.MatchString(titleLine) || isTimeLine(titleLine, legacy) {
			continue
		}
		consumed := 1

		organizer := ""
		if i+2 < len(lines) {
			next := lines[i+2]
			if !dateLineRe.MatchString(next) && !isTimeLine(next, legacy) {
				organizer = next
				consumed = 2
			}
		}

		title, level := resolveHighlight(titleLine, organizer, rules)
		records = append(records, ParsedSchedule{
			Date:      st.current,
			Time:      line,
			Title:     title,
			Organizer: organizer,
			Highlight: level,
		})
		i += consumed
	}

	return records
}

// applyRollover adjusts the tracked month. On the first date line, if the
// weekday token fits the following month but not the target month, the dump
// was pasted against the wrong displayed month and the context advances.
// After that, a day number dropping from above 20 to below 10 means the
// dump crossed a month boundary without an explicit label.
//
// The day-drop trigger can misfire on non-chronological dumps that list
// e.g. the 25th before the 5th of the same month; that behavior is kept
// as-is.
func (st *state) applyRollover(day int, weekdayToken string) {
	if !st.rolloverChecked {
		st.rolloverChecked = true
		inTarget := time.Date(st.year, st.month, day, 0, 0, 0, 0, time.UTC).Weekday()
		nextYear, nextMonth := st.year, st.month+1
		if nextMonth > time.December {
			nextMonth = time.January
			nextYear++
		}
		inNext := time.Date(nextYear, nextMonth, day, 0, 0, 0, 0, time.UTC).Weekday()
		if !matchesWeekday(weekdayToken, inTarget) && matchesWeekday(weekdayToken, inNext) {
			st.advanceMonth()
			return
		}
	}

	if st.haveDate && day < 10 && st.lastDay > 20 {
		st.advanceMonth()
	}
}

func matchesWeekday(token string, wd time.Weekday) bool {
	return strings.EqualFold(token, wd.String()[:3])
}

func isTimeLine(line string, legacy bool) bool {
	if timeRangeRe.MatchString(line) {
		return true
	}
	if !legacy {
		return false
	}
	return bareTimeRe.MatchString(line) || line == AllDayMarker
}

// resolveHighlight strips a leading [TAG] from the title and resolves the
// highlight level: bracket keywords first, organizer name only if the
// bracket produced nothing.
func resolveHighlight(rawTitle, organizer string, rules Rules) (string, int) {
	title := rawTitle
	tag := ""
	if strings.HasPrefix(rawTitle, "[") {
		if end := strings.Index(rawTitle, "]"); end > 0 {
			tag = rawTitle[1:end]
			title = strings.TrimSpace(rawTitle[end+1:])
		}
	}

	if tag != "" {
		for _, rule := range rules {
			for _, kw := range rule.BracketKeywords {
				if strings.Contains(tag, kw) {
					return title, rule.Level
				}
			}
		}
	}

	if organizer != "" {
		name := strings.TrimSpace(strings.SplitN(organizer, "/", 2)[0])
		for _, rule := range rules {
			for _, n := range rule.OrganizerNames {
				if name == n {
					return title, rule.Level
				}
			}
		}
	}

	return title, 0
}
