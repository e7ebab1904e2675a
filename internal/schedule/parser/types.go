package parser

import "time"

// ParsedSchedule is one schedule record extracted from a raw text dump.
// Records are ephemeral; every parse produces them fresh.
type ParsedSchedule struct {
	Date      time.Time // calendar date, midnight UTC
	Time      string    // "HH:MM - HH:MM", "HH:MM", the all-day marker, never empty
	Title     string    // bracket tag stripped
	Organizer string    // may be empty
	Highlight int       // 0 = none, 1..3
}

// HighlightRule maps bracket-tag keywords and organizer names to one
// highlight level. Rules are checked in order; the first match wins, and
// bracket keywords are consulted before organizer names.
type HighlightRule struct {
	Level           int
	BracketKeywords []string // substring match, case-sensitive
	OrganizerNames  []string // exact match against the segment before the first "/"
}

// Rules is an ordered list of highlight rules.
type Rules []HighlightRule

// DefaultRules returns the built-in highlight keyword tables. Deployments
// override these from configuration.
func DefaultRules() Rules {
	return Rules{
		{Level: 1, BracketKeywords: []string{"대표", "전사", "CEO"}, OrganizerNames: []string{"이청"}},
		{Level: 2, BracketKeywords: []string{"본부", "임원"}, OrganizerNames: nil},
		{Level: 3, BracketKeywords: []string{"팀"}, OrganizerNames: nil},
	}
}
