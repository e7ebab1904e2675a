package http

import (
	"errors"
	"time"

	"teamsched/internal/model"
	"teamsched/internal/schedule"
	"teamsched/internal/schedule/parser"
)

// --- Request DTOs ---

var (
	errInvalidDate  = errors.New("due_date must be formatted as YYYY-MM-DD")
	errInvalidMonth = errors.New("month must be between 0 and 11")
	errYearRequired = errors.New("year is required when month is given")
)

// importReq carries the pasted text. Month is 0-based as supplied by the
// calendar UI the dump was copied against.
type importReq struct {
	Text   string `json:"text"  binding:"required"`
	Year   int    `json:"year"  binding:"required"`
	Month  int    `json:"month"`
	Legacy bool   `json:"legacy"`
}

func (r importReq) validate() error {
	if r.Month < 0 || r.Month > 11 {
		return errInvalidMonth
	}
	return nil
}

func (r importReq) toInput() schedule.ImportInput {
	return schedule.ImportInput{
		Text:   r.Text,
		Year:   r.Year,
		Month:  time.Month(r.Month + 1),
		Legacy: r.Legacy,
	}
}

type listReq struct {
	Year  int  `form:"year"`
	Month *int `form:"month"` // 0-based; absent lists the whole category
}

func (r listReq) validate() error {
	if r.Month != nil {
		if *r.Month < 0 || *r.Month > 11 {
			return errInvalidMonth
		}
		if r.Year == 0 {
			return errYearRequired
		}
	}
	return nil
}

func (r listReq) toInput() schedule.ListEntriesInput {
	input := schedule.ListEntriesInput{Year: r.Year}
	if r.Month != nil {
		input.Month = time.Month(*r.Month + 1)
	}
	return input
}

type createEntryReq struct {
	Title       string   `json:"title"    binding:"required,min=1,max=255"`
	DueDate     string   `json:"due_date" binding:"required"`
	DueTime     string   `json:"due_time"`
	Organizer   string   `json:"organizer"`
	Highlight   int      `json:"highlight_level" binding:"min=0,max=3"`
	ResourceURL string   `json:"resource_url"`
	Notes       string   `json:"notes"`
	Tags        []string `json:"tags"`
	IsPinned    bool     `json:"is_pinned"`
}

func (r createEntryReq) validate() error {
	if _, err := time.Parse("2006-01-02", r.DueDate); err != nil {
		return errInvalidDate
	}
	return nil
}

func (r createEntryReq) toInput() schedule.CreateEntryInput {
	due, _ := time.Parse("2006-01-02", r.DueDate)
	return schedule.CreateEntryInput{
		Title:       r.Title,
		DueDate:     due,
		DueTime:     r.DueTime,
		Organizer:   r.Organizer,
		Highlight:   r.Highlight,
		ResourceURL: r.ResourceURL,
		Notes:       r.Notes,
		Tags:        r.Tags,
		IsPinned:    r.IsPinned,
	}
}

type updateEntryReq struct {
	ID          string    `json:"-"` // populated from URI param
	Title       *string   `json:"title"        binding:"omitempty,min=1,max=255"`
	DueTime     *string   `json:"due_time"`
	ResourceURL *string   `json:"resource_url"`
	Notes       *string   `json:"notes"`
	Tags        *[]string `json:"tags"`
	IsPinned    *bool     `json:"is_pinned"`
	Completed   *bool     `json:"completed"`
}

func (r updateEntryReq) toInput() schedule.UpdateEntryInput {
	return schedule.UpdateEntryInput{
		ID:          r.ID,
		Title:       r.Title,
		DueTime:     r.DueTime,
		ResourceURL: r.ResourceURL,
		Notes:       r.Notes,
		Tags:        r.Tags,
		IsPinned:    r.IsPinned,
		Completed:   r.Completed,
	}
}

// --- Response DTOs ---

type importResp struct {
	Imported    int      `json:"imported"`
	Deleted     int      `json:"deleted"`
	Restored    int      `json:"restored"`
	OrphanNotes int      `json:"orphan_notes"`
	Months      []string `json:"months"`
}

func newImportResp(out schedule.ImportOutput) importResp {
	return importResp{
		Imported:    out.Imported,
		Deleted:     out.Deleted,
		Restored:    out.Restored,
		OrphanNotes: out.OrphanNotes,
		Months:      out.Months,
	}
}

type parsedRecordResp struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Title     string `json:"title"`
	Organizer string `json:"organizer,omitempty"`
	Highlight int    `json:"highlight_level"`
}

func newParsedRecordResp(rec parser.ParsedSchedule) parsedRecordResp {
	return parsedRecordResp{
		Date:      rec.Date.Format("2006-01-02"),
		Time:      rec.Time,
		Title:     rec.Title,
		Organizer: rec.Organizer,
		Highlight: rec.Highlight,
	}
}

type previewResp struct {
	Records     []parsedRecordResp `json:"records"`
	ToDelete    int                `json:"to_delete"`
	ToCreate    int                `json:"to_create"`
	ToRestore   int                `json:"to_restore"`
	OrphanNotes int                `json:"orphan_notes"`
	Months      []string           `json:"months"`
}

func newPreviewResp(out schedule.PreviewOutput) previewResp {
	records := make([]parsedRecordResp, len(out.Records))
	for i, rec := range out.Records {
		records[i] = newParsedRecordResp(rec)
	}
	return previewResp{
		Records:     records,
		ToDelete:    out.ToDelete,
		ToCreate:    out.ToCreate,
		ToRestore:   out.ToRestore,
		OrphanNotes: out.OrphanNotes,
		Months:      out.Months,
	}
}

type entryResp struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	DueDate     string   `json:"due_date"`
	DueTime     string   `json:"due_time,omitempty"`
	Highlight   int      `json:"highlight_level"`
	Organizer   string   `json:"organizer,omitempty"`
	Source      string   `json:"source"`
	ResourceURL string   `json:"resource_url,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPinned    bool     `json:"is_pinned"`
	Completed   bool     `json:"completed"`
}

func newEntryResp(entry model.ScheduleEntry) entryResp {
	source := entry.Source
	if source == "" {
		source = model.SourceTeam
	}
	return entryResp{
		ID:          entry.ID,
		Title:       entry.Title,
		DueDate:     entry.DueDate.Format("2006-01-02"),
		DueTime:     entry.DueTime,
		Highlight:   entry.Highlight,
		Organizer:   entry.Organizer,
		Source:      string(source),
		ResourceURL: entry.ResourceURL,
		Notes:       entry.Notes,
		Tags:        entry.Tags,
		IsPinned:    entry.IsPinned,
		Completed:   entry.Completed,
	}
}

type listResp struct {
	Entries []entryResp `json:"entries"`
	Total   int         `json:"total"`
}

func newListResp(out schedule.ListEntriesOutput) listResp {
	entries := make([]entryResp, len(out.Entries))
	for i, entry := range out.Entries {
		entries[i] = newEntryResp(entry)
	}
	return listResp{Entries: entries, Total: len(entries)}
}
