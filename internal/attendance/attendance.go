package attendance

import (
	"errors"
	"strings"
	"time"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"

	// TimePlaceholder is rendered where a check-in or check-out was never
	// recorded.
	TimePlaceholder = "--:--"

	DayFormat  = "2006-01-02"
	TimeFormat = "15:04"
)

// Action is a daily attendance transition requested by a user.
type Action string

const (
	ActionCheckIn  Action = "checkin"
	ActionCheckOut Action = "checkout"
	ActionAbsent   Action = "absent"
)

var ErrUnknownAction = errors.New("unknown attendance action")

func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionCheckIn:
		return ActionCheckIn, nil
	case ActionCheckOut:
		return ActionCheckOut, nil
	case ActionAbsent:
		return ActionAbsent, nil
	default:
		return "", ErrUnknownAction
	}
}

// Bucket is the reporting classification of a stored status value.
type Bucket int

const (
	BucketUnclassified Bucket = iota
	BucketPresent
	BucketLeave
	BucketAbsent
)

// statusBuckets is the closed classification table. Stored status values are
// lowercased and trimmed before lookup, so historical rows with stray casing
// or trailing spaces still land in the right bucket. Values outside the table
// count toward no bucket.
var statusBuckets = map[string]Bucket{
	"present":     BucketPresent,
	"leave":       BucketLeave,
	"on leave":    BucketLeave,
	"vacation":    BucketLeave,
	"sick":        BucketLeave,
	"absent":      BucketAbsent,
	"a":           BucketAbsent,
	"not present": BucketAbsent,
}

func Classify(status string) Bucket {
	return statusBuckets[strings.ToLower(strings.TrimSpace(status))]
}

// Summary is the three-bucket rollup over a set of attendance rows.
type Summary struct {
	PresentDays int `json:"present_days"`
	LeaveDays   int `json:"leave_days"`
	AbsentDays  int `json:"absent_days"`
}

func Summarize(statuses []string) Summary {
	var s Summary
	for _, status := range statuses {
		switch Classify(status) {
		case BucketPresent:
			s.PresentDays++
		case BucketLeave:
			s.LeaveDays++
		case BucketAbsent:
			s.AbsentDays++
		}
	}
	return s
}

// MonthRange derives the first and last day of the calendar month containing
// day. The zero day of the following month is the last day of this one.
func MonthRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month()+1, 0, 0, 0, 0, 0, day.Location())
	return start, end
}

// ParseDay parses a YYYY-MM-DD value, substituting the fallback for anything
// malformed or empty.
func ParseDay(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	day, err := time.Parse(DayFormat, s)
	if err != nil {
		return fallback
	}
	return day
}

// ReportRow is one attendance row joined to its employee, as fetched by the
// repository.
type ReportRow struct {
	Date     time.Time
	EmpID    int64
	FullName string
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   string
}

// RecordView is the display shape of a report row: times formatted or
// replaced with the placeholder, status upper-cased.
type RecordView struct {
	Date     string `json:"date"`
	EmpID    int64  `json:"emp_id"`
	FullName string `json:"full_name"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

func formatClock(t *time.Time) string {
	if t == nil {
		return TimePlaceholder
	}
	return t.Format(TimeFormat)
}

func toRecordView(row *ReportRow) RecordView {
	return RecordView{
		Date:     row.Date.Format(DayFormat),
		EmpID:    row.EmpID,
		FullName: row.FullName,
		CheckIn:  formatClock(row.CheckIn),
		CheckOut: formatClock(row.CheckOut),
		Status:   strings.ToUpper(row.Status),
	}
}

// Report is one attendance report in either of its two modes. Employee mode
// carries the month bounds; date mode leaves them empty.
type Report struct {
	Mode           string       `json:"mode"`
	AttendanceDate string       `json:"attendance_date"`
	EmpID          int64        `json:"emp_id,omitempty"`
	MonthStart     string       `json:"month_start,omitempty"`
	MonthEnd       string       `json:"month_end,omitempty"`
	Records        []RecordView `json:"records"`
	Summary        Summary      `json:"summary"`
}

// Outcome is the result of a marking attempt. Repeated or invalid transitions
// are not errors; they carry an informational message instead.
type Outcome struct {
	Changed  bool   `json:"changed"`
	Category string `json:"category"`
	Message  string `json:"message"`
}
