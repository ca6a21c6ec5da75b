package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-portal/internal"
	attendanceDatamodel "github.com/frahmantamala/employee-portal/internal/core/datamodel/attendance"
	"github.com/frahmantamala/employee-portal/internal/core/events"
)

// Repository is the attendance data access contract. GetForDay returns
// (nil, nil) when no record exists for that day.
type Repository interface {
	GetForDay(empID int64, day time.Time) (*attendanceDatamodel.Attendance, error)
	Create(rec *attendanceDatamodel.Attendance) error
	SetCheckOut(attendanceID int64, at time.Time) error
	ListForEmployeeRange(empID int64, start, end time.Time) ([]*ReportRow, error)
	ListForDate(day time.Time) ([]*ReportRow, error)
}

type Service struct {
	repo     Repository
	eventBus *events.EventBus
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(repo Repository, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

// Mark runs the per-day state machine for one employee. Every repeated or
// out-of-order transition is a no-op with an informational outcome; only
// storage failures surface as errors.
func (s *Service) Mark(empID int64, action Action) (Outcome, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	record, err := s.repo.GetForDay(empID, today)
	if err != nil {
		s.logger.Error("failed to load today's attendance", "emp_id", empID, "error", err)
		return Outcome{}, internal.NewInternalError("could not load today's attendance", err)
	}

	var outcome Outcome
	switch action {
	case ActionCheckIn:
		outcome, err = s.checkIn(empID, today, now, record)
	case ActionCheckOut:
		outcome, err = s.checkOut(record)
	case ActionAbsent:
		outcome, err = s.markAbsent(empID, today, record)
	default:
		return Outcome{}, ErrUnknownAction
	}
	if err != nil {
		return Outcome{}, err
	}

	if outcome.Changed {
		s.logger.Info("attendance marked", "emp_id", empID, "action", action, "day", today.Format(DayFormat))
		if s.eventBus != nil {
			s.eventBus.Publish(context.Background(),
				events.NewAttendanceMarkedEvent(empID, string(action), today.Format(DayFormat)))
		}
	}

	return outcome, nil
}

func (s *Service) checkIn(empID int64, today, now time.Time, record *attendanceDatamodel.Attendance) (Outcome, error) {
	if record != nil {
		return Outcome{Category: "info", Message: "Attendance already marked today"}, nil
	}

	checkIn := now
	rec := &attendanceDatamodel.Attendance{
		EmpID:          empID,
		AttendanceDate: today,
		CheckIn:        &checkIn,
		Status:         StatusPresent,
	}
	if err := s.repo.Create(rec); err != nil {
		s.logger.Error("failed to record check-in", "emp_id", empID, "error", err)
		return Outcome{}, internal.NewInternalError("could not record check-in", err)
	}
	return Outcome{Changed: true, Category: "success", Message: "Check-in successful"}, nil
}

func (s *Service) checkOut(record *attendanceDatamodel.Attendance) (Outcome, error) {
	if record == nil || record.CheckIn == nil {
		return Outcome{Category: "warning", Message: "Please check-in first"}, nil
	}
	if record.CheckOut != nil {
		return Outcome{Category: "info", Message: "Already checked out"}, nil
	}

	if err := s.repo.SetCheckOut(record.AttendanceID, s.now()); err != nil {
		s.logger.Error("failed to record check-out", "attendance_id", record.AttendanceID, "error", err)
		return Outcome{}, internal.NewInternalError("could not record check-out", err)
	}
	return Outcome{Changed: true, Category: "success", Message: "Check-out successful"}, nil
}

func (s *Service) markAbsent(empID int64, today time.Time, record *attendanceDatamodel.Attendance) (Outcome, error) {
	if record != nil {
		return Outcome{Category: "info", Message: "Attendance already exists today"}, nil
	}

	rec := &attendanceDatamodel.Attendance{
		EmpID:          empID,
		AttendanceDate: today,
		Status:         StatusAbsent,
	}
	if err := s.repo.Create(rec); err != nil {
		s.logger.Error("failed to mark absent", "emp_id", empID, "error", err)
		return Outcome{}, internal.NewInternalError("could not mark absent", err)
	}
	return Outcome{Changed: true, Category: "success", Message: "Marked absent"}, nil
}

// ReportForEmployee builds the employee-mode report: every row of the
// calendar month containing day, newest first, plus the bucket summary.
func (s *Service) ReportForEmployee(empID int64, day time.Time) (*Report, error) {
	start, end := MonthRange(day)

	rows, err := s.repo.ListForEmployeeRange(empID, start, end)
	if err != nil {
		s.logger.Error("failed to load month attendance", "emp_id", empID, "error", err)
		return nil, internal.NewInternalError("could not load attendance report", err)
	}

	return &Report{
		Mode:           "employee",
		AttendanceDate: day.Format(DayFormat),
		EmpID:          empID,
		MonthStart:     start.Format(DayFormat),
		MonthEnd:       end.Format(DayFormat),
		Records:        toRecordViews(rows),
		Summary:        summarizeRows(rows),
	}, nil
}

// ReportForDate builds the date-mode report across all employees for one day.
func (s *Service) ReportForDate(day time.Time) (*Report, error) {
	rows, err := s.repo.ListForDate(day)
	if err != nil {
		s.logger.Error("failed to load day attendance", "day", day.Format(DayFormat), "error", err)
		return nil, internal.NewInternalError("could not load attendance report", err)
	}

	return &Report{
		Mode:           "date",
		AttendanceDate: day.Format(DayFormat),
		Records:        toRecordViews(rows),
		Summary:        summarizeRows(rows),
	}, nil
}

func toRecordViews(rows []*ReportRow) []RecordView {
	views := make([]RecordView, len(rows))
	for i, row := range rows {
		views[i] = toRecordView(row)
	}
	return views
}

func summarizeRows(rows []*ReportRow) Summary {
	statuses := make([]string, len(rows))
	for i, row := range rows {
		statuses[i] = row.Status
	}
	return Summarize(statuses)
}
