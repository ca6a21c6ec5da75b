package dashboard

import (
	"errors"
	"log/slog"

	"github.com/frahmantamala/employee-portal/internal"
	attendanceDatamodel "github.com/frahmantamala/employee-portal/internal/core/datamodel/attendance"
)

// Repository is the dashboard data access contract. GetStaffProfile returns
// ErrProfileNotFound when no user row exists for the employee.
type Repository interface {
	AdminStats() (*AdminStats, error)
	GetStaffProfile(empID int64) (*StaffProfile, error)
	RecentAttendance(empID int64, limit int) ([]*attendanceDatamodel.Attendance, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) AdminStats() (*AdminStats, error) {
	stats, err := s.repo.AdminStats()
	if err != nil {
		s.logger.Error("failed to load admin stats", "error", err)
		return nil, internal.NewInternalError("could not load dashboard stats", err)
	}
	return stats, nil
}

// StaffDashboard loads the staff member's own profile plus their most recent
// attendance rows, newest first.
func (s *Service) StaffDashboard(empID int64) (*StaffDashboard, error) {
	profile, err := s.repo.GetStaffProfile(empID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, err
		}
		return nil, internal.NewInternalError("could not load staff profile", err)
	}

	rows, err := s.repo.RecentAttendance(empID, recentLimit)
	if err != nil {
		s.logger.Error("failed to load recent attendance", "emp_id", empID, "error", err)
		return nil, internal.NewInternalError("could not load recent attendance", err)
	}

	records := make([]RecentRecord, len(rows))
	for i, row := range rows {
		records[i] = RecentRecord{
			Date:     row.AttendanceDate.Format(dayFormat),
			CheckIn:  formatClock(row.CheckIn),
			CheckOut: formatClock(row.CheckOut),
			Status:   row.Status,
		}
	}

	return &StaffDashboard{
		User:       *profile,
		Attendance: records,
	}, nil
}
