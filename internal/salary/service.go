package salary

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-portal/internal"
)

// Repository fetches employee-salary joins for one pay period. An empID of
// zero means all employees.
type Repository interface {
	ListForMonth(year int, month time.Month, empID int64) ([]*Row, error)
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

// MonthlyReport aggregates the pay period defined by the salary rows'
// creation month.
func (s *Service) MonthlyReport(month time.Time, empID int64) (*Report, error) {
	rows, err := s.repo.ListForMonth(month.Year(), month.Month(), empID)
	if err != nil {
		s.logger.Error("failed to load salaries", "month", month.Format(MonthFormat), "error", err)
		return nil, internal.NewInternalError("could not load salary report", err)
	}

	return BuildReport(rows, month, empID), nil
}
