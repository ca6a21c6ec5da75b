package employee

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/employee-portal/internal"
	employeeDatamodel "github.com/frahmantamala/employee-portal/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-portal/internal/core/events"
)

// Repository is the employee data access contract. List and Count take the
// same filter so a page and its total always agree.
type Repository interface {
	Count(filter ListFilter) (int64, error)
	List(filter ListFilter, limit, offset int) ([]*employeeDatamodel.Employee, error)
	GetByID(empID int64) (*employeeDatamodel.Employee, error)
	Create(emp *employeeDatamodel.Employee) error
	Update(emp *employeeDatamodel.Employee) error
	Delete(empID int64) error
}

type Service struct {
	repo     Repository
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// List returns one page of the filtered, sorted directory. The count and the
// rows are computed from the same filter; a page beyond the end yields an
// empty row set with the pagination state intact.
func (s *Service) List(filter ListFilter) (*Page, error) {
	filter.Normalize()

	total, err := s.repo.Count(filter)
	if err != nil {
		s.logger.Error("failed to count employees", "error", err)
		return nil, internal.NewInternalError("could not load employee directory", err)
	}

	totalPages := TotalPages(total)
	offset := (filter.Page - 1) * PageSize

	rows, err := s.repo.List(filter, PageSize, offset)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("could not load employee directory", err)
	}

	return &Page{
		Employees:    FromDataModelSlice(rows),
		TotalRecords: total,
		TotalPages:   totalPages,
		CurrentPage:  filter.Page,
		PageRange:    PageWindow(filter.Page, totalPages),
	}, nil
}

func (s *Service) Get(empID int64) (*Employee, error) {
	dm, err := s.repo.GetByID(empID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, internal.NewInternalError("could not load employee", err)
	}
	return FromDataModel(dm), nil
}

func (s *Service) Create(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dm := &employeeDatamodel.Employee{
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		Email:      dto.Email,
		Phone:      dto.Phone,
		Department: dto.Department,
		Role:       dto.Role,
		Status:     dto.Status,
	}

	if err := s.repo.Create(dm); err != nil {
		s.logger.Error("failed to create employee", "error", err)
		return nil, internal.NewInternalError("could not create employee", err)
	}

	s.logger.Info("employee created", "emp_id", dm.EmpID)

	if s.eventBus != nil {
		s.eventBus.Publish(context.Background(),
			events.NewEmployeeChangedEvent(events.EventTypeEmployeeCreated, dm.EmpID))
	}

	return FromDataModel(dm), nil
}

func (s *Service) Update(empID int64, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dm, err := s.repo.GetByID(empID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, internal.NewInternalError("could not load employee", err)
	}

	dm.FirstName = dto.FirstName
	dm.LastName = dto.LastName
	dm.Email = dto.Email
	dm.Phone = dto.Phone
	dm.Department = dto.Department
	dm.Role = dto.Role
	dm.Status = dto.Status

	if err := s.repo.Update(dm); err != nil {
		s.logger.Error("failed to update employee", "emp_id", empID, "error", err)
		return nil, internal.NewInternalError("could not update employee", err)
	}

	s.logger.Info("employee updated", "emp_id", empID)

	if s.eventBus != nil {
		s.eventBus.Publish(context.Background(),
			events.NewEmployeeChangedEvent(events.EventTypeEmployeeUpdated, empID))
	}

	return FromDataModel(dm), nil
}

func (s *Service) Delete(empID int64) error {
	if _, err := s.repo.GetByID(empID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return internal.NewInternalError("could not load employee", err)
	}

	if err := s.repo.Delete(empID); err != nil {
		s.logger.Error("failed to delete employee", "emp_id", empID, "error", err)
		return internal.NewInternalError("could not delete employee", err)
	}

	s.logger.Info("employee deleted", "emp_id", empID)

	if s.eventBus != nil {
		s.eventBus.Publish(context.Background(),
			events.NewEmployeeChangedEvent(events.EventTypeEmployeeDeleted, empID))
	}

	return nil
}
