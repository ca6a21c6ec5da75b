package employee

import (
	"errors"
	"strings"
	"time"

	employeeDatamodel "github.com/frahmantamala/employee-portal/internal/core/datamodel/employee"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	// PageSize is fixed: listings always show ten employees per page.
	PageSize = 10

	// windowSpan is how many page links are shown either side of the
	// current page.
	windowSpan = 2
)

type Employee struct {
	EmpID      int64     `json:"emp_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// SortDirection is the validated sort enum: only its two values ever reach
// the ORDER BY clause, so no request input is interpolated into SQL.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSort maps the request parameter onto the enum; ascending is the
// default, descending only on explicit request.
func ParseSort(s string) SortDirection {
	if strings.ToLower(strings.TrimSpace(s)) == "descending" || strings.ToLower(strings.TrimSpace(s)) == "desc" {
		return SortDesc
	}
	return SortAsc
}

// ListFilter is the structured filter compiled into parameterized predicates
// by the repository.
type ListFilter struct {
	Query      string
	Department string
	Sort       SortDirection
	Page       int
}

// Normalize trims inputs and clamps the page to >= 1.
func (f *ListFilter) Normalize() {
	f.Query = strings.TrimSpace(f.Query)
	f.Department = strings.TrimSpace(f.Department)
	if f.Sort != SortDesc {
		f.Sort = SortAsc
	}
	if f.Page < 1 {
		f.Page = 1
	}
}

// Page is one page of a filtered listing together with its pagination state.
type Page struct {
	Employees    []*Employee `json:"employees"`
	TotalRecords int64       `json:"total_records"`
	TotalPages   int         `json:"total_pages"`
	CurrentPage  int         `json:"current_page"`
	PageRange    []int       `json:"page_range"`
}

// TotalPages computes ceil(total/PageSize).
func TotalPages(total int64) int {
	return int((total + PageSize - 1) / PageSize)
}

// PageWindow is the sliding range of page links around the current page,
// clamped to [1, totalPages]. Empty when there are no pages at all.
func PageWindow(current, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}
	start := current - windowSpan
	if start < 1 {
		start = 1
	}
	end := current + windowSpan
	if end > totalPages {
		end = totalPages
	}
	if start > end {
		return nil
	}
	window := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		window = append(window, p)
	}
	return window
}

var ErrNotFound = errors.New("employee not found")

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		EmpID:      e.EmpID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Role:       e.Role,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		EmpID:      e.EmpID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Role:       e.Role,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
