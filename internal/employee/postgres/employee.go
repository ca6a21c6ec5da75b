package postgres

import (
	"errors"
	"strconv"
	"strings"

	employeeDatamodel "github.com/frahmantamala/employee-portal/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-portal/internal/employee"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// applyFilter compiles the structured filter into parameterized predicates.
// A digits-only query term matches the employee ID exactly; anything else,
// signed forms like "-5" included, is a case-insensitive substring match on
// the concatenated full name.
func applyFilter(tx *gorm.DB, f employee.ListFilter) *gorm.DB {
	if f.Query != "" {
		if id, ok := parseEmpID(f.Query); ok {
			tx = tx.Where("emp_id = ?", id)
		} else {
			pattern := "%" + strings.ToLower(f.Query) + "%"
			tx = tx.Where("LOWER(first_name || ' ' || last_name) LIKE ?", pattern)
		}
	}
	if f.Department != "" {
		tx = tx.Where("department = ?", f.Department)
	}
	return tx
}

// parseEmpID accepts only unsigned decimal digits. An out-of-range digit
// string still counts as an ID query and simply matches nothing.
func parseEmpID(q string) (int64, bool) {
	for i := 0; i < len(q); i++ {
		if q[i] < '0' || q[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(q, 10, 64)
	if err != nil {
		return 0, true
	}
	return id, true
}

func orderClause(sort employee.SortDirection) string {
	if sort == employee.SortDesc {
		return "emp_id DESC"
	}
	return "emp_id ASC"
}

func (r *Repository) Count(filter employee.ListFilter) (int64, error) {
	var count int64
	tx := applyFilter(r.db.Model(&employeeDatamodel.Employee{}), filter)
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) List(filter employee.ListFilter, limit, offset int) ([]*employeeDatamodel.Employee, error) {
	var rows []*employeeDatamodel.Employee
	tx := applyFilter(r.db.Model(&employeeDatamodel.Employee{}), filter)
	if err := tx.Order(orderClause(filter.Sort)).Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) GetByID(empID int64) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	if err := r.db.First(&emp, "emp_id = ?", empID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *Repository) Create(emp *employeeDatamodel.Employee) error {
	return r.db.Create(emp).Error
}

func (r *Repository) Update(emp *employeeDatamodel.Employee) error {
	return r.db.Save(emp).Error
}

func (r *Repository) Delete(empID int64) error {
	return r.db.Delete(&employeeDatamodel.Employee{}, "emp_id = ?", empID).Error
}
