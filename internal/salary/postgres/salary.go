package postgres

import (
	"time"

	"github.com/frahmantamala/employee-portal/internal/salary"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListForMonth joins employees to the salary rows created in the given
// year and month. Missing numeric fields are coalesced to zero and names to
// empty strings so the aggregation layer never sees NULLs.
func (r *Repository) ListForMonth(year int, month time.Month, empID int64) ([]*salary.Row, error) {
	query := `
		SELECT
			e.emp_id,
			COALESCE(e.first_name, '') AS first_name,
			COALESCE(e.last_name, '') AS last_name,
			COALESCE(s.base_salary, 0) AS base_salary,
			COALESCE(s.bonus, 0) AS bonus,
			COALESCE(s.deductions, 0) AS deductions,
			COALESCE(s.paid_status, 'unpaid') AS paid_status
		FROM employees e
		JOIN salaries s ON s.emp_id = e.emp_id
		WHERE EXTRACT(YEAR FROM s.created_at) = ?
		  AND EXTRACT(MONTH FROM s.created_at) = ?`

	args := []interface{}{year, int(month)}
	if empID > 0 {
		query += ` AND e.emp_id = ?`
		args = append(args, empID)
	}
	query += ` ORDER BY e.emp_id ASC`

	rows, err := r.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*salary.Row
	for rows.Next() {
		row := &salary.Row{}
		if err := rows.Scan(&row.EmpID, &row.FirstName, &row.LastName,
			&row.BaseSalary, &row.Bonus, &row.Deductions, &row.PaidStatus); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
