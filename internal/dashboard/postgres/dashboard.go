package postgres

import (
	"database/sql"

	attendanceDatamodel "github.com/frahmantamala/employee-portal/internal/core/datamodel/attendance"
	"github.com/frahmantamala/employee-portal/internal/dashboard"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) AdminStats() (*dashboard.AdminStats, error) {
	stats := &dashboard.AdminStats{}

	if err := r.db.Raw(`SELECT COUNT(emp_id) FROM employees`).Scan(&stats.TotalEmployees).Error; err != nil {
		return nil, err
	}

	if err := r.db.Raw(
		`SELECT COUNT(emp_id) FROM attendance WHERE status = 'present' AND attendance_date = CURRENT_DATE`,
	).Scan(&stats.PresentEmployees).Error; err != nil {
		return nil, err
	}

	if err := r.db.Raw(
		`SELECT COUNT(emp_id) FROM salaries WHERE paid_status = 'unpaid'`,
	).Scan(&stats.UnpaidEmployees).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *Repository) GetStaffProfile(empID int64) (*dashboard.StaffProfile, error) {
	var profile dashboard.StaffProfile
	query := `
		SELECT u.username, u.role, e.first_name, e.last_name, e.department, e.email
		FROM users u
		JOIN employees e ON u.emp_id = e.emp_id
		WHERE u.emp_id = ?`

	row := r.db.Raw(query, empID).Row()
	if err := row.Scan(&profile.Username, &profile.Role, &profile.FirstName,
		&profile.LastName, &profile.Department, &profile.Email); err != nil {
		if err == sql.ErrNoRows {
			return nil, dashboard.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) RecentAttendance(empID int64, limit int) ([]*attendanceDatamodel.Attendance, error) {
	var rows []*attendanceDatamodel.Attendance
	err := r.db.Where("emp_id = ?", empID).
		Order("attendance_date DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
