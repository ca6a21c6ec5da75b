package postgres

import (
	"errors"
	"time"

	"github.com/frahmantamala/employee-portal/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/employee-portal/internal/core/datamodel/attendance"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetForDay(empID int64, day time.Time) (*attendanceDatamodel.Attendance, error) {
	var rec attendanceDatamodel.Attendance
	err := r.db.Where("emp_id = ? AND attendance_date = ?", empID, day).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) Create(rec *attendanceDatamodel.Attendance) error {
	return r.db.Create(rec).Error
}

func (r *Repository) SetCheckOut(attendanceID int64, at time.Time) error {
	return r.db.Model(&attendanceDatamodel.Attendance{}).
		Where("attendance_id = ?", attendanceID).
		Update("check_out", at).Error
}

const reportSelect = `
	SELECT
		a.attendance_date,
		a.emp_id,
		e.first_name || ' ' || e.last_name AS full_name,
		a.check_in,
		a.check_out,
		a.status
	FROM attendance a
	JOIN employees e ON a.emp_id = e.emp_id`

// ListForEmployeeRange returns one employee's rows between start and end
// inclusive, newest first.
func (r *Repository) ListForEmployeeRange(empID int64, start, end time.Time) ([]*attendance.ReportRow, error) {
	query := reportSelect + `
	WHERE a.emp_id = ? AND a.attendance_date BETWEEN ? AND ?
	ORDER BY a.attendance_date DESC`

	return r.scanRows(r.db.Raw(query, empID, start, end))
}

// ListForDate returns every employee's row for one day, ordered by status
// then check-in time.
func (r *Repository) ListForDate(day time.Time) ([]*attendance.ReportRow, error) {
	query := reportSelect + `
	WHERE a.attendance_date = ?
	ORDER BY a.status ASC, a.check_in ASC`

	return r.scanRows(r.db.Raw(query, day))
}

func (r *Repository) scanRows(tx *gorm.DB) ([]*attendance.ReportRow, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*attendance.ReportRow
	for rows.Next() {
		row := &attendance.ReportRow{}
		if err := rows.Scan(&row.Date, &row.EmpID, &row.FullName, &row.CheckIn, &row.CheckOut, &row.Status); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
