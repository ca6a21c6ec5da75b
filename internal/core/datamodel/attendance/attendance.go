package attendance

import "time"

type Attendance struct {
	AttendanceID   int64      `gorm:"column:attendance_id;primaryKey"`
	EmpID          int64      `gorm:"column:emp_id;not null;uniqueIndex:idx_attendance_emp_day"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;uniqueIndex:idx_attendance_emp_day"`
	CheckIn        *time.Time `gorm:"column:check_in"`
	CheckOut       *time.Time `gorm:"column:check_out"`
	Status         string     `gorm:"column:status;not null"`
	CreatedAt      time.Time  `gorm:"column:created_at;default:now()"`
}

func (Attendance) TableName() string {
	return "attendance"
}
