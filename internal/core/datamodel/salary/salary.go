package salary

import "time"

type Salary struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	EmpID      int64     `gorm:"column:emp_id;not null;index"`
	BaseSalary float64   `gorm:"column:base_salary;default:0"`
	Bonus      float64   `gorm:"column:bonus;default:0"`
	Deductions float64   `gorm:"column:deductions;default:0"`
	PaidStatus string    `gorm:"column:paid_status;not null;default:unpaid"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
}

func (Salary) TableName() string {
	return "salaries"
}
