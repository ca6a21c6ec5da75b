package employee

import "time"

type Employee struct {
	EmpID      int64     `gorm:"column:emp_id;primaryKey"`
	FirstName  string    `gorm:"column:first_name;not null"`
	LastName   string    `gorm:"column:last_name;not null"`
	Email      string    `gorm:"column:email"`
	Phone      string    `gorm:"column:phone"`
	Department string    `gorm:"column:department"`
	Role       string    `gorm:"column:role;not null"`
	Status     string    `gorm:"column:status;not null;default:active"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time `gorm:"column:updated_at;default:now()"`
}

func (Employee) TableName() string {
	return "employees"
}
