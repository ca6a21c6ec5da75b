package user

import "time"

type User struct {
	UserID       int64     `gorm:"column:user_id;primaryKey"`
	EmpID        int64     `gorm:"column:emp_id;uniqueIndex;not null"`
	Username     string    `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
}

func (User) TableName() string {
	return "users"
}
