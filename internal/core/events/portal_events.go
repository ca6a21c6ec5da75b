package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeUserRegistered   = "user.registered"
	EventTypeAttendanceMarked = "attendance.marked"
	EventTypeEmployeeCreated  = "employee.created"
	EventTypeEmployeeUpdated  = "employee.updated"
	EventTypeEmployeeDeleted  = "employee.deleted"
)

type UserRegisteredEvent struct {
	BaseEvent
	UserID   int64  `json:"user_id"`
	EmpID    int64  `json:"emp_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func NewUserRegisteredEvent(userID, empID int64, username, role string) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeUserRegistered,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"user_id":  userID,
				"emp_id":   empID,
				"username": username,
				"role":     role,
			},
		},
		UserID:   userID,
		EmpID:    empID,
		Username: username,
		Role:     role,
	}
}

type AttendanceMarkedEvent struct {
	BaseEvent
	EmpID  int64  `json:"emp_id"`
	Action string `json:"action"`
	Day    string `json:"day"`
}

func NewAttendanceMarkedEvent(empID int64, action, day string) *AttendanceMarkedEvent {
	return &AttendanceMarkedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeAttendanceMarked,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"emp_id": empID,
				"action": action,
				"day":    day,
			},
		},
		EmpID:  empID,
		Action: action,
		Day:    day,
	}
}

type EmployeeChangedEvent struct {
	BaseEvent
	EmpID int64 `json:"emp_id"`
}

func NewEmployeeChangedEvent(eventType string, empID int64) *EmployeeChangedEvent {
	return &EmployeeChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"emp_id": empID,
			},
		},
		EmpID: empID,
	}
}
