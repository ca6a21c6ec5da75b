package auth

import "strings"

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterDTO carries a self-service registration against an existing employee.
type RegisterDTO struct {
	EmpID    int64  `json:"emp_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
func (d *LoginDTO) Validate() error {
	d.Username = strings.TrimSpace(d.Username)
	d.Password = strings.TrimSpace(d.Password)
	if d.Username == "" {
		return ValidationError{Msg: "username is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

func (d *RegisterDTO) Validate() error {
	d.Username = strings.TrimSpace(d.Username)
	if d.EmpID <= 0 {
		return ValidationError{Msg: "emp_id is required"}
	}
	if d.Username == "" {
		return ValidationError{Msg: "username is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}
