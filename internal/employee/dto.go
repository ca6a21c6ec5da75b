package employee

import "strings"

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// CreateEmployeeDTO is the transport shape for adding an employee record.
type CreateEmployeeDTO struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Status     string `json:"status"`
}

func (d *CreateEmployeeDTO) Validate() error {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Department = strings.TrimSpace(d.Department)
	d.Role = strings.TrimSpace(d.Role)
	d.Status = strings.TrimSpace(d.Status)

	if d.FirstName == "" {
		return ValidationError{Msg: "first_name is required"}
	}
	if d.LastName == "" {
		return ValidationError{Msg: "last_name is required"}
	}
	if d.Role == "" {
		return ValidationError{Msg: "role is required"}
	}
	if d.Status == "" {
		d.Status = StatusActive
	}
	return nil
}

// UpdateEmployeeDTO carries a full replacement of an employee's editable fields.
type UpdateEmployeeDTO struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Status     string `json:"status"`
}

func (d *UpdateEmployeeDTO) Validate() error {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Department = strings.TrimSpace(d.Department)
	d.Role = strings.TrimSpace(d.Role)
	d.Status = strings.TrimSpace(d.Status)

	if d.FirstName == "" {
		return ValidationError{Msg: "first_name is required"}
	}
	if d.LastName == "" {
		return ValidationError{Msg: "last_name is required"}
	}
	if d.Role == "" {
		return ValidationError{Msg: "role is required"}
	}
	if d.Status == "" {
		return ValidationError{Msg: "status is required"}
	}
	return nil
}
