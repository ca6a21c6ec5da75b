package attendance

// MarkDTO is the transport shape for a daily attendance action.
type MarkDTO struct {
	EmpID  int64  `json:"emp_id"`
	Action string `json:"action"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d *MarkDTO) Validate() error {
	if d.EmpID <= 0 {
		return ValidationError{Msg: "emp_id is required"}
	}
	if d.Action == "" {
		return ValidationError{Msg: "action is required"}
	}
	return nil
}
