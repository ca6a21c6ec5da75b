package dashboard

import (
	"errors"
	"time"
)

// AdminStats is the admin landing summary: headcount, who is present today
// and how many salary rows are still unpaid.
type AdminStats struct {
	TotalEmployees   int64 `json:"total_employees"`
	PresentEmployees int64 `json:"present_employees"`
	UnpaidEmployees  int64 `json:"unpaid_employees"`
}

// StaffProfile is the logged-in staff member's own record, joined from the
// user and employee tables.
type StaffProfile struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// RecentRecord is one of the staff member's latest attendance rows, times
// already formatted for display.
type RecentRecord struct {
	Date     string `json:"attendance_date"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

// StaffDashboard bundles the profile with the ten most recent attendance rows.
type StaffDashboard struct {
	User       StaffProfile   `json:"user"`
	Attendance []RecentRecord `json:"attendance"`
}

var ErrProfileNotFound = errors.New("staff profile not found")

const (
	recentLimit     = 10
	dayFormat       = "2006-01-02"
	clockFormat     = "15:04"
	timePlaceholder = "--:--"
)

func formatClock(t *time.Time) string {
	if t == nil {
		return timePlaceholder
	}
	return t.Format(clockFormat)
}
