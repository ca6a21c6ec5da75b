package salary

import (
	"strings"
	"time"
)

const (
	PaidStatusPaid   = "paid"
	PaidStatusUnpaid = "unpaid"

	// MonthFormat is the accepted filter input, e.g. 2026-02.
	MonthFormat = "2006-01"

	// DisplayFormat is how the selected month is echoed back, e.g. Feb-2026.
	DisplayFormat = "Jan-2006"
)

// ParseMonth parses a YYYY-MM value, substituting the fallback for anything
// malformed or empty.
func ParseMonth(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	month, err := time.Parse(MonthFormat, s)
	if err != nil {
		return fallback
	}
	return month
}

// Row is one employee-salary join as fetched by the repository. Numeric
// fields default to zero and names to empty strings at the query level, so
// arithmetic here never deals with missing values.
type Row struct {
	EmpID      int64
	FirstName  string
	LastName   string
	BaseSalary float64
	Bonus      float64
	Deductions float64
	PaidStatus string
}

// Line is one display row of the payroll report with its computed net pay.
type Line struct {
	EmpID      int64   `json:"emp_id"`
	FullName   string  `json:"full_name"`
	BaseSalary float64 `json:"base_salary"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
	PaidStatus string  `json:"paid_status"`
}

type Totals struct {
	Base       float64 `json:"base"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
}

type Counts struct {
	Paid   int `json:"paid"`
	Unpaid int `json:"unpaid"`
	Rows   int `json:"rows"`
}

// Report is the monthly payroll summary: per-row lines plus running totals
// and paid/unpaid counts across the result set.
type Report struct {
	Salaries     []Line `json:"salaries"`
	Totals       Totals `json:"totals"`
	Counts       Counts `json:"counts"`
	MonthDisplay string `json:"month_display"`
	EmpID        int64  `json:"emp_id,omitempty"`
}

// BuildReport reduces the fetched rows into the report. Net pay is computed,
// never stored; any paid_status other than "paid" counts as unpaid.
func BuildReport(rows []*Row, month time.Time, empID int64) *Report {
	report := &Report{
		Salaries:     make([]Line, 0, len(rows)),
		MonthDisplay: month.Format(DisplayFormat),
		EmpID:        empID,
	}

	for _, r := range rows {
		net := r.BaseSalary + r.Bonus - r.Deductions

		report.Counts.Rows++
		if r.PaidStatus == PaidStatusPaid {
			report.Counts.Paid++
		} else {
			report.Counts.Unpaid++
		}

		report.Totals.Base += r.BaseSalary
		report.Totals.Bonus += r.Bonus
		report.Totals.Deductions += r.Deductions
		report.Totals.Net += net

		report.Salaries = append(report.Salaries, Line{
			EmpID:      r.EmpID,
			FullName:   strings.TrimSpace(r.FirstName + " " + r.LastName),
			BaseSalary: r.BaseSalary,
			Bonus:      r.Bonus,
			Deductions: r.Deductions,
			Net:        net,
			PaidStatus: r.PaidStatus,
		})
	}

	return report
}
