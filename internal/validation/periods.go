package validation

import (
	"fmt"
	"time"

	"github.com/folhabr/payroll-calculator/pkg/dateutil"
)

const (
	maxVacationSpanDays = 30
	concessionMonths    = 12
	minWorkingAge       = 14
	apprenticeOnlyAge   = 16
)

// ValidateVacationPeriod checks the legality of a requested leave period
// against its acquisition window. It returns human-readable violations and
// never errors; an empty slice means the period is legal.
func ValidateVacationPeriod(start, end, acquisitionStart, acquisitionEnd time.Time) []string {
	var violations []string

	if !end.After(start) {
		violations = append(violations, "vacation end date must be after the start date")
	} else {
		days := dateutil.DaysBetween(start, end) + 1
		if days > maxVacationSpanDays {
			violations = append(violations,
				fmt.Sprintf("vacation period spans %d days; the maximum is %d", days, maxVacationSpanDays))
		}
	}

	// Statutory use-it-or-lose-it window: the leave must start within the
	// 12 months that follow the acquisition period.
	concessionLimit := dateutil.AddMonths(acquisitionEnd, concessionMonths)
	if start.After(concessionLimit) {
		violations = append(violations,
			fmt.Sprintf("vacation must start by %s, within the 12 months following the acquisition period",
				concessionLimit.Format("2006-01-02")))
	}

	return violations
}

// ValidateMinimumAge checks the working-age rules at the admission date.
// Under 14 is illegal outright; from 14 up to 16 only apprenticeship
// contracts are allowed.
func ValidateMinimumAge(birthDate, admissionDate time.Time) []string {
	var violations []string

	age := dateutil.Age(birthDate, admissionDate)
	switch {
	case age < minWorkingAge:
		violations = append(violations,
			fmt.Sprintf("employee is %d at admission; the legal minimum working age is %d", age, minWorkingAge))
	case age < apprenticeOnlyAge:
		violations = append(violations,
			fmt.Sprintf("employee is %d at admission; under %d only apprenticeship contracts are allowed", age, apprenticeOnlyAge))
	}

	return violations
}
