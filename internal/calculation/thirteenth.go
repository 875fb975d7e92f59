package calculation

import (
	"time"

	"github.com/folhabr/payroll-calculator/pkg/dateutil"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// A calendar month only counts toward the thirteenth salary when the
// employee was present for at least this many of its days. Fixed legal
// rule, not tenant configuration.
const thirteenthMinDaysInMonth = 15

// ThirteenthSalaryCalculator prorates the annual bonus salary by months
// actually worked in a reference year.
type ThirteenthSalaryCalculator struct{}

// NewThirteenthSalaryCalculator creates a thirteenth salary calculator
func NewThirteenthSalaryCalculator() *ThirteenthSalaryCalculator {
	return &ThirteenthSalaryCalculator{}
}

// CalculateGrossValue computes (salary/12) * monthsWorked, capping months
// at 12. Non-positive inputs yield zero.
func (c *ThirteenthSalaryCalculator) CalculateGrossValue(baseSalary money.Money, monthsWorked int) money.Money {
	if !baseSalary.IsPositive() || monthsWorked <= 0 {
		return money.Zero()
	}
	if monthsWorked > 12 {
		monthsWorked = 12
	}
	return baseSalary.DivInt(12).MulInt(int64(monthsWorked)).Round()
}

// CalculateMonthsWorked counts the calendar months of the reference year in
// which the employee was present for at least 15 days, clipping the worked
// window to admission and termination dates.
func (c *ThirteenthSalaryCalculator) CalculateMonthsWorked(admissionDate time.Time, referenceYear int, terminationDate *time.Time) int {
	yearStart := time.Date(referenceYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(referenceYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	windowStart := dateutil.MaxDate(admissionDate, yearStart)
	windowEnd := yearEnd
	if terminationDate != nil {
		windowEnd = dateutil.MinDate(*terminationDate, yearEnd)
	}
	if windowEnd.Before(windowStart) {
		return 0
	}

	months := 0
	for cursor := dateutil.BeginningOfMonth(windowStart); !cursor.After(windowEnd); cursor = dateutil.AddMonths(cursor, 1) {
		overlapStart := dateutil.MaxDate(windowStart, cursor)
		overlapEnd := dateutil.MinDate(windowEnd, dateutil.EndOfMonth(cursor))
		days := dateutil.DaysBetween(overlapStart, overlapEnd) + 1
		if days >= thirteenthMinDaysInMonth {
			months++
		}
	}
	if months > 12 {
		months = 12
	}
	return months
}
