package calculation

import (
	"time"

	"github.com/folhabr/payroll-calculator/pkg/dateutil"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// Statutory limits on a single vacation grant.
const (
	maxVacationDays = 30
	maxCashOutDays  = 10
)

// VacationPayCalculator computes vacation pay with the constitutional
// one-third bonus and the optional pecuniary allowance (cash-out of unused
// days), and derives the accrual window from the hire date.
type VacationPayCalculator struct{}

// NewVacationPayCalculator creates a vacation pay calculator
func NewVacationPayCalculator() *VacationPayCalculator {
	return &VacationPayCalculator{}
}

// VacationPayResult itemizes a vacation payment. Each field is rounded
// independently because each is persisted as its own line item.
type VacationPayResult struct {
	VacationValue       money.Money
	CashOutValue        money.Money
	ConstitutionalBonus money.Money
	Total               money.Money
}

// AcquisitionPeriod is the 12-month window vacation entitlement accrues in.
type AcquisitionPeriod struct {
	Start time.Time
	End   time.Time
}

// CalculateValue computes the payment for a vacation of daysTaken days with
// cashOutDays days sold back. Non-positive salary or days yield all zeros;
// days beyond the statutory limits are clamped.
func (c *VacationPayCalculator) CalculateValue(baseSalary money.Money, daysTaken, cashOutDays int) VacationPayResult {
	if !baseSalary.IsPositive() || daysTaken <= 0 {
		return VacationPayResult{
			VacationValue:       money.Zero(),
			CashOutValue:        money.Zero(),
			ConstitutionalBonus: money.Zero(),
			Total:               money.Zero(),
		}
	}
	if daysTaken > maxVacationDays {
		daysTaken = maxVacationDays
	}
	if cashOutDays < 0 {
		cashOutDays = 0
	}
	if cashOutDays > maxCashOutDays {
		cashOutDays = maxCashOutDays
	}

	dailyRate := baseSalary.DivInt(30)
	vacationValue := dailyRate.MulInt(int64(daysTaken))
	bonus := vacationValue.DivInt(3)

	cashOutValue := money.Zero()
	if cashOutDays > 0 {
		cashOutValue = dailyRate.MulInt(int64(cashOutDays))
		bonus = bonus.Add(cashOutValue.DivInt(3))
	}

	total := vacationValue.Add(cashOutValue).Add(bonus)
	return VacationPayResult{
		VacationValue:       vacationValue.Round(),
		CashOutValue:        cashOutValue.Round(),
		ConstitutionalBonus: bonus.Round(),
		Total:               total.Round(),
	}
}

// CalculateAcquisitionPeriod derives the current accrual window from the
// hire date: the window starts one whole 365-day year count after admission
// and runs for one year minus a day.
func (c *VacationPayCalculator) CalculateAcquisitionPeriod(admissionDate, referenceDate time.Time) AcquisitionPeriod {
	fullYears := dateutil.DaysBetween(admissionDate, referenceDate) / 365
	if fullYears < 0 {
		fullYears = 0
	}

	start := dateutil.AddYears(admissionDate, fullYears)
	end := dateutil.AddYears(start, 1).AddDate(0, 0, -1)
	return AcquisitionPeriod{Start: start, End: end}
}
