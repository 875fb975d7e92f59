package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/folhabr/payroll-calculator/pkg/money"
)

// VacationRequest is a requested leave period together with the acquisition
// window the entitlement accrued in.
type VacationRequest struct {
	AcquisitionStart time.Time `yaml:"acquisition_start" json:"acquisition_start"`
	AcquisitionEnd   time.Time `yaml:"acquisition_end" json:"acquisition_end"`
	Start            time.Time `yaml:"start" json:"start"`
	End              time.Time `yaml:"end" json:"end"`
	DaysTaken        int       `yaml:"days_taken" json:"days_taken"`
	CashOutDays      int       `yaml:"cash_out_days" json:"cash_out_days"`
}

// LaborCostBreakdown is the fully-loaded cost of one employee: gross salary
// plus statutory employer charges and accrued provisions.
type LaborCostBreakdown struct {
	BaseSalary                money.Money `json:"base_salary"`
	EmployerContribution      money.Money `json:"employer_contribution"`
	SeverancePoolContribution money.Money `json:"severance_pool_contribution"`
	VacationProvision         money.Money `json:"vacation_provision"`
	ThirteenthSalaryProvision money.Money `json:"thirteenth_salary_provision"`
	OtherCharges              money.Money `json:"other_charges"`
	TotalMonthly              money.Money `json:"total_monthly"`
	TotalAnnual               money.Money `json:"total_annual"`
	CostPerHour               money.Money `json:"cost_per_hour"`
}

// Allocation assigns a number of worked hours of one employee to a project.
type Allocation struct {
	EmployeeCost LaborCostBreakdown `json:"employee_cost"`
	Hours        decimal.Decimal    `json:"hours"`
}
