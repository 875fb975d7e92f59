package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/folhabr/payroll-calculator/internal/config"
	"github.com/folhabr/payroll-calculator/internal/domain"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// LaborCostEstimator aggregates gross salary, employer charges and accrued
// provisions into the fully-loaded cost of an employee, and batches that
// across employee/hour allocations for project costing.
type LaborCostEstimator struct {
	EmployerContributionRate decimal.Decimal
	OtherChargesRate         decimal.Decimal
	StandardMonthlyHours     decimal.Decimal
	severance                *SeverancePoolCalculator
}

// NewLaborCostEstimator creates a labor cost estimator from rules
func NewLaborCostEstimator(rules *config.PayrollRules) *LaborCostEstimator {
	return &LaborCostEstimator{
		EmployerContributionRate: rules.EmployerContributionRate,
		OtherChargesRate:         rules.OtherChargesRate,
		StandardMonthlyHours:     rules.StandardMonthlyHours,
		severance:                NewSeverancePoolCalculator(rules),
	}
}

// CalculateMonthlyCost computes the fully-loaded monthly cost breakdown.
// The vacation provision accrues one month of vacation-with-bonus over
// twelve months; the thirteenth provision accrues one salary over twelve.
// All divisors are configuration constants, so a zero salary simply yields
// an all-zero breakdown.
func (c *LaborCostEstimator) CalculateMonthlyCost(baseSalary money.Money) domain.LaborCostBreakdown {
	if !baseSalary.IsPositive() {
		return zeroBreakdown()
	}

	employer := baseSalary.Mul(c.EmployerContributionRate)
	severance := c.severance.Calculate(baseSalary).Amount
	vacation := baseSalary.MulInt(4).DivInt(3).DivInt(12)
	thirteenth := baseSalary.DivInt(12)
	other := baseSalary.Mul(c.OtherChargesRate)

	totalMonthly := baseSalary.Add(employer).Add(severance).Add(vacation).Add(thirteenth).Add(other)
	totalAnnual := totalMonthly.MulInt(12)
	costPerHour := totalMonthly.Div(c.StandardMonthlyHours)

	return domain.LaborCostBreakdown{
		BaseSalary:                baseSalary.Round(),
		EmployerContribution:      employer.Round(),
		SeverancePoolContribution: severance.Round(),
		VacationProvision:         vacation.Round(),
		ThirteenthSalaryProvision: thirteenth.Round(),
		OtherCharges:              other.Round(),
		TotalMonthly:              totalMonthly.Round(),
		TotalAnnual:               totalAnnual.Round(),
		CostPerHour:               costPerHour.Round(),
	}
}

// AllocationCost is the priced-out cost of one project allocation.
type AllocationCost struct {
	Allocation domain.Allocation
	Cost       money.Money
}

// ProjectCostResult totals a set of allocations.
type ProjectCostResult struct {
	Total         money.Money
	PerAllocation []AllocationCost
}

// CalculateProjectCost prices each allocation at its employee's cost per
// hour and sums the line items. Allocations do not interact; negative hour
// counts are treated as zero.
func (c *LaborCostEstimator) CalculateProjectCost(allocations []domain.Allocation) ProjectCostResult {
	result := ProjectCostResult{
		Total:         money.Zero(),
		PerAllocation: make([]AllocationCost, 0, len(allocations)),
	}
	for _, alloc := range allocations {
		hours := alloc.Hours
		if hours.IsNegative() {
			hours = decimal.Zero
		}
		cost := alloc.EmployeeCost.CostPerHour.Mul(hours).Round()
		result.PerAllocation = append(result.PerAllocation, AllocationCost{Allocation: alloc, Cost: cost})
		result.Total = result.Total.Add(cost)
	}
	result.Total = result.Total.Round()
	return result
}

func zeroBreakdown() domain.LaborCostBreakdown {
	z := money.Zero()
	return domain.LaborCostBreakdown{
		BaseSalary:                z,
		EmployerContribution:      z,
		SeverancePoolContribution: z,
		VacationProvision:         z,
		ThirteenthSalaryProvision: z,
		OtherCharges:              z,
		TotalMonthly:              z,
		TotalAnnual:               z,
		CostPerHour:               z,
	}
}
