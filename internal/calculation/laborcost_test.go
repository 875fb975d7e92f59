package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/folhabr/payroll-calculator/internal/config"
	"github.com/folhabr/payroll-calculator/internal/domain"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

func TestMonthlyCostBreakdown(t *testing.T) {
	estimator := NewLaborCostEstimator(config.DefaultRules2024())

	breakdown := estimator.CalculateMonthlyCost(money.MustParse("3000.00"))

	assert.Equal(t, "3000.00", breakdown.BaseSalary.String())
	assert.Equal(t, "600.00", breakdown.EmployerContribution.String())      // 20%
	assert.Equal(t, "240.00", breakdown.SeverancePoolContribution.String()) // 8%
	assert.Equal(t, "333.33", breakdown.VacationProvision.String())         // salary*(4/3)/12
	assert.Equal(t, "250.00", breakdown.ThirteenthSalaryProvision.String()) // salary/12
	assert.Equal(t, "150.00", breakdown.OtherCharges.String())              // 5%
	assert.Equal(t, "4573.33", breakdown.TotalMonthly.String())
	assert.Equal(t, "54880.00", breakdown.TotalAnnual.String())
	assert.Equal(t, "20.79", breakdown.CostPerHour.String()) // monthly/220
}

func TestMonthlyCostZeroSalary(t *testing.T) {
	estimator := NewLaborCostEstimator(config.DefaultRules2024())

	for _, salary := range []string{"0", "-4500.00"} {
		breakdown := estimator.CalculateMonthlyCost(money.MustParse(salary))
		assert.Equal(t, "0.00", breakdown.TotalMonthly.String())
		assert.Equal(t, "0.00", breakdown.TotalAnnual.String())
		assert.Equal(t, "0.00", breakdown.CostPerHour.String())
		assert.Equal(t, "0.00", breakdown.VacationProvision.String())
	}
}

// Monthly and annual totals are rounded independently; they must agree to
// within one rounding unit when brought to the same scale.
func TestMonthlyAnnualRoundingDrift(t *testing.T) {
	estimator := NewLaborCostEstimator(config.DefaultRules2024())

	salaries := []string{"1412.00", "3000.00", "3333.33", "7786.02", "9876.54"}
	centTolerance := decimal.NewFromFloat(0.01)

	for _, s := range salaries {
		breakdown := estimator.CalculateMonthlyCost(money.MustParse(s))
		monthlyScaled := breakdown.TotalMonthly.Decimal.Div(decimal.NewFromInt(12))
		annualScaled := breakdown.TotalAnnual.Decimal.Div(decimal.NewFromInt(144))
		drift := monthlyScaled.Sub(annualScaled).Abs()
		assert.True(t, drift.LessThanOrEqual(centTolerance),
			"salary %s: drift %s exceeds one cent", s, drift)
	}
}

func TestProjectCost(t *testing.T) {
	estimator := NewLaborCostEstimator(config.DefaultRules2024())

	costA := estimator.CalculateMonthlyCost(money.MustParse("3000.00")) // 20.79/h
	costB := estimator.CalculateMonthlyCost(money.MustParse("6000.00"))

	result := estimator.CalculateProjectCost([]domain.Allocation{
		{EmployeeCost: costA, Hours: decimal.NewFromInt(100)},
		{EmployeeCost: costB, Hours: decimal.NewFromFloat(37.5)},
	})

	assert.Len(t, result.PerAllocation, 2)
	assert.Equal(t, "2079.00", result.PerAllocation[0].Cost.String())

	expectedB := costB.CostPerHour.Mul(decimal.NewFromFloat(37.5)).Round()
	assert.True(t, result.PerAllocation[1].Cost.Equal(expectedB))
	assert.True(t, result.Total.Equal(result.PerAllocation[0].Cost.Add(result.PerAllocation[1].Cost).Round()))
}

func TestProjectCostEdgeCases(t *testing.T) {
	estimator := NewLaborCostEstimator(config.DefaultRules2024())

	empty := estimator.CalculateProjectCost(nil)
	assert.Equal(t, "0.00", empty.Total.String())
	assert.Empty(t, empty.PerAllocation)

	cost := estimator.CalculateMonthlyCost(money.MustParse("3000.00"))
	negative := estimator.CalculateProjectCost([]domain.Allocation{
		{EmployeeCost: cost, Hours: decimal.NewFromInt(-10)},
	})
	assert.Equal(t, "0.00", negative.Total.String())
}

func TestMonthlyCostIdempotence(t *testing.T) {
	estimator := NewLaborCostEstimator(config.DefaultRules2024())
	salary := money.MustParse("5432.10")

	assert.Equal(t, estimator.CalculateMonthlyCost(salary), estimator.CalculateMonthlyCost(salary))
}
