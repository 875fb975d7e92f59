package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/folhabr/payroll-calculator/internal/config"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// SeverancePoolCalculator computes the employer's flat-rate severance-fund
// deposit (FGTS). No cap, no brackets.
type SeverancePoolCalculator struct {
	Rate decimal.Decimal
}

// NewSeverancePoolCalculator creates a severance pool calculator from rules
func NewSeverancePoolCalculator(rules *config.PayrollRules) *SeverancePoolCalculator {
	return &SeverancePoolCalculator{Rate: rules.SeverancePoolRate}
}

// SeveranceResult is one employee's severance-fund deposit.
type SeveranceResult struct {
	Amount money.Money
	Rate   decimal.Decimal // percent
}

// Calculate computes the deposit for a base salary. Non-positive salaries
// yield a zero result.
func (c *SeverancePoolCalculator) Calculate(baseSalary money.Money) SeveranceResult {
	ratePercent := c.Rate.Mul(decimal.NewFromInt(100)).Round(2)
	if !baseSalary.IsPositive() {
		return SeveranceResult{Amount: money.Zero(), Rate: ratePercent}
	}
	return SeveranceResult{
		Amount: baseSalary.Mul(c.Rate).Round(),
		Rate:   ratePercent,
	}
}
