package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/folhabr/payroll-calculator/internal/config"
	"github.com/folhabr/payroll-calculator/internal/domain"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// ContributionCalculator computes the employee-side pension contribution
// (INSS): a cumulative-marginal table evaluated against the salary capped
// at the contribution ceiling. The amount is monotone in salary and bounded
// by the marginal sum at the ceiling.
type ContributionCalculator struct {
	Table   domain.TaxTable
	Ceiling money.Money
	engine  *TaxBracketEngine
}

// NewContributionCalculator creates a contribution calculator from rules
func NewContributionCalculator(rules *config.PayrollRules) *ContributionCalculator {
	return &ContributionCalculator{
		Table:   rules.ContributionTable,
		Ceiling: rules.ContributionCeiling,
		engine:  NewTaxBracketEngine(),
	}
}

// ContributionResult is one employee's pension withholding.
type ContributionResult struct {
	Amount        money.Money
	EffectiveRate decimal.Decimal // percent against the capped base
	CappedBase    money.Money
}

// Calculate computes the contribution for a base salary. Non-positive
// salaries yield a structurally valid zero result.
func (c *ContributionCalculator) Calculate(baseSalary money.Money) ContributionResult {
	if !baseSalary.IsPositive() {
		return ContributionResult{Amount: money.Zero(), EffectiveRate: decimal.Zero, CappedBase: money.Zero()}
	}

	capped := money.Min(baseSalary, c.Ceiling)
	result := c.engine.Evaluate(c.Table, capped)
	return ContributionResult{
		Amount:        result.Tax,
		EffectiveRate: result.EffectiveRate,
		CappedBase:    capped,
	}
}
