package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/folhabr/payroll-calculator/internal/config"
	"github.com/folhabr/payroll-calculator/internal/domain"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// IncomeTaxCalculator computes withholding income tax (IRRF). The taxable
// base is the salary minus the pension contribution, a fixed deduction per
// dependent and any caller-supplied deductions; the table is evaluated
// flat-rate-with-deduction against that base.
type IncomeTaxCalculator struct {
	Table              domain.TaxTable
	DependentDeduction money.Money
	contribution       *ContributionCalculator
	engine             *TaxBracketEngine
}

// NewIncomeTaxCalculator creates an income tax calculator from rules
func NewIncomeTaxCalculator(rules *config.PayrollRules) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		Table:              rules.IncomeTaxTable,
		DependentDeduction: rules.DependentDeduction,
		contribution:       NewContributionCalculator(rules),
		engine:             NewTaxBracketEngine(),
	}
}

// IncomeTaxResult is one employee's withholding tax figure.
type IncomeTaxResult struct {
	Tax             money.Money
	EffectiveRate   decimal.Decimal // percent against the taxable base
	TaxableBase     money.Money
	TotalDeductions money.Money
}

// Calculate computes the withholding tax for a base salary. It never
// errors: any misuse collapses to a zero result.
func (c *IncomeTaxCalculator) Calculate(baseSalary money.Money, dependentCount int, otherDeductions money.Money) IncomeTaxResult {
	if !baseSalary.IsPositive() {
		return IncomeTaxResult{Tax: money.Zero(), TaxableBase: money.Zero(), TotalDeductions: money.Zero()}
	}
	if dependentCount < 0 {
		dependentCount = 0
	}
	if otherDeductions.IsNegative() {
		otherDeductions = money.Zero()
	}

	contribution := c.contribution.Calculate(baseSalary).Amount
	totalDeductions := contribution.
		Add(c.DependentDeduction.MulInt(int64(dependentCount))).
		Add(otherDeductions).
		Round()

	taxableBase := money.Max(baseSalary.Sub(totalDeductions), money.Zero()).Round()
	if !taxableBase.IsPositive() {
		return IncomeTaxResult{Tax: money.Zero(), TaxableBase: money.Zero(), TotalDeductions: totalDeductions}
	}

	result := c.engine.Evaluate(c.Table, taxableBase)
	return IncomeTaxResult{
		Tax:             result.Tax,
		EffectiveRate:   result.EffectiveRate,
		TaxableBase:     taxableBase,
		TotalDeductions: totalDeductions,
	}
}
