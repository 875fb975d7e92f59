package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/folhabr/payroll-calculator/internal/domain"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// TaxBracketEngine evaluates a progressive table against a base amount.
// One engine serves both table shapes: the table's Kind selects between
// cumulative-marginal accumulation and flat-rate-with-deduction.
type TaxBracketEngine struct{}

// NewTaxBracketEngine creates a new bracket engine
func NewTaxBracketEngine() *TaxBracketEngine {
	return &TaxBracketEngine{}
}

// BracketResult is the outcome of evaluating a table against a base.
type BracketResult struct {
	Tax           money.Money
	EffectiveRate decimal.Decimal // percent, 2 decimals
}

// Evaluate computes the tax a table yields for a base amount. A non-positive
// base yields a zero result; the returned tax is rounded half-up to cents
// and never negative.
func (e *TaxBracketEngine) Evaluate(table domain.TaxTable, base money.Money) BracketResult {
	if !base.IsPositive() {
		return BracketResult{Tax: money.Zero(), EffectiveRate: decimal.Zero}
	}

	var tax money.Money
	switch table.Kind {
	case domain.TableFlatWithDeduction:
		tax = e.evaluateFlatWithDeduction(table, base)
	default:
		tax = e.evaluateMarginal(table, base)
	}

	tax = tax.Round()
	rate := tax.Decimal.Div(base.Decimal).Mul(decimal.NewFromInt(100)).Round(2)
	return BracketResult{Tax: tax, EffectiveRate: rate}
}

// evaluateMarginal accumulates one slice per bracket at or below base.
// Slices are measured from the previous bracket's inclusive upper bound so
// the one-cent offset between adjacent brackets never reaches the tax.
func (e *TaxBracketEngine) evaluateMarginal(table domain.TaxTable, base money.Money) money.Money {
	tax := money.Zero()
	prev := money.Zero()
	for _, b := range table.Brackets {
		upper := base
		if !b.Unbounded() {
			upper = money.Min(base, b.Upper)
		}
		slice := upper.Sub(prev)
		if slice.IsPositive() {
			tax = tax.Add(slice.Mul(b.Rate))
		}
		if b.Unbounded() || base.LessThanOrEqual(b.Upper) {
			break
		}
		prev = b.Upper
	}
	return tax
}

// evaluateFlatWithDeduction applies only the matching bracket's rate and
// quick deduction, floored at zero.
func (e *TaxBracketEngine) evaluateFlatWithDeduction(table domain.TaxTable, base money.Money) money.Money {
	bracket, ok := table.Match(base)
	if !ok {
		return money.Zero()
	}
	tax := base.Mul(bracket.Rate).Sub(bracket.Deduction)
	return money.Max(tax, money.Zero())
}
