package domain

import (
	"github.com/shopspring/decimal"

	"github.com/folhabr/payroll-calculator/pkg/money"
)

// TableKind selects how a progressive table turns a base amount into tax.
type TableKind string

const (
	// TableMarginal sums per-slice amounts across every bracket at or
	// below the base (INSS-style cumulative marginal evaluation).
	TableMarginal TableKind = "marginal"

	// TableFlatWithDeduction applies only the matching bracket:
	// base*rate - deduction, floored at zero (IRRF-style).
	TableFlatWithDeduction TableKind = "flat_with_deduction"
)

// TaxBracket is one salary range of a progressive table. Upper is inclusive;
// the last bracket of a table leaves Upper at zero to mean unbounded.
type TaxBracket struct {
	Lower     money.Money     `yaml:"lower" json:"lower"`
	Upper     money.Money     `yaml:"upper,omitempty" json:"upper,omitempty"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Deduction money.Money     `yaml:"deduction,omitempty" json:"deduction,omitempty"`
}

// Unbounded reports whether this bracket has no upper limit. Only the last
// bracket of a valid table is unbounded.
func (b TaxBracket) Unbounded() bool {
	return b.Upper.IsZero()
}

// TaxTable is an ordered, contiguous, non-overlapping progressive table.
// Regulatory tables change over time, so tables travel as configuration
// rather than compiled constants.
type TaxTable struct {
	Name     string       `yaml:"name" json:"name"`
	Kind     TableKind    `yaml:"kind" json:"kind"`
	Brackets []TaxBracket `yaml:"brackets" json:"brackets"`
}

// Match returns the single bracket containing base, or false when the table
// is empty or base is negative.
func (t TaxTable) Match(base money.Money) (TaxBracket, bool) {
	if base.IsNegative() {
		return TaxBracket{}, false
	}
	for i, b := range t.Brackets {
		last := i == len(t.Brackets)-1
		if base.GreaterThanOrEqual(b.Lower) && (last || b.Unbounded() || base.LessThanOrEqual(b.Upper)) {
			return b, true
		}
	}
	return TaxBracket{}, false
}
