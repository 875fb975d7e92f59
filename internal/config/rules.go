package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/folhabr/payroll-calculator/internal/domain"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// PayrollRules carries every regulatory value the calculators consume.
// Brackets, ceilings and rates are time-bound legal figures, so they are
// loaded as versioned configuration instead of compiled constants.
type PayrollRules struct {
	// Employee-side pension contribution (INSS): cumulative marginal
	// table capped at the contribution ceiling.
	ContributionTable   domain.TaxTable `yaml:"contribution_table"`
	ContributionCeiling money.Money     `yaml:"contribution_ceiling"`

	// Withholding income tax (IRRF): flat-rate-with-deduction table plus
	// a fixed per-dependent deduction on the taxable base.
	IncomeTaxTable     domain.TaxTable `yaml:"income_tax_table"`
	DependentDeduction money.Money     `yaml:"dependent_deduction"`

	// Employer-side flat rates.
	SeverancePoolRate        decimal.Decimal `yaml:"severance_pool_rate"`
	EmployerContributionRate decimal.Decimal `yaml:"employer_contribution_rate"`
	OtherChargesRate         decimal.Decimal `yaml:"other_charges_rate"`

	// Working-time constants.
	StandardMonthlyHours decimal.Decimal `yaml:"standard_monthly_hours"`
	StandardDailyHours   decimal.Decimal `yaml:"standard_daily_hours"`
}

// RulesParser handles loading and validation of payroll rule files
type RulesParser struct{}

// NewRulesParser creates a new rules parser
func NewRulesParser() *RulesParser {
	return &RulesParser{}
}

// LoadFromFile loads payroll rules from a YAML file
func (rp *RulesParser) LoadFromFile(filename string) (*PayrollRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rules PayrollRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return &rules, nil
}

// ValidateRules validates the loaded rules
func (rp *RulesParser) ValidateRules(rules *PayrollRules) error {
	if err := rp.validateTable(&rules.ContributionTable, domain.TableMarginal); err != nil {
		return fmt.Errorf("contribution table validation failed: %w", err)
	}
	if err := rp.validateTable(&rules.IncomeTaxTable, domain.TableFlatWithDeduction); err != nil {
		return fmt.Errorf("income tax table validation failed: %w", err)
	}

	if !rules.ContributionCeiling.IsPositive() {
		return fmt.Errorf("contribution ceiling must be positive")
	}
	if rules.DependentDeduction.IsNegative() {
		return fmt.Errorf("dependent deduction cannot be negative")
	}

	if err := rp.validateRate("severance pool rate", rules.SeverancePoolRate); err != nil {
		return err
	}
	if err := rp.validateRate("employer contribution rate", rules.EmployerContributionRate); err != nil {
		return err
	}
	if err := rp.validateRate("other charges rate", rules.OtherChargesRate); err != nil {
		return err
	}

	if !rules.StandardMonthlyHours.IsPositive() {
		return fmt.Errorf("standard monthly hours must be positive")
	}
	if !rules.StandardDailyHours.IsPositive() {
		return fmt.Errorf("standard daily hours must be positive")
	}

	return nil
}

// validateTable checks ordering, contiguity and kind of a progressive table.
// Adjacent brackets must satisfy next.Lower == prev.Upper + 0.01 and only
// the final bracket may be unbounded.
func (rp *RulesParser) validateTable(table *domain.TaxTable, expectedKind domain.TableKind) error {
	if table.Kind != expectedKind {
		return fmt.Errorf("table kind must be %q, got %q", expectedKind, table.Kind)
	}
	if len(table.Brackets) == 0 {
		return fmt.Errorf("table has no brackets")
	}

	cent := money.MustParse("0.01")
	for i, b := range table.Brackets {
		if b.Lower.IsNegative() {
			return fmt.Errorf("bracket %d: lower bound cannot be negative", i)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate must be between 0 and 1", i)
		}
		if b.Deduction.IsNegative() {
			return fmt.Errorf("bracket %d: deduction cannot be negative", i)
		}

		last := i == len(table.Brackets)-1
		if last {
			if !b.Unbounded() {
				return fmt.Errorf("last bracket must be unbounded")
			}
			continue
		}
		if b.Unbounded() {
			return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
		}
		if !b.Upper.GreaterThan(b.Lower) {
			return fmt.Errorf("bracket %d: upper bound must exceed lower bound", i)
		}
		next := table.Brackets[i+1]
		if !next.Lower.Equal(b.Upper.Add(cent)) {
			return fmt.Errorf("bracket %d: gap or overlap at %s -> %s", i, b.Upper, next.Lower)
		}
	}

	if !table.Brackets[0].Lower.IsZero() {
		return fmt.Errorf("first bracket must start at zero")
	}

	return nil
}

func (rp *RulesParser) validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1", name)
	}
	return nil
}

// DefaultRules2024 returns the 2024 regulatory tables. These mirror the
// published values effective May 2024 and serve as the built-in fallback
// when no rules file is supplied.
func DefaultRules2024() *PayrollRules {
	return &PayrollRules{
		ContributionTable: domain.TaxTable{
			Name: "INSS 2024",
			Kind: domain.TableMarginal,
			Brackets: []domain.TaxBracket{
				{Lower: money.MustParse("0"), Upper: money.MustParse("1412.00"), Rate: decimal.NewFromFloat(0.075)},
				{Lower: money.MustParse("1412.01"), Upper: money.MustParse("2666.68"), Rate: decimal.NewFromFloat(0.09)},
				{Lower: money.MustParse("2666.69"), Upper: money.MustParse("4000.03"), Rate: decimal.NewFromFloat(0.12)},
				{Lower: money.MustParse("4000.04"), Rate: decimal.NewFromFloat(0.14)},
			},
		},
		ContributionCeiling: money.MustParse("7786.02"),
		IncomeTaxTable: domain.TaxTable{
			Name: "IRRF 2024",
			Kind: domain.TableFlatWithDeduction,
			Brackets: []domain.TaxBracket{
				{Lower: money.MustParse("0"), Upper: money.MustParse("2259.20"), Rate: decimal.Zero},
				{Lower: money.MustParse("2259.21"), Upper: money.MustParse("2826.65"), Rate: decimal.NewFromFloat(0.075), Deduction: money.MustParse("169.44")},
				{Lower: money.MustParse("2826.66"), Upper: money.MustParse("3751.05"), Rate: decimal.NewFromFloat(0.15), Deduction: money.MustParse("381.44")},
				{Lower: money.MustParse("3751.06"), Upper: money.MustParse("4664.68"), Rate: decimal.NewFromFloat(0.225), Deduction: money.MustParse("662.77")},
				{Lower: money.MustParse("4664.69"), Rate: decimal.NewFromFloat(0.275), Deduction: money.MustParse("896.00")},
			},
		},
		DependentDeduction:       money.MustParse("189.59"),
		SeverancePoolRate:        decimal.NewFromFloat(0.08),
		EmployerContributionRate: decimal.NewFromFloat(0.20),
		OtherChargesRate:         decimal.NewFromFloat(0.05),
		StandardMonthlyHours:     decimal.NewFromInt(220),
		StandardDailyHours:       decimal.NewFromInt(8),
	}
}
