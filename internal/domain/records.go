package domain

import (
	"time"

	"github.com/folhabr/payroll-calculator/pkg/money"
)

// BenefitType identifies which statutory figure a record carries.
type BenefitType string

const (
	BenefitINSS BenefitType = "INSS"
	BenefitFGTS BenefitType = "FGTS"
	BenefitIRRF BenefitType = "IRRF"
)

// BenefitCategory distinguishes employee discounts from employer benefits.
type BenefitCategory string

const (
	CategoryDiscount BenefitCategory = "discount"
	CategoryBenefit  BenefitCategory = "benefit"
)

// BenefitRecord is what a batch payroll run persists per employee and
// statutory figure. Records are append-only.
type BenefitRecord struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Type          BenefitType     `json:"type"`
	Category      BenefitCategory `json:"category"`
	Value         money.Money     `json:"value"`
	ReferenceDate time.Time       `json:"reference_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
