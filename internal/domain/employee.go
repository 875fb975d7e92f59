package domain

import (
	"time"

	"github.com/folhabr/payroll-calculator/pkg/money"
)

// EmployeeSnapshot is the immutable input record every calculator consumes.
// It is owned by the HR layer; calculators never mutate it and always operate
// on the salary the caller supplies as current.
type EmployeeSnapshot struct {
	ID              string     `yaml:"id" json:"id"`
	Name            string     `yaml:"name" json:"name"`
	CPF             string     `yaml:"cpf,omitempty" json:"cpf,omitempty"`
	BaseSalary      money.Money `yaml:"base_salary" json:"base_salary"`
	DependentCount  int        `yaml:"dependent_count" json:"dependent_count"`
	BirthDate       time.Time  `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	AdmissionDate   time.Time  `yaml:"admission_date" json:"admission_date"`
	TerminationDate *time.Time `yaml:"termination_date,omitempty" json:"termination_date,omitempty"`
}

// Active reports whether the employee is still employed at the given date.
func (e EmployeeSnapshot) Active(at time.Time) bool {
	return e.TerminationDate == nil || e.TerminationDate.After(at)
}

// SalaryHistoryEntry records a base-salary change. Entries are append-only
// and written only when the amount actually differs from the previous one;
// the store enforces that contract.
type SalaryHistoryEntry struct {
	ID            string      `json:"id"`
	EmployeeID    string      `json:"employee_id"`
	EffectiveDate time.Time   `json:"effective_date"`
	Amount        money.Money `json:"amount"`
	Reason        string      `json:"reason"`
}
