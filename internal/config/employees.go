package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/folhabr/payroll-calculator/internal/domain"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// EmployeeFile is the on-disk shape a batch run reads its snapshots from.
type EmployeeFile struct {
	Employees []domain.EmployeeSnapshot `yaml:"employees"`
}

// LoadEmployees loads employee snapshots from a YAML file. Per-employee
// problems are reported, not silently dropped: a snapshot that cannot feed
// the calculators at all (missing id, zero admission date) fails the load,
// while numeric misuse is left to the calculators' zero-result policy.
func (rp *RulesParser) LoadEmployees(filename string) ([]domain.EmployeeSnapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file EmployeeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(file.Employees) == 0 {
		return nil, fmt.Errorf("no employees provided")
	}
	seen := make(map[string]bool, len(file.Employees))
	for i, e := range file.Employees {
		if e.ID == "" {
			return nil, fmt.Errorf("employee %d: id is required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("employee %d: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = true
		if e.AdmissionDate.IsZero() {
			return nil, fmt.Errorf("employee %s: admission date is required", e.ID)
		}
		if e.TerminationDate != nil && e.TerminationDate.Before(e.AdmissionDate) {
			return nil, fmt.Errorf("employee %s: termination date precedes admission date", e.ID)
		}
	}

	return file.Employees, nil
}

// CreateExampleEmployees returns a small employee file suitable for
// bootstrapping a batch run.
func (rp *RulesParser) CreateExampleEmployees() *EmployeeFile {
	admissionA, _ := time.Parse("2006-01-02", "2021-03-10")
	admissionB, _ := time.Parse("2006-01-02", "2023-07-01")

	return &EmployeeFile{
		Employees: []domain.EmployeeSnapshot{
			{
				ID:             "emp-001",
				Name:           "Ana Souza",
				CPF:            "11144477735",
				BaseSalary:     money.MustParse("3000.00"),
				DependentCount: 1,
				AdmissionDate:  admissionA,
			},
			{
				ID:             "emp-002",
				Name:           "Bruno Lima",
				BaseSalary:     money.MustParse("8500.00"),
				DependentCount: 0,
				AdmissionDate:  admissionB,
			},
		},
	}
}
