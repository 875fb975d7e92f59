package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folhabr/payroll-calculator/internal/config"
	"github.com/folhabr/payroll-calculator/internal/domain"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

func referenceMonth() time.Time {
	return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestProcessEmployee(t *testing.T) {
	engine := NewPayrollEngine(config.DefaultRules2024())

	records := engine.ProcessEmployee(domain.EmployeeSnapshot{
		ID:             "emp-001",
		BaseSalary:     money.MustParse("3000.00"),
		DependentCount: 1,
	}, referenceMonth())

	require.Len(t, records, 3)

	byType := map[domain.BenefitType]domain.BenefitRecord{}
	for _, r := range records {
		assert.Equal(t, "emp-001", r.EmployeeID)
		assert.Equal(t, referenceMonth(), r.ReferenceDate)
		byType[r.Type] = r
	}

	assert.Equal(t, domain.CategoryDiscount, byType[domain.BenefitINSS].Category)
	assert.Equal(t, "258.82", byType[domain.BenefitINSS].Value.String())

	assert.Equal(t, domain.CategoryBenefit, byType[domain.BenefitFGTS].Category)
	assert.Equal(t, "240.00", byType[domain.BenefitFGTS].Value.String())

	assert.Equal(t, domain.CategoryDiscount, byType[domain.BenefitIRRF].Category)
	assert.Equal(t, "21.93", byType[domain.BenefitIRRF].Value.String())
}

// Bad input must produce zero-valued records, never abort processing.
func TestProcessEmployeeBadInput(t *testing.T) {
	engine := NewPayrollEngine(config.DefaultRules2024())

	records := engine.ProcessEmployee(domain.EmployeeSnapshot{
		ID:         "emp-bad",
		BaseSalary: money.MustParse("-1000.00"),
	}, referenceMonth())

	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, "0.00", r.Value.String())
	}
}

func TestRunBatch(t *testing.T) {
	engine := NewPayrollEngine(config.DefaultRules2024())

	employees := []domain.EmployeeSnapshot{
		{ID: "emp-001", BaseSalary: money.MustParse("3000.00"), DependentCount: 1},
		{ID: "emp-002", BaseSalary: money.MustParse("8500.00")},
		{ID: "emp-003", BaseSalary: money.MustParse("-50.00")}, // bad data, isolated
		{ID: "emp-004", BaseSalary: money.MustParse("1412.00"), DependentCount: 2},
	}

	records := engine.RunBatch(employees, referenceMonth())
	require.Len(t, records, len(employees)*3)

	// Employee order is preserved regardless of goroutine scheduling.
	for i, e := range employees {
		for j := 0; j < 3; j++ {
			assert.Equal(t, e.ID, records[i*3+j].EmployeeID)
		}
	}

	// The malformed employee contributed zero-valued records only.
	for _, r := range records[6:9] {
		assert.Equal(t, "0.00", r.Value.String())
	}
}

// Re-running a batch with identical input must yield identical records;
// this is what makes a partial-failure re-run safe.
func TestRunBatchIdempotence(t *testing.T) {
	engine := NewPayrollEngine(config.DefaultRules2024())

	employees := make([]domain.EmployeeSnapshot, 0, 50)
	for i := 0; i < 50; i++ {
		employees = append(employees, domain.EmployeeSnapshot{
			ID:         string(rune('a'+i%26)) + "-emp",
			BaseSalary: money.MustParse("2500.00").Add(money.NewFromInt(int64(i * 137))),
		})
	}

	first := engine.RunBatch(employees, referenceMonth())
	second := engine.RunBatch(employees, referenceMonth())
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].EmployeeID, second[i].EmployeeID)
		assert.Equal(t, first[i].Type, second[i].Type)
		assert.True(t, first[i].Value.Equal(second[i].Value))
	}
}

// Calculators share no mutable state, so one engine can serve concurrent
// callers; the race detector keeps this honest.
func TestEngineConcurrentUse(t *testing.T) {
	engine := NewPayrollEngine(config.DefaultRules2024())
	employee := domain.EmployeeSnapshot{ID: "emp-001", BaseSalary: money.MustParse("4200.00")}

	done := make(chan []domain.BenefitRecord, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- engine.ProcessEmployee(employee, referenceMonth())
		}()
	}

	baseline := engine.ProcessEmployee(employee, referenceMonth())
	for i := 0; i < 8; i++ {
		records := <-done
		require.Len(t, records, 3)
		for j := range records {
			assert.True(t, records[j].Value.Equal(baseline[j].Value))
		}
	}
}
