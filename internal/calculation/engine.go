package calculation

import (
	"sync"
	"time"

	"github.com/folhabr/payroll-calculator/internal/config"
	"github.com/folhabr/payroll-calculator/internal/domain"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// PayrollEngine composes every calculator behind one entry point. All
// calculators are pure and stateless after construction, so one engine is
// safe to share across goroutines without synchronization.
type PayrollEngine struct {
	Contribution *ContributionCalculator
	Severance    *SeverancePoolCalculator
	IncomeTax    *IncomeTaxCalculator
	Vacation     *VacationPayCalculator
	Thirteenth   *ThirteenthSalaryCalculator
	TimeBank     *TimeBankCalculator
	LaborCost    *LaborCostEstimator
	Logger       Logger
}

// NewPayrollEngine creates a payroll engine from rules
func NewPayrollEngine(rules *config.PayrollRules) *PayrollEngine {
	return &PayrollEngine{
		Contribution: NewContributionCalculator(rules),
		Severance:    NewSeverancePoolCalculator(rules),
		IncomeTax:    NewIncomeTaxCalculator(rules),
		Vacation:     NewVacationPayCalculator(),
		Thirteenth:   NewThirteenthSalaryCalculator(),
		TimeBank:     NewTimeBankCalculator(rules),
		LaborCost:    NewLaborCostEstimator(rules),
		Logger:       NopLogger{},
	}
}

// NewPayrollEngineWithLogger creates a payroll engine with a custom logger
func NewPayrollEngineWithLogger(rules *config.PayrollRules, logger Logger) *PayrollEngine {
	engine := NewPayrollEngine(rules)
	engine.Logger = logger
	return engine
}

// ProcessEmployee computes the three statutory figures of one employee for
// a reference month and returns them as persistable records: INSS and IRRF
// as employee discounts, FGTS as an employer benefit. Bad input collapses
// to zero-valued records rather than an error, so one employee can never
// abort a batch.
func (e *PayrollEngine) ProcessEmployee(employee domain.EmployeeSnapshot, referenceDate time.Time) []domain.BenefitRecord {
	contribution := e.Contribution.Calculate(employee.BaseSalary)
	severance := e.Severance.Calculate(employee.BaseSalary)
	incomeTax := e.IncomeTax.Calculate(employee.BaseSalary, employee.DependentCount, money.Zero())

	e.Logger.Debugf("processed %s: inss=%s fgts=%s irrf=%s",
		employee.ID, contribution.Amount, severance.Amount, incomeTax.Tax)

	return []domain.BenefitRecord{
		{
			EmployeeID:    employee.ID,
			Type:          domain.BenefitINSS,
			Category:      domain.CategoryDiscount,
			Value:         contribution.Amount,
			ReferenceDate: referenceDate,
		},
		{
			EmployeeID:    employee.ID,
			Type:          domain.BenefitFGTS,
			Category:      domain.CategoryBenefit,
			Value:         severance.Amount,
			ReferenceDate: referenceDate,
		},
		{
			EmployeeID:    employee.ID,
			Type:          domain.BenefitIRRF,
			Category:      domain.CategoryDiscount,
			Value:         incomeTax.Tax,
			ReferenceDate: referenceDate,
		},
	}
}

// maxBatchWorkers bounds the batch fan-out.
const maxBatchWorkers = 10

// RunBatch processes every employee for a reference month in parallel.
// Calculators are pure, so workers share the engine without locking, and
// re-running a batch with identical input yields identical records. The
// returned slice preserves employee order regardless of scheduling.
func (e *PayrollEngine) RunBatch(employees []domain.EmployeeSnapshot, referenceDate time.Time) []domain.BenefitRecord {
	perEmployee := make([][]domain.BenefitRecord, len(employees))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxBatchWorkers)

	for i := range employees {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			perEmployee[idx] = e.ProcessEmployee(employees[idx], referenceDate)
		}(i)
	}

	wg.Wait()

	records := make([]domain.BenefitRecord, 0, len(employees)*3)
	for _, batch := range perEmployee {
		records = append(records, batch...)
	}
	return records
}
