package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/folhabr/payroll-calculator/pkg/money"
)

func TestVacationPayCalculation(t *testing.T) {
	calc := NewVacationPayCalculator()

	tests := []struct {
		name          string
		salary        string
		daysTaken     int
		cashOutDays   int
		expectedValue string
		expectedCash  string
		expectedBonus string
		expectedTotal string
	}{
		{
			name:          "full thirty days",
			salary:        "3000.00",
			daysTaken:     30,
			expectedValue: "3000.00",
			expectedCash:  "0.00",
			expectedBonus: "1000.00",
			expectedTotal: "4000.00",
		},
		{
			name:          "twenty days with ten sold",
			salary:        "3000.00",
			daysTaken:     20,
			cashOutDays:   10,
			expectedValue: "2000.00",
			expectedCash:  "1000.00",
			expectedBonus: "1000.00",
			expectedTotal: "4000.00",
		},
		{
			// daily rate 33.3333..., each field rounded independently
			name:          "repeating decimals",
			salary:        "1000.00",
			daysTaken:     20,
			expectedValue: "666.67",
			expectedCash:  "0.00",
			expectedBonus: "222.22",
			expectedTotal: "888.89",
		},
		{
			name:          "fifteen days five sold",
			salary:        "2100.00",
			daysTaken:     15,
			cashOutDays:   5,
			expectedValue: "1050.00",
			expectedCash:  "350.00",
			expectedBonus: "466.67",
			expectedTotal: "1866.67",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.CalculateValue(money.MustParse(tt.salary), tt.daysTaken, tt.cashOutDays)
			assert.Equal(t, tt.expectedValue, result.VacationValue.String())
			assert.Equal(t, tt.expectedCash, result.CashOutValue.String())
			assert.Equal(t, tt.expectedBonus, result.ConstitutionalBonus.String())
			assert.Equal(t, tt.expectedTotal, result.Total.String())
		})
	}
}

func TestVacationPayZeroInputs(t *testing.T) {
	calc := NewVacationPayCalculator()

	for _, tc := range []struct {
		name   string
		salary string
		days   int
	}{
		{"zero salary", "0", 30},
		{"negative salary", "-3000.00", 30},
		{"zero days", "3000.00", 0},
		{"negative days", "3000.00", -5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result := calc.CalculateValue(money.MustParse(tc.salary), tc.days, 0)
			assert.Equal(t, "0.00", result.VacationValue.String())
			assert.Equal(t, "0.00", result.CashOutValue.String())
			assert.Equal(t, "0.00", result.ConstitutionalBonus.String())
			assert.Equal(t, "0.00", result.Total.String())
		})
	}
}

func TestVacationPayClampsStatutoryLimits(t *testing.T) {
	calc := NewVacationPayCalculator()

	// 45 days requested clamps to 30; 15 cash-out days clamp to 10.
	clamped := calc.CalculateValue(money.MustParse("3000.00"), 45, 15)
	limit := calc.CalculateValue(money.MustParse("3000.00"), 30, 10)
	assert.Equal(t, limit, clamped)
}

func TestAcquisitionPeriod(t *testing.T) {
	calc := NewVacationPayCalculator()

	tests := []struct {
		name          string
		admission     string
		reference     string
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "first year still accruing",
			admission:     "2024-02-01",
			reference:     "2024-10-15",
			expectedStart: "2024-02-01",
			expectedEnd:   "2025-01-31",
		},
		{
			name:          "three full years elapsed",
			admission:     "2021-03-10",
			reference:     "2024-06-15",
			expectedStart: "2024-03-10",
			expectedEnd:   "2025-03-09",
		},
		{
			name:          "reference on anniversary",
			admission:     "2023-05-20",
			reference:     "2024-05-20",
			expectedStart: "2024-05-20",
			expectedEnd:   "2025-05-19",
		},
		{
			name:          "reference before admission clamps to first window",
			admission:     "2024-09-01",
			reference:     "2024-01-01",
			expectedStart: "2024-09-01",
			expectedEnd:   "2025-08-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admission, _ := time.Parse("2006-01-02", tt.admission)
			reference, _ := time.Parse("2006-01-02", tt.reference)
			period := calc.CalculateAcquisitionPeriod(admission, reference)
			assert.Equal(t, tt.expectedStart, period.Start.Format("2006-01-02"))
			assert.Equal(t, tt.expectedEnd, period.End.Format("2006-01-02"))
		})
	}
}
