package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/folhabr/payroll-calculator/internal/config"
	"github.com/folhabr/payroll-calculator/internal/domain"
)

func clock(hour, minute int, kind domain.ClockEventKind) domain.ClockEvent {
	return domain.ClockEvent{
		Timestamp: time.Date(2024, time.June, 10, hour, minute, 0, 0, time.UTC),
		Kind:      kind,
	}
}

func TestWorkedHoursStandardDay(t *testing.T) {
	calc := NewTimeBankCalculator(config.DefaultRules2024())

	result := calc.CalculateWorkedHours([]domain.ClockEvent{
		clock(8, 0, domain.ClockEntry),
		clock(12, 0, domain.ClockBreakStart),
		clock(13, 0, domain.ClockBreakEnd),
		clock(18, 0, domain.ClockExit),
	})

	assert.True(t, result.TotalHours.Equal(decimal.NewFromInt(9)), "total %s", result.TotalHours)
	assert.True(t, result.RegularHours.Equal(decimal.NewFromInt(8)), "regular %s", result.RegularHours)
	assert.True(t, result.OvertimeHours.Equal(decimal.NewFromInt(1)), "overtime %s", result.OvertimeHours)
	assert.Empty(t, result.Warnings)
}

func TestWorkedHoursShortDay(t *testing.T) {
	calc := NewTimeBankCalculator(config.DefaultRules2024())

	result := calc.CalculateWorkedHours([]domain.ClockEvent{
		clock(9, 0, domain.ClockEntry),
		clock(12, 30, domain.ClockExit),
	})

	assert.True(t, result.TotalHours.Equal(decimal.NewFromFloat(3.5)))
	assert.True(t, result.RegularHours.Equal(decimal.NewFromFloat(3.5)))
	assert.True(t, result.OvertimeHours.IsZero())
}

func TestWorkedHoursFractionalMinutes(t *testing.T) {
	calc := NewTimeBankCalculator(config.DefaultRules2024())

	// 8:07 to 12:26 is 259 minutes = 4.3166... hours, rounded to 4.32.
	result := calc.CalculateWorkedHours([]domain.ClockEvent{
		clock(8, 7, domain.ClockEntry),
		clock(12, 26, domain.ClockExit),
	})

	assert.True(t, result.TotalHours.Equal(decimal.NewFromFloat(4.32)), "total %s", result.TotalHours)
}

func TestWorkedHoursEmptyDay(t *testing.T) {
	calc := NewTimeBankCalculator(config.DefaultRules2024())

	result := calc.CalculateWorkedHours(nil)
	assert.True(t, result.TotalHours.IsZero())
	assert.True(t, result.RegularHours.IsZero())
	assert.True(t, result.OvertimeHours.IsZero())
	assert.Empty(t, result.Warnings)
}

func TestWorkedHoursMalformedSequences(t *testing.T) {
	calc := NewTimeBankCalculator(config.DefaultRules2024())

	t.Run("double clock-in drops the first interval", func(t *testing.T) {
		result := calc.CalculateWorkedHours([]domain.ClockEvent{
			clock(8, 0, domain.ClockEntry),
			clock(9, 0, domain.ClockEntry), // first entry never closed
			clock(17, 0, domain.ClockExit),
		})
		assert.True(t, result.TotalHours.Equal(decimal.NewFromInt(8)), "total %s", result.TotalHours)
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("clock-out with nothing open is skipped", func(t *testing.T) {
		result := calc.CalculateWorkedHours([]domain.ClockEvent{
			clock(8, 0, domain.ClockExit),
			clock(9, 0, domain.ClockEntry),
			clock(12, 0, domain.ClockExit),
		})
		assert.True(t, result.TotalHours.Equal(decimal.NewFromInt(3)))
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("trailing open interval is discarded", func(t *testing.T) {
		result := calc.CalculateWorkedHours([]domain.ClockEvent{
			clock(8, 0, domain.ClockEntry),
			clock(12, 0, domain.ClockExit),
			clock(13, 0, domain.ClockEntry), // never closed
		})
		assert.True(t, result.TotalHours.Equal(decimal.NewFromInt(4)))
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("unknown kind is skipped with a warning", func(t *testing.T) {
		result := calc.CalculateWorkedHours([]domain.ClockEvent{
			clock(8, 0, domain.ClockEntry),
			{Timestamp: time.Date(2024, time.June, 10, 10, 0, 0, 0, time.UTC), Kind: "lunch"},
			clock(12, 0, domain.ClockExit),
		})
		assert.True(t, result.TotalHours.Equal(decimal.NewFromInt(4)))
		assert.Len(t, result.Warnings, 1)
	})
}

func TestWorkedHoursLongDayOvertime(t *testing.T) {
	calc := NewTimeBankCalculator(config.DefaultRules2024())

	result := calc.CalculateWorkedHours([]domain.ClockEvent{
		clock(7, 0, domain.ClockEntry),
		clock(12, 0, domain.ClockBreakStart),
		clock(12, 30, domain.ClockBreakEnd),
		clock(19, 30, domain.ClockExit),
	})

	// 5h + 7h = 12h: 8 regular, 4 overtime.
	assert.True(t, result.TotalHours.Equal(decimal.NewFromInt(12)))
	assert.True(t, result.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, result.OvertimeHours.Equal(decimal.NewFromInt(4)))
}
