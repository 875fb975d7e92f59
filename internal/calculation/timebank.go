package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/folhabr/payroll-calculator/internal/config"
	"github.com/folhabr/payroll-calculator/internal/domain"
)

// TimeBankCalculator reduces a day's raw clock events into regular and
// overtime hours. Entry and BreakEnd open a worked interval; Exit and
// BreakStart close it.
type TimeBankCalculator struct {
	StandardDailyHours decimal.Decimal
}

// NewTimeBankCalculator creates a time bank calculator from rules
func NewTimeBankCalculator(rules *config.PayrollRules) *TimeBankCalculator {
	return &TimeBankCalculator{StandardDailyHours: rules.StandardDailyHours}
}

// TimeBankResult splits a day's worked time. Warnings name events that did
// not pair up; malformed sequences never produce an error, only dropped
// intervals the attendance screen can surface.
type TimeBankResult struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	TotalHours    decimal.Decimal
	Warnings      []string
}

// CalculateWorkedHours scans events in the order supplied. Each clock-in
// opens an interval closed by the next clock-out; a clock-in followed by
// another clock-in drops the first, a clock-out with nothing open is
// skipped, and a trailing open interval is discarded.
func (c *TimeBankCalculator) CalculateWorkedHours(events []domain.ClockEvent) TimeBankResult {
	var warnings []string
	var open *domain.ClockEvent
	totalMinutes := decimal.Zero

	for i := range events {
		ev := events[i]
		switch {
		case ev.Kind.OpensInterval():
			if open != nil {
				warnings = append(warnings, fmt.Sprintf("%s at %s has no matching clock-out; interval dropped",
					open.Kind, open.Timestamp.Format("15:04")))
			}
			open = &events[i]
		case ev.Kind.ClosesInterval():
			if open == nil {
				warnings = append(warnings, fmt.Sprintf("%s at %s has no matching clock-in; event skipped",
					ev.Kind, ev.Timestamp.Format("15:04")))
				continue
			}
			minutes := ev.Timestamp.Sub(open.Timestamp).Minutes()
			if minutes > 0 {
				totalMinutes = totalMinutes.Add(decimal.NewFromFloat(minutes))
			}
			open = nil
		default:
			warnings = append(warnings, fmt.Sprintf("unknown event kind %q at %s; event skipped",
				ev.Kind, ev.Timestamp.Format("15:04")))
		}
	}
	if open != nil {
		warnings = append(warnings, fmt.Sprintf("%s at %s has no matching clock-out; interval dropped",
			open.Kind, open.Timestamp.Format("15:04")))
	}

	total := totalMinutes.Div(decimal.NewFromInt(60)).Round(2)
	regular := decimal.Min(total, c.StandardDailyHours)
	overtime := decimal.Max(total.Sub(c.StandardDailyHours), decimal.Zero)

	return TimeBankResult{
		RegularHours:  regular,
		OvertimeHours: overtime,
		TotalHours:    total,
		Warnings:      warnings,
	}
}
