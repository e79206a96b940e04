// Package finance sums ledger entries over a period and tracks progress
// against the monthly goal baseline.
package finance

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/period"
)

// Totals holds the summed amounts for one side over one interval
type Totals struct {
	Net   decimal.Decimal // HT
	Gross decimal.Decimal // TTC
}

// Aggregate filters entries by side and closed-inclusive interval, then sums
// net and gross amounts. Empty input yields zero totals. Entries are read
// only, never mutated; order does not affect the result.
//
// Amounts are NOT validated here: the data-entry boundary (the ledgerbook
// service) is responsible for rejecting malformed values.
func Aggregate(entries []*domain.LedgerEntry, side domain.Side, interval period.Interval) Totals {
	totals := Totals{Net: decimal.Zero, Gross: decimal.Zero}

	for _, entry := range entries {
		if entry.Side != side {
			continue
		}
		if !interval.Contains(entry.OccurredAt) {
			continue
		}
		totals.Net = totals.Net.Add(entry.NetAmount)
		totals.Gross = totals.Gross.Add(entry.GrossAmount)
	}

	return totals
}

// ProrateGoal derives a goal for an arbitrary period from the monthly
// baseline via the daily rate of the reference month.
//
// Logic:
//   - daily = monthly / daysInMonth(ref)
//   - DAY -> daily, WEEK -> daily*7, MONTH -> monthly, YEAR -> monthly*12
//   - CUSTOM -> daily * inclusive day count of the interval
//
// Calendar months vary in length, so the daily-rate extrapolation is an
// approximation. It keeps the implied daily pace consistent when the user
// switches period granularity, which is the point.
func ProrateGoal(monthly decimal.Decimal, kind period.Kind, ref time.Time, interval period.Interval) decimal.Decimal {
	daily := monthly.Div(decimal.NewFromInt(int64(period.DaysInMonth(ref))))

	switch kind {
	case period.KindDay:
		return daily
	case period.KindWeek:
		return daily.Mul(decimal.NewFromInt(7))
	case period.KindMonth:
		return monthly
	case period.KindYear:
		return monthly.Mul(decimal.NewFromInt(12))
	case period.KindCustomRange:
		days := period.DaysBetweenInclusive(interval.Start, interval.End)
		return daily.Mul(decimal.NewFromInt(int64(days)))
	default:
		return monthly
	}
}

// Remaining returns goal minus actual, floored at zero. Overshooting a goal
// shows zero remaining, never a negative figure.
func Remaining(goal, actual decimal.Decimal) decimal.Decimal {
	remaining := goal.Sub(actual)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ProgressRatio returns actual/goal clamped to [0, 1]. A zero or negative
// goal yields zero progress rather than a division error.
func ProgressRatio(goal, actual decimal.Decimal) decimal.Decimal {
	if goal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	ratio := actual.Div(goal)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	if ratio.IsNegative() {
		return decimal.Zero
	}
	return ratio
}

// CategoryTotals holds the per-category sums of the breakdown
type CategoryTotals struct {
	CategoryID   uuid.UUID
	CategoryName string
	Net          decimal.Decimal
	Gross        decimal.Decimal
}

// BreakdownByCategory sums entries per category for one side and interval.
// Entries referencing a category absent from categories are excluded from the
// breakdown (they still count in the overall Aggregate totals). Result is
// sorted descending by gross sum, ties broken ascending by category ID string
// so the ordering is deterministic.
func BreakdownByCategory(
	entries []*domain.LedgerEntry,
	side domain.Side,
	interval period.Interval,
	categories []*domain.Category,
) []CategoryTotals {
	known := make(map[uuid.UUID]*domain.Category, len(categories))
	for _, category := range categories {
		known[category.ID] = category
	}

	sums := make(map[uuid.UUID]*CategoryTotals)
	for _, entry := range entries {
		if entry.Side != side {
			continue
		}
		if !interval.Contains(entry.OccurredAt) {
			continue
		}
		category, ok := known[entry.CategoryID]
		if !ok {
			continue
		}

		totals, ok := sums[entry.CategoryID]
		if !ok {
			totals = &CategoryTotals{
				CategoryID:   category.ID,
				CategoryName: category.Name,
				Net:          decimal.Zero,
				Gross:        decimal.Zero,
			}
			sums[entry.CategoryID] = totals
		}
		totals.Net = totals.Net.Add(entry.NetAmount)
		totals.Gross = totals.Gross.Add(entry.GrossAmount)
	}

	breakdown := make([]CategoryTotals, 0, len(sums))
	for _, totals := range sums {
		breakdown = append(breakdown, *totals)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Gross.Equal(breakdown[j].Gross) {
			return breakdown[i].Gross.GreaterThan(breakdown[j].Gross)
		}
		return breakdown[i].CategoryID.String() < breakdown[j].CategoryID.String()
	})

	return breakdown
}
