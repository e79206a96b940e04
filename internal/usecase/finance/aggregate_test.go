package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/period"
)

func entry(side domain.Side, net, gross int64, at time.Time, categoryID uuid.UUID) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:          uuid.New(),
		Side:        side,
		NetAmount:   decimal.NewFromInt(net),
		GrossAmount: decimal.NewFromInt(gross),
		CategoryID:  categoryID,
		OccurredAt:  at,
	}
}

func TestAggregate_FiltersBySideAndInterval(t *testing.T) {
	categoryID := uuid.New()
	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2025, 3, 11, 18, 30, 0, 0, time.Local)

	entries := []*domain.LedgerEntry{
		entry(domain.SideRevenue, 100, 120, day1, categoryID),
		entry(domain.SideRevenue, 50, 60, day2, categoryID),
		entry(domain.SideExpense, 10, 12, day1, categoryID),
	}

	interval := period.CustomBounds(day1, day2)

	totals := Aggregate(entries, domain.SideRevenue, interval)
	assert.True(t, decimal.NewFromInt(150).Equal(totals.Net), "net = %s", totals.Net)
	assert.True(t, decimal.NewFromInt(180).Equal(totals.Gross), "gross = %s", totals.Gross)

	expenses := Aggregate(entries, domain.SideExpense, interval)
	assert.True(t, decimal.NewFromInt(10).Equal(expenses.Net))
	assert.True(t, decimal.NewFromInt(12).Equal(expenses.Gross))
}

func TestAggregate_IntervalBoundsAreInclusive(t *testing.T) {
	categoryID := uuid.New()
	interval := period.DayBounds(time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local))

	entries := []*domain.LedgerEntry{
		entry(domain.SideRevenue, 10, 12, interval.Start, categoryID),
		entry(domain.SideRevenue, 20, 24, interval.End, categoryID),
		entry(domain.SideRevenue, 40, 48, interval.End.Add(time.Nanosecond), categoryID),
	}

	totals := Aggregate(entries, domain.SideRevenue, interval)
	assert.True(t, decimal.NewFromInt(30).Equal(totals.Net))
}

func TestAggregate_EmptyInputYieldsZero(t *testing.T) {
	interval := period.DayBounds(time.Now())
	totals := Aggregate(nil, domain.SideRevenue, interval)

	assert.True(t, totals.Net.IsZero())
	assert.True(t, totals.Gross.IsZero())
}

func TestProrateGoal_ThirtyDayMonth(t *testing.T) {
	// April 2025 has 30 days
	ref := time.Date(2025, 4, 15, 10, 0, 0, 0, time.Local)
	monthly := decimal.NewFromInt(3000)

	monthIv := period.MonthBounds(ref)

	assert.True(t, decimal.NewFromInt(100).Equal(ProrateGoal(monthly, period.KindDay, ref, monthIv)))
	assert.True(t, decimal.NewFromInt(700).Equal(ProrateGoal(monthly, period.KindWeek, ref, monthIv)))
	assert.True(t, decimal.NewFromInt(3000).Equal(ProrateGoal(monthly, period.KindMonth, ref, monthIv)))
	assert.True(t, decimal.NewFromInt(36000).Equal(ProrateGoal(monthly, period.KindYear, ref, monthIv)))
}

func TestProrateGoal_CustomRangeUsesInclusiveDayCount(t *testing.T) {
	ref := time.Date(2025, 4, 15, 10, 0, 0, 0, time.Local)
	monthly := decimal.NewFromInt(3000)

	// 10 inclusive days at 100/day
	interval := period.CustomBounds(
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local),
	)

	got := ProrateGoal(monthly, period.KindCustomRange, ref, interval)
	assert.True(t, decimal.NewFromInt(1000).Equal(got), "got %s", got)
}

func TestRemaining_NeverNegative(t *testing.T) {
	goal := decimal.NewFromInt(1000)

	assert.True(t, decimal.NewFromInt(400).Equal(Remaining(goal, decimal.NewFromInt(600))))
	assert.True(t, Remaining(goal, decimal.NewFromInt(2000)).IsZero())
	assert.True(t, decimal.NewFromInt(1000).Equal(Remaining(goal, decimal.Zero)))
}

func TestProgressRatio_ClampedToUnitInterval(t *testing.T) {
	goal := decimal.NewFromInt(1000)

	assert.True(t, decimal.NewFromFloat(0.5).Equal(ProgressRatio(goal, decimal.NewFromInt(500))))

	// actual = 2 * goal clamps to 1
	assert.True(t, decimal.NewFromInt(1).Equal(ProgressRatio(goal, decimal.NewFromInt(2000))))

	// zero or negative goal yields zero progress, not a division error
	assert.True(t, ProgressRatio(decimal.Zero, decimal.NewFromInt(100)).IsZero())
	assert.True(t, ProgressRatio(decimal.NewFromInt(-10), decimal.NewFromInt(100)).IsZero())
}

func TestBreakdownByCategory(t *testing.T) {
	fuel := &domain.Category{ID: uuid.New(), Name: "Carburant", Side: domain.SideExpense}
	tolls := &domain.Category{ID: uuid.New(), Name: "Péages", Side: domain.SideExpense}
	categories := []*domain.Category{fuel, tolls}

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	interval := period.DayBounds(day)
	unknownCategory := uuid.New()

	entries := []*domain.LedgerEntry{
		entry(domain.SideExpense, 50, 60, day, fuel.ID),
		entry(domain.SideExpense, 30, 36, day, fuel.ID),
		entry(domain.SideExpense, 20, 24, day, tolls.ID),
		// Unknown category still counts in Aggregate but not in the breakdown
		entry(domain.SideExpense, 99, 119, day, unknownCategory),
		// Wrong side is excluded entirely
		entry(domain.SideRevenue, 500, 600, day, fuel.ID),
	}

	breakdown := BreakdownByCategory(entries, domain.SideExpense, interval, categories)
	require.Len(t, breakdown, 2)

	assert.Equal(t, fuel.ID, breakdown[0].CategoryID)
	assert.Equal(t, "Carburant", breakdown[0].CategoryName)
	assert.True(t, decimal.NewFromInt(80).Equal(breakdown[0].Net))
	assert.True(t, decimal.NewFromInt(96).Equal(breakdown[0].Gross))

	assert.Equal(t, tolls.ID, breakdown[1].CategoryID)
	assert.True(t, decimal.NewFromInt(24).Equal(breakdown[1].Gross))

	// Overall totals keep the unknown category
	totals := Aggregate(entries, domain.SideExpense, interval)
	assert.True(t, decimal.NewFromInt(199).Equal(totals.Net))
}

func TestBreakdownByCategory_TieBreaksOnCategoryID(t *testing.T) {
	a := &domain.Category{ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001"), Name: "A", Side: domain.SideExpense}
	b := &domain.Category{ID: uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000001"), Name: "B", Side: domain.SideExpense}

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	interval := period.DayBounds(day)

	entries := []*domain.LedgerEntry{
		entry(domain.SideExpense, 10, 12, day, b.ID),
		entry(domain.SideExpense, 10, 12, day, a.ID),
	}

	// Equal gross sums: ascending category ID decides, regardless of input order
	breakdown := BreakdownByCategory(entries, domain.SideExpense, interval, []*domain.Category{b, a})
	require.Len(t, breakdown, 2)
	assert.Equal(t, a.ID, breakdown[0].CategoryID)
	assert.Equal(t, b.ID, breakdown[1].CategoryID)
}

func TestAggregate_IsReferentiallyTransparent(t *testing.T) {
	categoryID := uuid.New()
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	interval := period.DayBounds(day)
	entries := []*domain.LedgerEntry{
		entry(domain.SideRevenue, 100, 120, day, categoryID),
	}

	first := Aggregate(entries, domain.SideRevenue, interval)
	second := Aggregate(entries, domain.SideRevenue, interval)

	assert.True(t, first.Net.Equal(second.Net))
	assert.True(t, first.Gross.Equal(second.Gross))
}
