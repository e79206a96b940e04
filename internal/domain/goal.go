package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MonthlyGoal represents the user's monthly baseline target for one side of
// the ledger. One active goal per side; setting a new one replaces the
// previous value (no history is kept).
type MonthlyGoal struct {
	Side        Side
	NetTarget   decimal.Decimal // HT
	GrossTarget decimal.Decimal // TTC
}

// Validate ensures the goal adheres to domain rules
func (g *MonthlyGoal) Validate() error {
	if g.Side != SideRevenue && g.Side != SideExpense {
		return errors.New("goal side must be REVENUE or EXPENSE")
	}

	if g.NetTarget.IsNegative() || g.GrossTarget.IsNegative() {
		return errors.New("goal targets cannot be negative")
	}

	return nil
}
