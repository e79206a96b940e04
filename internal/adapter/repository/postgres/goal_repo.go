package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/courseflow/courseflow-backend/internal/domain"
)

// goalRepository implements domain.GoalRepository
type goalRepository struct {
	db *DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *DB) domain.GoalRepository {
	return &goalRepository{db: db}
}

// Set stores the monthly goal for its side, replacing any previous value
func (r *goalRepository) Set(ctx context.Context, goal *domain.MonthlyGoal) error {
	query := `
		INSERT INTO monthly_goals (side, net_target, gross_target)
		VALUES ($1, $2, $3)
		ON CONFLICT (side)
		DO UPDATE SET net_target = EXCLUDED.net_target, gross_target = EXCLUDED.gross_target
	`

	_, err := r.db.ExecContext(ctx, query,
		string(goal.Side),
		goal.NetTarget.String(),
		goal.GrossTarget.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to set goal: %w", err)
	}

	return nil
}

// GetBySide retrieves the current monthly goal for a side
func (r *goalRepository) GetBySide(ctx context.Context, side domain.Side) (*domain.MonthlyGoal, error) {
	query := `SELECT side, net_target, gross_target FROM monthly_goals WHERE side = $1`

	var goal domain.MonthlyGoal
	var sideStr, netStr, grossStr string

	err := r.db.QueryRowContext(ctx, query, string(side)).Scan(&sideStr, &netStr, &grossStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goal by side: %w", err)
	}

	goal.Side = domain.Side(sideStr)

	net, err := decimal.NewFromString(netStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse net_target: %w", err)
	}
	goal.NetTarget = net

	gross, err := decimal.NewFromString(grossStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gross_target: %w", err)
	}
	goal.GrossTarget = gross

	return &goal, nil
}
