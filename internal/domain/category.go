package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Category represents a ledger category (e.g., Courses, Carburant, Entretien)
type Category struct {
	ID   uuid.UUID
	Name string
	Side Side
}

// Validate ensures the category adheres to domain rules
func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("category name cannot be empty")
	}

	if c.Side != SideRevenue && c.Side != SideExpense {
		return errors.New("category side must be REVENUE or EXPENSE")
	}

	return nil
}
