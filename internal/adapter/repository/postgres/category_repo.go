package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/courseflow/courseflow-backend/internal/domain"
)

// categoryRepository implements domain.CategoryRepository
type categoryRepository struct {
	db *DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *DB) domain.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (id, name, side) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, category.ID, category.Name, string(category.Side))
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its ID
func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query := `SELECT id, name, side FROM categories WHERE id = $1`

	var category domain.Category
	var side string

	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &side)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	category.Side = domain.Side(side)
	return &category, nil
}

// List retrieves categories, optionally filtered by side
func (r *categoryRepository) List(ctx context.Context, sideFilter domain.Side) ([]*domain.Category, error) {
	query := `SELECT id, name, side FROM categories`
	args := []interface{}{}

	if sideFilter != "" {
		query += ` WHERE side = $1`
		args = append(args, string(sideFilter))
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		var side string
		if err := rows.Scan(&category.ID, &category.Name, &side); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		category.Side = domain.Side(side)
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}
