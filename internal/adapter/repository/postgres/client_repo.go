package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/courseflow/courseflow-backend/internal/domain"
)

// clientRepository implements domain.ClientRepository
type clientRepository struct {
	db *DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *DB) domain.ClientRepository {
	return &clientRepository{db: db}
}

// Create creates a new client
func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, name, phone, email, notes)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.Phone,
		client.Email,
		client.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// GetByID retrieves a client by its ID
func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `SELECT id, name, phone, email, notes FROM clients WHERE id = $1`

	var client domain.Client
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.Phone,
		&client.Email,
		&client.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}

	return &client, nil
}

// List retrieves a paginated list of clients ordered by name
func (r *clientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	query := `
		SELECT id, name, phone, email, notes
		FROM clients
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(&client.ID, &client.Name, &client.Phone, &client.Email, &client.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, nil
}

// Update updates an existing client
func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET name = $2, phone = $3, email = $4, notes = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.Phone,
		client.Email,
		client.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a client
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
