// Package client manages the driver's client address book.
package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/courseflow/courseflow-backend/internal/domain"
)

// Service handles client address book operations
type Service struct {
	ClientRepo domain.ClientRepository
}

// NewService creates a new client Service instance
func NewService(clientRepo domain.ClientRepository) *Service {
	return &Service{ClientRepo: clientRepo}
}

// Input represents the editable fields of a client
type Input struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// Create adds a new client to the address book
func (s *Service) Create(ctx context.Context, input Input) (*domain.Client, error) {
	client := &domain.Client{
		ID:    uuid.New(),
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
		Notes: input.Notes,
	}

	if err := client.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	if err := s.ClientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// Update edits an existing client
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.Client, error) {
	client, err := s.ClientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = input.Name
	client.Phone = input.Phone
	client.Email = input.Email
	client.Notes = input.Notes

	if err := client.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	if err := s.ClientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetByID retrieves a single client
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.ClientRepo.GetByID(ctx, id)
}

// List retrieves a page of clients ordered by name
func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.ClientRepo.List(ctx, limit, offset)
}

// Delete removes a client from the address book
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.ClientRepo.Delete(ctx, id)
}
