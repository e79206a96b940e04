package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Client represents a client in the driver's address book
type Client struct {
	ID    uuid.UUID
	Name  string
	Phone string
	Email string
	Notes string
}

// Validate ensures the client adheres to domain rules
// Phone, email and notes are optional contact details
func (c *Client) Validate() error {
	if c.Name == "" {
		return errors.New("client name cannot be empty")
	}

	return nil
}
