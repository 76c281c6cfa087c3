package client

import (
	ierr "github.com/billtrack/billtrack/internal/errors"
	"github.com/billtrack/billtrack/internal/types"
)

// Client represents a billed client in the system. A client owns zero or
// more services and zero or more payments; its billing status and monthly
// total are derived at read time and never stored on the record.
type Client struct {
	// ID is the unique identifier for the client
	ID string `db:"id" json:"id"`

	// ExternalID is the external identifier for the client
	ExternalID string `db:"external_id" json:"external_id"`

	// Name is the display name of the client
	Name string `db:"name" json:"name"`

	// Email is the email of the client
	Email string `db:"email" json:"email"`

	// Phone is the contact phone of the client
	Phone string `db:"phone" json:"phone"`

	// Metadata contains additional custom key-value pairs
	Metadata map[string]string `db:"metadata" json:"metadata"`

	types.BaseModel
}

// Validate performs basic validation on the client model
func (c *Client) Validate() error {
	if c.Name == "" {
		return ierr.NewError("client name is required").
			WithHint("Client name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return nil
}
