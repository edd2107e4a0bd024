package domain

import (
	"fmt"
	"strings"

	"alojamento/internal/pkg/apperror"
)

const taxIDLength = 9

type Client struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" validate:"notblank"`
	TaxID  string `json:"tax_id"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Active bool   `json:"active"`
}

// TaxIDValid reports whether the tax id has exactly nine ASCII digits.
// Registration does not enforce it.
func (c Client) TaxIDValid() bool {
	if len(c.TaxID) != taxIDLength {
		return false
	}
	for i := 0; i < len(c.TaxID); i++ {
		if c.TaxID[i] < '0' || c.TaxID[i] > '9' {
			return false
		}
	}
	return true
}

func (c *Client) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.NewInvalidArgument("client name must not be empty")
	}
	c.Name = name
	return nil
}

func (c *Client) UpdateContacts(email, phone string) {
	c.Email = email
	c.Phone = phone
}

// Deactivate is a logical delete: the client keeps its reservation history
// but can no longer book.
func (c *Client) Deactivate() { c.Active = false }

func (c *Client) Activate() { c.Active = true }

func (c Client) String() string {
	state := "active"
	if !c.Active {
		state = "inactive"
	}
	return fmt.Sprintf("%d - %s | tax id: %s | email: %s | phone: %s | %s",
		c.ID, c.Name, c.TaxID, c.Email, c.Phone, state)
}
