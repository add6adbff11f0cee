// Package domain defines the client (customer) model of the ledger.
//
// A client is a business the freelancer invoices. Its name and ABN identify a
// third party and are stored encrypted; the email address is stored as given.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client represents a customer of the business.
type Client struct {
	ID        uuid.UUID // Unique identifier (UUIDv7)
	Name      string    // Legal or trading name, encrypted at rest
	ABN       *string   // Australian Business Number (11 digits), encrypted at rest
	Email     *string   // Billing contact address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateClientInput contains the parameters for creating a new client.
type CreateClientInput struct {
	Name  string
	ABN   *string
	Email *string
}

// UpdateClientInput contains the mutable fields of an existing client.
type UpdateClientInput struct {
	Name  string
	ABN   *string
	Email *string
}

// FormatABN groups an 11 digit ABN the way the ABR displays it ("51 824 753 556").
// Values of any other length are returned unchanged.
func FormatABN(abn string) string {
	if len(abn) != 11 {
		return abn
	}
	return strings.Join([]string{abn[0:2], abn[2:5], abn[5:8], abn[8:11]}, " ")
}
