// Package dto provides data transfer objects for client HTTP requests and responses.
package dto

import (
	validation "github.com/jellydator/validation"

	clientDomain "github.com/allisson/taxledger/internal/client/domain"
	customValidation "github.com/allisson/taxledger/internal/validation"
)

// ClientRequest contains the parameters for creating or replacing a client.
type ClientRequest struct {
	Name  string  `json:"name"`
	ABN   *string `json:"abn,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Validate checks if the client request is valid.
func (r *ClientRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.ABN,
			customValidation.ABN,
		),
		validation.Field(&r.Email,
			validation.Length(0, 255),
			customValidation.Email,
		),
	)
}

// ToCreateInput maps the request to the use case create input.
func (r *ClientRequest) ToCreateInput() *clientDomain.CreateClientInput {
	return &clientDomain.CreateClientInput{Name: r.Name, ABN: r.ABN, Email: r.Email}
}

// ToUpdateInput maps the request to the use case update input.
func (r *ClientRequest) ToUpdateInput() *clientDomain.UpdateClientInput {
	return &clientDomain.UpdateClientInput{Name: r.Name, ABN: r.ABN, Email: r.Email}
}
