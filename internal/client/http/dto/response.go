package dto

import (
	"time"

	clientDomain "github.com/allisson/taxledger/internal/client/domain"
)

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ABN          *string   `json:"abn"`
	ABNFormatted *string   `json:"abn_formatted"`
	Email        *string   `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MapClientToResponse converts a domain client to an API response.
func MapClientToResponse(client *clientDomain.Client) ClientResponse {
	response := ClientResponse{
		ID:        client.ID.String(),
		Name:      client.Name,
		ABN:       client.ABN,
		Email:     client.Email,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
	if client.ABN != nil {
		formatted := clientDomain.FormatABN(*client.ABN)
		response.ABNFormatted = &formatted
	}
	return response
}

// ListClientsResponse represents a paginated list of clients in API responses.
type ListClientsResponse struct {
	Data []ClientResponse `json:"data"`
}

// MapClientsToListResponse converts a slice of domain clients to a list API response.
func MapClientsToListResponse(clients []*clientDomain.Client) ListClientsResponse {
	responses := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		responses = append(responses, MapClientToResponse(client))
	}
	return ListClientsResponse{Data: responses}
}
