package dto

import (
	"time"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
)

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// MapCategoryToResponse converts a domain category to an API response.
func MapCategoryToResponse(category *categoryDomain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Kind:      string(category.Kind),
		CreatedAt: category.CreatedAt,
	}
}

// ListCategoriesResponse represents a list of categories in API responses.
type ListCategoriesResponse struct {
	Data []CategoryResponse `json:"data"`
}

// MapCategoriesToListResponse converts domain categories to a list API response.
func MapCategoriesToListResponse(categories []*categoryDomain.Category) ListCategoriesResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, MapCategoryToResponse(category))
	}
	return ListCategoriesResponse{Data: responses}
}
