// Package dto provides data transfer objects for category HTTP requests and responses.
package dto

import (
	validation "github.com/jellydator/validation"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	customValidation "github.com/allisson/taxledger/internal/validation"
)

// CreateCategoryRequest contains the parameters for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Validate checks if the create category request is valid.
func (r *CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Kind,
			validation.Required,
			validation.In(string(ledgerDomain.KindIncome), string(ledgerDomain.KindExpense)),
		),
	)
}

// ToCreateInput maps the request to the use case input.
func (r *CreateCategoryRequest) ToCreateInput() *categoryDomain.CreateCategoryInput {
	return &categoryDomain.CreateCategoryInput{
		Name: r.Name,
		Kind: ledgerDomain.Kind(r.Kind),
	}
}
