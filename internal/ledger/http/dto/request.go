// Package dto provides data transfer objects for ledger HTTP requests and responses.
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	customValidation "github.com/allisson/taxledger/internal/validation"
)

// amountRule accepts the money formats understood by ParseAmountToCents.
var amountRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if ptr, ok := value.(*string); ok && ptr != nil {
		s = *ptr
	}
	if s == "" {
		return nil
	}
	if _, err := ledgerDomain.ParseAmountToCents(s); err != nil {
		return errors.New("must be an amount such as 1234.56")
	}
	return nil
})

// EntryRequest contains the parameters for recording or replacing an income or expense.
// Amounts are decimal strings so cents are never rounded through floating point.
type EntryRequest struct {
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Amount       string  `json:"amount"`
	GST          *string `json:"gst,omitempty"`
	GSTInclusive bool    `json:"gst_inclusive"`
	CategoryID   *string `json:"category_id,omitempty"`
	ClientID     *string `json:"client_id,omitempty"`
	Provider     string  `json:"provider"`
}

// Validate checks if the entry request is valid.
func (r *EntryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Date,
			validation.Required,
			customValidation.ISODate,
		),
		validation.Field(&r.Description,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 1000),
		),
		validation.Field(&r.Amount,
			validation.Required,
			amountRule,
		),
		validation.Field(&r.GST, amountRule),
		validation.Field(&r.CategoryID, customValidation.UUID),
		validation.Field(&r.ClientID, customValidation.UUID),
		validation.Field(&r.Provider, validation.Length(0, 255)),
	)
}

// ToCreateInput maps a validated request to the use case create input.
func (r *EntryRequest) ToCreateInput(kind ledgerDomain.Kind) (*ledgerDomain.CreateEntryInput, error) {
	fields, err := r.toUpdateInput()
	if err != nil {
		return nil, err
	}
	return &ledgerDomain.CreateEntryInput{
		Kind:         kind,
		Date:         fields.Date,
		Description:  fields.Description,
		AmountCents:  fields.AmountCents,
		GSTCents:     fields.GSTCents,
		GSTInclusive: fields.GSTInclusive,
		CategoryID:   fields.CategoryID,
		ClientID:     fields.ClientID,
		Provider:     fields.Provider,
	}, nil
}

// ToUpdateInput maps a validated request to the use case update input.
func (r *EntryRequest) ToUpdateInput() (*ledgerDomain.UpdateEntryInput, error) {
	return r.toUpdateInput()
}

func (r *EntryRequest) toUpdateInput() (*ledgerDomain.UpdateEntryInput, error) {
	date, err := time.Parse(customValidation.DateLayout, r.Date)
	if err != nil {
		return nil, err
	}

	amount, err := ledgerDomain.ParseAmountToCents(r.Amount)
	if err != nil {
		return nil, err
	}

	input := &ledgerDomain.UpdateEntryInput{
		Date:         date,
		Description:  r.Description,
		AmountCents:  amount,
		GSTInclusive: r.GSTInclusive,
		Provider:     r.Provider,
	}

	if r.GST != nil && *r.GST != "" {
		gst, err := ledgerDomain.ParseAmountToCents(*r.GST)
		if err != nil {
			return nil, err
		}
		input.GSTCents = &gst
	}
	if input.CategoryID, err = parseOptionalUUID(r.CategoryID); err != nil {
		return nil, err
	}
	if input.ClientID, err = parseOptionalUUID(r.ClientID); err != nil {
		return nil, err
	}
	return input, nil
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
