package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	"github.com/allisson/taxledger/internal/database"
	apperrors "github.com/allisson/taxledger/internal/errors"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// entryUseCase implements EntryUseCase.
type entryUseCase struct {
	txManager    database.TxManager
	entryRepo    EntryRepository
	categoryRepo CategoryReader
}

// entryFields are the validated values shared by create and update.
type entryFields struct {
	date        time.Time
	description string
	amountCents int64
	gstCents    int64
	categoryID  *uuid.UUID
	clientID    *uuid.UUID
	provider    string
}

// Create validates the input and records a new entry.
func (e *entryUseCase) Create(
	ctx context.Context,
	input *ledgerDomain.CreateEntryInput,
) (*ledgerDomain.Entry, error) {
	if !input.Kind.Valid() {
		return nil, ledgerDomain.ErrInvalidKind
	}

	fields, err := e.resolve(ctx, input.Kind, &ledgerDomain.UpdateEntryInput{
		Date:         input.Date,
		Description:  input.Description,
		AmountCents:  input.AmountCents,
		GSTCents:     input.GSTCents,
		GSTInclusive: input.GSTInclusive,
		CategoryID:   input.CategoryID,
		ClientID:     input.ClientID,
		Provider:     input.Provider,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &ledgerDomain.Entry{
		ID:        uuid.Must(uuid.NewV7()),
		Kind:      input.Kind,
		CreatedAt: now,
	}
	fields.apply(entry, now)

	if err := e.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update loads the entry and replaces its mutable fields inside one transaction.
func (e *entryUseCase) Update(
	ctx context.Context,
	kind ledgerDomain.Kind,
	entryID uuid.UUID,
	input *ledgerDomain.UpdateEntryInput,
) (*ledgerDomain.Entry, error) {
	var entry *ledgerDomain.Entry
	err := e.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := e.entryRepo.Get(ctx, kind, entryID)
		if err != nil {
			return err
		}

		fields, err := e.resolve(ctx, kind, input)
		if err != nil {
			return err
		}
		fields.apply(existing, time.Now().UTC())

		if err := e.entryRepo.Update(ctx, existing); err != nil {
			return err
		}
		entry = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Get retrieves an entry by kind and ID.
func (e *entryUseCase) Get(
	ctx context.Context,
	kind ledgerDomain.Kind,
	entryID uuid.UUID,
) (*ledgerDomain.Entry, error) {
	return e.entryRepo.Get(ctx, kind, entryID)
}

// Delete removes an entry by kind and ID.
func (e *entryUseCase) Delete(ctx context.Context, kind ledgerDomain.Kind, entryID uuid.UUID) error {
	return e.entryRepo.Delete(ctx, kind, entryID)
}

// List resolves the filter's periods into a date range and lists the matches.
func (e *entryUseCase) List(
	ctx context.Context,
	filter ledgerDomain.ListFilter,
	offset, limit int,
) ([]*ledgerDomain.Entry, error) {
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, ledgerDomain.ErrInvalidKind
	}

	from, to, err := filter.DateRange()
	if err != nil {
		return nil, err
	}

	return e.entryRepo.List(ctx, ledgerDomain.Query{
		Kind:   filter.Kind,
		From:   from,
		To:     to,
		Offset: offset,
		Limit:  limit,
	})
}

// resolve validates the mutable fields and works out the GST component.
func (e *entryUseCase) resolve(
	ctx context.Context,
	kind ledgerDomain.Kind,
	input *ledgerDomain.UpdateEntryInput,
) (*entryFields, error) {
	if input.Date.IsZero() {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "date is required")
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "description must not be blank")
	}

	if input.AmountCents == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "amount must not be zero")
	}

	var gst int64
	switch {
	case input.GSTCents != nil:
		gst = *input.GSTCents
	case input.GSTInclusive:
		gst = ledgerDomain.GSTFromInclusive(input.AmountCents)
	}
	if !gstWithinAmount(gst, input.AmountCents) {
		return nil, ledgerDomain.ErrGSTExceedsAmount
	}

	if input.CategoryID != nil {
		if err := e.checkCategory(ctx, kind, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	return &entryFields{
		date:        ledgerDomain.TruncateDay(input.Date),
		description: description,
		amountCents: input.AmountCents,
		gstCents:    gst,
		categoryID:  input.CategoryID,
		clientID:    input.ClientID,
		provider:    strings.TrimSpace(input.Provider),
	}, nil
}

func (e *entryUseCase) checkCategory(ctx context.Context, kind ledgerDomain.Kind, categoryID uuid.UUID) error {
	category, err := e.categoryRepo.Get(ctx, categoryID)
	if err != nil {
		if errors.Is(err, categoryDomain.ErrCategoryNotFound) {
			return ledgerDomain.ErrUnknownReference
		}
		return err
	}
	if category.Kind != kind {
		return apperrors.Wrapf(apperrors.ErrInvalidInput, "category %q is for %s entries", category.Name, category.Kind)
	}
	return nil
}

func (f *entryFields) apply(entry *ledgerDomain.Entry, now time.Time) {
	entry.Date = f.date
	entry.Description = f.description
	entry.AmountCents = f.amountCents
	entry.GSTCents = f.gstCents
	entry.CategoryID = f.categoryID
	entry.ClientID = f.clientID
	entry.Provider = f.provider
	entry.UpdatedAt = now
}

// gstWithinAmount reports whether gst has the amount's sign and does not exceed it.
func gstWithinAmount(gst, amount int64) bool {
	if amount > 0 {
		return gst >= 0 && gst <= amount
	}
	return gst <= 0 && gst >= amount
}

// NewEntryUseCase creates a new EntryUseCase with the provided dependencies.
func NewEntryUseCase(
	txManager database.TxManager,
	entryRepo EntryRepository,
	categoryRepo CategoryReader,
) EntryUseCase {
	return &entryUseCase{
		txManager:    txManager,
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
	}
}
