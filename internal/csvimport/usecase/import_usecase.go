package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	importDomain "github.com/allisson/taxledger/internal/csvimport/domain"
	"github.com/allisson/taxledger/internal/csvimport/service"
	"github.com/allisson/taxledger/internal/database"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// DefaultDuplicateThreshold is the description similarity at or above which
// a row with the same date and amount as another is a duplicate.
const DefaultDuplicateThreshold = 0.85

// Options configures an ImportUseCase.
type Options struct {
	MaxRows            int
	DuplicateThreshold float64
}

type importUseCase struct {
	txManager   database.TxManager
	entries     EntryService
	categories  CategoryLister
	parser      *service.Parser
	categorizer *service.Categorizer
	threshold   float64
}

func (i *importUseCase) Preview(ctx context.Context, r io.Reader) (*importDomain.Preview, error) {
	rows, err := i.parser.Parse(r)
	if err != nil {
		return nil, err
	}
	if err := i.classify(ctx, rows); err != nil {
		return nil, err
	}
	return importDomain.NewPreview(rows), nil
}

func (i *importUseCase) Commit(ctx context.Context, r io.Reader) (*importDomain.CommitResult, error) {
	rows, err := i.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &importDomain.CommitResult{}
	err = i.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := i.classify(ctx, rows); err != nil {
			return err
		}
		result.Preview = importDomain.NewPreview(rows)

		created := make([]*ledgerDomain.Entry, 0, result.Valid)
		for idx := range rows {
			row := &rows[idx]
			if row.Status != importDomain.StatusValid {
				continue
			}
			entry, err := i.entries.Create(ctx, row.ToCreateInput())
			if err != nil {
				return fmt.Errorf("line %d: %w", row.Line, err)
			}
			created = append(created, entry)
		}
		result.Created = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (i *importUseCase) classify(ctx context.Context, rows []importDomain.Row) error {
	if err := i.resolveCategories(ctx, rows); err != nil {
		return err
	}
	return i.markDuplicates(ctx, rows)
}

// resolveCategories links rows to existing categories. A category named in the
// file must exist for the row's kind. A keyword suggestion that names no
// existing category is ignored.
func (i *importUseCase) resolveCategories(ctx context.Context, rows []importDomain.Row) error {
	if !hasValidRows(rows) {
		return nil
	}

	categories, err := i.categories.List(ctx, "")
	if err != nil {
		return err
	}
	byName := make(map[string]*categoryDomain.Category, len(categories))
	for _, category := range categories {
		byName[categoryKey(category.Kind, category.Name)] = category
	}

	for idx := range rows {
		row := &rows[idx]
		if row.Status != importDomain.StatusValid {
			continue
		}

		name, suggested := row.CategoryName, false
		if name == "" {
			name = i.categorizer.Suggest(row.Kind, row.Description, row.Provider)
			suggested = name != ""
		}
		if name == "" {
			continue
		}

		category, ok := byName[categoryKey(row.Kind, name)]
		if !ok {
			if !suggested {
				row.AddError(fmt.Sprintf("unknown %s category %q", row.Kind, name))
			}
			continue
		}

		id := category.ID
		row.CategoryID = &id
		row.CategoryName = category.Name
		row.CategorySuggested = suggested
	}

	return nil
}

// markDuplicates compares each valid row with the ledger entries in the file's
// date span and with the valid rows above it.
func (i *importUseCase) markDuplicates(ctx context.Context, rows []importDomain.Row) error {
	var from, to time.Time
	for idx := range rows {
		row := &rows[idx]
		if row.Status != importDomain.StatusValid {
			continue
		}
		if from.IsZero() || row.Date.Before(from) {
			from = row.Date
		}
		if to.IsZero() || row.Date.After(to) {
			to = row.Date
		}
	}
	if from.IsZero() {
		return nil
	}

	existing, err := i.entries.List(ctx, ledgerDomain.ListFilter{From: &from, To: &to}, 0, 0)
	if err != nil {
		return err
	}

	accepted := make([]*importDomain.Row, 0, len(rows))
	for idx := range rows {
		row := &rows[idx]
		if row.Status != importDomain.StatusValid {
			continue
		}
		if ref := i.findDuplicate(row, existing, accepted); ref != "" {
			row.MarkDuplicate(ref)
			continue
		}
		accepted = append(accepted, row)
	}

	return nil
}

func (i *importUseCase) findDuplicate(
	row *importDomain.Row,
	existing []*ledgerDomain.Entry,
	accepted []*importDomain.Row,
) string {
	for _, entry := range existing {
		if i.matches(row, entry.Date, entry.AmountCents, entry.Description) {
			return "entry " + entry.ID.String()
		}
	}
	for _, earlier := range accepted {
		if i.matches(row, earlier.Date, earlier.AmountCents, earlier.Description) {
			return fmt.Sprintf("line %d", earlier.Line)
		}
	}
	return ""
}

func (i *importUseCase) matches(row *importDomain.Row, date time.Time, amountCents int64, description string) bool {
	return sameDay(row.Date, date) &&
		row.AmountCents == amountCents &&
		service.Similarity(row.Description, description) >= i.threshold
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func categoryKey(kind ledgerDomain.Kind, name string) string {
	return string(kind) + "|" + strings.ToLower(strings.TrimSpace(name))
}

func hasValidRows(rows []importDomain.Row) bool {
	for idx := range rows {
		if rows[idx].Status == importDomain.StatusValid {
			return true
		}
	}
	return false
}

// NewImportUseCase creates a new ImportUseCase. A nil categorizer disables
// category suggestions and a zero threshold uses DefaultDuplicateThreshold.
func NewImportUseCase(
	txManager database.TxManager,
	entries EntryService,
	categories CategoryLister,
	categorizer *service.Categorizer,
	opts Options,
) ImportUseCase {
	threshold := opts.DuplicateThreshold
	if threshold <= 0 {
		threshold = DefaultDuplicateThreshold
	}
	return &importUseCase{
		txManager:   txManager,
		entries:     entries,
		categories:  categories,
		parser:      service.NewParser(opts.MaxRows),
		categorizer: categorizer,
		threshold:   threshold,
	}
}
