package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/allisson/taxledger/internal/csvimport/http/dto"
	importUseCase "github.com/allisson/taxledger/internal/csvimport/usecase"
)

// RunImportCSV previews (dryRun) or commits the CSV file at path and prints a
// per-row report. Invalid and duplicate rows are never imported.
func RunImportCSV(
	ctx context.Context,
	useCase importUseCase.ImportUseCase,
	logger *slog.Logger,
	w io.Writer,
	path string,
	dryRun bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	file, err := os.Open(path) //nolint:gosec // path is an operator supplied CLI argument
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck

	logger.Info("importing csv", slog.String("path", path), slog.Bool("dry_run", dryRun))

	var (
		preview dto.PreviewResponse
		created int
	)
	if dryRun {
		result, err := useCase.Preview(ctx, file)
		if err != nil {
			return fmt.Errorf("failed to preview import: %w", err)
		}
		preview = dto.MapPreviewToResponse(result)
	} else {
		result, err := useCase.Commit(ctx, file)
		if err != nil {
			return fmt.Errorf("failed to commit import: %w", err)
		}
		commit := dto.MapCommitToResponse(result)
		preview = commit.PreviewResponse
		created = len(commit.Created)
	}

	logger.Info("import completed",
		slog.Int("valid", preview.Summary.Valid),
		slog.Int("invalid", preview.Summary.Invalid),
		slog.Int("duplicate", preview.Summary.Duplicate),
		slog.Int("created", created),
	)

	report := map[string]any{
		"dry_run": dryRun,
		"summary": preview.Summary,
		"rows":    preview.Rows,
		"created": created,
	}
	return render(w, format, report, func(w io.Writer) error {
		return writeImportText(w, preview, dryRun, created)
	})
}

func writeImportText(w io.Writer, preview dto.PreviewResponse, dryRun bool, created int) error {
	var b strings.Builder
	for _, row := range preview.Rows {
		fmt.Fprintf(&b, "line %d: %s", row.Line, row.Status)
		if row.DuplicateOf != "" {
			fmt.Fprintf(&b, " (matches %s)", row.DuplicateOf)
		}
		if len(row.Errors) > 0 {
			fmt.Fprintf(&b, ": %s", strings.Join(row.Errors, "; "))
		}
		b.WriteString("\n")
	}

	s := preview.Summary
	fmt.Fprintf(&b, "%d row(s): %d valid, %d invalid, %d duplicate\n", s.Total, s.Valid, s.Invalid, s.Duplicate)
	if dryRun {
		b.WriteString("Dry-run mode: no entries were created\n")
	} else {
		fmt.Fprintf(&b, "Created %d entries\n", created)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
