package commands

import (
	"fmt"
	"log/slog"

	"github.com/allisson/taxledger/internal/database"
)

// RunMigrations applies the embedded migrations for driver. Having nothing to
// apply is not an error.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	if err := database.MigrateUp(driver, connectionString); err != nil {
		return fmt.Errorf("migrate %s: %w", driver, err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
