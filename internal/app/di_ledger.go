package app

import (
	"fmt"

	categoryHTTP "github.com/allisson/taxledger/internal/category/http"
	categoryRepository "github.com/allisson/taxledger/internal/category/repository"
	categoryUseCase "github.com/allisson/taxledger/internal/category/usecase"
	"github.com/allisson/taxledger/internal/database"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	ledgerHTTP "github.com/allisson/taxledger/internal/ledger/http"
	ledgerRepository "github.com/allisson/taxledger/internal/ledger/repository"
	ledgerUseCase "github.com/allisson/taxledger/internal/ledger/usecase"
)

// CategoryRepository returns the category repository for the configured database driver.
func (c *Container) CategoryRepository() (categoryUseCase.CategoryRepository, error) {
	var err error
	c.categoryRepositoryInit.Do(func() {
		c.categoryRepository, err = c.initCategoryRepository()
		if err != nil {
			c.initErrors["categoryRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryRepository"]; exists {
		return nil, storedErr
	}
	return c.categoryRepository, nil
}

// CategoryUseCase returns the category use case.
func (c *Container) CategoryUseCase() (categoryUseCase.CategoryUseCase, error) {
	var err error
	c.categoryUseCaseInit.Do(func() {
		c.categoryUseCase, err = c.initCategoryUseCase()
		if err != nil {
			c.initErrors["categoryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryUseCase"]; exists {
		return nil, storedErr
	}
	return c.categoryUseCase, nil
}

// CategoryHandler returns the category HTTP handler.
func (c *Container) CategoryHandler() (*categoryHTTP.CategoryHandler, error) {
	var err error
	c.categoryHandlerInit.Do(func() {
		c.categoryHandler, err = c.initCategoryHandler()
		if err != nil {
			c.initErrors["categoryHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryHandler"]; exists {
		return nil, storedErr
	}
	return c.categoryHandler, nil
}

// EntryRepository returns the ledger entry repository for the configured database driver.
func (c *Container) EntryRepository() (ledgerUseCase.EntryRepository, error) {
	var err error
	c.entryRepositoryInit.Do(func() {
		c.entryRepository, err = c.initEntryRepository()
		if err != nil {
			c.initErrors["entryRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entryRepository"]; exists {
		return nil, storedErr
	}
	return c.entryRepository, nil
}

// EntryUseCase returns the ledger entry use case shared by incomes, expenses and imports.
func (c *Container) EntryUseCase() (ledgerUseCase.EntryUseCase, error) {
	var err error
	c.entryUseCaseInit.Do(func() {
		c.entryUseCase, err = c.initEntryUseCase()
		if err != nil {
			c.initErrors["entryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entryUseCase"]; exists {
		return nil, storedErr
	}
	return c.entryUseCase, nil
}

// IncomeHandler returns the handler mounted under /incomes.
func (c *Container) IncomeHandler() (*ledgerHTTP.EntryHandler, error) {
	var err error
	c.incomeHandlerInit.Do(func() {
		c.incomeHandler, err = c.initEntryHandler(ledgerDomain.KindIncome)
		if err != nil {
			c.initErrors["incomeHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["incomeHandler"]; exists {
		return nil, storedErr
	}
	return c.incomeHandler, nil
}

// ExpenseHandler returns the handler mounted under /expenses.
func (c *Container) ExpenseHandler() (*ledgerHTTP.EntryHandler, error) {
	var err error
	c.expenseHandlerInit.Do(func() {
		c.expenseHandler, err = c.initEntryHandler(ledgerDomain.KindExpense)
		if err != nil {
			c.initErrors["expenseHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["expenseHandler"]; exists {
		return nil, storedErr
	}
	return c.expenseHandler, nil
}

func (c *Container) initCategoryRepository() (categoryUseCase.CategoryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for category repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return categoryRepository.NewPostgreSQLCategoryRepository(db), nil
	case database.DriverMySQL, database.DriverSQLite:
		return categoryRepository.NewMySQLCategoryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initCategoryUseCase() (categoryUseCase.CategoryUseCase, error) {
	repo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for category use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for category use case: %w", err)
	}

	useCase := categoryUseCase.NewCategoryUseCase(repo)
	return categoryUseCase.NewCategoryUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initCategoryHandler() (*categoryHTTP.CategoryHandler, error) {
	useCase, err := c.CategoryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get category use case for category handler: %w", err)
	}
	return categoryHTTP.NewCategoryHandler(useCase, c.Logger()), nil
}

func (c *Container) initEntryRepository() (ledgerUseCase.EntryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for entry repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return ledgerRepository.NewPostgreSQLEntryRepository(db), nil
	case database.DriverMySQL, database.DriverSQLite:
		return ledgerRepository.NewMySQLEntryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initEntryUseCase() (ledgerUseCase.EntryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for entry use case: %w", err)
	}

	entryRepo, err := c.EntryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry repository for entry use case: %w", err)
	}

	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for entry use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for entry use case: %w", err)
	}

	useCase := ledgerUseCase.NewEntryUseCase(txManager, entryRepo, categoryRepo)
	return ledgerUseCase.NewEntryUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initEntryHandler(kind ledgerDomain.Kind) (*ledgerHTTP.EntryHandler, error) {
	useCase, err := c.EntryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry use case for %s handler: %w", kind, err)
	}
	return ledgerHTTP.NewEntryHandler(kind, useCase, c.Logger()), nil
}
