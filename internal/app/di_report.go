package app

import (
	"fmt"

	importHTTP "github.com/allisson/taxledger/internal/csvimport/http"
	importService "github.com/allisson/taxledger/internal/csvimport/service"
	importUseCase "github.com/allisson/taxledger/internal/csvimport/usecase"
	reportHTTP "github.com/allisson/taxledger/internal/report/http"
	reportUseCase "github.com/allisson/taxledger/internal/report/usecase"
)

// ReportUseCase returns the BAS and financial-year report use case.
func (c *Container) ReportUseCase() (reportUseCase.ReportUseCase, error) {
	var err error
	c.reportUseCaseInit.Do(func() {
		c.reportUseCase, err = c.initReportUseCase()
		if err != nil {
			c.initErrors["reportUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["reportUseCase"]; exists {
		return nil, storedErr
	}
	return c.reportUseCase, nil
}

// ReportHandler returns the report HTTP handler.
func (c *Container) ReportHandler() (*reportHTTP.ReportHandler, error) {
	var err error
	c.reportHandlerInit.Do(func() {
		c.reportHandler, err = c.initReportHandler()
		if err != nil {
			c.initErrors["reportHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["reportHandler"]; exists {
		return nil, storedErr
	}
	return c.reportHandler, nil
}

// ImportUseCase returns the CSV import use case.
func (c *Container) ImportUseCase() (importUseCase.ImportUseCase, error) {
	var err error
	c.importUseCaseInit.Do(func() {
		c.importUseCase, err = c.initImportUseCase()
		if err != nil {
			c.initErrors["importUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["importUseCase"]; exists {
		return nil, storedErr
	}
	return c.importUseCase, nil
}

// ImportHandler returns the CSV import HTTP handler.
func (c *Container) ImportHandler() (*importHTTP.ImportHandler, error) {
	var err error
	c.importHandlerInit.Do(func() {
		c.importHandler, err = c.initImportHandler()
		if err != nil {
			c.initErrors["importHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["importHandler"]; exists {
		return nil, storedErr
	}
	return c.importHandler, nil
}

func (c *Container) initReportUseCase() (reportUseCase.ReportUseCase, error) {
	entryRepo, err := c.EntryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry repository for report use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for report use case: %w", err)
	}

	useCase := reportUseCase.NewReportUseCase(entryRepo)
	return reportUseCase.NewReportUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initReportHandler() (*reportHTTP.ReportHandler, error) {
	useCase, err := c.ReportUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get report use case for report handler: %w", err)
	}
	return reportHTTP.NewReportHandler(useCase, c.Logger()), nil
}

func (c *Container) initImportUseCase() (importUseCase.ImportUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for import use case: %w", err)
	}

	entries, err := c.EntryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry use case for import use case: %w", err)
	}

	categories, err := c.CategoryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get category use case for import use case: %w", err)
	}

	categorizer, err := importService.LoadCategoryRules(c.config.ImportCategoryRulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load category rules: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for import use case: %w", err)
	}

	useCase := importUseCase.NewImportUseCase(txManager, entries, categories, categorizer, importUseCase.Options{
		MaxRows:            c.config.ImportMaxRows,
		DuplicateThreshold: c.config.ImportDuplicateThreshold,
	})
	return importUseCase.NewImportUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initImportHandler() (*importHTTP.ImportHandler, error) {
	useCase, err := c.ImportUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get import use case for import handler: %w", err)
	}
	return importHTTP.NewImportHandler(useCase, int64(c.config.ImportMaxFileSize), c.Logger()), nil
}
