// Package container provides dependency injection for the expense tracker.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/fuzzy"
	"fjacquet/expense-tracker/internal/importer"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation. It owns both database handles;
// call Close when done.
type Container struct {
	logger       logging.Logger
	config       *config.Config
	transactions *store.TransactionRepository
	merchants    *store.MerchantRepository
	mappings     *store.MappingFile
	categorizer  *categorizer.Categorizer
	workflow     *categorizer.Workflow
	importer     *importer.Importer
}

// NewContainer creates and wires all application dependencies, logging
// through a logrus adapter built from cfg.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(ctx, cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger = logging.OrDefault(logger)

	transactions, err := store.NewTransactionRepository(ctx, cfg.TransactionsPath(), logger)
	if err != nil {
		return nil, err
	}

	merchants, err := store.NewMerchantRepository(ctx, cfg.MerchantsPath(), logger)
	if err != nil {
		_ = transactions.Close()
		return nil, err
	}

	matcher := fuzzy.NewMatcher(fuzzy.WeightedRatio)
	cat := categorizer.NewCategorizer(merchants, transactions, matcher, cfg.Categorization.FuzzyThreshold, logger)
	workflow := categorizer.NewWorkflow(cat, transactions, cfg.Categorization.AutoRecategorize, logger)

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldDatabase, Value: cfg.TransactionsPath()},
		logging.Field{Key: "merchants_database", Value: cfg.MerchantsPath()},
		logging.Field{Key: "fuzzy_threshold", Value: cfg.Categorization.FuzzyThreshold})

	return &Container{
		logger:       logger,
		config:       cfg,
		transactions: transactions,
		merchants:    merchants,
		mappings:     store.NewMappingFile(cfg.MappingsPath(), logger),
		categorizer:  cat,
		workflow:     workflow,
		importer:     importer.NewImporter(workflow, cfg.Import.DateFormat, logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTransactions returns the ledger repository.
func (c *Container) GetTransactions() *store.TransactionRepository {
	return c.transactions
}

// GetMerchants returns the merchant directory repository.
func (c *Container) GetMerchants() *store.MerchantRepository {
	return c.merchants
}

// GetMappingFile returns the default YAML mapping file. Commands may open
// another path with store.NewMappingFile.
func (c *Container) GetMappingFile() *store.MappingFile {
	return c.mappings
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetWorkflow returns the add/edit workflow.
func (c *Container) GetWorkflow() *categorizer.Workflow {
	return c.workflow
}

// GetImporter returns the CSV importer.
func (c *Container) GetImporter() *importer.Importer {
	return c.importer
}

// Close releases both databases.
func (c *Container) Close() error {
	err := errors.Join(c.transactions.Close(), c.merchants.Close())
	if err != nil {
		c.logger.WithError(err).Warn("Failed to close databases")
		return err
	}
	c.logger.Debug("Container closed")
	return nil
}
