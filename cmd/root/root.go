// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger for commands. It is replaced once the
	// configuration is loaded.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies for the running command.
	AppContainer *container.Container

	// ConfigFile overrides the config.yaml search.
	ConfigFile string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "A personal ledger that learns merchant categories.",
		Long: `expense-tracker keeps a ledger of bank transactions and assigns each one a
category from the merchants it has seen before. Correcting a category teaches
the merchant directory and re-applies the lesson to every uncategorized
transaction.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-tracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: setup,
	}
)

func init() {
	// Runs after every Execute, including failed ones.
	cobra.OnFinalize(Teardown)
}

// Init initializes the root command and all flags
func Init() {
	if Cmd.PersistentFlags().Lookup("config") != nil {
		return
	}
	Cmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c", "", "Config file (default searches $HOME/.expense-tracker, .expense-tracker and .)")
}

// Teardown closes the container opened by the root command. Safe to call
// more than once.
func Teardown() {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close databases")
	}
	AppContainer = nil
}

func setup(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(Log); err != nil {
		Log.WithError(err).Warn("Ignoring .env file")
	}

	var (
		cfg *config.Config
		err error
	)
	if ConfigFile != "" {
		cfg, err = config.InitializeConfigFromFile(ConfigFile)
	} else {
		cfg, err = config.InitializeConfig()
	}
	if err != nil {
		return err
	}

	Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	c, err := container.NewContainerWithLogger(cmd.Context(), cfg, Log)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	AppContainer = c
	return nil
}
