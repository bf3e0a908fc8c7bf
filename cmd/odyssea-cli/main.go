// Package main is the entry point for the odyssea-cli application.
// It registers the administration commands (database, users, notifications, tokens)
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Tsilavina4274/odyssea/cmd/odyssea-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "odyssea-cli",
		Short: "Odysséa administration CLI",
		Long: `odyssea-cli administers an Odysséa deployment.
It migrates and seeds the database, creates administrator accounts,
broadcasts notifications and purges expired revoked tokens.

The database and logger settings are read from the REST configuration file
given with --config. ODYSSEA_* environment variables override file values.`,
		SilenceUsage: true,
	}

	configPath := rootCmd.PersistentFlags().String("config", defaultConfigPath(), "Path to the REST configuration file")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd, configPath); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command, configPath *string) error {
	if err := commands.InitDatabaseCommands(rootCmd, configPath); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}

	if err := commands.InitUserCommands(rootCmd, configPath); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	if err := commands.InitNotificationCommands(rootCmd, configPath); err != nil {
		return fmt.Errorf("failed to initialize notification commands: %w", err)
	}

	if err := commands.InitTokenCommands(rootCmd, configPath); err != nil {
		return fmt.Errorf("failed to initialize token commands: %w", err)
	}

	return nil
}

func defaultConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "configs/rest-app.yaml"
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
