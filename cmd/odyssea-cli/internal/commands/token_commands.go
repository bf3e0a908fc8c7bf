package commands

import (
	"fmt"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// TokenCommandHandler encapsulates revoked token maintenance.
type TokenCommandHandler struct {
	configPath *string
}

// NewTokenCommandHandler returns a handler reading its settings from configPath
func NewTokenCommandHandler(configPath *string) *TokenCommandHandler {
	return &TokenCommandHandler{configPath: configPath}
}

// PurgeCmd deletes revoked token ids whose token has expired
func (commandHandler *TokenCommandHandler) PurgeCmd(cmd *cobra.Command, _ []string) error {
	env, err := setupEnvironment(*commandHandler.configPath)
	if err != nil {
		return err
	}
	defer closeDB(env)

	revokedTokenRepo, err := persistence.NewGormRevokedTokenRepository(env.db, env.logger)
	if err != nil {
		return err
	}

	purged, err := revokedTokenRepo.PurgeExpired(cmd.Context(), time.Now().UTC())
	if err != nil {
		return err
	}

	env.logger.Info(fmt.Sprintf("purged %d expired revoked tokens", purged))
	return nil
}

// InitTokenCommands registers the tokens command group
func InitTokenCommands(rootCmd *cobra.Command, configPath *string) error {
	handler := NewTokenCommandHandler(configPath)

	tokensCmd := &cobra.Command{
		Use:   "tokens",
		Short: "Maintain revoked access tokens",
	}
	tokensCmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete revoked token ids past their expiry",
		RunE:  handler.PurgeCmd,
	})

	rootCmd.AddCommand(tokensCmd)
	return nil
}
