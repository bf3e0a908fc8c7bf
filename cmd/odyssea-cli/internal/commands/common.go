package commands

import (
	"context"
	"fmt"

	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"gorm.io/gorm"
)

// environment is what every command needs: settings, a logger and the database
type environment struct {
	cfg    *config.RestConfig
	logger logger.Logger
	db     *gorm.DB
}

// setupEnvironment loads the configuration found at configPath and opens the database
func setupEnvironment(configPath string) (*environment, error) {
	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return &environment{cfg: cfg, logger: loggerInstance, db: db}, nil
}

// discardPublisher drops realtime changes. The CLI has no websocket clients.
type discardPublisher struct{}

func (discardPublisher) Publish(context.Context, realtime.Change, []string) {}
