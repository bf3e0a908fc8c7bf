package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/app"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DatabaseCommandHandler encapsulates the schema and demo data commands.
type DatabaseCommandHandler struct {
	configPath *string
}

// NewDatabaseCommandHandler returns a handler reading its settings from configPath
func NewDatabaseCommandHandler(configPath *string) *DatabaseCommandHandler {
	return &DatabaseCommandHandler{configPath: configPath}
}

// MigrateCmd creates or updates every table
func (commandHandler *DatabaseCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	env, err := setupEnvironment(*commandHandler.configPath)
	if err != nil {
		return err
	}
	defer closeDB(env)

	if err := persistence.Migrate(env.db); err != nil {
		return err
	}

	env.logger.Info("database schema is up to date")
	return nil
}

// SeedCmd inserts the demo catalogue
func (commandHandler *DatabaseCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) error {
	env, err := setupEnvironment(*commandHandler.configPath)
	if err != nil {
		return err
	}
	defer closeDB(env)

	universityRepo, err := persistence.NewGormUniversityRepository(env.db, env.logger)
	if err != nil {
		return err
	}
	formationRepo, err := persistence.NewGormFormationRepository(env.db, env.logger)
	if err != nil {
		return err
	}
	universityService, err := app.NewUniversityService(universityRepo, formationRepo, env.logger)
	if err != nil {
		return err
	}

	seeder := NewSeeder(universityRepo, universityService, env.logger)
	created, err := seeder.Seed(cmd.Context())
	if err != nil {
		return err
	}

	env.logger.Info(fmt.Sprintf("seeded %d universities", created))
	return nil
}

// Seeder inserts the demo catalogue. Universities already present by name are skipped.
type Seeder struct {
	universityRepo    universities.UniversityRepository
	universityService universities.UniversityService
	logger            logger.Logger
	now               func() time.Time
}

// NewSeeder creates a Seeder
func NewSeeder(universityRepo universities.UniversityRepository, universityService universities.UniversityService, log logger.Logger) *Seeder {
	return &Seeder{
		universityRepo:    universityRepo,
		universityService: universityService,
		logger:            log,
		now:               time.Now,
	}
}

// Seed inserts the missing universities with their formations and returns how many were created
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	created := 0
	for _, entry := range demoCatalogue(s.now().UTC()) {
		_, err := s.universityRepo.GetByName(ctx, entry.university.Name)
		if err == nil {
			s.logger.Info("skipping existing university ", entry.university.Name)
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return created, err
		}

		university, err := s.universityService.Create(ctx, entry.university)
		if err != nil {
			return created, fmt.Errorf("failed to seed %s: %w", entry.university.Name, err)
		}
		for _, formation := range entry.formations {
			formation.UniversityID = university.ID
			if _, err := s.universityService.CreateFormation(ctx, formation); err != nil {
				return created, fmt.Errorf("failed to seed formation %s: %w", formation.Name, err)
			}
		}
		created++
	}
	return created, nil
}

// InitDatabaseCommands registers the migrate and seed commands
func InitDatabaseCommands(rootCmd *cobra.Command, configPath *string) error {
	handler := NewDatabaseCommandHandler(configPath)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo universities and formations",
		RunE:  handler.SeedCmd,
	}
	rootCmd.AddCommand(seedCmd)

	return nil
}

func closeDB(env *environment) {
	if err := persistence.CloseDB(env.db); err != nil {
		env.logger.Warn("failed to close database: ", err)
	}
}
