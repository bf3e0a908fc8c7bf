package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings holds the connection settings of the relational store.
// For postgres, DBName is created on first connect when it does not exist yet.
type DatabaseSettings struct {
	Type   string `mapstructure:"type" validate:"required,oneof=postgres sqlite mysql"`
	DSN    string `mapstructure:"dsn"`
	DBName string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	// sqlite falls back to an in-memory database
	if s.Type != SqliteDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for %s", s.Type)
	}

	return nil
}
