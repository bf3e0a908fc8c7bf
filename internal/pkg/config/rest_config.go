package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ODYSSEA_AUTH_JWT_SECRET
const EnvPrefix = "ODYSSEA"

// RestConfig holds the settings of the REST API service
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Auth     AuthSettings     `mapstructure:"auth"`
	Realtime RealtimeSettings `mapstructure:"realtime"`
	CORS     CORSSettings     `mapstructure:"cors"`
	Mailer   MailerSettings   `mapstructure:"mailer"`
	// DocumentConnector is optional; document upload is disabled when unset
	DocumentConnector *DocumentConnectorSettings `mapstructure:"document_connector"`
}

// Validate checks the top level fields and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(struct {
		Port string `validate:"required,numeric"`
	}{c.Port}); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := validate.Struct(c.CORS); err != nil {
		return fmt.Errorf("validation failed for CORSSettings: %w", err)
	}

	checks := []interface{ Validate() error }{&c.Database, &c.Logger, &c.Auth, &c.Realtime, &c.Mailer}
	if c.DocumentConnector != nil {
		checks = append(checks, c.DocumentConnector)
	}
	for _, check := range checks {
		if err := check.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "odyssea.db")
	v.SetDefault("database.name", "")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.no_color", false)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_duration", 24*time.Hour)
	v.SetDefault("auth.reset_token_duration", time.Hour)
	v.SetDefault("auth.issuer", "odyssea")
	v.SetDefault("realtime.origin_patterns", []string{"localhost:*"})
	v.SetDefault("realtime.insecure_skip_verify", false)
	v.SetDefault("realtime.send_buffer", 64)
	v.SetDefault("realtime.ping_interval", 25*time.Second)
	v.SetDefault("realtime.write_timeout", 10*time.Second)
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("mailer.provider", LogMailerProvider)
	v.SetDefault("mailer.api_key", "")
	v.SetDefault("mailer.from_email", "noreply@odyssea.local")
	v.SetDefault("mailer.from_name", "Odysséa")
	v.SetDefault("mailer.reset_url", "http://localhost:5173/reset-password")
}

// InitializeRestConfig loads the REST configuration from a YAML file.
// A .env file next to the config file is loaded first when present, then ODYSSEA_*
// environment variables override file values.
func InitializeRestConfig(path string) (*RestConfig, error) {
	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
