//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: debug
  log_type: console
auth:
  jwt_secret: "`+testSecret+`"
  token_duration: 2h
  reset_token_duration: 30m
cors:
  allow_origins: ["http://localhost:5173"]
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 30*time.Minute, cfg.Auth.ResetTokenDuration)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 64, cfg.Realtime.SendBuffer)
	assert.Equal(t, LogMailerProvider, cfg.Mailer.Provider)
	assert.Nil(t, cfg.DocumentConnector)
}

func TestInitializeRestConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
auth:
  jwt_secret: "`+testSecret+`"
`)
	t.Setenv("ODYSSEA_PORT", "7070")
	t.Setenv("ODYSSEA_LOGGER_LOG_LEVEL", "error")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, LogLevelError, cfg.Logger.LogLevel)
}

func TestInitializeRestConfig_DotEnvNextToConfig(t *testing.T) {
	path := writeConfig(t, "port: \"9090\"\n")
	dotEnv := filepath.Join(filepath.Dir(path), ".env")
	require.NoError(t, os.WriteFile(dotEnv, []byte("ODYSSEA_AUTH_JWT_SECRET="+testSecret+"\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("ODYSSEA_AUTH_JWT_SECRET") })

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

func TestInitializeRestConfig_MissingSecret(t *testing.T) {
	path := writeConfig(t, "port: \"9090\"\n")

	cfg, err := InitializeRestConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AuthSettings")
}

func TestInitializeRestConfig_DocumentConnector(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: "`+testSecret+`"
document_connector:
  cloud_provider: azure
  connection_string: "UseDevelopmentStorage=true"
  container_name: documents
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.DocumentConnector)
	assert.Equal(t, AzureCloudProvider, cfg.DocumentConnector.CloudProvider)
	assert.Equal(t, "documents", cfg.DocumentConnector.ContainerName)
}

func TestMailerSettingsValidation(t *testing.T) {
	valid := MailerSettings{
		Provider:  SendgridMailerProvider,
		APIKey:    "SG.key",
		FromEmail: "noreply@odyssea.fr",
		ResetURL:  "https://odyssea.fr/reset-password",
	}
	assert.NoError(t, valid.Validate())

	missingKey := valid
	missingKey.APIKey = ""
	assert.Error(t, missingKey.Validate())

	logMailer := missingKey
	logMailer.Provider = LogMailerProvider
	assert.NoError(t, logMailer.Validate())
}

func TestAuthSettingsValidation(t *testing.T) {
	s := AuthSettings{JWTSecret: testSecret, TokenDuration: time.Hour, ResetTokenDuration: 2 * time.Hour}
	assert.Error(t, s.Validate())

	s.ResetTokenDuration = 15 * time.Minute
	assert.NoError(t, s.Validate())

	s.JWTSecret = "short"
	assert.Error(t, s.Validate())
}
