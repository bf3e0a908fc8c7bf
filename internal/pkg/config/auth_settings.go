package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures token issuance
type AuthSettings struct {
	JWTSecret          string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenDuration      time.Duration `mapstructure:"token_duration" validate:"required"`
	ResetTokenDuration time.Duration `mapstructure:"reset_token_duration" validate:"required"`
	Issuer             string        `mapstructure:"issuer"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	if s.ResetTokenDuration > s.TokenDuration {
		return fmt.Errorf("reset token duration must not exceed token duration")
	}
	return nil
}

// RealtimeSettings configures the websocket hub
type RealtimeSettings struct {
	// OriginPatterns lists host patterns allowed to open a websocket from a browser
	OriginPatterns     []string      `mapstructure:"origin_patterns"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	SendBuffer         int           `mapstructure:"send_buffer" validate:"min=1,max=4096"`
	PingInterval       time.Duration `mapstructure:"ping_interval" validate:"required"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout" validate:"required"`
}

// Validate checks that all fields in RealtimeSettings are valid
func (s *RealtimeSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RealtimeSettings: %w", err)
	}
	return nil
}

// CORSSettings configures cross-origin access for the browser front-end
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1"`
}

// DocumentConnectorSettings configures the blob store for uploaded documents
type DocumentConnectorSettings struct {
	CloudProvider    string `mapstructure:"cloud_provider" validate:"required,oneof=azure"`
	ConnectionString string `mapstructure:"connection_string" validate:"required"`
	ContainerName    string `mapstructure:"container_name" validate:"required"`
}

// Validate checks that all fields in DocumentConnectorSettings are valid
func (s *DocumentConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DocumentConnectorSettings: %w", err)
	}
	return nil
}

// MailerSettings configures outgoing mail
type MailerSettings struct {
	Provider  string `mapstructure:"provider" validate:"required,oneof=sendgrid log"`
	APIKey    string `mapstructure:"api_key"`
	FromEmail string `mapstructure:"from_email" validate:"required,email"`
	FromName  string `mapstructure:"from_name"`
	// ResetURL is the front-end page receiving the reset token as ?token=
	ResetURL string `mapstructure:"reset_url" validate:"required,url"`
}

// Validate checks that all fields in MailerSettings are valid
func (s *MailerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MailerSettings: %w", err)
	}
	if s.Provider == SendgridMailerProvider && s.APIKey == "" {
		return fmt.Errorf("api key is required for the sendgrid mailer")
	}
	return nil
}
