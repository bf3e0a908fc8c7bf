package mailer

import (
	"fmt"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"
)

// NewMailer returns the mailer selected by settings.Provider
func NewMailer(settings *config.MailerSettings, logger logger.Logger) (users.Mailer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Provider {
	case config.SendgridMailerProvider:
		return NewSendgridMailer(settings, logger), nil
	case config.LogMailerProvider:
		return NewLogMailer(logger), nil
	default:
		return nil, fmt.Errorf("unsupported mailer provider: %s", settings.Provider)
	}
}
