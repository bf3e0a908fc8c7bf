package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

const subjectPrefix = "[Odysséa] "

// sendFunc performs the API call. Tests replace it.
type sendFunc func(ctx context.Context, req rest.Request) (*rest.Response, error)

type sendgridMailer struct {
	key    string
	from   *sgmail.Email
	send   sendFunc
	logger logger.Logger
}

// NewSendgridMailer creates a mailer backed by the SendGrid v3 API
func NewSendgridMailer(settings *config.MailerSettings, logger logger.Logger) users.Mailer {
	return &sendgridMailer{
		key:    settings.APIKey,
		from:   sgmail.NewEmail(settings.FromName, settings.FromEmail),
		send:   sendgrid.MakeRequestWithContext,
		logger: logger,
	}
}

func (m *sendgridMailer) prepare(toEmail, toName, subject, text, html string) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = subjectPrefix + subject
	p.AddTos(sgmail.NewEmail(toName, toEmail))

	msg := sgmail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.AddPersonalizations(p)
	msg.AddContent(
		sgmail.NewContent("text/plain", text),
		sgmail.NewContent("text/html", html),
	)
	return msg
}

// SendPasswordReset mails the reset link to the account owner
func (m *sendgridMailer) SendPasswordReset(ctx context.Context, toEmail, toName, resetLink string) error {
	subject, text, html := passwordResetContent(toName, resetLink)

	req := sendgrid.GetRequest(m.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m.prepare(toEmail, toName, subject, text, html))

	res, err := m.send(ctx, req)
	if err != nil {
		return fmt.Errorf("sending password reset email: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sending password reset email - status: %d - body: %s", res.StatusCode, res.Body)
	}

	m.logger.Info("Sent password reset email to ", toEmail)
	return nil
}
