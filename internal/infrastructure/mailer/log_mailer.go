package mailer

import (
	"context"
	"sync"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"
)

// SentMail is a message handled by the log mailer
type SentMail struct {
	To      string
	Subject string
	Text    string
	Link    string
}

// LogMailer writes mail to the logger instead of sending it. It keeps what it wrote.
type LogMailer struct {
	logger logger.Logger

	mu   sync.Mutex
	sent []SentMail
}

// NewLogMailer creates a LogMailer
func NewLogMailer(logger logger.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendPasswordReset logs the reset link
func (m *LogMailer) SendPasswordReset(_ context.Context, toEmail, toName, resetLink string) error {
	subject, text, _ := passwordResetContent(toName, resetLink)

	m.mu.Lock()
	m.sent = append(m.sent, SentMail{To: toEmail, Subject: subjectPrefix + subject, Text: text, Link: resetLink})
	m.mu.Unlock()

	m.logger.Info("Password reset email for ", toEmail, ": ", resetLink)
	return nil
}

// Sent returns a copy of the mail written so far
func (m *LogMailer) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentMail(nil), m.sent...)
}

var _ users.Mailer = (*LogMailer)(nil)
