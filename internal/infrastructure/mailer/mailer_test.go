//go:build unit
// +build unit

package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/testutil"

	"github.com/sendgrid/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resetLink = "https://odyssea.fr/reset-password?token=abc"

func testSettings(provider string) *config.MailerSettings {
	return &config.MailerSettings{
		Provider:  provider,
		APIKey:    "SG.test",
		FromEmail: "noreply@odyssea.fr",
		FromName:  "Odysséa",
		ResetURL:  "https://odyssea.fr/reset-password",
	}
}

func TestNewMailer(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	m, err := NewMailer(testSettings(config.LogMailerProvider), log)
	require.NoError(t, err)
	assert.IsType(t, &LogMailer{}, m)

	m, err = NewMailer(testSettings(config.SendgridMailerProvider), log)
	require.NoError(t, err)
	assert.IsType(t, &sendgridMailer{}, m)

	_, err = NewMailer(testSettings("smtp"), log)
	assert.Error(t, err)
}

func TestLogMailer_SendPasswordReset(t *testing.T) {
	m := NewLogMailer(testutil.SetupTestLogger(t))

	require.NoError(t, m.SendPasswordReset(context.Background(), "lea@example.com", "Léa", resetLink))

	sent := m.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "lea@example.com", sent[0].To)
	assert.Equal(t, resetLink, sent[0].Link)
	assert.Contains(t, sent[0].Subject, "mot de passe")
	assert.Contains(t, sent[0].Text, "Bonjour Léa")
	assert.Contains(t, sent[0].Text, resetLink)
}

func TestSendgridMailer_SendPasswordReset(t *testing.T) {
	m := NewSendgridMailer(testSettings(config.SendgridMailerProvider), testutil.SetupTestLogger(t)).(*sendgridMailer)

	var captured rest.Request
	m.send = func(_ context.Context, req rest.Request) (*rest.Response, error) {
		captured = req
		return &rest.Response{StatusCode: http.StatusAccepted}, nil
	}

	require.NoError(t, m.SendPasswordReset(context.Background(), "lea@example.com", "Léa", resetLink))

	assert.Equal(t, rest.Method(http.MethodPost), captured.Method)
	assert.Equal(t, host+endpoint, captured.BaseURL)
	assert.Equal(t, "Bearer SG.test", captured.Headers["Authorization"])

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured.Body, &body))
	assert.Equal(t, "noreply@odyssea.fr", body["from"].(map[string]interface{})["email"])

	personalizations := body["personalizations"].([]interface{})
	require.Len(t, personalizations, 1)
	p := personalizations[0].(map[string]interface{})
	assert.Equal(t, subjectPrefix+"Réinitialisation de votre mot de passe", p["subject"])
	assert.Equal(t, "lea@example.com", p["to"].([]interface{})[0].(map[string]interface{})["email"])
}

func TestSendgridMailer_SendPasswordReset_Failure(t *testing.T) {
	m := NewSendgridMailer(testSettings(config.SendgridMailerProvider), testutil.SetupTestLogger(t)).(*sendgridMailer)

	m.send = func(context.Context, rest.Request) (*rest.Response, error) {
		return &rest.Response{StatusCode: http.StatusUnauthorized, Body: "bad key"}, nil
	}
	err := m.SendPasswordReset(context.Background(), "lea@example.com", "", resetLink)
	assert.ErrorContains(t, err, "401")

	m.send = func(context.Context, rest.Request) (*rest.Response, error) {
		return nil, errors.New("connection refused")
	}
	err = m.SendPasswordReset(context.Background(), "lea@example.com", "", resetLink)
	assert.ErrorContains(t, err, "connection refused")
}
