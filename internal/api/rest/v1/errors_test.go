//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", shared.Invalid(errors.New("bad field")), http.StatusBadRequest},
		{"weak password", users.ErrWeakPassword, http.StatusBadRequest},
		{"credentials", users.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token", fmt.Errorf("parse: %w", users.ErrInvalidToken), http.StatusUnauthorized},
		{"forbidden", shared.Forbidden("not a participant"), http.StatusForbidden},
		{"inactive", users.ErrInactiveAccount, http.StatusForbidden},
		{"not found", shared.NotFound("formation", "abc"), http.StatusNotFound},
		{"email exists", users.ErrEmailExists, http.StatusConflict},
		{"transition", applications.ErrInvalidTransition, http.StatusConflict},
		{"not eligible", (&applications.Eligibility{Reason: "deadline passed"}).Err(), http.StatusConflict},
		{"event full", events.ErrEventFull, http.StatusConflict},
		{"registration closed", events.ErrRegistrationClosed, http.StatusConflict},
		{"already registered", events.ErrAlreadyRegistered, http.StatusConflict},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.err))
		})
	}
}

func TestRespondError_HidesInternalErrors(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/", nil, nil)

	respondError(c, errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Len(t, c.Errors, 1)
	assert.True(t, c.IsAborted())
}

func TestRespondError_ExposesDomainErrors(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/", nil, nil)

	respondError(c, shared.NotFound("event", "42"))

	var body ErrorResponse
	decodeBody(t, w, &body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, body.Message, "event")
	assert.Empty(t, c.Errors)
}
