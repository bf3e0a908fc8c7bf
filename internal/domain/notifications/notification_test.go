//go:build unit
// +build unit

package notifications

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventReminder(t *testing.T) {
	userID := uuid.NewString()
	eventID := uuid.NewString()
	in := EventReminder(userID, eventID, "Journée portes ouvertes", 24)

	require.NoError(t, in.Validate())
	assert.Equal(t, TypeEventReminder, in.Type)
	assert.Equal(t, "Rappel d'événement", in.Title)
	assert.Equal(t, "L'événement \"Journée portes ouvertes\" commence dans 24 heures", in.Message)
	assert.Equal(t, "/events/"+eventID, in.ActionURL)
	assert.Equal(t, eventID, in.RelatedID)
}

func TestCreateInputValidation(t *testing.T) {
	in := CreateInput{Type: TypeSystem, Title: "Maintenance", Message: "Ce soir"}
	assert.NoError(t, in.Validate())

	in.Priority = "urgent"
	assert.Error(t, in.Validate())

	in = CreateInput{Type: "promo", Title: "x", Message: "y"}
	assert.Error(t, in.Validate())
}
