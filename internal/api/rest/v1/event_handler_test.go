//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventHandler_List_Upcoming(t *testing.T) {
	mockEventService := new(MockEventService)
	handler := NewEventHandler(mockEventService)

	mockEventService.On("List", mock.Anything, &events.Query{EventType: events.TypeOpenDay, UpcomingOnly: true, PublicOnly: true}).
		Return([]*events.Event{}, nil)

	c, w := newTestContext(t, http.MethodGet, "/events?event_type=open_day&upcoming=true", nil, nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
	mockEventService.AssertExpectations(t)
}

func TestEventHandler_List_SignedInSeesPrivate(t *testing.T) {
	mockEventService := new(MockEventService)
	handler := NewEventHandler(mockEventService)

	mockEventService.On("List", mock.Anything, &events.Query{}).Return([]*events.Event{}, nil)

	c, w := newTestContext(t, http.MethodGet, "/events", nil, studentIdentity())
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockEventService.AssertExpectations(t)
}

func TestEventHandler_GetByID_PrivateEvent(t *testing.T) {
	private := &events.Event{
		ID:        testResourceID,
		Title:     "Entretiens Master",
		EventType: events.TypeInterview,
		StartDate: time.Now().Add(48 * time.Hour).UTC(),
		IsPublic:  false,
	}

	tests := []struct {
		name     string
		identity *users.Identity
		expected int
	}{
		{"anonymous", nil, http.StatusNotFound},
		{"signed in", studentIdentity(), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEventService := new(MockEventService)
			handler := NewEventHandler(mockEventService)
			mockEventService.On("GetByID", mock.Anything, testResourceID).Return(private, nil)

			c, w := newTestContext(t, http.MethodGet, "/events/"+testResourceID, nil, tt.identity)
			withParam(c, "id", testResourceID)
			handler.GetByID(c)

			assert.Equal(t, tt.expected, w.Code)
			mockEventService.AssertExpectations(t)
		})
	}
}

func TestEventHandler_Create_SetsOrganizer(t *testing.T) {
	mockEventService := new(MockEventService)
	handler := NewEventHandler(mockEventService)

	start := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	mockEventService.On("Create", mock.Anything, mock.MatchedBy(func(e *events.Event) bool {
		return e.OrganizerID == testEstablishmentID && e.Title == "Journée portes ouvertes" && e.IsPublic
	})).Return(&events.Event{ID: testResourceID, Title: "Journée portes ouvertes", EventType: events.TypeOpenDay, StartDate: start, OrganizerID: testEstablishmentID, IsPublic: true}, nil)

	c, w := newTestContext(t, http.MethodPost, "/events", EventRequest{
		Title:     "Journée portes ouvertes",
		EventType: "open_day",
		StartDate: start,
	}, establishmentIdentity())
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), testResourceID)
	mockEventService.AssertExpectations(t)
}

func TestEventHandler_Register(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"registered", nil, http.StatusCreated},
		{"full", events.ErrEventFull, http.StatusConflict},
		{"closed", events.ErrRegistrationClosed, http.StatusConflict},
		{"twice", events.ErrAlreadyRegistered, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEventService := new(MockEventService)
			handler := NewEventHandler(mockEventService)

			if tt.err != nil {
				mockEventService.On("Register", mock.Anything, testResourceID, testStudentID).Return(nil, tt.err)
			} else {
				mockEventService.On("Register", mock.Anything, testResourceID, testStudentID).
					Return(&events.Registration{ID: "f0e1d2c3-b4a5-4968-8776-655443322108", EventID: testResourceID, UserID: testStudentID, Status: events.RegistrationStatusRegistered}, nil)
			}

			c, w := newTestContext(t, http.MethodPost, "/events/"+testResourceID+"/register", nil, studentIdentity())
			withParam(c, "id", testResourceID)
			handler.Register(c)

			assert.Equal(t, tt.expected, w.Code)
			mockEventService.AssertExpectations(t)
		})
	}
}

func TestEventHandler_SendReminders(t *testing.T) {
	mockEventService := new(MockEventService)
	handler := NewEventHandler(mockEventService)

	mockEventService.On("SendReminders", mock.Anything, testResourceID, 0).Return(2, nil)
	mockEventService.On("SendReminders", mock.Anything, testResourceID, 5).Return(2, nil)

	c, w := newTestContext(t, http.MethodPost, "/events/"+testResourceID+"/reminders", nil, establishmentIdentity())
	withParam(c, "id", testResourceID)
	handler.SendReminders(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())

	c, w = newTestContext(t, http.MethodPost, "/events/"+testResourceID+"/reminders", SendRemindersRequest{HoursBefore: 5}, establishmentIdentity())
	withParam(c, "id", testResourceID)
	handler.SendReminders(c)
	assert.Equal(t, http.StatusOK, w.Code)

	mockEventService.AssertExpectations(t)
}
