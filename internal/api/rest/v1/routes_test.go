//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestServices() (Services, *MockUniversityService, *MockEventService) {
	mockUniversityService := new(MockUniversityService)
	mockEventService := new(MockEventService)
	return Services{
		AuthService:         new(MockAuthService),
		ProfileService:      new(MockProfileService),
		UniversityService:   mockUniversityService,
		ApplicationService:  new(MockApplicationService),
		MessagingService:    new(MockMessagingService),
		NotificationService: new(MockNotificationService),
		EventService:        mockEventService,
	}, mockUniversityService, mockEventService
}

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	services, mockUniversityService, mockEventService := newTestServices()
	mockUniversityService.On("SearchFormations", mock.Anything, mock.Anything).Return([]*universities.Formation{}, nil)
	mockUniversityService.On("FilterOptions", mock.Anything).Return(&universities.FilterOptions{}, nil)
	mockEventService.On("List", mock.Anything, mock.Anything).Return([]*events.Event{}, nil)

	r := gin.New()
	SetupRoutes(r, services, nil)

	tests := []struct {
		method   string
		url      string
		expected int
	}{
		{http.MethodGet, BasePath + "/formations", http.StatusOK},
		{http.MethodGet, BasePath + "/formations/filters", http.StatusOK},
		{http.MethodGet, BasePath + "/events", http.StatusOK},
		{http.MethodGet, BasePath + "/applications", http.StatusUnauthorized},
		{http.MethodGet, BasePath + "/conversations", http.StatusUnauthorized},
		{http.MethodPost, BasePath + "/notifications/broadcast", http.StatusUnauthorized},
		{http.MethodGet, BasePath + "/documents/" + testResourceID + "/file", http.StatusNotFound},
		{http.MethodGet, BasePath + "/realtime", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestSetupRoutes_DocumentsEnabled(t *testing.T) {
	services, _, _ := newTestServices()
	services.DocumentService = new(MockDocumentService)

	r := gin.New()
	SetupRoutes(r, services, nil)

	req := httptest.NewRequest(http.MethodGet, BasePath+"/documents/"+testResourceID+"/file", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
