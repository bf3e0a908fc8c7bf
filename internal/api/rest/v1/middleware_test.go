//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	requests []recordedRequest
}

func (o *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	o.requests = append(o.requests, recordedRequest{method: method, route: route, status: status})
}

func protectedRouter(authService users.AuthService, guards ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(authService)}, guards...)
	handlers = append(handlers, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": currentIdentity(ctx).UserID, "token": currentAccessToken(ctx)})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("ValidateToken", mock.Anything, "good").Return(studentIdentity(), nil)
	mockAuthService.On("ValidateToken", mock.Anything, "expired").Return(nil, users.ErrInvalidToken)

	r := protectedRouter(mockAuthService)

	tests := []struct {
		name     string
		header   string
		expected int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"expired token", "Bearer expired", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
		{"lower case scheme", "bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
			if tt.expected == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"`+testStudentID+`","token":"good"}`, w.Body.String())
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("ValidateToken", mock.Anything, "good").Return(studentIdentity(), nil)
	mockAuthService.On("ValidateToken", mock.Anything, "revoked").Return(nil, users.ErrInvalidToken)

	r := gin.New()
	r.GET("/events", OptionalAuth(mockAuthService), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"signed_in": currentIdentity(ctx) != nil})
	})

	tests := []struct {
		name     string
		header   string
		expected int
		body     string
	}{
		{"anonymous", "", http.StatusOK, `{"signed_in":false}`},
		{"valid token", "Bearer good", http.StatusOK, `{"signed_in":true}`},
		{"invalid token", "Bearer revoked", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestRequireUserType(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("ValidateToken", mock.Anything, "student").Return(studentIdentity(), nil)
	mockAuthService.On("ValidateToken", mock.Anything, "establishment").Return(establishmentIdentity(), nil)

	r := protectedRouter(mockAuthService, RequireUserType(users.UserTypeEstablishment, users.UserTypeAdmin))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer student")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "lyceen")

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer establishment")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireUserType_WithoutIdentity(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/", nil, nil)

	RequireUserType(users.UserTypeAdmin)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestMetrics_ObservesRouteTemplate(t *testing.T) {
	observer := &fakeObserver{}

	r := gin.New()
	r.Use(RequestLogger(testutil.SetupTestLogger(t)), Metrics(observer))
	r.GET("/events/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})

	for _, target := range []string{"/events/1", "/events/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, []recordedRequest{
		{http.MethodGet, "/events/:id", http.StatusNoContent},
		{http.MethodGet, "/events/:id", http.StatusNoContent},
		{http.MethodGet, "unmatched", http.StatusNotFound},
	}, observer.requests)
}
