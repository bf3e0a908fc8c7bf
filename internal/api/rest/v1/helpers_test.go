//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testStudentID       = "0b0b6a4e-5b8f-4a57-9c33-0d4b7c1f6a01"
	testEstablishmentID = "2d5e7f1a-3c4b-4d6e-8f9a-0b1c2d3e4f02"
	testResourceID      = "7f3c2a1b-9d8e-4f6a-b5c4-d3e2f1a0b903"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func studentIdentity() *users.Identity {
	return &users.Identity{UserID: testStudentID, Email: "lea@example.com", UserType: users.UserTypeStudent}
}

func establishmentIdentity() *users.Identity {
	return &users.Identity{UserID: testEstablishmentID, Email: "admissions@example.com", UserType: users.UserTypeEstablishment}
}

func adminIdentity() *users.Identity {
	return &users.Identity{UserID: "5a6b7c8d-9e0f-4a1b-8c2d-3e4f5a6b7c04", Email: "admin@example.com", UserType: users.UserTypeAdmin}
}

// newTestContext builds a gin context for a request carrying body as JSON.
// A nil identity leaves the request unauthenticated.
func newTestContext(t *testing.T, method, target string, body interface{}, identity *users.Identity) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, target, bytes.NewReader(payload))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if identity != nil {
		c.Set(identityKey, identity)
		c.Set(accessTokenKey, "access-token")
	}
	return c, w
}

func withParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}
