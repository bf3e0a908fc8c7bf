//go:build unit
// +build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollectors(reg)
	require.NoError(t, err)

	c.ObserveRequest(http.MethodGet, "/api/v1/odyssea/universities", http.StatusOK, 20*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "/api/v1/odyssea/universities", http.StatusOK, 30*time.Millisecond)
	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "/api/v1/odyssea/universities", "200")))

	c.ConnectionOpened()
	c.ConnectionOpened()
	c.ConnectionClosed()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.connections))

	c.ChangePublished("messages")
	c.ChangeDropped()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.published.WithLabelValues("messages")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.dropped))
}

func TestNewCollectors_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollectors(reg)
	require.NoError(t, err)

	_, err = NewCollectors(reg)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollectors(reg)
	require.NoError(t, err)
	c.ChangeDropped()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "odyssea_realtime_events_dropped_total 1")
}
