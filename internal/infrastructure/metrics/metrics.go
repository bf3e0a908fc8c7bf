package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "odyssea"

// Collectors groups the prometheus collectors of the service
type Collectors struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	connections prometheus.Gauge
	published   *prometheus.CounterVec
	dropped     prometheus.Counter
}

// NewCollectors creates the collectors and registers them on reg
func NewCollectors(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_connections",
			Help:      "Open realtime websocket connections.",
		}),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_events_published_total",
			Help:      "Realtime changes published by table.",
		}, []string{"table"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_events_dropped_total",
			Help:      "Realtime frames dropped because a send buffer was full.",
		}),
	}

	for _, collector := range []prometheus.Collector{c.requests, c.duration, c.connections, c.published, c.dropped} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return c, nil
}

// ObserveRequest records one served HTTP request
func (c *Collectors) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ConnectionOpened increments the open connection gauge
func (c *Collectors) ConnectionOpened() { c.connections.Inc() }

// ConnectionClosed decrements the open connection gauge
func (c *Collectors) ConnectionClosed() { c.connections.Dec() }

// ChangePublished counts a published change of table
func (c *Collectors) ChangePublished(table string) { c.published.WithLabelValues(table).Inc() }

// ChangeDropped counts a dropped frame
func (c *Collectors) ChangeDropped() { c.dropped.Inc() }

// Handler exposes the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
