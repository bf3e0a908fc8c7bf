// Package metrics holds the prometheus collectors for HTTP traffic and realtime delivery.
package metrics
