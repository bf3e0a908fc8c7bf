// Package realtime defines row-insert changes and the publisher that delivers them.
package realtime
