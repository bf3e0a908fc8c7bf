// Package hub implements the websocket hub that delivers row inserts
// to subscribed browser connections.
package hub
