// Package events defines open days, webinars and other dated events users register to.
package events
