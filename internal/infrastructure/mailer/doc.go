// Package mailer sends the transactional mail of the platform, through SendGrid
// or, in development, to the log.
package mailer
