// Package messaging defines conversations between users and their messages.
package messaging
