// Package notifications defines in-app notifications and their delivery contracts.
package notifications
