// Package auth provides the JWT token manager and the bcrypt password hasher.
package auth
