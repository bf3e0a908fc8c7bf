// Package users defines accounts, profiles and the authentication contracts.
package users
