// Package persistence provides the GORM repository implementations of the
// domain contracts and the database connection helpers. Repositories
// validate entities before writing and translate missing rows and unique
// violations into the shared domain errors.
package persistence
