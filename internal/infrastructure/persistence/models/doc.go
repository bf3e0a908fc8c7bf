// Package models contains the GORM models of the platform tables.
// They are kept apart from the domain entities and converted with
// ToDomain and FromDomain.
package models
