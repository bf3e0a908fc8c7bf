// Package documents defines supporting documents attached to applications.
package documents
