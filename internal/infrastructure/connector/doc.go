// Package connector provides the object store connector for application documents.
package connector
