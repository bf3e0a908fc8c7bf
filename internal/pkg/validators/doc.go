// Package validators holds the custom struct validations and the password policy.
package validators
