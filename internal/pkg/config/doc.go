// Package config loads and validates the service configuration.
//
// Settings come from a YAML file, an optional .env file placed next to it and
// ODYSSEA_* environment variables, in increasing order of precedence.
package config
