// Package constants holds identifiers shared between configuration and runtime wiring.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
)

// DefaultConfigKey is the tenant key used when none is supplied.
const DefaultConfigKey = "default"
