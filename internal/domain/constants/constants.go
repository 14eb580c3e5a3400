// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub backplane provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Deployment environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
