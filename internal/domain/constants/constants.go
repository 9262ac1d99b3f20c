// Package constants holds configuration values that several packages switch on.
package constants

// Event publisher providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)
