// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted by the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Authorization policy names accepted by the authorization.policy config key.
const (
	AuthorizationPolicyNone = "none"
	AuthorizationPolicyCode = "code"
	AuthorizationPolicyFace = "face"
)
