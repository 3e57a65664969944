package config

import "time"

const (
	// Notifications
	FeedMaxEntries   = 15
	FeedRecentWindow = 24 * time.Hour

	// Feedback
	MinRating = 1
	MaxRating = 5

	// Auth
	// LoginLatency simulates the network round trip of the legacy
	// authentication stub; the portal keeps its deterministic timing.
	LoginLatency = 500 * time.Millisecond
	TokenTTL     = 72 * time.Hour
	TokenIssuer  = "clubportal-service"

	// HTTP server
	ReadTimeout    = 10 * time.Second
	WriteTimeout   = 10 * time.Second
	MaxHeaderBytes = 1 << 20
)

// PubSubChannel is the broadcast channel for cross-instance conversation
// fan-out when Redis is configured.
const PubSubChannel = "portal:conversation"
