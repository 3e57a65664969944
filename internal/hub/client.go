package hub

import "clubportal/backend/internal/models"

// Client is the interface for one connected viewer of a complaint
// conversation. It abstracts the underlying transport so the hub can manage
// every connection type uniformly.
type Client interface {
	// GetID returns the unique identifier of this connection.
	GetID() string
	// GetUserID returns the authenticated user behind the connection.
	GetUserID() string
	// GetComplaintID returns the complaint the client is watching.
	GetComplaintID() string

	// GetSendChannel returns the channel through which the hub delivers
	// frames intended for this client. It is a send-only channel.
	GetSendChannel() chan<- models.ConversationFrame

	// Run starts the client's pumps for inbound and outbound traffic.
	Run()
	// Close shuts down the connection and its channels.
	Close()
}
