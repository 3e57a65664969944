// Package hub manages live viewers of complaint conversations. Frames
// published by the lifecycle service travel through a pub/sub backbone and
// are fanned out to every connected client watching the same complaint.
package hub

import (
	"log"

	"clubportal/backend/internal/models"
)

// Manager is the central dispatcher for conversation viewers.
type Manager struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client

	pubsub PubSub
}

// NewManager creates a hub on top of the given pub/sub backbone.
func NewManager(ps PubSub) *Manager {
	return &Manager{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		pubsub:       ps,
	}
}

// Broadcast publishes a frame to every hub instance, including this one.
// It satisfies the lifecycle service's Broadcaster dependency.
func (m *Manager) Broadcast(frame models.ConversationFrame) {
	if err := m.pubsub.Publish(frame); err != nil {
		log.Printf("Error publishing conversation frame for %s: %v", frame.ComplaintID, err)
	}
}

// Run is the hub's main loop. It owns the Clients map; register,
// unregister and fan-out all happen on this goroutine.
func (m *Manager) Run() {
	frames, cancel := m.pubsub.Subscribe()
	defer cancel()

	log.Println("Conversation hub started.")

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetID()] = client

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetID()]; ok {
				delete(m.Clients, client.GetID())
				client.Close()
			}

		case frame, ok := <-frames:
			if !ok {
				return
			}
			m.dispatch(frame)
		}
	}
}

func (m *Manager) dispatch(frame models.ConversationFrame) {
	for id, client := range m.Clients {
		if client.GetComplaintID() != frame.ComplaintID {
			continue
		}
		select {
		case client.GetSendChannel() <- frame:
		default:
			// Client cannot keep up; drop the connection.
			delete(m.Clients, id)
			client.Close()
		}
	}
}
