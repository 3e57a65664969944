package hub_test

import (
	"clubportal/backend/internal/models"
)

// mockClient is an in-memory Client implementation for hub tests.
type mockClient struct {
	id          string
	userID      string
	complaintID string
	RecvChannel chan models.ConversationFrame
	closed      bool
}

func newMockClient(id, userID, complaintID string) *mockClient {
	return &mockClient{
		id:          id,
		userID:      userID,
		complaintID: complaintID,
		RecvChannel: make(chan models.ConversationFrame, 8),
	}
}

func (m *mockClient) GetID() string          { return m.id }
func (m *mockClient) GetUserID() string      { return m.userID }
func (m *mockClient) GetComplaintID() string { return m.complaintID }

func (m *mockClient) GetSendChannel() chan<- models.ConversationFrame { return m.RecvChannel }

func (m *mockClient) Run()   {}
func (m *mockClient) Close() { m.closed = true }
