package models

// Frame types pushed over the live conversation feed.
const (
	FrameChatMessage  = "chat_message"
	FrameStatusUpdate = "status_update"
)

// ConversationFrame is the wire format for live updates on one complaint.
// Message is set for chat_message frames, Status for status_update frames.
type ConversationFrame struct {
	ComplaintID string          `json:"complaint_id"`
	Type        string          `json:"type"`
	Message     *ChatMessage    `json:"message,omitempty"`
	Status      ComplaintStatus `json:"status,omitempty"`
}
