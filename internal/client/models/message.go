package models

// Participant is the denormalized "other side" summary of a two-party
// conversation.
type Participant struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// Conversation is a two-party message thread with a denormalized preview of
// the most recent message.
type Conversation struct {
	ID               string       `json:"_id"`
	Participants     []string     `json:"participants"`
	LastMessage      string       `json:"lastMessage"`
	LastMessageAt    string       `json:"lastMessageAt"`
	OtherParticipant *Participant `json:"otherParticipant,omitempty"`
}

// Message is a single entry in a conversation. Append-only from the
// client's perspective.
type Message struct {
	ID             string `json:"_id"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName"`
	Content        string `json:"content"`
	CreatedAt      string `json:"createdAt"`
	IsRead         bool   `json:"isRead"`
}
