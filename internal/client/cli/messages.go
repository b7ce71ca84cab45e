package cli

import (
	"context"
	"fmt"
)

// ListChats fetches and renders the conversation inbox.
func (a *App) ListChats(ctx context.Context) error {
	a.chats.Fetch(ctx)

	if a.chats.Loading() {
		fmt.Println("Loading conversations...")
		return nil
	}
	if msg := a.chats.Err(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return nil
	}

	chats := a.chats.Conversations()
	if len(chats) == 0 {
		fmt.Println("No conversations yet.")
		return nil
	}

	for _, c := range chats {
		name := "unknown"
		if c.OtherParticipant != nil {
			name = "@" + c.OtherParticipant.Username
		}
		preview := c.LastMessage
		if preview == "" {
			preview = "(no messages)"
		}
		fmt.Printf("%s  %s: %s\n", c.ID, name, preview)
	}
	return nil
}

// OpenChat loads and renders the message thread of a conversation.
func (a *App) OpenChat(ctx context.Context, conversationID string) error {
	a.thread.Open(ctx, conversationID)
	a.renderThread()
	return nil
}

// NewChat starts (or finds) a conversation with a member and opens it.
func (a *App) NewChat(ctx context.Context, participantID string) error {
	conv, err := a.chats.Start(ctx, participantID)
	if err != nil {
		return err
	}
	return a.OpenChat(ctx, conv.ID)
}

// SendMessage posts to the open conversation. On failure the typed content
// is echoed back so it is not lost.
func (a *App) SendMessage(ctx context.Context, content string) error {
	if _, err := a.thread.Send(ctx, content); err != nil {
		fmt.Printf("Message not sent, your text was: %s\n", content)
		return err
	}
	a.renderThread()
	return nil
}

func (a *App) renderThread() {
	if a.thread.Loading() {
		fmt.Println("Loading messages...")
		return
	}
	if msg := a.thread.Err(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return
	}

	messages := a.thread.Messages()
	if len(messages) == 0 {
		fmt.Println("No messages yet. Type 'msg <text>' to start.")
		return
	}

	for _, m := range messages {
		fmt.Printf("[%s] %s: %s\n", m.CreatedAt, m.SenderName, m.Content)
	}
}
