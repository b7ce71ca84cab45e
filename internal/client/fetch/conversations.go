package fetch

import (
	"context"

	"github.com/dmitrijs2005/devhub/internal/client/api"
	"github.com/dmitrijs2005/devhub/internal/client/models"
)

// ConversationList is the inbox view: all conversations of the current
// user, newest activity first (server-ordered).
type ConversationList struct {
	client api.Client
	f      *Fetcher[struct{}, []models.Conversation]
}

func NewConversationList(client api.Client) *ConversationList {
	fn := func(ctx context.Context, _ struct{}) ([]models.Conversation, error) {
		return client.ListConversations(ctx)
	}
	return &ConversationList{
		client: client,
		f:      NewFetcher(fn, "failed to fetch conversations"),
	}
}

func (cl *ConversationList) Fetch(ctx context.Context) {
	cl.f.Fetch(ctx, struct{}{})
}

func (cl *ConversationList) Refetch(ctx context.Context) {
	cl.f.Refetch(ctx)
}

// Start opens (or finds) a conversation with the given participant and
// folds the server's copy into the committed list when it is not already
// present.
func (cl *ConversationList) Start(ctx context.Context, participantID string) (*models.Conversation, error) {
	conv, err := cl.client.CreateConversation(ctx, participantID)
	if err != nil {
		cl.f.setErr(err)
		return nil, err
	}

	cl.f.update(func(list []models.Conversation) []models.Conversation {
		for _, c := range list {
			if c.ID == conv.ID {
				return list
			}
		}
		return append([]models.Conversation{*conv}, list...)
	})
	return conv, nil
}

func (cl *ConversationList) Conversations() []models.Conversation {
	return cl.f.Snapshot().Data
}

func (cl *ConversationList) Loading() bool { return cl.f.Snapshot().Loading }
func (cl *ConversationList) Err() string   { return cl.f.Snapshot().Err }
