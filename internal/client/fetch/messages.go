package fetch

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/devhub/internal/client/api"
	"github.com/dmitrijs2005/devhub/internal/client/models"
)

// ErrNoConversation is returned by Send before any conversation was opened.
var ErrNoConversation = errors.New("no conversation selected")

// MessageThread is the message list of the currently open conversation.
// Switching conversations is a parameter change: a slow response for the
// previous conversation can never land in the new one.
type MessageThread struct {
	client api.Client
	f      *Fetcher[string, []models.Message]
}

func NewMessageThread(client api.Client) *MessageThread {
	fn := func(ctx context.Context, conversationID string) ([]models.Message, error) {
		return client.ListMessages(ctx, conversationID)
	}
	return &MessageThread{
		client: client,
		f:      NewFetcher(fn, "failed to fetch messages"),
	}
}

// Open loads the message list of the given conversation.
func (t *MessageThread) Open(ctx context.Context, conversationID string) {
	t.f.Fetch(ctx, conversationID)
}

func (t *MessageThread) Refetch(ctx context.Context) {
	t.f.Refetch(ctx)
}

// Send posts content to the open conversation. The server-confirmed message
// is appended to the local list only after the write succeeds; there is no
// optimistic pre-append. On failure the error is recorded in the thread
// state and returned, so the caller can compensate (e.g. restore the input
// text).
func (t *MessageThread) Send(ctx context.Context, content string) (*models.Message, error) {
	conversationID, ok := t.f.Params()
	if !ok {
		return nil, ErrNoConversation
	}

	msg, err := t.client.SendMessage(ctx, conversationID, content)
	if err != nil {
		t.f.setErr(err)
		return nil, err
	}

	t.f.update(func(list []models.Message) []models.Message {
		return append(list, *msg)
	})
	return msg, nil
}

// ConversationID returns the open conversation, or false before Open.
func (t *MessageThread) ConversationID() (string, bool) {
	return t.f.Params()
}

func (t *MessageThread) Messages() []models.Message {
	return t.f.Snapshot().Data
}

func (t *MessageThread) Loading() bool { return t.f.Snapshot().Loading }
func (t *MessageThread) Err() string   { return t.f.Snapshot().Err }
