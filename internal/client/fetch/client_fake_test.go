package fetch

import (
	"context"
	"time"

	"github.com/dmitrijs2005/devhub/internal/client/api"
	"github.com/dmitrijs2005/devhub/internal/client/models"
)

const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)

// fakeAPI implements api.Client with overridable read/write hooks. Methods
// without a hook fail loudly so a test cannot silently depend on them.
type fakeAPI struct {
	listProjectsFn func(ctx context.Context, p api.ProjectListParams) (*api.ProjectPage, error)
	listUsersFn    func(ctx context.Context, p api.UserListParams) (*api.UserPage, error)
	listConvsFn    func(ctx context.Context) ([]models.Conversation, error)
	createConvFn   func(ctx context.Context, participantID string) (*models.Conversation, error)
	listMessagesFn func(ctx context.Context, conversationID string) ([]models.Message, error)
	sendMessageFn  func(ctx context.Context, conversationID, content string) (*models.Message, error)
}

func (f *fakeAPI) ListProjects(ctx context.Context, p api.ProjectListParams) (*api.ProjectPage, error) {
	return f.listProjectsFn(ctx, p)
}

func (f *fakeAPI) ListUsers(ctx context.Context, p api.UserListParams) (*api.UserPage, error) {
	return f.listUsersFn(ctx, p)
}

func (f *fakeAPI) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	return f.listConvsFn(ctx)
}

func (f *fakeAPI) CreateConversation(ctx context.Context, participantID string) (*models.Conversation, error) {
	return f.createConvFn(ctx, participantID)
}

func (f *fakeAPI) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	return f.listMessagesFn(ctx, conversationID)
}

func (f *fakeAPI) SendMessage(ctx context.Context, conversationID, content string) (*models.Message, error) {
	return f.sendMessageFn(ctx, conversationID, content)
}

func (f *fakeAPI) Register(context.Context, api.RegisterRequest) (*api.AuthResult, error) {
	panic("unexpected Register")
}

func (f *fakeAPI) Login(context.Context, string, string) (*api.AuthResult, error) {
	panic("unexpected Login")
}

func (f *fakeAPI) Logout(context.Context) error {
	panic("unexpected Logout")
}

func (f *fakeAPI) CurrentUser(context.Context) (*models.User, error) {
	panic("unexpected CurrentUser")
}

func (f *fakeAPI) UserByUsername(context.Context, string) (*models.User, error) {
	panic("unexpected UserByUsername")
}

func (f *fakeAPI) UpdateUser(context.Context, string, api.UserUpdate) (*models.User, error) {
	panic("unexpected UpdateUser")
}

func (f *fakeAPI) ToggleFollow(context.Context, string) (bool, error) {
	panic("unexpected ToggleFollow")
}

func (f *fakeAPI) CreateProject(context.Context, api.ProjectInput) (*models.Project, error) {
	panic("unexpected CreateProject")
}

func (f *fakeAPI) Project(context.Context, string) (*models.Project, error) {
	panic("unexpected Project")
}

func (f *fakeAPI) ToggleStar(context.Context, string) (*api.StarState, error) {
	panic("unexpected ToggleStar")
}

func (f *fakeAPI) Health(context.Context) (*api.HealthStatus, error) {
	panic("unexpected Health")
}
