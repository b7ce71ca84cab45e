// Package api is the single point of contact with the DevHub REST backend.
// Every method maps to one endpoint and returns a parsed, typed result or an
// error; no failure is ever swallowed.
package api

import (
	"context"

	"github.com/dmitrijs2005/devhub/internal/client/models"
)

// RegisterRequest enumerates the fields accepted by POST /auth/register.
type RegisterRequest struct {
	FullName     string   `json:"fullName"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Bio          string   `json:"bio,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LinkedinURL  string   `json:"linkedinUrl,omitempty"`
	PortfolioURL string   `json:"portfolioUrl,omitempty"`
	Location     string   `json:"location,omitempty"`
}

// UserUpdate is a partial profile update for PUT /users/:id. Nil pointers
// are omitted from the request body and leave the field unchanged.
type UserUpdate struct {
	FullName     *string   `json:"fullName,omitempty"`
	Avatar       *string   `json:"avatar,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Skills       *[]string `json:"skills,omitempty"`
	GithubURL    *string   `json:"githubUrl,omitempty"`
	LinkedinURL  *string   `json:"linkedinUrl,omitempty"`
	PortfolioURL *string   `json:"portfolioUrl,omitempty"`
	Location     *string   `json:"location,omitempty"`
}

// ProjectInput enumerates the fields accepted by POST /projects.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image,omitempty"`
	DemoURL     string   `json:"demoUrl,omitempty"`
	GithubURL   string   `json:"githubUrl,omitempty"`
}

// UserListParams are the optional filters of GET /users.
// Zero values are not sent.
type UserListParams struct {
	Page   int
	Limit  int
	Search string
}

// ProjectListParams are the optional filters of GET /projects.
// Zero values are not sent.
type ProjectListParams struct {
	Page   int
	Limit  int
	Search string
	Tag    string
	Author string
}

// UserPage is one page of a user listing.
type UserPage struct {
	Users []models.User `json:"users"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

// ProjectPage is one page of a project listing.
type ProjectPage struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
}

// AuthResult is the outcome of a successful login or registration. The
// token has already been persisted to the local store when it is returned.
type AuthResult struct {
	User  *models.User
	Token string
}

// StarState is the server's answer to a star toggle.
type StarState struct {
	Starred bool `json:"starred"`
	Stars   int  `json:"stars"`
}

// HealthStatus is the backend liveness report.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Client defines the remote operations of the DevHub backend.
//
// Contract:
//   - Register/Login persist the returned token into the local store before
//     returning; they are the only token writers besides Logout.
//   - Logout removes the persisted token without a network call.
//   - Mutations return the authoritative server state; the caller must not
//     guess the new state locally.
//
// All methods honor context cancellation.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	ListUsers(ctx context.Context, p UserListParams) (*UserPage, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, upd UserUpdate) (*models.User, error)
	ToggleFollow(ctx context.Context, userID string) (bool, error)

	ListProjects(ctx context.Context, p ProjectListParams) (*ProjectPage, error)
	CreateProject(ctx context.Context, in ProjectInput) (*models.Project, error)
	Project(ctx context.Context, projectID string) (*models.Project, error)
	ToggleStar(ctx context.Context, projectID string) (*StarState, error)

	ListConversations(ctx context.Context) ([]models.Conversation, error)
	CreateConversation(ctx context.Context, participantID string) (*models.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]models.Message, error)
	SendMessage(ctx context.Context, conversationID, content string) (*models.Message, error)

	Health(ctx context.Context) (*HealthStatus, error)
}
