package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/devhub/internal/client/localstore"
	"github.com/dmitrijs2005/devhub/internal/client/models"
	"github.com/dmitrijs2005/devhub/internal/logging"
	"github.com/google/uuid"
)

// HTTPClient implements Client over the DevHub REST API.
//
// Per request it reads the bearer token from the local store; a missing
// token simply means the Authorization header is omitted and the request is
// anonymous.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	store   localstore.Store
	log     logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:5000/api").
func NewHTTPClient(baseURL string, store localstore.Store, log logging.Logger, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// errorEnvelope is the backend's error body shape.
type errorEnvelope struct {
	Error string `json:"error"`
}

type authResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
}

type userResponse struct {
	User models.User `json:"user"`
}

type projectResponse struct {
	Project models.Project `json:"project"`
}

type conversationResponse struct {
	Conversation models.Conversation `json:"conversation"`
}

type conversationsResponse struct {
	Conversations []models.Conversation `json:"conversations"`
}

type messagesResponse struct {
	Messages []models.Message `json:"messages"`
}

type messageResponse struct {
	Message models.Message `json:"messageData"`
}

type followResponse struct {
	Following bool `json:"following"`
}

// do executes one request/response cycle: marshal body, attach headers,
// classify the response, decode into out. A non-2xx status becomes an error
// carrying the server-provided message when present, else a generic
// "HTTP error <status>".
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	token, err := localstore.Token(ctx, c.store)
	if err != nil {
		return fmt.Errorf("failed to read auth token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request completed",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env errorEnvelope
		_ = json.Unmarshal(data, &env)

		msg := env.Error
		if msg == "" {
			msg = "HTTP error " + strconv.Itoa(resp.StatusCode)
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return fmt.Errorf("%w: %s", ErrUnavailable, msg)
		}
		return fmt.Errorf("%s", msg)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Register creates an account and persists the returned token and account
// snapshot before returning.
func (c *HTTPClient) Register(ctx context.Context, reg RegisterRequest) (*AuthResult, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, reg, &resp); err != nil {
		return nil, err
	}
	if err := c.saveAccount(ctx, &resp); err != nil {
		return nil, err
	}
	return &AuthResult{User: &resp.User, Token: resp.AccessToken}, nil
}

// Login authenticates with email/password and persists the returned token
// and account snapshot before returning.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	if err := c.saveAccount(ctx, &resp); err != nil {
		return nil, err
	}
	return &AuthResult{User: &resp.User, Token: resp.AccessToken}, nil
}

// saveAccount stores the credential only after the server accepted the
// request, so the token on disk always belongs to a confirmed user.
func (c *HTTPClient) saveAccount(ctx context.Context, resp *authResponse) error {
	if resp.AccessToken == "" {
		return nil
	}
	acc := localstore.Account{
		Token:    resp.AccessToken,
		Username: resp.User.Username,
		Email:    resp.User.Email,
	}
	if err := c.store.SaveAccount(ctx, acc); err != nil {
		return fmt.Errorf("failed to persist auth token: %w", err)
	}
	return nil
}

// Logout removes the persisted token and account snapshot. Purely local;
// no network call is made.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.store.Clear(ctx)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, p UserListParams) (*UserPage, error) {
	q := url.Values{}
	addInt(q, "page", p.Page)
	addInt(q, "limit", p.Limit)
	addString(q, "search", p.Search)

	var page UserPage
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, userID string, upd UserUpdate) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), nil, upd, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) ToggleFollow(ctx context.Context, userID string) (bool, error) {
	var resp followResponse
	if err := c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(userID)+"/follow", nil, nil, &resp); err != nil {
		return false, err
	}
	return resp.Following, nil
}

func (c *HTTPClient) ListProjects(ctx context.Context, p ProjectListParams) (*ProjectPage, error) {
	q := url.Values{}
	addInt(q, "page", p.Page)
	addInt(q, "limit", p.Limit)
	addString(q, "search", p.Search)
	addString(q, "tag", p.Tag)
	addString(q, "author", p.Author)

	var page ProjectPage
	if err := c.do(ctx, http.MethodGet, "/projects", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, in ProjectInput) (*models.Project, error) {
	var resp projectResponse
	if err := c.do(ctx, http.MethodPost, "/projects", nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp.Project, nil
}

func (c *HTTPClient) Project(ctx context.Context, projectID string) (*models.Project, error) {
	var resp projectResponse
	if err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Project, nil
}

func (c *HTTPClient) ToggleStar(ctx context.Context, projectID string) (*StarState, error) {
	var state StarState
	if err := c.do(ctx, http.MethodPost, "/projects/"+url.PathEscape(projectID)+"/star", nil, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *HTTPClient) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	var resp conversationsResponse
	if err := c.do(ctx, http.MethodGet, "/conversations", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Conversations, nil
}

func (c *HTTPClient) CreateConversation(ctx context.Context, participantID string) (*models.Conversation, error) {
	body := map[string]string{"participantId": participantID}

	var resp conversationResponse
	if err := c.do(ctx, http.MethodPost, "/conversations", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Conversation, nil
}

func (c *HTTPClient) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	var resp messagesResponse
	path := "/conversations/" + url.PathEscape(conversationID) + "/messages"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, conversationID, content string) (*models.Message, error) {
	body := map[string]string{"content": content}

	var resp messageResponse
	path := "/conversations/" + url.PathEscape(conversationID) + "/messages"
	if err := c.do(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Message, nil
}

func (c *HTTPClient) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func addInt(q url.Values, key string, v int) {
	if v != 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func addString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
