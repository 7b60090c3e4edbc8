package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"blogCPT/internal/models"

	"github.com/tidwall/gjson"
)

// ErrNotSignedIn is returned by calls that need a token when the session has none.
var ErrNotSignedIn = errors.New("not signed in")

// APIError is a non-2xx answer from the blog API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the blog API and keeps the bearer token in a Session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

func NewClient(baseURL string, session *Session) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		session:    session,
	}
}

func (c *Client) Session() *Session {
	return c.session
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

type createResponse struct {
	BlogID string `json:"blogId"`
}

// Register creates an account. It does not sign in.
func (c *Client) Register(ctx context.Context, email, password, displayName string) (*models.User, error) {
	var resp userResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", false, map[string]string{
		"email":       email,
		"password":    password,
		"displayName": displayName,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Login signs in and stores the user and token in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", false, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.User == nil {
		return nil, errors.New("login response without token")
	}

	if err := c.session.Save(resp.User, resp.Token); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Logout() error {
	return c.session.Logout()
}

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/user", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	if err := c.do(ctx, http.MethodGet, "/api/blogs", false, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodGet, "/api/blogs/"+url.PathEscape(id), false, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost returns the new post's id. An empty author lets the server pick one.
func (c *Client) CreatePost(ctx context.Context, title, content, author string) (string, error) {
	body := map[string]string{"title": title, "content": content}
	if author != "" {
		body["author"] = author
	}

	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/api/blogs", true, body, &resp); err != nil {
		return "", err
	}
	return resp.BlogID, nil
}

// UpdatePost sends only the non-nil fields.
func (c *Client) UpdatePost(ctx context.Context, id string, title, content *string) error {
	body := map[string]string{}
	if title != nil {
		body["title"] = *title
	}
	if content != nil {
		body["content"] = *content
	}
	return c.do(ctx, http.MethodPut, "/api/blogs/"+url.PathEscape(id), true, body, nil)
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/blogs/"+url.PathEscape(id), true, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, auth bool, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if auth {
		token := c.session.Token()
		if token == "" {
			return ErrNotSignedIn
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := gjson.GetBytes(raw, "error").String()
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
