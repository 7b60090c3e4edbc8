package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogCPT/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session, err := NewSession(newFileStore(t), discardLogger())
	require.NoError(t, err)
	return NewClient(srv.URL+"/", session)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestClient_LoginStoresSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@x.com", body["email"])
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"message": "Login successful",
				"token":   "signed",
				"user":    map[string]string{"uid": "u1", "email": "a@x.com", "displayName": "Alice"},
			})
		case "/api/auth/user":
			assert.Equal(t, "Bearer signed", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"user": map[string]string{"uid": "u1", "email": "a@x.com"},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	user, err := c.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.DisplayName)
	assert.Equal(t, "signed", c.Session().Token())

	me, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", me.UserID)

	require.NoError(t, c.Logout())
	_, err = c.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestClient_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Permission denied. You can only update your own blogs"})
	})
	require.NoError(t, c.Session().Save(&models.User{UserID: "u2"}, "token"))

	title := "Hijacked"
	err := c.UpdatePost(context.Background(), "p1", &title, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Permission denied. You can only update your own blogs", apiErr.Message)
}

func TestClient_APIErrorWithoutBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.ListPosts(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestClient_Posts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/blogs":
			writeJSON(w, http.StatusOK, []map[string]string{{"id": "p1", "title": "Hello World!!!"}})
		case r.Method == http.MethodGet && r.URL.Path == "/api/blogs/p1":
			writeJSON(w, http.StatusOK, map[string]string{"id": "p1", "title": "Hello World!!!"})
		case r.Method == http.MethodPost && r.URL.Path == "/api/blogs":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.NotContains(t, body, "author")
			writeJSON(w, http.StatusCreated, map[string]string{"message": "Blog created successfully", "blogId": "p2"})
		case r.Method == http.MethodPut && r.URL.Path == "/api/blogs/p1":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"content": "new body"}, body)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Blog updated successfully"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/blogs/p1":
			writeJSON(w, http.StatusOK, map[string]string{"message": "Blog deleted successfully"})
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})
	ctx := context.Background()

	_, err := c.CreatePost(ctx, "Hello", "body", "")
	assert.ErrorIs(t, err, ErrNotSignedIn)

	require.NoError(t, c.Session().Save(&models.User{UserID: "u1"}, "token"))

	posts, err := c.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	post, err := c.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Hello World!!!", post.Title)

	id, err := c.CreatePost(ctx, "Hello World!!!", "body", "")
	require.NoError(t, err)
	assert.Equal(t, "p2", id)

	content := "new body"
	require.NoError(t, c.UpdatePost(ctx, "p1", nil, &content))
	require.NoError(t, c.DeletePost(ctx, "p1"))
}
