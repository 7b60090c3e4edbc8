package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"blogCPT/internal/models"
	"blogCPT/internal/service"

	"github.com/gorilla/mux"
)

const (
	msgBlogNotFound       = "Blog not found"
	msgTitleContentNeeded = "Title and content are required"
	msgTitleOrContent     = "Title or content is required"
	msgTitleTooShort      = "Title must be at least 5 characters long"
	msgContentTooShort    = "Content must be at least 50 characters long"

	titleRule   = "required,min=5"
	contentRule = "required,min=50"
)

var postViolations = violationMessages{
	"Title.required":   msgTitleContentNeeded,
	"Content.required": msgTitleContentNeeded,
	"Title.min":        msgTitleTooShort,
	"Content.min":      msgContentTooShort,
}

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=5"`
	Content string `json:"content" validate:"required,min=50"`
	Author  string `json:"author"`
}

// UpdatePostRequest is a partial update; absent fields keep their value.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type CreatePostResponse struct {
	Message string `json:"message"`
	BlogID  string `json:"blogId"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		h.handleError(w, r, err, errorMessages{Internal: "Failed to fetch blogs"})
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		h.handleError(w, r, err, errorMessages{
			NotFound: msgBlogNotFound,
			Internal: "Failed to fetch blog",
		})
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, msgInvalidRequest, http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, postViolations.message(err, msgTitleContentNeeded), http.StatusBadRequest)
		return
	}

	postID, err := h.PostService.CreatePost(r.Context(), ClaimsFromContext(r.Context()), service.CreatePostRequest{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		h.handleError(w, r, err, errorMessages{Internal: "Failed to create blog"})
		return
	}

	writeSuccess(w, CreatePostResponse{
		Message: "Blog created successfully",
		BlogID:  postID,
	}, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, msgInvalidRequest, http.StatusBadRequest)
		return
	}

	if req.Title == nil && req.Content == nil {
		WriteError(w, msgTitleOrContent, http.StatusBadRequest)
		return
	}

	var fields models.PostFields
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := h.Validate.Var(title, titleRule); err != nil {
			WriteError(w, msgTitleTooShort, http.StatusBadRequest)
			return
		}
		fields.Title = &title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if err := h.Validate.Var(content, contentRule); err != nil {
			WriteError(w, msgContentTooShort, http.StatusBadRequest)
			return
		}
		fields.Content = &content
	}

	err := h.PostService.UpdatePost(r.Context(), ClaimsFromContext(r.Context()), postID, fields)
	if err != nil {
		h.handleError(w, r, err, errorMessages{
			Forbidden: "Permission denied. You can only update your own blogs",
			NotFound:  msgBlogNotFound,
			Internal:  "Failed to update blog",
		})
		return
	}

	writeSuccess(w, MessageResponse{Message: "Blog updated successfully"}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	err := h.PostService.DeletePost(r.Context(), ClaimsFromContext(r.Context()), postID)
	if err != nil {
		h.handleError(w, r, err, errorMessages{
			Forbidden: "Permission denied. You can only delete your own blogs",
			NotFound:  msgBlogNotFound,
			Internal:  "Failed to delete blog",
		})
		return
	}

	writeSuccess(w, MessageResponse{Message: "Blog deleted successfully"}, http.StatusOK)
}
