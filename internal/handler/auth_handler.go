package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"blogCPT/internal/models"
)

const (
	msgRegisterFieldsNeeded = "Email, password, and display name are required"
	msgLoginFieldsNeeded    = "Email and password are required"
)

var registerViolations = violationMessages{
	"Email.required":       msgRegisterFieldsNeeded,
	"Password.required":    msgRegisterFieldsNeeded,
	"DisplayName.required": msgRegisterFieldsNeeded,
	"Email.email":          "Invalid email format",
	"Password.min":         "Password must be at least 6 characters long",
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

type UserResponse struct {
	User *models.User `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, msgInvalidRequest, http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, registerViolations.message(err, msgRegisterFieldsNeeded), http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Register(r.Context(), models.CreateUserRequest{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		h.handleError(w, r, err, errorMessages{
			Conflict: "Email already exists",
			Internal: "Failed to register user",
		})
		return
	}

	h.Logger.InfoContext(r.Context(), "user registered", "user_id", user.UserID)

	writeSuccess(w, RegisterResponse{
		Message: "User registered successfully",
		User:    user,
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, msgInvalidRequest, http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, msgLoginFieldsNeeded, http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, r, err, errorMessages{
			Unauthenticated: "Invalid credentials",
			NotFound:        "No account found with this email address",
			Internal:        "Login failed",
		})
		return
	}

	writeSuccess(w, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	}, http.StatusOK)
}
