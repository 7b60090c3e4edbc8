package handlers

import (
	"net/http"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.CurrentUser(r.Context(), ClaimsFromContext(r.Context()))
	if err != nil {
		h.handleError(w, r, err, errorMessages{
			Unauthenticated: "User not found",
			Internal:        "Failed to fetch user information",
		})
		return
	}

	writeSuccess(w, UserResponse{User: user}, http.StatusOK)
}
