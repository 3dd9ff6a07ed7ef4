package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/podcast-api/internal/api/middleware"
	"github.com/phrazzld/podcast-api/internal/api/shared"
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/service"
)

// AccountHandler handles account and authentication API requests.
type AccountHandler struct {
	users service.UserService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(users service.UserService) *AccountHandler {
	return &AccountHandler{users: users}
}

// CreateAccount handles POST /api/accounts.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid role")
		return
	}

	res := h.users.CreateAccount(r.Context(), service.CreateAccountInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, OKResponse{OK: true})
}

// Login handles POST /api/auth/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.users.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if !res.OK {
		status := MapFailureToStatusCode(res.Error)
		if errors.Is(res.Error, service.ErrUserNotFound) {
			status = http.StatusUnauthorized
		}
		respondWithFailureStatus(w, r, status, res.Error)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{OK: true, Token: res.Value})
}

// Me handles GET /api/me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{OK: true, User: user})
}

// EditProfile handles PATCH /api/me.
func (h *AccountHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req EditProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.users.EditProfile(r.Context(), user.ID, service.EditProfileInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}

// GetUser handles GET /api/users/{id}.
func (h *AccountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	res := h.users.FindByID(r.Context(), id)
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{OK: true, User: res.Value})
}
