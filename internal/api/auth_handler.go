package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// AuthHandler handles the signup and signin endpoints.
type AuthHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userStore store.UserStore, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		userStore:  userStore,
		jwtService: jwtService,
	}
}

// Signup handles POST /signup. On success the response body is the signed
// token itself, as plain text.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SignupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		RespondWithKind(w, r, KindInvalidInput)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		RespondWithKind(w, r, KindInvalidInput)
		return
	}

	user := domain.NewUser(req.Username, req.Password, req.Name)
	if err := h.userStore.Create(r.Context(), user); err != nil {
		if !errors.Is(err, store.ErrUsernameExists) {
			log.Error("failed to create user", "error", err, "username", req.Username)
		}
		// Duplicate usernames and unexpected persistence faults share one
		// response on this endpoint.
		RespondWithKind(w, r, KindDuplicateUser)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		RespondWithKind(w, r, KindDuplicateUser)
		return
	}

	shared.RespondWithText(w, r, http.StatusOK, token)
}

// Signin handles POST /signin. The lookup matches username, password, and
// name together; on success the response body is the signed token as
// plain text.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SigninRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		RespondWithKind(w, r, KindInvalidInput)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		RespondWithKind(w, r, KindInvalidInput)
		return
	}

	user, err := h.userStore.GetByCredentials(r.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			RespondWithKind(w, r, KindInvalidCredentials)
			return
		}
		log.Error("failed to look up user", "error", err, "username", req.Username)
		// Persistence faults fall back to the signup duplicate response;
		// both auth endpoints share this fault path.
		RespondWithKind(w, r, KindDuplicateUser)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		RespondWithKind(w, r, KindDuplicateUser)
		return
	}

	shared.RespondWithText(w, r, http.StatusOK, token)
}
