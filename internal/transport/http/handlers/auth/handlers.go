package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fsadmin/internal/domain/auth"
	"fsadmin/internal/transport/http/api"
	"fsadmin/internal/transport/http/middleware"
	"fsadmin/internal/transport/http/shared"
)

type Handler struct {
	Service   *auth.Service
	Users     *auth.Store
	JWTSecret string
	TokenTTL  time.Duration
}

func NewHandler(service *auth.Service, users *auth.Store, secret string, ttl time.Duration) *Handler {
	return &Handler{Service: service, Users: users, JWTSecret: secret, TokenTTL: ttl}
}

// RegisterRoutes wires the public login endpoint. RegisterProtectedRoutes
// carries the endpoints that need an authenticated caller.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/auth/me", h.handleMe)
	r.With(middleware.RequireRole(auth.RoleSuperAdmin)).Post("/auth/register", h.handleRegister)
	r.With(middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin)).Get("/auth/users", h.handleListUsers)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  auth.User `json:"user"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("email", payload.Email, "email is required")
	v.Required("password", payload.Password, "password is required")
	if v.Reject(w, requestID) {
		return
	}

	user, err := h.Service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", requestID)
		return
	}

	api.Success(w, loginResponse{Token: token, User: user}, requestID)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	stored, err := h.Users.FindByID(user.UserID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", requestID)
		return
	}
	api.Success(w, stored, requestID)
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("email", payload.Email, "email is required")
	v.Required("password", payload.Password, "password is required")
	if !auth.ValidRole(payload.Role) {
		v.Add("role", "unknown role")
	}
	if v.Reject(w, requestID) {
		return
	}

	user, err := h.Service.Register(payload.Name, payload.Email, payload.Password, payload.Role)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			api.Fail(w, http.StatusConflict, "email_taken", "email already registered", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "register_failed", "failed to register user", requestID)
		return
	}
	api.Created(w, user, requestID)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Users.List(), middleware.GetRequestID(r.Context()))
}
