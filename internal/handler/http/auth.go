package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
	"github.com/opspulse/opspulse-backend-go/internal/handler/http/response"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/jwt"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/validator"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	IssueToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	userService user.Service
	jwtService  jwt.Service
}

func NewAuthHandler(userService user.Service, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		userService: userService,
		jwtService:  jwtService,
	}
}

type issueTokenRequest struct {
	Email string `json:"email"`
}

type tokenResponse struct {
	User        user.UserResponse `json:"user"`
	AccessToken string            `json:"access_token"`
	ExpiresAt   int64             `json:"expires_at"`
}

// Register implements AuthHandler. Creates the profile and returns a first
// access token so the client can start submitting entries immediately.
func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(
		created.ID, created.Email, user.Role(created.Role), created.Team, created.LocationType,
	)
	if err != nil {
		slog.Error("Failed to generate access token", "error", err)
		response.InternalServerError(w, "Failed to generate access token")
		return
	}

	response.Created(w, "Registration successful", tokenResponse{
		User:        created,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}

// IssueToken implements AuthHandler. Identity verification happens upstream
// (SSO in front of this API); this endpoint exchanges a known email for an
// access token carrying the claims the other endpoints need.
func (h *authHandlerImpl) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if !validator.IsValidEmail(req.Email) {
		response.BadRequest(w, "Invalid email address", nil)
		return
	}

	u, err := h.userService.IdentifyByEmail(r.Context(), req.Email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(
		u.ID, u.Email, user.Role(u.Role), u.Team, u.LocationType,
	)
	if err != nil {
		slog.Error("Failed to generate access token", "error", err)
		response.InternalServerError(w, "Failed to generate access token")
		return
	}

	response.Success(w, tokenResponse{
		User:        u,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}
