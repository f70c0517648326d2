package http

import (
	"net/http"

	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
	"github.com/opspulse/opspulse-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	ListTeamMembers(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) UserHandler {
	return &userHandlerImpl{userService: userService}
}

// GetMe implements UserHandler.
func (h *userHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	u, err := h.userService.GetUser(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, u)
}

// ListTeamMembers implements UserHandler. Managers see the employees of
// their own team.
func (h *userHandlerImpl) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	members, err := h.userService.ListTeamMembers(r.Context(), identity.Team, user.RoleEmployee)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// ListAll implements UserHandler.
func (h *userHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListAllUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}
