package http

import (
	"net/http"

	"github.com/opspulse/opspulse-backend-go/internal/domain/dashboard"
	"github.com/opspulse/opspulse-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetTeamOverview(w http.ResponseWriter, r *http.Request)
	GetSystemStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetTeamOverview implements DashboardHandler. Managers always see their
// own team; the team claim on the token decides which one that is.
func (h *dashboardHandlerImpl) GetTeamOverview(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	overview, err := h.dashboardService.GetTeamOverview(r.Context(), identity.Team)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// GetSystemStats implements DashboardHandler.
func (h *dashboardHandlerImpl) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetSystemStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
