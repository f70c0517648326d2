package http

import (
	"net/http"

	"github.com/opspulse/opspulse-backend-go/internal/domain/metrics"
	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
	"github.com/opspulse/opspulse-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	GetMetrics(w http.ResponseWriter, r *http.Request)
	GetInsights(w http.ResponseWriter, r *http.Request)
	GetGoalProgress(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	metricsService metrics.Service
	userService    user.Service
}

func NewAnalyticsHandler(metricsService metrics.Service, userService user.Service) AnalyticsHandler {
	return &analyticsHandlerImpl{
		metricsService: metricsService,
		userService:    userService,
	}
}

// GetMetrics implements AnalyticsHandler. The period query parameter selects
// the window (week, month, quarter); anything else falls back to a trailing
// 30-day window.
func (h *analyticsHandlerImpl) GetMetrics(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	period := metrics.Period(r.URL.Query().Get("period"))

	m, err := h.metricsService.ComputeMetrics(r.Context(), identity.UserID, period, identity.LocationType)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, m)
}

// GetInsights implements AnalyticsHandler.
func (h *analyticsHandlerImpl) GetInsights(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	insights, err := h.metricsService.GenerateInsights(r.Context(), identity.UserID, identity.LocationType)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]any{"insights": insights})
}

// GetGoalProgress implements AnalyticsHandler. Targets come from the goal
// snapshot stored on the user record, not from the live team catalog.
func (h *analyticsHandlerImpl) GetGoalProgress(w http.ResponseWriter, r *http.Request) {
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

	progress, err := h.metricsService.GoalProgressFor(r.Context(), identity.UserID, identity.LocationType, u.Goals)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]any{"goals": progress})
}
