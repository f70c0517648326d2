package http

import (
	"net/http"

	"github.com/opspulse/opspulse-backend-go/internal/domain/calendar"
	"github.com/opspulse/opspulse-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.Service
}

func NewCalendarHandler(calendarService calendar.Service) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

// GetMonth implements CalendarHandler. The month query parameter accepts
// YYYY-MM or YYYY-MM-DD; omitted means the current month.
func (h *calendarHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month := r.URL.Query().Get("month")

	matrix, err := h.calendarService.BuildMonthMatrix(r.Context(), identity.UserID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, matrix)
}
