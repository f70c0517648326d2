package http

import (
	"encoding/json"
	"net/http"

	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
	"github.com/opspulse/opspulse-backend-go/internal/handler/http/response"
)

type EntryHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type entryHandlerImpl struct {
	entryService entry.Service
}

func NewEntryHandler(entryService entry.Service) EntryHandler {
	return &entryHandlerImpl{entryService: entryService}
}

// Save implements EntryHandler. PUT semantics: saving an entry for a date
// that already has one replaces it.
func (h *entryHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req entry.SaveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = identity.UserID

	saved, err := h.entryService.SaveEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry saved", saved)
}

// List implements EntryHandler. Optional start_date and end_date query
// parameters bound the result inclusively.
func (h *entryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var startDate, endDate *string
	if v := r.URL.Query().Get("start_date"); v != "" {
		startDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		endDate = &v
	}

	entries, err := h.entryService.GetMyEntries(r.Context(), identity.UserID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
