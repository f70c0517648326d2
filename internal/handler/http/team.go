package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
	"github.com/opspulse/opspulse-backend-go/internal/handler/http/response"
)

type TeamHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type teamHandlerImpl struct {
	catalog *team.Catalog
}

func NewTeamHandler(catalog *team.Catalog) TeamHandler {
	return &teamHandlerImpl{catalog: catalog}
}

// List implements TeamHandler. The catalog is startup-validated fixture
// data, so this never touches the store.
func (h *teamHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.catalog.List())
}

// Get implements TeamHandler.
func (h *teamHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	cfg, err := h.catalog.Get(teamID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}
