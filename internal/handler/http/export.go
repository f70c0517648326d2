package http

import (
	"fmt"
	"net/http"

	"github.com/opspulse/opspulse-backend-go/internal/domain/export"
	"github.com/opspulse/opspulse-backend-go/internal/handler/http/response"
)

type ExportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.Service
}

func NewExportHandler(exportService export.Service) ExportHandler {
	return &exportHandlerImpl{exportService: exportService}
}

// Export implements ExportHandler. The body is the rendered file itself, not
// a JSON envelope, so clients can save the download directly.
func (h *exportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	format := export.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatCSV
	}

	result, err := h.exportService.Export(r.Context(), identity.UserID, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	if result.Filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
}
