package handler

import (
	"net/http"
	"strconv"

	"github.com/raghuwanshi313/EDP-APP/internal/config"
	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

// ExportHandler handles annotated-copy export HTTP requests
type ExportHandler struct {
	sessionService domain.SessionService
	exportService  domain.ExportService
	logger         domain.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(container *config.Container) *ExportHandler {
	return &ExportHandler{
		sessionService: container.SessionService,
		exportService:  container.ExportService,
		logger:         container.Logger,
	}
}

// ExportDocument handles POST /sessions/{id}/export. The response is a fresh
// PDF with the session's highlights drawn in; the loaded document is never
// modified.
func (h *ExportHandler) ExportDocument(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.sessionService.OriginalDocument(session)
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := h.exportService.Export(r.Context(), session)
	if err != nil {
		h.logger.Error("Export failed", err, "session_id", session.ID)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+sanitizeFilename("edited_"+doc.Name)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
