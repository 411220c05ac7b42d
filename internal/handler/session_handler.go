// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/raghuwanshi313/EDP-APP/internal/config"
	"github.com/raghuwanshi313/EDP-APP/internal/domain"
	apperrors "github.com/raghuwanshi313/EDP-APP/pkg/errors"
)

// SessionHandler handles session lifecycle and document HTTP requests
type SessionHandler struct {
	sessionService domain.SessionService
	maxFileSize    int64
	logger         domain.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(container *config.Container) *SessionHandler {
	return &SessionHandler{
		sessionService: container.SessionService,
		maxFileSize:    container.Config.GetMaxFileSize(),
		logger:         container.Logger,
	}
}

// CreateSession handles creating a new viewing session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.CreateSession()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.sessionService.Snapshot(session))
}

// GetSession handles getting the current session state
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionService.Snapshot(session))
}

// DeleteSession handles ending a session
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}
	h.sessionService.DeleteSession(session.ID)
	w.WriteHeader(http.StatusNoContent)
}

// UploadDocument handles loading a PDF into the session
func (h *SessionHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, apperrors.NewTooLargeError(
				fmt.Sprintf("file exceeds the %d byte upload limit", h.maxFileSize)))
			return
		}
		writeError(w, apperrors.NewValidationError("file is required"))
		return
	}
	defer file.Close()

	// Strip any path components from the client-supplied name.
	name := strings.TrimSpace(filepath.Base(header.Filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "document.pdf"
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, apperrors.NewTooLargeError(
				fmt.Sprintf("file exceeds the %d byte upload limit", h.maxFileSize)))
			return
		}
		writeError(w, fmt.Errorf("%w: %v", domain.ErrFileRead, err))
		return
	}

	snapshot, err := h.sessionService.LoadFile(r.Context(), session, raw, name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, snapshot)
}

// DownloadOriginal handles downloading the unmodified document bytes
func (h *SessionHandler) DownloadOriginal(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+sanitizeFilename(doc.Name)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Raw)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Raw)
}

// sanitizeFilename keeps download filenames header-safe
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(filepath.Base(name))
	name = strings.ReplaceAll(name, `"`, "")
	name = strings.ReplaceAll(name, "\r", "")
	name = strings.ReplaceAll(name, "\n", "")
	if name == "" || name == "." {
		return "document.pdf"
	}
	return name
}
