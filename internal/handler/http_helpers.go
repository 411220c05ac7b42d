package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
	apperrors "github.com/raghuwanshi313/EDP-APP/pkg/errors"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps an error onto its HTTP shape and writes it
func writeError(w http.ResponseWriter, err error) {
	appErr := toAppError(err)
	writeJSON(w, appErr.StatusCode, appErr)
}

// toAppError translates domain errors into API errors. Unrecognized errors
// come back as opaque 500s so internals never leak into responses.
func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return apperrors.NewValidationError(validationErr.Message, "field: "+validationErr.Field)
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return apperrors.NewNotFoundError("session not found")
	case errors.Is(err, domain.ErrHighlightNotFound):
		return apperrors.NewNotFoundError("highlight not found")
	case errors.Is(err, domain.ErrPageOutOfRange):
		return apperrors.NewNotFoundError(err.Error())
	case errors.Is(err, domain.ErrInvalidFileType):
		return apperrors.NewUnsupportedMediaError(err.Error())
	case errors.Is(err, domain.ErrNoDocument):
		return apperrors.NewValidationError("no document loaded")
	case errors.Is(err, domain.ErrFileRead):
		return apperrors.NewValidationError("could not read the uploaded file")
	case errors.Is(err, domain.ErrLoadFailed):
		return apperrors.NewProcessingError("could not load the document", err)
	case errors.Is(err, domain.ErrExportFailed):
		return apperrors.NewProcessingError("could not export the document", err)
	default:
		return apperrors.NewInternalError("internal server error", err)
	}
}

// sessionFromRequest resolves the {id} path variable into a live session
func sessionFromRequest(r *http.Request, sessions domain.SessionService) (*domain.Session, error) {
	id := mux.Vars(r)["id"]
	if id == "" {
		return nil, apperrors.NewValidationError("session id is required")
	}
	return sessions.GetSession(id)
}
