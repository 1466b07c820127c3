package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/zatekoja/medfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

func respondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// statusFor maps an application error type to its HTTP status
func statusFor(t apperrors.ErrorType) int {
	switch t {
	case apperrors.ErrorTypeValidation:
		return http.StatusBadRequest
	case apperrors.ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrorTypeNotFound:
		return http.StatusNotFound
	case apperrors.ErrorTypeConflict:
		return http.StatusConflict
	case apperrors.ErrorTypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondWithAppError writes err using its AppError type and message. Internal
// errors are logged and answered with fallback so no driver detail leaks out.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	errType := apperrors.TypeOf(err)
	status := statusFor(errType)
	message := apperrors.MessageOf(err)

	if status >= http.StatusInternalServerError {
		observability.LoggerFromContext(r.Context()).Error().Err(err).
			Str("path", r.URL.Path).
			Msg(fallback)
	}
	if errType == apperrors.ErrorTypeInternal || message == "" {
		message = fallback
	}
	respondWithError(w, status, message)
}

// decodeJSON reads a JSON body into dst. It answers 400 itself and returns
// false when the body is missing or malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return true
	}
	if errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "Request body is required")
		return false
	}
	respondWithError(w, http.StatusBadRequest, "Invalid request body")
	return false
}
