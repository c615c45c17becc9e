package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
)

var errMalformedBody = errors.New("malformed request body")

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps an application error onto the HTTP status reported to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrUsernameTaken),
		errors.Is(err, apperror.ErrConcurrentMove):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrSamePlayer),
		errors.Is(err, apperror.ErrPlayerNotFound),
		errors.Is(err, apperror.ErrInvalidUser),
		errors.Is(err, apperror.ErrInvalidPosition),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameAlreadyFinished),
		errors.Is(err, apperror.ErrInvalidUsername),
		errors.Is(err, errMalformedBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the message of the application error kind, never internal details.
func messageFor(err error) string {
	if errors.Is(err, errMalformedBody) {
		return errMalformedBody.Error()
	}

	if message, ok := apperror.Message(err); ok {
		return message
	}

	return http.StatusText(http.StatusInternalServerError)
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}

func writeError(logger *slog.Logger, w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}

	writeJSON(logger, w, status, errorResponse{Error: messageFor(err)})
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errMalformedBody
	}

	return nil
}
