package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	errs "echo-lab/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

// statusFor maps domain sentinels onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrSessionNotFound),
		errors.Is(err, errs.ErrMessageNotFound),
		errors.Is(err, errs.ErrParticipantNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidParticipantCount):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrMissingAPIKey):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func readJSON(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(dst)
}
