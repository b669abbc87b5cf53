package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rohits-web03/medrecords/internal/apperr"
	"github.com/rohits-web03/medrecords/internal/utils"
	"github.com/rs/zerolog"
)

// decodeJSON reads one JSON object from the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperr.Wrap(apperr.ErrBadRequest, err, "Request body too large")
		}
		return apperr.Wrap(apperr.ErrBadRequest, err, "Invalid request body")
	}
	return nil
}

// writeError answers with {"error": ...} using the default status for err.
// Server side failures are logged and their text is not echoed for unknown errors.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
		var appErr *apperr.Error
		if status == http.StatusInternalServerError && !errors.As(err, &appErr) {
			msg = "internal server error"
		}
	}
	utils.Error(w, status, msg)
}
