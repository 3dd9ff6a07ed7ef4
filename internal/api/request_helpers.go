package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/podcast-api/internal/api/shared"
)

var errInvalidID = errors.New("invalid id")

// getPathID extracts a positive int64 id from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, errInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// handlePathID writes a 400 and returns false when paramName is not a valid id.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+paramName)
		return 0, false
	}
	return id, true
}

// decodeAndValidate reads the JSON body into v and validates it, writing a 400
// and returning false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ValidationMessage(err))
		return false
	}
	return true
}
