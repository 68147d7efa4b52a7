package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	httperrors "rentacar/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps an HTTPError to its status and {"detail": ...} body.
// Anything else is an internal error.
func writeError(w http.ResponseWriter, err error) {
	var httpErr *httperrors.HTTPError
	if errors.As(err, &httpErr) {
		writeJSON(w, httpErr.Code, ErrorResponse{Detail: httpErr.Message})
		return
	}
	log.Printf("Internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error."})
}
