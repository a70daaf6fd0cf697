package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/tour-ops/internal/domain"
)

// errorDetail is the machine-readable error body shared by all endpoints.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse wraps an errorDetail under the "error" key.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// conflictResponse is the 409 body: the standard error envelope plus the
// full conflict list so the caller can show every competing booking at once.
type conflictResponse struct {
	Error  errorDetail           `json:"error"`
	Result domain.ConflictResult `json:"result"`
}

// writeJSON serializes v to the response with the given status code.
// Encoding failures are swallowed: the status line has already been written,
// so there is nothing useful left to tell the client.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service-layer error onto the HTTP response.
// notFoundMsg supplies the 404 message because the handler is the layer that
// knows what was being looked up. Anything unmatched becomes a bare 500; the
// real error has already been logged by the request middleware chain.
func writeError(w http.ResponseWriter, err error, notFoundMsg string) {
	var conflictErr *domain.ConflictError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{errorDetail{Code: "not_found", Message: notFoundMsg}})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusConflict, conflictResponse{
			Error:  errorDetail{Code: "conflict", Message: conflictErr.Error()},
			Result: conflictErr.Result,
		})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{errorDetail{Code: "conflict", Message: "scheduling conflict"}})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{errorDetail{Code: "validation_error", Message: unwrapMessage(err)}})
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// badRequest rejects a request before it reaches the service layer
// (e.g. missing or malformed body, unparseable date or id).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{errorDetail{Code: "validation_error", Message: message}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}
