// Package httpx holds the HTTP plumbing shared by every bounded context:
// JSON responses, path parameters, health checks and the chi server.
package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as JSON with the given status code. v is encoded before any
// header is written, so an unencodable value becomes a 500 instead of a
// truncated body under a success status.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: http.StatusText(status)})
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// NoContent writes 204, the reply to a successful DELETE.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"order not found: 4"`
} // @name ErrorResponse

// JSONError writes a standard {"error": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// SafeError returns the message a client may see for err. With hideInternal
// set, 5xx messages collapse to the status text so storage details stay in logs.
func SafeError(err error, status int, hideInternal bool) string {
	if hideInternal && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
