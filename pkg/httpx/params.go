package httpx

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// PathID parses the named chi URL parameter as a positive int64 id. On failure
// it writes a 400 response and returns false.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		JSONError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
