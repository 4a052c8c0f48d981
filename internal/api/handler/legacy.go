package handler

import (
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
)

// Removed answers routes for features that were retired. They return 410
// so stale clients get a definitive signal instead of a 404 they might
// retry.
func Removed(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Gone(w, message)
	}
}
