package middleware

import (
	"encoding/json"
	"log"
	"net/http"
)

// Recover converts panics into a generic failure envelope so internals never
// leak to guests. The responder itself is designed not to fail; this guards
// the boundary anyway.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[recover] panic serving %s: %v", r.URL.Path, rec)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "Unable to process your request right now. Please try again shortly.",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
