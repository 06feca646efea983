package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given transport status code. It
// sets the Content-Type header and prevents caching, which is required for
// responses carrying tokens or credentials.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
