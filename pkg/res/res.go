package res

import (
	"encoding/json"
	"net/http"
)

// Json writes a JSON response with the given status code.
func Json(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error writes a structured failure result so callers always get a
// success flag and a message instead of a bare status line.
func Error(w http.ResponseWriter, message string, status int) {
	Json(w, map[string]any{"success": false, "error": message}, status)
}
