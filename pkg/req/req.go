package req

import (
	"encoding/json"
	"net/http"

	"photomarket/pkg/res"
)

// HandleBody decodes the request body into T and writes the 400 response
// itself on failure, so handlers only need to bail out on error.
func HandleBody[T any](w *http.ResponseWriter, r *http.Request) (*T, error) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		res.Error(*w, "invalid request body", http.StatusBadRequest)
		return nil, err
	}
	return &payload, nil
}
