package homepage

import (
	"net/http"

	"photomarket/configs"
	"photomarket/pkg/res"
)

type HandlerDeps struct {
	*configs.Config
	Service *Service
}

type Handler struct {
	*configs.Config
	Service *Service
}

func NewHandler(router *http.ServeMux, deps HandlerDeps) {
	h := &Handler{
		Config:  deps.Config,
		Service: deps.Service,
	}
	router.HandleFunc("/homepage/feed", h.Feed())
}

func (h *Handler) Feed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		payload, err := h.Service.Feed(r.Context())
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	}
}
