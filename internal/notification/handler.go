package notification

import (
	"net/http"
	"strconv"

	"photomarket/configs"
	"photomarket/pkg/jwt"
	"photomarket/pkg/middleware"
	"photomarket/pkg/req"
	"photomarket/pkg/res"
)

type MarkReadPayload struct {
	ID string `json:"id"`
}

type HandlerDeps struct {
	*configs.Config
	Service *Service
	JWT     *jwt.JWT
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
	auth := middleware.Auth(deps.JWT)
	router.Handle("/notifications/list", auth(h.List()))
	router.Handle("/notifications/read", auth(h.MarkRead()))
}

func (h *Handler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		actor, err := middleware.ActorFromCtx(r)
		if err != nil {
			res.Error(w, "auth required", http.StatusUnauthorized)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		items, err := h.Service.List(r.Context(), actor.UserID, limit)
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, map[string]any{"notifications": items}, http.StatusOK)
	}
}

func (h *Handler) MarkRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		actor, err := middleware.ActorFromCtx(r)
		if err != nil {
			res.Error(w, "auth required", http.StatusUnauthorized)
			return
		}
		body, err := req.HandleBody[MarkReadPayload](&w, r)
		if err != nil {
			return
		}
		if err := h.Service.MarkRead(r.Context(), actor.UserID, body.ID); err != nil {
			if err == ErrNotFound {
				res.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, map[string]any{"success": true}, http.StatusOK)
	}
}
