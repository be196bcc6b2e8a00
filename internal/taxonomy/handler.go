package taxonomy

import (
	"net/http"

	"photomarket/configs"
	"photomarket/internal/moderation"
	"photomarket/pkg/jwt"
	"photomarket/pkg/middleware"
	"photomarket/pkg/req"
	"photomarket/pkg/res"
)

type SuggestPayload struct {
	Kind   SuggestionKind `json:"kind"`
	Name   string         `json:"name"`
	Region string         `json:"region"`
}

type CreatePayload struct {
	Name   string `json:"name"`
	Region string `json:"region"`
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
	admin := middleware.Auth(deps.JWT, "admin")
	router.HandleFunc("/taxonomy/categories/list", h.ListCategories())
	router.HandleFunc("/taxonomy/cities/list", h.ListCities())
	router.Handle("/taxonomy/suggest", auth(h.Suggest()))
	router.Handle("/taxonomy/categories/create", admin(h.CreateCategory()))
	router.Handle("/taxonomy/cities/create", admin(h.CreateCity()))
}

func (h *Handler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		categories, err := h.Service.ListCategories(r.Context())
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, categories, http.StatusOK)
	}
}

func (h *Handler) ListCities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		cities, err := h.Service.ListCities(r.Context())
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, cities, http.StatusOK)
	}
}

func (h *Handler) Suggest() http.HandlerFunc {
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
		body, err := req.HandleBody[SuggestPayload](&w, r)
		if err != nil {
			return
		}
		sug, err := h.Service.Suggest(r.Context(), actor.UserID, actor.Name, body.Kind, body.Name, body.Region)
		if err != nil {
			res.Error(w, err.Error(), moderation.HTTPStatus(err))
			return
		}
		res.Json(w, sug, http.StatusCreated)
	}
}

func (h *Handler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := req.HandleBody[CreatePayload](&w, r)
		if err != nil {
			return
		}
		if err := h.Service.AddCategory(r.Context(), body.Name); err != nil {
			res.Error(w, err.Error(), moderation.HTTPStatus(err))
			return
		}
		res.Json(w, map[string]any{"success": true}, http.StatusCreated)
	}
}

func (h *Handler) CreateCity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := req.HandleBody[CreatePayload](&w, r)
		if err != nil {
			return
		}
		if err := h.Service.AddCity(r.Context(), body.Name, body.Region); err != nil {
			res.Error(w, err.Error(), moderation.HTTPStatus(err))
			return
		}
		res.Json(w, map[string]any{"success": true}, http.StatusCreated)
	}
}
