package story

import (
	"net/http"

	"photomarket/configs"
	"photomarket/internal/moderation"
	"photomarket/pkg/jwt"
	"photomarket/pkg/middleware"
	"photomarket/pkg/req"
	"photomarket/pkg/res"
)

type CreatePayload struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	GalleryID string `json:"gallery_id"`
	CoverURL  string `json:"cover_url"`
}

type RequestHomepagePayload struct {
	ID string `json:"id"`
}

type HandlerDeps struct {
	*configs.Config
	Engine *moderation.Engine
	Repo   *Repository
	JWT    *jwt.JWT
}

type Handler struct {
	*configs.Config
	Engine *moderation.Engine
	Repo   *Repository
}

func NewHandler(router *http.ServeMux, deps HandlerDeps) {
	h := &Handler{
		Config: deps.Config,
		Engine: deps.Engine,
		Repo:   deps.Repo,
	}
	auth := middleware.Auth(deps.JWT)
	router.HandleFunc("/stories/list", h.List())
	router.Handle("/stories/mine", auth(h.Mine()))
	router.Handle("/stories/create", auth(h.Create()))
	router.Handle("/stories/request-homepage", auth(h.RequestHomepage()))
}

func (h *Handler) Create() http.HandlerFunc {
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
		body, err := req.HandleBody[CreatePayload](&w, r)
		if err != nil {
			return
		}
		s := &Story{
			Moderated: moderation.Moderated{
				OwnerID:   actor.UserID,
				OwnerName: actor.Name,
			},
			Title:     body.Title,
			Body:      body.Body,
			GalleryID: body.GalleryID,
			CoverURL:  body.CoverURL,
		}
		if err := h.Engine.Submit(r.Context(), s); err != nil {
			res.Error(w, err.Error(), moderation.HTTPStatus(err))
			return
		}
		res.Json(w, s, http.StatusCreated)
	}
}

func (h *Handler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		items, err := h.Repo.List(r.Context(), moderation.Filter{Status: moderation.StatusApproved})
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, items, http.StatusOK)
	}
}

func (h *Handler) Mine() http.HandlerFunc {
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
		items, err := h.Repo.List(r.Context(), moderation.Filter{OwnerID: actor.UserID})
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, items, http.StatusOK)
	}
}

func (h *Handler) RequestHomepage() http.HandlerFunc {
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
		body, err := req.HandleBody[RequestHomepagePayload](&w, r)
		if err != nil {
			return
		}
		existing, err := h.Repo.Find(r.Context(), body.ID)
		if err != nil {
			res.Error(w, err.Error(), moderation.HTTPStatus(err))
			return
		}
		if existing.Moderation().OwnerID != actor.UserID {
			res.Error(w, "not your story", http.StatusForbidden)
			return
		}
		updated, err := h.Engine.RequestHomepage(r.Context(), body.ID)
		if err != nil {
			res.Error(w, err.Error(), moderation.HTTPStatus(err))
			return
		}
		res.Json(w, updated, http.StatusOK)
	}
}
