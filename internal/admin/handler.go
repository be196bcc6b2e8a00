package admin

import (
	"net/http"

	"photomarket/configs"
	"photomarket/internal/homepage"
	"photomarket/internal/moderation"
	"photomarket/internal/notification"
	"photomarket/pkg/jwt"
	"photomarket/pkg/middleware"
	"photomarket/pkg/req"
	"photomarket/pkg/res"
)

type DecidePayload struct {
	ID       string `json:"id"`
	Action   string `json:"action"`
	Homepage bool   `json:"homepage"`
}

type VisibilityPayload struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
}

type HandlerDeps struct {
	*configs.Config
	Engine        *moderation.Engine
	Notifications *notification.Service
	Homepage      *homepage.Service
	JWT           *jwt.JWT
}

type Handler struct {
	*configs.Config
	Engine        *moderation.Engine
	Notifications *notification.Service
	Homepage      *homepage.Service
}

func NewHandler(router *http.ServeMux, deps HandlerDeps) {
	h := &Handler{
		Config:        deps.Config,
		Engine:        deps.Engine,
		Notifications: deps.Notifications,
		Homepage:      deps.Homepage,
	}
	admin := middleware.Auth(deps.JWT, "admin")
	router.Handle("/admin/content/decide", admin(h.Decide()))
	router.Handle("/admin/content/homepage", admin(h.SetHomepageVisibility()))
	router.Handle("/admin/requests/list", admin(h.ListRequests()))
}

func (h *Handler) Decide() http.HandlerFunc {
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
		body, err := req.HandleBody[DecidePayload](&w, r)
		if err != nil {
			return
		}
		content, err := h.Engine.Decide(r.Context(), body.ID, moderation.Action(body.Action), actor.UserID, actor.Name, body.Homepage)
		if err != nil {
			res.Error(w, err.Error(), moderation.HTTPStatus(err))
			return
		}
		h.Homepage.Invalidate(r.Context())
		res.Json(w, content, http.StatusOK)
	}
}

func (h *Handler) SetHomepageVisibility() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := req.HandleBody[VisibilityPayload](&w, r)
		if err != nil {
			return
		}
		content, err := h.Engine.SetHomepageVisibility(r.Context(), body.ID, body.Visible)
		if err != nil {
			res.Error(w, err.Error(), moderation.HTTPStatus(err))
			return
		}
		h.Homepage.Invalidate(r.Context())
		res.Json(w, content, http.StatusOK)
	}
}

// ListRequests is the admin's open moderation queue: every notification
// still flagged action-required.
func (h *Handler) ListRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		items, err := h.Notifications.ListActionRequired(r.Context(), moderation.AdminID)
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, map[string]any{"requests": items}, http.StatusOK)
	}
}
