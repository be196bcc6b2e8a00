package photographer

import (
	"net/http"
	"strings"

	"photomarket/configs"
	"photomarket/internal/moderation"
	"photomarket/pkg/jwt"
	"photomarket/pkg/middleware"
	"photomarket/pkg/req"
	"photomarket/pkg/res"
)

type HandlerDeps struct {
	*configs.Config
	Service *Service
	JWT     *jwt.JWT
}

type Handler struct {
	*configs.Config
	Service *Service
	JWT     *jwt.JWT
}

func NewHandler(router *http.ServeMux, deps HandlerDeps) {
	h := &Handler{
		Config:  deps.Config,
		Service: deps.Service,
		JWT:     deps.JWT,
	}
	auth := middleware.Auth(deps.JWT)
	router.HandleFunc("/auth/register", h.Register())
	router.HandleFunc("/auth/login", h.Login())
	router.HandleFunc("/photographers/list", h.List())
	router.HandleFunc("/photographers/", h.Get())
	router.Handle("/photographers/profile/update", auth(h.UpdateProfile()))
}

func (h *Handler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := req.HandleBody[RegisterPayload](&w, r)
		if err != nil {
			return
		}
		p, err := h.Service.Register(r.Context(), body.Email, body.Password, body.Name)
		if err != nil {
			res.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		token, err := h.JWT.Create(jwt.JWTData{UserID: p.ID, Name: p.Name, Role: "photographer"})
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, AuthResponse{Token: token}, http.StatusCreated)
	}
}

func (h *Handler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := req.HandleBody[LoginPayload](&w, r)
		if err != nil {
			return
		}

		// The admin is configured, not a photographer row.
		if body.Email == h.Config.AdminEmail && body.Password == h.Config.AdminPassword {
			token, err := h.JWT.Create(jwt.JWTData{
				UserID: moderation.AdminID,
				Name:   h.Config.AdminName,
				Role:   "admin",
			})
			if err != nil {
				res.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			res.Json(w, AuthResponse{Token: token}, http.StatusOK)
			return
		}

		p, err := h.Service.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			res.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		token, err := h.JWT.Create(jwt.JWTData{UserID: p.ID, Name: p.Name, Role: "photographer"})
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, AuthResponse{Token: token}, http.StatusOK)
	}
}

func (h *Handler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		items, err := h.Service.List(r.Context(), r.URL.Query().Get("city"), r.URL.Query().Get("category"))
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, items, http.StatusOK)
	}
}

func (h *Handler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		// expected path: /photographers/<id>
		id := strings.TrimPrefix(r.URL.Path, "/photographers/")
		if id == "" {
			res.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		p, err := h.Service.Get(r.Context(), id)
		if err != nil {
			res.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		res.Json(w, p, http.StatusOK)
	}
}

func (h *Handler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		actor, err := middleware.ActorFromCtx(r)
		if err != nil {
			res.Error(w, "auth required", http.StatusUnauthorized)
			return
		}
		body, err := req.HandleBody[UpdateProfilePayload](&w, r)
		if err != nil {
			return
		}
		p, err := h.Service.UpdateProfile(r.Context(), actor.UserID, *body)
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, p, http.StatusOK)
	}
}
