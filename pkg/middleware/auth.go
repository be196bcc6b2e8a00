package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"photomarket/pkg/jwt"
	"photomarket/pkg/res"
)

type ctxKey string

const actorKey ctxKey = "actor"

var ErrNoActor = errors.New("no actor in context")

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	// websocket clients cannot set headers from the browser
	return r.URL.Query().Get("token")
}

// Auth validates the bearer token and, when roles are given, requires the
// actor's role to be one of them.
func Auth(j *jwt.JWT, roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerToken(r)
			if tok == "" {
				res.Error(w, "missing token", http.StatusUnauthorized)
				return
			}
			valid, data := j.Parse(tok)
			if !valid || data == nil {
				res.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			if len(roles) > 0 && !hasRole(data.Role, roles) {
				res.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			ctx := context.WithValue(r.Context(), actorKey, data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func hasRole(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func ActorFromCtx(r *http.Request) (*jwt.JWTData, error) {
	data, _ := r.Context().Value(actorKey).(*jwt.JWTData)
	if data == nil {
		return nil, ErrNoActor
	}
	return data, nil
}
