package api

import (
	"context"
	"errors"
	"net/http"

	"cinelog/internal/fault"
	"cinelog/internal/httputil"
	"cinelog/internal/users"
)

type contextKey string

const userContextKey contextKey = "user"

// requireUser resolves the caller from the X-Auth-User header. Identity is
// established by the gateway in front of this service; a request with no
// header or an unknown username is rejected.
func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get("X-Auth-User")
		if username == "" {
			httputil.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing X-Auth-User header")
			return
		}
		user, err := s.userRepo.GetByUsername(username)
		if errors.Is(err, fault.ErrNotFound) {
			httputil.WriteError(w, http.StatusUnauthorized, "unauthenticated", "unknown user")
			return
		}
		if err != nil {
			httputil.WriteFault(w, err)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
	}
}

func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return s.requireUser(func(w http.ResponseWriter, r *http.Request) {
		if !currentUser(r).IsAdmin() {
			httputil.WriteError(w, http.StatusForbidden, "forbidden", "admin role required")
			return
		}
		next(w, r)
	})
}

// currentUser returns the caller attached by requireUser. Only valid on
// handlers routed through that middleware.
func currentUser(r *http.Request) *users.User {
	return r.Context().Value(userContextKey).(*users.User)
}
