package api

import (
	"net/http"

	"cinelog/internal/httputil"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_input", "invalid request body")
		return
	}

	user, err := s.userSvc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, user)
}
