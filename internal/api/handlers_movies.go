package api

import (
	"net/http"

	"github.com/google/uuid"

	"cinelog/internal/httputil"
)

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_input", "title query parameter is required")
		return
	}

	res, err := s.movieSvc.Resolve(title)
	if err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r)
	if !ok {
		return
	}
	movie, err := s.catalogRepo.FindByID(movieID)
	if err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, movie)
}

// pathID parses the {id} path segment, writing the error response itself on
// a malformed value.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_input", "invalid movie id")
		return uuid.Nil, false
	}
	return id, true
}
