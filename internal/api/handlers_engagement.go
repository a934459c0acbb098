package api

import (
	"net/http"

	"cinelog/internal/httputil"
)

func (s *Server) handleGetWatchlist(w http.ResponseWriter, r *http.Request) {
	movies, err := s.engagement.Watchlist(currentUser(r).ID)
	if err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, movies)
}

func (s *Server) handleToggleWatchlist(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := s.catalogRepo.FindByID(movieID); err != nil {
		httputil.WriteFault(w, err)
		return
	}

	state, err := s.engagement.ToggleBookmark(currentUser(r).ID, movieID)
	if err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"bookmark": string(state)})
}

func (s *Server) handlePutRating(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_input", "invalid request body")
		return
	}
	if _, err := s.catalogRepo.FindByID(movieID); err != nil {
		httputil.WriteFault(w, err)
		return
	}

	rating, err := s.engagement.SubmitRating(currentUser(r).ID, movieID, req.Rating, req.Comment)
	if err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rating)
}

func (s *Server) handleGetOwnRating(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r)
	if !ok {
		return
	}
	rating, err := s.engagement.OwnRating(currentUser(r).ID, movieID)
	if err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rating)
}

func (s *Server) handleDeleteOwnRating(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.engagement.DeleteRating(currentUser(r).ID, movieID); err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"deleted": "rating"})
}

func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := s.catalogRepo.FindByID(movieID); err != nil {
		httputil.WriteFault(w, err)
		return
	}
	score, err := s.engagement.Score(movieID)
	if err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, score)
}

func (s *Server) handleGetComments(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r)
	if !ok {
		return
	}
	board, err := s.engagement.Comments(currentUser(r).ID, movieID)
	if err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, board)
}

// handleModerateRating removes another user's rating for a movie. Admin
// only; the route carries the target username, not an id, to match how
// moderation reports name offenders.
func (s *Server) handleModerateRating(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r)
	if !ok {
		return
	}
	target, err := s.userRepo.GetByUsername(r.PathValue("username"))
	if err != nil {
		httputil.WriteFault(w, err)
		return
	}

	if err := s.engagement.DeleteRating(target.ID, movieID); err != nil {
		httputil.WriteFault(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"deleted": "rating", "user": target.Username})
}
