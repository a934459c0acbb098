package api

import (
	"net/http"
	"strings"

	"cinelog/internal/httputil"
	"cinelog/internal/jobs"
)

// handleIngest queues background resolution of a batch of titles. The work
// happens on the job queue; a title already queued is skipped, not
// duplicated.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	if s.jobQueue == nil {
		httputil.WriteError(w, http.StatusServiceUnavailable, "unavailable", "job queue is not configured")
		return
	}

	var req struct {
		Titles []string `json:"titles"`
	}
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_input", "invalid request body")
		return
	}

	queued := []string{}
	for _, title := range req.Titles {
		if strings.TrimSpace(title) == "" {
			continue
		}
		taskID, err := s.jobQueue.EnqueueUnique(jobs.TaskIngestTitle,
			jobs.IngestPayload{Title: title}, jobs.IngestTaskID(title))
		if err != nil {
			httputil.WriteFault(w, err)
			return
		}
		queued = append(queued, taskID)
	}
	if len(queued) == 0 {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_input", "no titles to ingest")
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, map[string]interface{}{"queued": queued})
}
