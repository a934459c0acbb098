package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/hibiken/asynq"

	"cinelog/internal/fault"
	"cinelog/internal/movies"
)

// IngestPayload names one title to pull into the catalog.
type IngestPayload struct {
	Title string `json:"title"`
}

// IngestTaskID derives the unique task id for a title so repeated requests
// for the same title collapse into one queued task.
func IngestTaskID(title string) string {
	return "ingest:" + strings.ToLower(strings.TrimSpace(title))
}

// Resolver is the title resolution the ingest worker drives.
type Resolver interface {
	Resolve(title string) (*movies.Resolution, error)
}

type IngestHandler struct {
	resolver Resolver
}

func NewIngestHandler(resolver Resolver) *IngestHandler {
	return &IngestHandler{resolver: resolver}
}

// ProcessTask resolves the queued title into a catalog record. Titles the
// metadata provider does not know are dropped, not retried; transient
// provider failures are returned so the queue retries them.
func (h *IngestHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload IngestPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	res, err := h.resolver.Resolve(payload.Title)
	if errors.Is(err, fault.ErrNotFound) || errors.Is(err, fault.ErrInvalidInput) {
		log.Printf("Ingest: dropping %q: %v", payload.Title, err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve %q: %w", payload.Title, err)
	}

	log.Printf("Ingest: %q -> movie %s", payload.Title, res.Movie.ID)
	return nil
}
