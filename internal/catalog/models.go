package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Movie is the canonical catalog record for a title. The title string is the
// unique key, case-preserving, exactly as the metadata API returned it.
// Attribute fields keep the upstream string forms ("N/A" when absent).
type Movie struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Poster     string    `json:"poster"`
	Year       string    `json:"year"`
	Rated      string    `json:"rated"`
	Runtime    string    `json:"runtime"`
	Genre      string    `json:"genre"`
	Plot       string    `json:"plot"`
	IMDBRating string    `json:"imdb_rating"`
	Metascore  string    `json:"metascore"`
	CreatedAt  time.Time `json:"created_at"`
}
