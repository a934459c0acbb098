package ratings

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one user's score and optional comment for one movie. The pair
// (UserID, MovieID) is the primary key; submitting again edits in place.
type Rating struct {
	UserID    uuid.UUID `json:"user_id"`
	MovieID   uuid.UUID `json:"movie_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MovieComment is a rating row joined with its author, shaped for the
// per-movie comment board.
type MovieComment struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UpdatedAt time.Time `json:"updated_at"`
}
