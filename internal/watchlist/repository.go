// Package watchlist stores per-(user, movie) bookmark rows. A bookmark is a
// presence fact: at most one row per pair, created on toggle-on and deleted
// on toggle-off.
package watchlist

import (
	"database/sql"

	"github.com/google/uuid"

	"cinelog/internal/catalog"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Exists(userID, movieID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM watchlist WHERE user_id = $1 AND movie_id = $2)`,
		userID, movieID).Scan(&exists)
	return exists, err
}

// Add is a no-op when the pair is already bookmarked; the composite primary
// key absorbs the race between two concurrent toggles.
func (r *Repository) Add(userID, movieID uuid.UUID) error {
	_, err := r.db.Exec(`
		INSERT INTO watchlist (user_id, movie_id) VALUES ($1, $2)
		ON CONFLICT (user_id, movie_id) DO NOTHING`,
		userID, movieID)
	return err
}

// Remove deletes the bookmark and reports whether a row existed.
func (r *Repository) Remove(userID, movieID uuid.UUID) (bool, error) {
	result, err := r.db.Exec(`
		DELETE FROM watchlist WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListByUser returns the user's bookmarked movies, most recently added first.
func (r *Repository) ListByUser(userID uuid.UUID) ([]catalog.Movie, error) {
	rows, err := r.db.Query(`
		SELECT m.id, m.title, m.poster, m.year, m.rated, m.runtime, m.genre,
		       m.plot, m.imdb_rating, m.metascore, m.created_at
		FROM watchlist w
		JOIN movies m ON w.movie_id = m.id
		WHERE w.user_id = $1
		ORDER BY w.added_at DESC, m.title`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []catalog.Movie{}
	for rows.Next() {
		var m catalog.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Poster, &m.Year, &m.Rated, &m.Runtime,
			&m.Genre, &m.Plot, &m.IMDBRating, &m.Metascore, &m.CreatedAt); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}
