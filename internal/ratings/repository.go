// Package ratings persists per-(user, movie) scores with comments and
// computes the aggregate score per movie.
package ratings

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"cinelog/internal/fault"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(userID, movieID uuid.UUID) (*Rating, error) {
	var rating Rating
	err := r.db.QueryRow(`
		SELECT user_id, movie_id, rating, comment, created_at, updated_at
		FROM ratings WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID).Scan(&rating.UserID, &rating.MovieID, &rating.Rating,
		&rating.Comment, &rating.CreatedAt, &rating.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no rating for movie", fault.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Upsert inserts the rating or overwrites the existing row for the same
// (user, movie) pair. CreatedAt survives an edit; UpdatedAt moves.
func (r *Repository) Upsert(rating *Rating) error {
	err := r.db.QueryRow(`
		INSERT INTO ratings (user_id, movie_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, movie_id) DO UPDATE SET
			rating = EXCLUDED.rating,
			comment = EXCLUDED.comment,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at`,
		rating.UserID, rating.MovieID, rating.Rating, rating.Comment).
		Scan(&rating.CreatedAt, &rating.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// Delete removes the row and reports whether one existed.
func (r *Repository) Delete(userID, movieID uuid.UUID) (bool, error) {
	result, err := r.db.Exec(`
		DELETE FROM ratings WHERE user_id = $1 AND movie_id = $2`,
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

// ListByMovie returns every rating for the movie with its author's username,
// most recently updated first.
func (r *Repository) ListByMovie(movieID uuid.UUID) ([]MovieComment, error) {
	rows, err := r.db.Query(`
		SELECT r.user_id, u.username, r.rating, r.comment, r.updated_at
		FROM ratings r
		JOIN users u ON r.user_id = u.id
		WHERE r.movie_id = $1
		ORDER BY r.updated_at DESC, u.username`, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []MovieComment{}
	for rows.Next() {
		var c MovieComment
		if err := rows.Scan(&c.UserID, &c.Username, &c.Rating, &c.Comment, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Average returns the mean rating for the movie. The second return value is
// false when no ratings exist, which is distinct from an average of zero.
func (r *Repository) Average(movieID uuid.UUID) (float64, bool, error) {
	var avg sql.NullFloat64
	err := r.db.QueryRow(`
		SELECT AVG(CAST(rating AS REAL)) FROM ratings WHERE movie_id = $1`,
		movieID).Scan(&avg)
	if err != nil {
		return 0, false, err
	}
	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}
