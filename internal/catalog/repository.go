package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"cinelog/internal/fault"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const movieColumns = `id, title, poster, year, rated, runtime, genre, plot, imdb_rating, metascore, created_at`

func (r *Repository) FindByTitle(title string) (*Movie, error) {
	m := &Movie{}
	err := r.db.QueryRow(`
		SELECT `+movieColumns+`
		FROM movies WHERE title = $1`, title,
	).Scan(&m.ID, &m.Title, &m.Poster, &m.Year, &m.Rated, &m.Runtime,
		&m.Genre, &m.Plot, &m.IMDBRating, &m.Metascore, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("movie %q: %w", title, fault.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Repository) FindByID(id uuid.UUID) (*Movie, error) {
	m := &Movie{}
	err := r.db.QueryRow(`
		SELECT `+movieColumns+`
		FROM movies WHERE id = $1`, id,
	).Scan(&m.ID, &m.Title, &m.Poster, &m.Year, &m.Rated, &m.Runtime,
		&m.Genre, &m.Plot, &m.IMDBRating, &m.Metascore, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("movie %s: %w", id, fault.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Repository) Exists(title string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM movies WHERE title = $1)`, title).Scan(&exists)
	return exists, err
}

// Upsert inserts the record unless a row with the same title already exists,
// and returns the stored row either way. Two concurrent inserts of the same
// new title are resolved by the unique constraint: the loser re-reads the
// winner's row instead of failing.
func (r *Repository) Upsert(m *Movie) (*Movie, error) {
	if strings.TrimSpace(m.Title) == "" {
		return nil, fmt.Errorf("%w: blank title", fault.ErrInvalidInput)
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	err := r.db.QueryRow(`
		INSERT INTO movies (id, title, poster, year, rated, runtime, genre, plot, imdb_rating, metascore)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (title) DO NOTHING
		RETURNING id, created_at`,
		m.ID, m.Title, m.Poster, m.Year, m.Rated, m.Runtime,
		m.Genre, m.Plot, m.IMDBRating, m.Metascore,
	).Scan(&m.ID, &m.CreatedAt)
	if err == sql.ErrNoRows || fault.IsUniqueViolation(err) {
		return r.FindByTitle(m.Title)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
