// Package movies resolves free-text titles into canonical catalog records.
// Resolution looks the title up with the metadata provider, makes sure a
// catalog row exists for the canonical title, and attaches a trailer link
// when one can be found.
package movies

import (
	"fmt"
	"log"
	"strings"

	"cinelog/internal/catalog"
	"cinelog/internal/fault"
	"cinelog/internal/metadata"
)

// MetadataSource resolves a title against the upstream metadata API.
type MetadataSource interface {
	Lookup(title string) (*metadata.MovieMetadata, error)
}

// TrailerSource finds a trailer URL for a title. A miss is ("", nil).
type TrailerSource interface {
	FindTrailer(title string) (string, error)
}

// Catalog is the movie store the resolver records into.
type Catalog interface {
	FindByTitle(title string) (*catalog.Movie, error)
	Exists(title string) (bool, error)
	Upsert(m *catalog.Movie) (*catalog.Movie, error)
}

// Resolution is the outcome of resolving one title: the upstream metadata,
// the catalog row it maps to, and a best-effort trailer link.
type Resolution struct {
	Metadata   *metadata.MovieMetadata `json:"metadata"`
	Movie      *catalog.Movie          `json:"movie"`
	TrailerURL string                  `json:"trailer_url,omitempty"`
}

type Service struct {
	source  MetadataSource
	trailer TrailerSource
	catalog Catalog
}

func NewService(source MetadataSource, trailer TrailerSource, cat Catalog) *Service {
	return &Service{source: source, trailer: trailer, catalog: cat}
}

// Resolve looks the title up, guarantees a catalog record for the canonical
// title, and returns both. Lookup failures propagate with their fault class;
// a trailer miss or trailer API failure never fails the resolution.
func (s *Service) Resolve(title string) (*Resolution, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be blank", fault.ErrInvalidInput)
	}

	meta, err := s.source.Lookup(title)
	if err != nil {
		return nil, err
	}

	movie, err := s.ensureRecord(meta)
	if err != nil {
		return nil, err
	}

	res := &Resolution{Metadata: meta, Movie: movie}
	if s.trailer != nil {
		trailerURL, err := s.trailer.FindTrailer(meta.Title)
		if err != nil {
			log.Printf("trailer lookup failed for %q: %v", meta.Title, err)
		} else {
			res.TrailerURL = trailerURL
		}
	}
	return res, nil
}

// ensureRecord returns the catalog row keyed by the canonical title, creating
// it from the metadata when absent. The upsert absorbs concurrent creates of
// the same title; whichever insert wins, every caller gets the same row.
func (s *Service) ensureRecord(meta *metadata.MovieMetadata) (*catalog.Movie, error) {
	exists, err := s.catalog.Exists(meta.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.catalog.FindByTitle(meta.Title)
	}
	return s.catalog.Upsert(recordFromMetadata(meta))
}

func recordFromMetadata(meta *metadata.MovieMetadata) *catalog.Movie {
	return &catalog.Movie{
		Title:      meta.Title,
		Poster:     meta.Poster,
		Year:       meta.Year,
		Rated:      meta.Rated,
		Runtime:    meta.Runtime,
		Genre:      meta.Genre,
		Plot:       meta.Plot,
		IMDBRating: meta.IMDBRating,
		Metascore:  meta.Metascore,
	}
}
