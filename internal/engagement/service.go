// Package engagement implements the per-user interactions with catalog
// movies: watchlist bookmarks, ratings with comments, and the aggregates
// derived from them.
package engagement

import (
	"fmt"

	"github.com/google/uuid"

	"cinelog/internal/catalog"
	"cinelog/internal/fault"
	"cinelog/internal/ratings"
)

// WatchlistStore is the bookmark persistence the service drives.
type WatchlistStore interface {
	Exists(userID, movieID uuid.UUID) (bool, error)
	Add(userID, movieID uuid.UUID) error
	Remove(userID, movieID uuid.UUID) (bool, error)
	ListByUser(userID uuid.UUID) ([]catalog.Movie, error)
}

// RatingStore is the rating persistence the service drives.
type RatingStore interface {
	Get(userID, movieID uuid.UUID) (*ratings.Rating, error)
	Upsert(r *ratings.Rating) error
	Delete(userID, movieID uuid.UUID) (bool, error)
	ListByMovie(movieID uuid.UUID) ([]ratings.MovieComment, error)
	Average(movieID uuid.UUID) (float64, bool, error)
}

// BookmarkState reports the watchlist membership after a toggle.
type BookmarkState string

const (
	BookmarkOn  BookmarkState = "on"
	BookmarkOff BookmarkState = "off"
)

// AggregateScore is the mean of all ratings for one movie. Present is false
// when the movie has no ratings, which clients must render differently from
// a real score of zero.
type AggregateScore struct {
	Average float64 `json:"average"`
	Present bool    `json:"present"`
}

// CommentBoard splits a movie's comments into the viewer's own entry and
// everyone else's.
type CommentBoard struct {
	Own    *ratings.MovieComment  `json:"own,omitempty"`
	Others []ratings.MovieComment `json:"others"`
}

type Service struct {
	watchlist WatchlistStore
	ratings   RatingStore
}

func NewService(watchlist WatchlistStore, ratingStore RatingStore) *Service {
	return &Service{watchlist: watchlist, ratings: ratingStore}
}

// ToggleBookmark flips the membership of (user, movie) in the watchlist:
// remove when present, add when absent. The delete-first order makes the
// operation a pure flip regardless of the starting state.
func (s *Service) ToggleBookmark(userID, movieID uuid.UUID) (BookmarkState, error) {
	removed, err := s.watchlist.Remove(userID, movieID)
	if err != nil {
		return "", fmt.Errorf("toggle bookmark: %w", err)
	}
	if removed {
		return BookmarkOff, nil
	}
	if err := s.watchlist.Add(userID, movieID); err != nil {
		return "", fmt.Errorf("toggle bookmark: %w", err)
	}
	return BookmarkOn, nil
}

func (s *Service) Bookmarked(userID, movieID uuid.UUID) (bool, error) {
	return s.watchlist.Exists(userID, movieID)
}

func (s *Service) Watchlist(userID uuid.UUID) ([]catalog.Movie, error) {
	return s.watchlist.ListByUser(userID)
}

// SubmitRating creates or edits the user's rating for the movie. The score
// must be between 1 and 10; an out-of-range score leaves any existing rating
// untouched.
func (s *Service) SubmitRating(userID, movieID uuid.UUID, score int, comment string) (*ratings.Rating, error) {
	if score < 1 || score > 10 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 10, got %d", fault.ErrInvalidInput, score)
	}
	rating := &ratings.Rating{
		UserID:  userID,
		MovieID: movieID,
		Rating:  score,
		Comment: comment,
	}
	if err := s.ratings.Upsert(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// OwnRating returns the user's rating for the movie, fault.ErrNotFound when
// they have not rated it.
func (s *Service) OwnRating(userID, movieID uuid.UUID) (*ratings.Rating, error) {
	return s.ratings.Get(userID, movieID)
}

// DeleteRating removes the target user's rating for the movie. The caller
// decides whose rating: a member passes their own id, a moderator passes the
// offending user's. The aggregate reflects the removal on next read.
func (s *Service) DeleteRating(targetUserID, movieID uuid.UUID) error {
	deleted, err := s.ratings.Delete(targetUserID, movieID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: no rating to delete", fault.ErrNotFound)
	}
	return nil
}

func (s *Service) Score(movieID uuid.UUID) (AggregateScore, error) {
	avg, present, err := s.ratings.Average(movieID)
	if err != nil {
		return AggregateScore{}, err
	}
	return AggregateScore{Average: avg, Present: present}, nil
}

// Comments returns the movie's comment board from the viewer's perspective:
// their own entry, when any, separated from the rest.
func (s *Service) Comments(viewerID, movieID uuid.UUID) (*CommentBoard, error) {
	all, err := s.ratings.ListByMovie(movieID)
	if err != nil {
		return nil, err
	}
	board := &CommentBoard{Others: []ratings.MovieComment{}}
	for i := range all {
		if all[i].UserID == viewerID {
			own := all[i]
			board.Own = &own
			continue
		}
		board.Others = append(board.Others, all[i])
	}
	return board, nil
}
