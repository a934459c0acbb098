package engagement

import (
	"database/sql"
	"errors"
	"testing"

	"cinelog/internal/dbtest"
	"cinelog/internal/fault"
	"cinelog/internal/ratings"
	"cinelog/internal/watchlist"
)

func newTestService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()
	db := dbtest.Open(t)
	return NewService(watchlist.NewRepository(db), ratings.NewRepository(db)), db
}

func TestToggleBookmark(t *testing.T) {
	svc, db := newTestService(t)
	userID := dbtest.SeedUser(t, db, "alice")
	movieID := dbtest.SeedMovie(t, db, "Heat")

	state, err := svc.ToggleBookmark(userID, movieID)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if state != BookmarkOn {
		t.Fatalf("expected on after first toggle, got %q", state)
	}
	bookmarked, err := svc.Bookmarked(userID, movieID)
	if err != nil {
		t.Fatalf("bookmarked: %v", err)
	}
	if !bookmarked {
		t.Fatal("expected bookmark present")
	}

	state, err = svc.ToggleBookmark(userID, movieID)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if state != BookmarkOff {
		t.Fatalf("expected off after second toggle, got %q", state)
	}
	bookmarked, err = svc.Bookmarked(userID, movieID)
	if err != nil {
		t.Fatalf("bookmarked: %v", err)
	}
	if bookmarked {
		t.Fatal("expected bookmark gone")
	}

	// Two full toggle cycles land back where they started.
	if _, err := svc.ToggleBookmark(userID, movieID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := svc.ToggleBookmark(userID, movieID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM watchlist`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty watchlist after even toggles, got %d rows", count)
	}
}

func TestSubmitRatingEdits(t *testing.T) {
	svc, db := newTestService(t)
	userID := dbtest.SeedUser(t, db, "alice")
	movieID := dbtest.SeedMovie(t, db, "Heat")

	if _, err := svc.SubmitRating(userID, movieID, 5, "fine"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.SubmitRating(userID, movieID, 9, "rewatched"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	own, err := svc.OwnRating(userID, movieID)
	if err != nil {
		t.Fatalf("own rating: %v", err)
	}
	if own.Rating != 9 || own.Comment != "rewatched" {
		t.Fatalf("edit not applied: %+v", own)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ratings`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row after edit, got %d", count)
	}
}

func TestSubmitRatingRange(t *testing.T) {
	svc, db := newTestService(t)
	userID := dbtest.SeedUser(t, db, "alice")
	movieID := dbtest.SeedMovie(t, db, "Heat")

	for _, score := range []int{0, 11, -3} {
		if _, err := svc.SubmitRating(userID, movieID, score, ""); !errors.Is(err, fault.ErrInvalidInput) {
			t.Fatalf("score %d: expected ErrInvalidInput, got %v", score, err)
		}
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ratings`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected scores must not persist, got %d rows", count)
	}
}

func TestOwnRatingMissing(t *testing.T) {
	svc, db := newTestService(t)
	userID := dbtest.SeedUser(t, db, "alice")
	movieID := dbtest.SeedMovie(t, db, "Heat")

	if _, err := svc.OwnRating(userID, movieID); !errors.Is(err, fault.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScoreAbsentThenAverages(t *testing.T) {
	svc, db := newTestService(t)
	movieID := dbtest.SeedMovie(t, db, "Heat")

	score, err := svc.Score(movieID)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if score.Present {
		t.Fatalf("expected absent score for unrated movie, got %+v", score)
	}

	users := []struct {
		name   string
		rating int
	}{{"alice", 8}, {"bob", 6}, {"carol", 10}}
	for _, u := range users {
		userID := dbtest.SeedUser(t, db, u.name)
		if _, err := svc.SubmitRating(userID, movieID, u.rating, ""); err != nil {
			t.Fatalf("submit %s: %v", u.name, err)
		}
	}

	score, err = svc.Score(movieID)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !score.Present || score.Average != 8.0 {
		t.Fatalf("expected average 8.0, got %+v", score)
	}
}

func TestDeleteRatingRecomputesScore(t *testing.T) {
	svc, db := newTestService(t)
	movieID := dbtest.SeedMovie(t, db, "Heat")
	alice := dbtest.SeedUser(t, db, "alice")
	bob := dbtest.SeedUser(t, db, "bob")

	if _, err := svc.SubmitRating(alice, movieID, 10, "spam comment"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.SubmitRating(bob, movieID, 6, ""); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Moderation path: removing alice's rating drops her score and comment.
	if err := svc.DeleteRating(alice, movieID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	score, err := svc.Score(movieID)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !score.Present || score.Average != 6.0 {
		t.Fatalf("expected average 6.0 after delete, got %+v", score)
	}

	if err := svc.DeleteRating(alice, movieID); !errors.Is(err, fault.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestCommentsPartition(t *testing.T) {
	svc, db := newTestService(t)
	movieID := dbtest.SeedMovie(t, db, "Heat")
	alice := dbtest.SeedUser(t, db, "alice")
	bob := dbtest.SeedUser(t, db, "bob")
	carol := dbtest.SeedUser(t, db, "carol")

	if _, err := svc.SubmitRating(alice, movieID, 8, "mine"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.SubmitRating(bob, movieID, 6, "solid"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.SubmitRating(carol, movieID, 9, "favorite"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	board, err := svc.Comments(alice, movieID)
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	if board.Own == nil || board.Own.Comment != "mine" {
		t.Fatalf("expected own comment separated out, got %+v", board.Own)
	}
	if len(board.Others) != 2 {
		t.Fatalf("expected 2 other comments, got %d", len(board.Others))
	}
	for _, c := range board.Others {
		if c.UserID == alice {
			t.Fatal("own comment leaked into others")
		}
	}

	// A viewer with no rating sees everything under others.
	dave := dbtest.SeedUser(t, db, "dave")
	board, err = svc.Comments(dave, movieID)
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	if board.Own != nil {
		t.Fatalf("expected no own entry, got %+v", board.Own)
	}
	if len(board.Others) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(board.Others))
	}
}
