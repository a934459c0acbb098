package watchlist

import (
	"testing"

	"cinelog/internal/dbtest"
)

func TestAddRemoveExists(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	userID := dbtest.SeedUser(t, db, "alice")
	movieID := dbtest.SeedMovie(t, db, "Inception")

	exists, err := repo.Exists(userID, movieID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("expected no bookmark before add")
	}

	if err := repo.Add(userID, movieID); err != nil {
		t.Fatalf("add: %v", err)
	}
	exists, err = repo.Exists(userID, movieID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected bookmark after add")
	}

	removed, err := repo.Remove(userID, movieID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !removed {
		t.Fatal("expected remove to report a deleted row")
	}

	removed, err = repo.Remove(userID, movieID)
	if err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if removed {
		t.Fatal("second remove must report no row")
	}
}

func TestAddIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	userID := dbtest.SeedUser(t, db, "alice")
	movieID := dbtest.SeedMovie(t, db, "Heat")

	if err := repo.Add(userID, movieID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Add(userID, movieID); err != nil {
		t.Fatalf("repeated add must not error: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM watchlist`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one bookmark row, got %d", count)
	}
}

func TestListByUserIsolation(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	alice := dbtest.SeedUser(t, db, "alice")
	bob := dbtest.SeedUser(t, db, "bob")
	inception := dbtest.SeedMovie(t, db, "Inception")
	heat := dbtest.SeedMovie(t, db, "Heat")

	if err := repo.Add(alice, inception); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Add(bob, heat); err != nil {
		t.Fatalf("add: %v", err)
	}

	movies, err := repo.ListByUser(alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Inception" {
		t.Fatalf("unexpected watchlist for alice: %+v", movies)
	}

	movies, err = repo.ListByUser(bob)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Heat" {
		t.Fatalf("unexpected watchlist for bob: %+v", movies)
	}
}
