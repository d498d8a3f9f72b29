package services

import (
	"context"
	"testing"

	"popfix-backend/internal/models"
)

func newCommentServiceForTest(movies *fakeMovieRepo, userMovies *fakeUserMovieRepo, users *fakeUserRepo, comments *fakeCommentRepo) CommentService {
	return NewCommentService(comments, userMovies, users, movies, testLogger())
}

func TestAddCommentCreatesPlaceholderAndAvatar(t *testing.T) {
	movies := newFakeMovieRepo()
	userMovies := newFakeUserMovieRepo()
	users := newFakeUserRepo()
	comments := newFakeCommentRepo()
	users.byID["u1"] = &models.User{ID: "u1", Name: "Ana", Surname: "Lopez"}

	svc := newCommentServiceForTest(movies, userMovies, users, comments)
	comment, err := svc.AddComment(context.Background(), "u1", "px-44", "Me encanto")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	if comment.Avatar != "AL" {
		t.Fatalf("avatar = %q, want AL", comment.Avatar)
	}
	if movies.movies["px-44"] == nil {
		t.Fatal("AddComment did not create the movie on first reference")
	}
	if userMovies.rows[userMovieKey("u1", "px-44")] == nil {
		t.Fatal("AddComment did not create the user movie row")
	}
}

func TestAddCommentPreservesExistingUserMovieState(t *testing.T) {
	movies := newFakeMovieRepo()
	movies.movies["px-44"] = &models.Movie{ID: "px-44", Title: "px-44"}
	userMovies := newFakeUserMovieRepo()
	fav := true
	userMovies.rows[userMovieKey("u1", "px-44")] = &models.UserMovie{
		UserID:     "u1",
		MovieID:    "px-44",
		IsFavorite: &fav,
		Rating:     ptrFloat(4),
	}
	users := newFakeUserRepo()
	users.byID["u1"] = &models.User{ID: "u1", Name: "Ana"}

	svc := newCommentServiceForTest(movies, userMovies, users, newFakeCommentRepo())
	if _, err := svc.AddComment(context.Background(), "u1", "px-44", "otra vez"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	row := userMovies.rows[userMovieKey("u1", "px-44")]
	if row.IsFavorite == nil || !*row.IsFavorite {
		t.Fatalf("favorite flag was reset by a comment: %+v", row)
	}
	if row.Rating == nil || *row.Rating != 4 {
		t.Fatalf("rating was reset by a comment: %+v", row)
	}
}

func TestAddCommentValidation(t *testing.T) {
	users := newFakeUserRepo()
	svc := newCommentServiceForTest(newFakeMovieRepo(), newFakeUserMovieRepo(), users, newFakeCommentRepo())
	ctx := context.Background()

	if _, err := svc.AddComment(ctx, "", "px-1", "hola"); !IsValidationError(err) {
		t.Fatalf("AddComment without user returned %v, want validation error", err)
	}
	if _, err := svc.AddComment(ctx, "u1", "px-1", "   "); !IsValidationError(err) {
		t.Fatalf("AddComment with blank content returned %v, want validation error", err)
	}
	if _, err := svc.AddComment(ctx, "u-missing", "px-1", "hola"); !IsValidationError(err) {
		t.Fatalf("AddComment with unknown user returned %v, want validation error", err)
	}
}

func TestInitialsAvatar(t *testing.T) {
	cases := []struct {
		name    string
		surname string
		want    string
	}{
		{"Ana", "Lopez", "AL"},
		{"ana", "", "A"},
		{"", "lopez", "L"},
		{"", "", "?"},
		{"ñora", "alta", "ÑA"},
	}
	for _, tc := range cases {
		if got := initialsAvatar(tc.name, tc.surname); got != tc.want {
			t.Errorf("initialsAvatar(%q, %q) = %q, want %q", tc.name, tc.surname, got, tc.want)
		}
	}
}
