package services

import (
	"context"
	"testing"

	"popfix-backend/internal/models"
)

type fakeCommentRepo struct {
	comments map[string]*models.Comment
	byMovie  map[string][]models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments: make(map[string]*models.Comment),
		byMovie:  make(map[string][]models.Comment),
	}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	f.comments[comment.ID] = comment
	f.byMovie[comment.MovieID] = append(f.byMovie[comment.MovieID], *comment)
	return nil
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id string) (*models.Comment, error) {
	return f.comments[id], nil
}

func (f *fakeCommentRepo) FindByUserAndMovie(_ context.Context, userID, movieID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.byMovie[movieID] {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) FindByMovie(_ context.Context, movieID string) ([]models.Comment, error) {
	return f.byMovie[movieID], nil
}

func (f *fakeCommentRepo) UpdateContent(_ context.Context, id, content string) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	c.Content = content
	return c, nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id string) error {
	delete(f.comments, id)
	return nil
}

func newMovieServiceForTest(movies *fakeMovieRepo, userMovies *fakeUserMovieRepo) MovieService {
	log := testLogger()
	ratings := NewRatingService(movies, userMovies, log)
	return NewMovieService(movies, userMovies, newFakeCommentRepo(), ratings, nil, log)
}

func TestSaveUserMovieRejectsOutOfRangeRating(t *testing.T) {
	svc := newMovieServiceForTest(newFakeMovieRepo(), newFakeUserMovieRepo())

	_, err := svc.SaveUserMovie(context.Background(), SaveUserMovieInput{
		UserID:  "u1",
		MovieID: "px-1",
		Rating:  ptrFloat(5.5),
	})
	if !IsValidationError(err) {
		t.Fatalf("SaveUserMovie with rating 5.5 returned %v, want validation error", err)
	}

	_, err = svc.SaveUserMovie(context.Background(), SaveUserMovieInput{
		UserID:  "u1",
		MovieID: "px-1",
		Rating:  ptrFloat(0.5),
	})
	if !IsValidationError(err) {
		t.Fatalf("SaveUserMovie with rating 0.5 returned %v, want validation error", err)
	}
}

func TestSaveUserMovieCreatesMovieOnFirstReference(t *testing.T) {
	movies := newFakeMovieRepo()
	userMovies := newFakeUserMovieRepo()
	svc := newMovieServiceForTest(movies, userMovies)

	fav := true
	_, err := svc.SaveUserMovie(context.Background(), SaveUserMovieInput{
		UserID:   "u1",
		MovieID:  "px-33",
		Favorite: &fav,
		Metadata: &MovieMetadata{Title: "Ocean Waves", Genre: "drama"},
	})
	if err != nil {
		t.Fatalf("SaveUserMovie: %v", err)
	}

	created := movies.movies["px-33"]
	if created == nil {
		t.Fatal("movie row was not created on first reference")
	}
	if created.Title != "Ocean Waves" || created.Genre != "drama" {
		t.Fatalf("metadata not applied: %+v", created)
	}
	if len(userMovies.upserts) != 1 {
		t.Fatalf("got %d upserts, want 1", len(userMovies.upserts))
	}
	if got := userMovies.upserts[0]; got.IsFavorite == nil || !*got.IsFavorite {
		t.Fatalf("favorite flag not upserted: %+v", got)
	}
}

func TestSaveUserMovieRatingUpdatesCommunityRating(t *testing.T) {
	movies := newFakeMovieRepo()
	userMovies := newFakeUserMovieRepo()
	// Two previous ratings plus the incoming one.
	userMovies.ratingsByMovie["px-5"] = []*float64{ptrFloat(3), ptrFloat(4), ptrFloat(5)}
	svc := newMovieServiceForTest(movies, userMovies)

	_, err := svc.SaveUserMovie(context.Background(), SaveUserMovieInput{
		UserID:  "u1",
		MovieID: "px-5",
		Rating:  ptrFloat(5),
	})
	if err != nil {
		t.Fatalf("SaveUserMovie: %v", err)
	}

	// ensureMovie created the row, so the recompute lands on it.
	if movies.movies["px-5"] == nil {
		t.Fatal("movie row was not created")
	}
	if got := movies.ratingsSet["px-5"]; got != 4.0 {
		t.Fatalf("community rating = %v, want 4.0", got)
	}
}

func TestUpdateUserMovieMissingRowReturnsNil(t *testing.T) {
	svc := newMovieServiceForTest(newFakeMovieRepo(), newFakeUserMovieRepo())

	got, err := svc.UpdateUserMovie(context.Background(), SaveUserMovieInput{
		UserID:  "u1",
		MovieID: "px-1",
		Rating:  ptrFloat(4),
	})
	if err != nil {
		t.Fatalf("UpdateUserMovie: %v", err)
	}
	if got != nil {
		t.Fatalf("UpdateUserMovie on missing row = %+v, want nil", got)
	}
}

func TestUpdateUserMovieKeepsUnsetFields(t *testing.T) {
	movies := newFakeMovieRepo()
	movies.movies["px-2"] = &models.Movie{ID: "px-2", Title: "px-2"}
	userMovies := newFakeUserMovieRepo()
	fav := true
	userMovies.rows[userMovieKey("u1", "px-2")] = &models.UserMovie{
		UserID:     "u1",
		MovieID:    "px-2",
		IsFavorite: &fav,
		Rating:     ptrFloat(3),
	}
	userMovies.ratingsByMovie["px-2"] = []*float64{ptrFloat(4)}
	svc := newMovieServiceForTest(movies, userMovies)

	got, err := svc.UpdateUserMovie(context.Background(), SaveUserMovieInput{
		UserID:  "u1",
		MovieID: "px-2",
		Rating:  ptrFloat(4),
	})
	if err != nil {
		t.Fatalf("UpdateUserMovie: %v", err)
	}
	if got == nil {
		t.Fatal("UpdateUserMovie returned nil for an existing row")
	}
	if got.IsFavorite == nil || !*got.IsFavorite {
		t.Fatalf("favorite flag was dropped by a rating-only update: %+v", got)
	}
	if got.Rating == nil || *got.Rating != 4 {
		t.Fatalf("rating = %v, want 4", got.Rating)
	}
}
