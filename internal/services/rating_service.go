package services

import (
	"context"
	"math"

	"popfix-backend/internal/catalog"
	"popfix-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// RatingSentinel is the "no ratings yet" result of ComputeMovieRating. It is
// never a valid persisted rating: callers must skip the write when they see it.
const RatingSentinel = 0.0

// RatingService aggregates individual user ratings into the community rating
// and merges persisted ratings back into enrichment-mapped batches.
type RatingService interface {
	// ComputeMovieRating averages every user rating for the movie, rounded to
	// one decimal. An empty rating set yields RatingSentinel.
	ComputeMovieRating(ctx context.Context, movieID string) (float64, error)

	// MergeRatings overlays persisted community ratings (and, when userID is
	// non-empty, the user's own ratings) onto an enriched batch. It never
	// fails: if persistence is unavailable the unmerged batch comes back as-is.
	MergeRatings(ctx context.Context, entries []catalog.Entry, userID string) []catalog.Entry

	// ApplyRatingUpdate recomputes the community rating after a rating write
	// and persists it onto the movie row, creating the row with placeholder
	// metadata when it does not exist yet. The sentinel is never persisted.
	ApplyRatingUpdate(ctx context.Context, movieID string) error
}

type ratingService struct {
	movieRepo     repository.MovieRepository
	userMovieRepo repository.UserMovieRepository
	logger        *logrus.Logger
}

func NewRatingService(movieRepo repository.MovieRepository, userMovieRepo repository.UserMovieRepository, logger *logrus.Logger) RatingService {
	return &ratingService{
		movieRepo:     movieRepo,
		userMovieRepo: userMovieRepo,
		logger:        logger,
	}
}

func (s *ratingService) ComputeMovieRating(ctx context.Context, movieID string) (float64, error) {
	stored, err := s.userMovieRepo.FindRatingsByMovie(ctx, movieID)
	if err != nil {
		return 0, err
	}

	var sum float64
	var count int
	for _, r := range stored {
		if r == nil || math.IsNaN(*r) || math.IsInf(*r, 0) {
			continue
		}
		sum += *r
		count++
	}

	if count == 0 {
		return RatingSentinel, nil
	}
	return catalog.Round1(sum / float64(count)), nil
}

func (s *ratingService) MergeRatings(ctx context.Context, entries []catalog.Entry, userID string) []catalog.Entry {
	if len(entries) == 0 {
		return entries
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.ID != "" {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) == 0 {
		return entries
	}

	movies, err := s.movieRepo.FindByIDs(ctx, ids)
	if err != nil {
		// The merge step must never take enrichment down with it.
		s.logger.WithError(err).Warn("Failed to merge persisted ratings, returning unmerged batch")
		return entries
	}

	ratingByID := make(map[string]float64, len(movies))
	for _, m := range movies {
		if m.Rating != nil {
			ratingByID[m.ID] = *m.Rating
		}
	}

	userRatingByID := make(map[string]float64)
	if userID != "" {
		rows, err := s.userMovieRepo.FindUserRatingsByMovieIDs(ctx, userID, ids)
		if err != nil {
			s.logger.WithError(err).WithField("user_id", userID).Warn("Failed to merge user ratings")
		} else {
			for _, row := range rows {
				if row.Rating != nil {
					userRatingByID[row.MovieID] = *row.Rating
				}
			}
		}
	}

	merged := make([]catalog.Entry, len(entries))
	for i, e := range entries {
		if persisted, ok := ratingByID[e.ID]; ok {
			// Persisted truth wins over the synthetic derivation.
			e.Rating = persisted
		}
		if own, ok := userRatingByID[e.ID]; ok {
			r := own
			e.UserRating = &r
		}
		merged[i] = e
	}
	return merged
}

func (s *ratingService) ApplyRatingUpdate(ctx context.Context, movieID string) error {
	avg, err := s.ComputeMovieRating(ctx, movieID)
	if err != nil {
		return err
	}

	if avg < 1 {
		// Empty-set sentinel: leave the movie's rating column untouched so the
		// "never below 1.0" constraint holds.
		s.logger.WithField("movie_id", movieID).Debug("No ratings yet, skipping community rating write")
		return nil
	}

	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return err
	}

	if movie == nil {
		placeholder := placeholderMovie(movieID)
		placeholder.Rating = &avg
		return s.movieRepo.Create(ctx, placeholder)
	}

	return s.movieRepo.UpdateRating(ctx, movieID, avg)
}
