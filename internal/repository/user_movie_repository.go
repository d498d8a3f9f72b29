package repository

import (
	"context"
	"errors"
	"time"

	"popfix-backend/internal/database"
	"popfix-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserMovieRepository interface {
	// Upsert creates or updates the single row keyed by (user_id, movie_id).
	// Conflict resolution is delegated to the database, never to read-then-write.
	Upsert(ctx context.Context, userMovie *models.UserMovie) error
	Update(ctx context.Context, userMovie *models.UserMovie) error
	// FindByUserAndMovie returns (nil, nil) when the pair has no row yet.
	FindByUserAndMovie(ctx context.Context, userID, movieID string) (*models.UserMovie, error)
	FindFavoritesByUser(ctx context.Context, userID string) ([]models.UserMovie, error)
	FindRatedByUser(ctx context.Context, userID string) ([]models.UserMovie, error)
	// FindRatingsByMovie returns the raw rating column for every row
	// referencing the movie, nils included.
	FindRatingsByMovie(ctx context.Context, movieID string) ([]*float64, error)
	// FindUserRatingsByMovieIDs is the batched read behind the "your rating"
	// merge: one query for all ids in the enriched batch.
	FindUserRatingsByMovieIDs(ctx context.Context, userID string, movieIDs []string) ([]models.UserMovie, error)
	ClearFavorite(ctx context.Context, userID, movieID string) error
}

type userMovieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewUserMovieRepository(db *database.Database) UserMovieRepository {
	return &userMovieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *userMovieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *userMovieRepository) Upsert(ctx context.Context, userMovie *models.UserMovie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_favorite", "rating", "updated_at"}),
	}).Create(userMovie).Error
}

func (r *userMovieRepository) Update(ctx context.Context, userMovie *models.UserMovie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Model(&models.UserMovie{}).
		Where("user_id = ? AND movie_id = ?", userMovie.UserID, userMovie.MovieID).
		Updates(map[string]interface{}{
			"is_favorite": userMovie.IsFavorite,
			"rating":      userMovie.Rating,
		}).Error
}

func (r *userMovieRepository) FindByUserAndMovie(ctx context.Context, userID, movieID string) (*models.UserMovie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var userMovie models.UserMovie
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&userMovie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &userMovie, nil
}

func (r *userMovieRepository) FindFavoritesByUser(ctx context.Context, userID string) ([]models.UserMovie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var favorites []models.UserMovie
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ? AND is_favorite = ?", userID, true).
		Find(&favorites).Error
	return favorites, err
}

func (r *userMovieRepository) FindRatedByUser(ctx context.Context, userID string) ([]models.UserMovie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rated []models.UserMovie
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ? AND rating IS NOT NULL", userID).
		Find(&rated).Error
	return rated, err
}

func (r *userMovieRepository) FindRatingsByMovie(ctx context.Context, movieID string) ([]*float64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []*float64
	err := r.db.WithContext(ctx).
		Model(&models.UserMovie{}).
		Where("movie_id = ?", movieID).
		Pluck("rating", &ratings).Error
	return ratings, err
}

func (r *userMovieRepository) FindUserRatingsByMovieIDs(ctx context.Context, userID string, movieIDs []string) ([]models.UserMovie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.UserMovie
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id IN ?", userID, movieIDs).
		Find(&rows).Error
	return rows, err
}

func (r *userMovieRepository) ClearFavorite(ctx context.Context, userID, movieID string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Model(&models.UserMovie{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Update("is_favorite", false).Error
}
