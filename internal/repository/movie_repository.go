package repository

import (
	"context"
	"errors"
	"time"

	"popfix-backend/internal/database"
	"popfix-backend/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	// FindByID returns (nil, nil) when no movie with the given id exists.
	FindByID(ctx context.Context, id string) (*models.Movie, error)
	// FindByIDs is the batched lookup the merge layer relies on; ids with no
	// matching row are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]models.Movie, error)
	FindAll(ctx context.Context) ([]models.Movie, error)
	Search(ctx context.Context, query string, limit int) ([]models.Movie, error)
	UpdateRating(ctx context.Context, id string, rating float64) error
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Find(&movies).Error
	return movies, err
}

func (r *movieRepository) Search(ctx context.Context, query string, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR genre ILIKE ?", pattern, pattern).
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) UpdateRating(ctx context.Context, id string, rating float64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}
