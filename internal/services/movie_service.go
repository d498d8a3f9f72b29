package services

import (
	"context"

	"popfix-backend/internal/catalog"
	"popfix-backend/internal/models"
	"popfix-backend/internal/pexels"
	"popfix-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// MovieMetadata is the caller-supplied description of a movie that does not
// exist locally yet.
type MovieMetadata struct {
	Title           string
	ThumbnailURL    string
	Genre           string
	Source          string
	Director        string
	SuggestedRating *float64
}

// SaveUserMovieInput is the unified favorite/rating write: either field may
// be nil, and metadata is only consulted when the movie row is missing.
type SaveUserMovieInput struct {
	UserID   string
	MovieID  string
	Favorite *bool
	Rating   *float64
	Metadata *MovieMetadata
}

// MovieDetails is the aggregate view for one catalog entity.
type MovieDetails struct {
	Movie           *models.Movie    `json:"movie"`
	CommunityRating float64          `json:"community_rating"`
	RatingCount     int              `json:"rating_count"`
	Comments        []models.Comment `json:"comments"`
}

type MovieService interface {
	GetAllMovies(ctx context.Context) ([]models.Movie, error)
	SearchMovies(ctx context.Context, query string, limit int) ([]models.Movie, error)
	GetMovieByID(ctx context.Context, id string) (*models.Movie, error)
	GetMovieDetails(ctx context.Context, id string) (*MovieDetails, error)

	// GetMixed serves Pexels popular videos mapped to catalog entries, with
	// persisted community ratings (and the acting user's own ratings) merged in.
	GetMixed(ctx context.Context, perPage int, opts catalog.SourceOptions, userID string) ([]catalog.Entry, error)
	GetByGenre(ctx context.Context, genre string, perPage int) ([]catalog.Summary, error)

	SaveUserMovie(ctx context.Context, input SaveUserMovieInput) (*models.UserMovie, error)
	UpdateUserMovie(ctx context.Context, input SaveUserMovieInput) (*models.UserMovie, error)
	GetFavorites(ctx context.Context, userID string) ([]models.UserMovie, error)
	GetUserRatings(ctx context.Context, userID string) ([]models.UserMovie, error)
	RemoveFavorite(ctx context.Context, userID, movieID string) error
}

type movieService struct {
	movieRepo     repository.MovieRepository
	userMovieRepo repository.UserMovieRepository
	commentRepo   repository.CommentRepository
	ratings       RatingService
	pexelsClient  *pexels.Client
	logger        *logrus.Logger
}

func NewMovieService(
	movieRepo repository.MovieRepository,
	userMovieRepo repository.UserMovieRepository,
	commentRepo repository.CommentRepository,
	ratings RatingService,
	pexelsClient *pexels.Client,
	logger *logrus.Logger,
) MovieService {
	return &movieService{
		movieRepo:     movieRepo,
		userMovieRepo: userMovieRepo,
		commentRepo:   commentRepo,
		ratings:       ratings,
		pexelsClient:  pexelsClient,
		logger:        logger,
	}
}

func (s *movieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	return s.movieRepo.FindAll(ctx)
}

func (s *movieService) SearchMovies(ctx context.Context, query string, limit int) ([]models.Movie, error) {
	if query == "" {
		return nil, NewValidationError("search query is required")
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return s.movieRepo.Search(ctx, query, limit)
}

func (s *movieService) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	return s.movieRepo.FindByID(ctx, id)
}

func (s *movieService) GetMovieDetails(ctx context.Context, id string) (*MovieDetails, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, nil
	}

	rating, err := s.ratings.ComputeMovieRating(ctx, id)
	if err != nil {
		return nil, err
	}

	stored, err := s.userMovieRepo.FindRatingsByMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, r := range stored {
		if r != nil {
			count++
		}
	}

	comments, err := s.commentRepo.FindByMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	return &MovieDetails{
		Movie:           movie,
		CommunityRating: rating,
		RatingCount:     count,
		Comments:        comments,
	}, nil
}

func (s *movieService) GetMixed(ctx context.Context, perPage int, opts catalog.SourceOptions, userID string) ([]catalog.Entry, error) {
	if perPage < 1 {
		perPage = 25
	}
	if perPage > 80 {
		perPage = 80
	}

	videos, err := s.pexelsClient.PopularVideos(ctx, perPage)
	if err != nil {
		return nil, err
	}

	entries := make([]catalog.Entry, len(videos))
	for i, v := range videos {
		entries[i] = catalog.MapVideo(v, opts)
	}

	return s.ratings.MergeRatings(ctx, entries, userID), nil
}

func (s *movieService) GetByGenre(ctx context.Context, genre string, perPage int) ([]catalog.Summary, error) {
	if genre == "" {
		return nil, NewValidationError("genre is required")
	}
	if perPage < 1 {
		perPage = 12
	}
	if perPage > 80 {
		perPage = 80
	}

	videos, err := s.pexelsClient.SearchVideos(ctx, genre, perPage)
	if err != nil {
		return nil, err
	}

	summaries := make([]catalog.Summary, len(videos))
	for i, v := range videos {
		summaries[i] = catalog.MapVideoSummary(v, genre)
	}
	return summaries, nil
}

func (s *movieService) SaveUserMovie(ctx context.Context, input SaveUserMovieInput) (*models.UserMovie, error) {
	if input.UserID == "" || input.MovieID == "" {
		return nil, NewValidationError("userId and movieId are required")
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, NewValidationError("rating must be between 1 and 5")
	}

	if err := s.ensureMovie(ctx, input.MovieID, input.Metadata); err != nil {
		return nil, err
	}

	userMovie := &models.UserMovie{
		UserID:     input.UserID,
		MovieID:    input.MovieID,
		IsFavorite: input.Favorite,
		Rating:     input.Rating,
	}
	if err := s.userMovieRepo.Upsert(ctx, userMovie); err != nil {
		return nil, err
	}

	if input.Rating != nil {
		if err := s.ratings.ApplyRatingUpdate(ctx, input.MovieID); err != nil {
			return nil, err
		}
	}

	return userMovie, nil
}

func (s *movieService) UpdateUserMovie(ctx context.Context, input SaveUserMovieInput) (*models.UserMovie, error) {
	if input.UserID == "" || input.MovieID == "" {
		return nil, NewValidationError("userId and movieId are required")
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, NewValidationError("rating must be between 1 and 5")
	}

	existing, err := s.userMovieRepo.FindByUserAndMovie(ctx, input.UserID, input.MovieID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if input.Favorite != nil {
		existing.IsFavorite = input.Favorite
	}
	ratingChanged := false
	if input.Rating != nil {
		existing.Rating = input.Rating
		ratingChanged = true
	}

	if err := s.userMovieRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if ratingChanged {
		if err := s.ratings.ApplyRatingUpdate(ctx, input.MovieID); err != nil {
			return nil, err
		}
	}

	return existing, nil
}

func (s *movieService) GetFavorites(ctx context.Context, userID string) ([]models.UserMovie, error) {
	if userID == "" {
		return nil, NewValidationError("userId is required")
	}
	return s.userMovieRepo.FindFavoritesByUser(ctx, userID)
}

func (s *movieService) GetUserRatings(ctx context.Context, userID string) ([]models.UserMovie, error) {
	if userID == "" {
		return nil, NewValidationError("userId is required")
	}
	return s.userMovieRepo.FindRatedByUser(ctx, userID)
}

func (s *movieService) RemoveFavorite(ctx context.Context, userID, movieID string) error {
	if userID == "" || movieID == "" {
		return NewValidationError("userId and movieId are required")
	}
	return s.userMovieRepo.ClearFavorite(ctx, userID, movieID)
}

// ensureMovie creates the catalog row on first reference. Caller metadata
// wins; without it the row gets placeholder metadata only.
func (s *movieService) ensureMovie(ctx context.Context, movieID string, meta *MovieMetadata) error {
	existing, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	movie := placeholderMovie(movieID)
	if meta != nil {
		movie.Title = meta.Title
		movie.ThumbnailURL = meta.ThumbnailURL
		movie.Genre = meta.Genre
		if meta.Source != "" {
			src := meta.Source
			movie.Source = &src
		}
		if meta.Director != "" {
			dir := meta.Director
			movie.Director = &dir
		}
		movie.SuggestedRating = meta.SuggestedRating
		if movie.Title == "" {
			movie.Title = movieID
		}
	}

	s.logger.WithField("movie_id", movieID).Info("Creating catalog entry on first reference")
	return s.movieRepo.Create(ctx, movie)
}

func placeholderMovie(movieID string) *models.Movie {
	return &models.Movie{
		ID:    movieID,
		Title: movieID,
	}
}
