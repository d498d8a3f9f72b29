package services

import (
	"context"
	"strings"

	"popfix-backend/internal/models"
	"popfix-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CommentService interface {
	// AddComment creates a comment, upserting the (user, movie) association
	// first so a comment can exist without a prior favorite or rating.
	AddComment(ctx context.Context, userID, movieID, content string) (*models.Comment, error)
	EditComment(ctx context.Context, commentID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	GetComment(ctx context.Context, commentID string) (*models.Comment, error)
	GetCommentsForMovie(ctx context.Context, movieID string) ([]models.Comment, error)
	GetCommentsByUserAndMovie(ctx context.Context, userID, movieID string) ([]models.Comment, error)
}

type commentService struct {
	commentRepo   repository.CommentRepository
	userMovieRepo repository.UserMovieRepository
	userRepo      repository.UserRepository
	movieRepo     repository.MovieRepository
	logger        *logrus.Logger
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	userMovieRepo repository.UserMovieRepository,
	userRepo repository.UserRepository,
	movieRepo repository.MovieRepository,
	logger *logrus.Logger,
) CommentService {
	return &commentService{
		commentRepo:   commentRepo,
		userMovieRepo: userMovieRepo,
		userRepo:      userRepo,
		movieRepo:     movieRepo,
		logger:        logger,
	}
}

func (s *commentService) AddComment(ctx context.Context, userID, movieID, content string) (*models.Comment, error) {
	if userID == "" || movieID == "" {
		return nil, NewValidationError("userId and movieId are required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("comment content is required")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewValidationError("user not found")
	}

	// Preserve any favorite/rating state the user already has for this movie;
	// commenting alone must not reset it.
	userMovie, err := s.userMovieRepo.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if userMovie == nil {
		if movie, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
			return nil, err
		} else if movie == nil {
			if err := s.movieRepo.Create(ctx, placeholderMovie(movieID)); err != nil {
				return nil, err
			}
		}
		userMovie = &models.UserMovie{UserID: userID, MovieID: movieID}
	}
	if err := s.userMovieRepo.Upsert(ctx, userMovie); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:      uuid.New().String(),
		UserID:  userID,
		MovieID: movieID,
		Content: content,
		Avatar:  initialsAvatar(user.Name, user.Surname),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"movie_id": movieID,
	}).Info("Comment created")

	return comment, nil
}

func (s *commentService) EditComment(ctx context.Context, commentID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("comment content is required")
	}
	return s.commentRepo.UpdateContent(ctx, commentID, content)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID string) error {
	return s.commentRepo.Delete(ctx, commentID)
}

func (s *commentService) GetComment(ctx context.Context, commentID string) (*models.Comment, error) {
	return s.commentRepo.FindByID(ctx, commentID)
}

func (s *commentService) GetCommentsForMovie(ctx context.Context, movieID string) ([]models.Comment, error) {
	return s.commentRepo.FindByMovie(ctx, movieID)
}

func (s *commentService) GetCommentsByUserAndMovie(ctx context.Context, userID, movieID string) ([]models.Comment, error) {
	return s.commentRepo.FindByUserAndMovie(ctx, userID, movieID)
}

// initialsAvatar derives the display avatar once, at creation time. It is
// stored with the comment and never recomputed when the user renames.
func initialsAvatar(name, surname string) string {
	var b strings.Builder
	for _, part := range []string{name, surname} {
		for _, r := range part {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
