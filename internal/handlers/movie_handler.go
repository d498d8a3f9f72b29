package handlers

import (
	"strconv"

	"popfix-backend/internal/catalog"
	"popfix-backend/internal/services"
	"popfix-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary Get all movies
// @Description Get every movie persisted in the local catalog
// @Tags movies
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	movies, err := h.service.GetAllMovies(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// SearchMovies godoc
// @Summary Search movies
// @Description Search the local catalog by title or genre
// @Tags movies
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {object} utils.StandardResponse "Matching movies"
// @Failure 400 {object} utils.StandardResponse "Missing search query"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/search [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	query := c.Query("q", "")
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	movies, err := h.service.SearchMovies(ctx, query, limit)
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("query", query).Error("Failed to search movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// GetMixed godoc
// @Summary Get popular catalog entries
// @Description Get popular stock videos mapped to catalog entries, with persisted ratings merged in
// @Tags movies
// @Accept json
// @Produce json
// @Param limit query int false "Entries per page" default(25)
// @Param quality query string false "Preferred source quality (low, sd, hd)" default(sd)
// @Param maxWidth query int false "Maximum source width in pixels"
// @Param userId query string false "User whose own ratings should be merged"
// @Success 200 {object} utils.StandardResponse "Catalog entries"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/mixed [get]
func (h *MovieHandler) GetMixed(c *fiber.Ctx) error {
	ctx := c.Context()

	limit, _ := strconv.Atoi(c.Query("limit", "25"))
	maxWidth, _ := strconv.Atoi(c.Query("maxWidth", "0"))
	// An absent quality stays empty so source selection applies its sd default.
	opts := catalog.SourceOptions{
		Quality:  c.Query("quality", ""),
		MaxWidth: maxWidth,
	}
	userID := c.Query("userId", "")

	entries, err := h.service.GetMixed(ctx, limit, opts, userID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get mixed movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", entries)
}

// GetByGenre godoc
// @Summary Get movies by genre
// @Description Search stock videos for a genre keyword and return lightweight summaries
// @Tags movies
// @Accept json
// @Produce json
// @Param genre query string true "Genre keyword"
// @Param perPage query int false "Entries per page" default(12)
// @Success 200 {object} utils.StandardResponse "Movie summaries"
// @Failure 400 {object} utils.StandardResponse "Missing genre"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/by-genre [get]
func (h *MovieHandler) GetByGenre(c *fiber.Ctx) error {
	ctx := c.Context()

	genre := c.Query("genre", "")
	perPage, _ := strconv.Atoi(c.Query("perPage", "12"))

	summaries, err := h.service.GetByGenre(ctx, genre, perPage)
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("genre", genre).Error("Failed to get movies by genre")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", summaries)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single catalog movie by its ID
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id := c.Params("id")
	movie, err := h.service.GetMovieByID(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie")
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// GetMovieDetails godoc
// @Summary Get movie details
// @Description Get a movie together with its community rating and comments
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/details/{id} [get]
func (h *MovieHandler) GetMovieDetails(c *fiber.Ctx) error {
	ctx := c.Context()

	id := c.Params("id")
	details, err := h.service.GetMovieDetails(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie details")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie details")
	}
	if details == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie details retrieved successfully", details)
}

// SaveUserMovie godoc
// @Summary Save a favorite or rating
// @Description Upsert the user's favorite flag and/or rating for a movie, creating the movie on first reference
// @Tags user-movies
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body SaveUserMovieRequest true "Favorite/rating payload"
// @Success 200 {object} utils.StandardResponse "Saved user movie"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/user/{userId} [post]
func (h *MovieHandler) SaveUserMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	var req SaveUserMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input := services.SaveUserMovieInput{
		UserID:   c.Params("userId"),
		MovieID:  req.MovieID,
		Favorite: req.Favorite,
		Rating:   req.Rating,
		Metadata: metadataFromRequest(&req),
	}

	userMovie, err := h.service.SaveUserMovie(ctx, input)
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  input.UserID,
			"movie_id": input.MovieID,
		}).Error("Failed to save user movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save user movie")
	}

	data := fiber.Map{"user_movie": userMovie}
	if req.DurationSeconds != nil {
		data["duration"] = catalog.FormatDuration(*req.DurationSeconds)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "User movie saved successfully", data)
}

// UpdateUserMovie godoc
// @Summary Update a favorite or rating
// @Description Update an existing favorite/rating row in place, leaving unset fields untouched
// @Tags user-movies
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body SaveUserMovieRequest true "Favorite/rating payload"
// @Success 200 {object} utils.StandardResponse "Updated user movie"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "User movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/user/{userId} [put]
func (h *MovieHandler) UpdateUserMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	var req SaveUserMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input := services.SaveUserMovieInput{
		UserID:   c.Params("userId"),
		MovieID:  req.MovieID,
		Favorite: req.Favorite,
		Rating:   req.Rating,
	}

	userMovie, err := h.service.UpdateUserMovie(ctx, input)
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  input.UserID,
			"movie_id": input.MovieID,
		}).Error("Failed to update user movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update user movie")
	}
	if userMovie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User movie updated successfully", userMovie)
}

// GetFavorites godoc
// @Summary Get a user's favorites
// @Description Get every movie the user marked as favorite
// @Tags user-movies
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.StandardResponse "Favorite movies"
// @Failure 400 {object} utils.StandardResponse "Missing user ID"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/favorites/{userId} [get]
func (h *MovieHandler) GetFavorites(c *fiber.Ctx) error {
	ctx := c.Context()

	userID := c.Params("userId")
	favorites, err := h.service.GetFavorites(ctx, userID)
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to get favorites")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve favorites")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Favorites retrieved successfully", favorites)
}

// GetUserRatings godoc
// @Summary Get a user's ratings
// @Description Get every movie the user has rated, with their rating
// @Tags user-movies
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.StandardResponse "Rated movies"
// @Failure 400 {object} utils.StandardResponse "Missing user ID"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/ratings/{userId} [get]
func (h *MovieHandler) GetUserRatings(c *fiber.Ctx) error {
	ctx := c.Context()

	userID := c.Params("userId")
	ratings, err := h.service.GetUserRatings(ctx, userID)
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to get user ratings")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve ratings")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Ratings retrieved successfully", ratings)
}

// RemoveFavorite godoc
// @Summary Remove a favorite
// @Description Clear the favorite flag on the user's movie, keeping any rating
// @Tags user-movies
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param movieId path string true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Favorite removed"
// @Failure 400 {object} utils.StandardResponse "Missing identifiers"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/favorites/{userId}/{movieId} [delete]
func (h *MovieHandler) RemoveFavorite(c *fiber.Ctx) error {
	ctx := c.Context()

	userID := c.Params("userId")
	movieID := c.Params("movieId")

	if err := h.service.RemoveFavorite(ctx, userID, movieID); err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"movie_id": movieID,
		}).Error("Failed to remove favorite")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to remove favorite")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Favorite removed successfully", nil)
}

func metadataFromRequest(req *SaveUserMovieRequest) *services.MovieMetadata {
	if req.Title == "" && req.ThumbnailURL == "" && req.Genre == "" &&
		req.Source == "" && req.Director == "" && req.SuggestedRating == nil {
		return nil
	}
	return &services.MovieMetadata{
		Title:           req.Title,
		ThumbnailURL:    req.ThumbnailURL,
		Genre:           req.Genre,
		Source:          req.Source,
		Director:        req.Director,
		SuggestedRating: req.SuggestedRating,
	}
}
