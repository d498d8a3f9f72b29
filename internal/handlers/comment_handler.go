package handlers

import (
	"popfix-backend/internal/services"
	"popfix-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommentHandler struct {
	service services.CommentService
	logger  *logrus.Logger
}

func NewCommentHandler(service services.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		logger:  logger,
	}
}

// AddComment godoc
// @Summary Add a comment
// @Description Post a comment on a movie, creating the movie and user-movie rows on first reference
// @Tags comments
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body CommentRequest true "Comment payload"
// @Success 201 {object} utils.StandardResponse "Created comment"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/comments/{userId} [post]
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	ctx := c.Context()

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	userID := c.Params("userId")
	comment, err := h.service.AddComment(ctx, userID, req.MovieID, req.Text)
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"movie_id": req.MovieID,
		}).Error("Failed to add comment")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add comment")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Comment added successfully", comment)
}

// EditComment godoc
// @Summary Edit a comment
// @Description Replace the text of an existing comment
// @Tags comments
// @Accept json
// @Produce json
// @Param commentId path string true "Comment ID"
// @Param request body CommentUpdateRequest true "New comment text"
// @Success 200 {object} utils.StandardResponse "Updated comment"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Comment not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/comments/{commentId} [put]
func (h *CommentHandler) EditComment(c *fiber.Ctx) error {
	ctx := c.Context()

	var req CommentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	commentID := c.Params("commentId")
	comment, err := h.service.EditComment(ctx, commentID, req.Content)
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("comment_id", commentID).Error("Failed to edit comment")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to edit comment")
	}
	if comment == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Comment not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Comment updated successfully", comment)
}

// GetComment godoc
// @Summary Get a comment
// @Description Get a single comment by its ID
// @Tags comments
// @Produce json
// @Param commentId path string true "Comment ID"
// @Success 200 {object} utils.StandardResponse "Comment"
// @Failure 404 {object} utils.StandardResponse "Comment not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/comments/{commentId} [get]
func (h *CommentHandler) GetComment(c *fiber.Ctx) error {
	ctx := c.Context()

	commentID := c.Params("commentId")
	comment, err := h.service.GetComment(ctx, commentID)
	if err != nil {
		h.logger.WithError(err).WithField("comment_id", commentID).Error("Failed to get comment")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve comment")
	}
	if comment == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Comment not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Comment retrieved successfully", comment)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Delete a comment by its ID
// @Tags comments
// @Accept json
// @Produce json
// @Param commentId path string true "Comment ID"
// @Success 200 {object} utils.StandardResponse "Comment deleted"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	ctx := c.Context()

	commentID := c.Params("commentId")
	if err := h.service.DeleteComment(ctx, commentID); err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("comment_id", commentID).Error("Failed to delete comment")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete comment")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Comment deleted successfully", nil)
}

// GetMovieComments godoc
// @Summary Get comments for a movie
// @Description Get every comment on a movie in chronological order
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Comments"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{id}/comments [get]
func (h *CommentHandler) GetMovieComments(c *fiber.Ctx) error {
	ctx := c.Context()

	movieID := c.Params("id")
	comments, err := h.service.GetCommentsForMovie(ctx, movieID)
	if err != nil {
		h.logger.WithError(err).WithField("movie_id", movieID).Error("Failed to get comments")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve comments")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Comments retrieved successfully", comments)
}

// GetUserMovieComments godoc
// @Summary Get a user's comments on a movie
// @Description Get every comment a user left on one movie
// @Tags comments
// @Accept json
// @Produce json
// @Param userId query string true "User ID"
// @Param movieId query string true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Comments"
// @Failure 400 {object} utils.StandardResponse "Missing identifiers"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/comments [get]
func (h *CommentHandler) GetUserMovieComments(c *fiber.Ctx) error {
	ctx := c.Context()

	userID := c.Query("userId", "")
	movieID := c.Query("movieId", "")

	comments, err := h.service.GetCommentsByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"movie_id": movieID,
		}).Error("Failed to get comments")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve comments")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Comments retrieved successfully", comments)
}
