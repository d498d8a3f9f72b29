package handlers

import (
	"strconv"

	"popfix-backend/internal/pexels"
	"popfix-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PexelsHandler proxies the provider's raw video payloads for clients
// that want to do their own mapping.
type PexelsHandler struct {
	client *pexels.Client
	logger *logrus.Logger
}

func NewPexelsHandler(client *pexels.Client, logger *logrus.Logger) *PexelsHandler {
	return &PexelsHandler{
		client: client,
		logger: logger,
	}
}

// PopularVideos godoc
// @Summary Get popular stock videos
// @Description Proxy the provider's popular videos endpoint unmapped
// @Tags pexels
// @Produce json
// @Param per_page query int false "Videos per page" default(15)
// @Success 200 {object} utils.StandardResponse "Videos"
// @Failure 500 {object} utils.StandardResponse "Provider error"
// @Router /pexels/popular [get]
func (h *PexelsHandler) PopularVideos(c *fiber.Ctx) error {
	ctx := c.Context()

	perPage, _ := strconv.Atoi(c.Query("per_page", "15"))
	videos, err := h.client.PopularVideos(ctx, perPage)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch popular videos")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch videos")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Videos retrieved successfully", videos)
}

// SearchVideos godoc
// @Summary Search stock videos
// @Description Proxy the provider's video search endpoint unmapped
// @Tags pexels
// @Produce json
// @Param query query string true "Search query"
// @Param per_page query int false "Videos per page" default(15)
// @Success 200 {object} utils.StandardResponse "Videos"
// @Failure 400 {object} utils.StandardResponse "Missing query"
// @Failure 500 {object} utils.StandardResponse "Provider error"
// @Router /pexels/search [get]
func (h *PexelsHandler) SearchVideos(c *fiber.Ctx) error {
	ctx := c.Context()

	query := c.Query("query", c.Query("q", ""))
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Search query is required")
	}
	perPage, _ := strconv.Atoi(c.Query("per_page", "15"))

	videos, err := h.client.SearchVideos(ctx, query, perPage)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Failed to search videos")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch videos")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Videos retrieved successfully", videos)
}
