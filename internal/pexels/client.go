// Package pexels is a thin client for the Pexels video API. The API key is
// injected at construction; nothing in this package reads the environment.
package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"popfix-backend/internal/config"
	"popfix-backend/internal/models"

	"github.com/sirupsen/logrus"
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.PexelsConfig, logger *logrus.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// SearchVideos queries /videos/search for videos matching the given term.
func (c *Client) SearchVideos(ctx context.Context, query string, perPage int) ([]models.PexelsVideo, error) {
	endpoint := fmt.Sprintf("%s/videos/search?query=%s&per_page=%d",
		c.baseURL, url.QueryEscape(query), perPage)
	return c.fetchVideos(ctx, endpoint)
}

// PopularVideos queries /videos/popular for trending videos.
func (c *Client) PopularVideos(ctx context.Context, perPage int) ([]models.PexelsVideo, error) {
	endpoint := fmt.Sprintf("%s/videos/popular?per_page=%d", c.baseURL, perPage)
	return c.fetchVideos(ctx, endpoint)
}

func (c *Client) fetchVideos(ctx context.Context, endpoint string) ([]models.PexelsVideo, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("pexels API key is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from Pexels: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("pexels API returned status %d: %s", resp.StatusCode, string(body))
	}

	var videosResp models.PexelsVideosResponse
	if err := json.NewDecoder(resp.Body).Decode(&videosResp); err != nil {
		return nil, fmt.Errorf("failed to decode Pexels response: %w", err)
	}

	c.logger.WithField("videos", len(videosResp.Videos)).Debug("Fetched videos from Pexels")

	return videosResp.Videos, nil
}
