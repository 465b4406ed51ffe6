package strava

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/tile-explorer/internal/config"
	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/domain/repository"
)

const maxErrorBody = 1024

// ErrUnauthorized is returned when the provider rejects the token.
var ErrUnauthorized = errors.New("strava: unauthorized")

type client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	logger       *zap.Logger
}

// NewStravaClient создает новый клиент для Strava API
func NewStravaClient(cfg *config.StravaConfig, logger *zap.Logger) repository.ActivityRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:      cfg.BaseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		logger:       logger,
	}
}

// ListActivities возвращает страницу активностей атлета
func (c *client) ListActivities(ctx context.Context, token string, page, perPage int) ([]domain.Activity, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}

	var activities []domain.Activity
	if err := c.get(ctx, token, "/api/v3/athlete/activities?"+q.Encode(), &activities); err != nil {
		return nil, fmt.Errorf("list activities page %d: %w", page, err)
	}

	c.logger.Debug("Activities page fetched",
		zap.Int("page", page),
		zap.Int("count", len(activities)))
	return activities, nil
}

// GetActivity возвращает детальную информацию об активности
func (c *client) GetActivity(ctx context.Context, token string, id int64) (*domain.ActivityDetail, error) {
	var detail domain.ActivityDetail
	path := fmt.Sprintf("/api/v3/activities/%d?include_all_efforts=true", id)
	if err := c.get(ctx, token, path, &detail); err != nil {
		return nil, fmt.Errorf("get activity %d: %w", id, err)
	}
	return &detail, nil
}

// ExchangeCode обменивает OAuth код на access token
func (c *client) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth/token?"+form.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(req, &tokenResp); err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("exchange code: empty access token")
	}
	return tokenResp.AccessToken, nil
}

func (c *client) get(ctx context.Context, token, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	return c.do(req, dst)
}

func (c *client) do(req *http.Request, dst interface{}) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("path", req.URL.Path), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("Strava API returned error",
			zap.String("path", req.URL.Path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		if resp.StatusCode == http.StatusUnauthorized {
			return ErrUnauthorized
		}
		return fmt.Errorf("strava API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Strava API call successful",
		zap.String("path", req.URL.Path),
		zap.Duration("took", time.Since(start)))
	return nil
}
