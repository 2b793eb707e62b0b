package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"tubewatch/pkg/domain"
)

// PageCost is the quota price of one playlistItems.list call
const PageCost = 1

// Client talks to the YouTube Data API v3. Every ListUploadsPage call is
// billed against the daily quota regardless of whether it returns new items,
// so callers must reserve budget before calling.
type Client struct {
	client   *http.Client
	limiter  *rate.Limiter
	baseURL  string
	apiKey   string
	pageSize int
}

// Config holds YouTube API client configuration
type Config struct {
	BaseURL         string // defaults to the public API endpoint
	APIKey          string
	PageSize        int // items per page, API maximum is 50
	Timeout         time.Duration
	MinCallInterval time.Duration // pacing between billed calls, 0 disables
}

// UploadsPage is one reverse-chronological page of a source's uploads
type UploadsPage struct {
	Items      []domain.Item
	NextCursor string // empty on the last page
}

// NewClient creates a new YouTube API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if cfg.PageSize <= 0 || cfg.PageSize > 50 {
		cfg.PageSize = 50
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.MinCallInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.MinCallInterval), 1)
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter:  limiter,
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		pageSize: cfg.PageSize,
	}
}

// playlistItemsResponse mirrors the API response shape we care about
type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			PublishedAt time.Time `json:"publishedAt"`
			Title       string    `json:"title"`
			PlaylistID  string    `json:"playlistId"`
			ResourceID  struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

// ListUploadsPage fetches one page of the source's uploads playlist, newest
// first. cursor is the page token from a previous call, empty for the newest
// page. Each call costs PageCost, billed even when the page is empty.
func (c *Client) ListUploadsPage(ctx context.Context, sourceID, cursor string) (*UploadsPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("playlistId", sourceID)
	q.Set("maxResults", fmt.Sprintf("%d", c.pageSize))
	q.Set("key", c.apiKey)
	if cursor != "" {
		q.Set("pageToken", cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/playlistItems?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list uploads for %s: %w", sourceID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("list uploads for %s: unexpected status %d: %s", sourceID, resp.StatusCode, string(body))
	}

	var parsed playlistItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode uploads response: %w", err)
	}

	page := &UploadsPage{
		Items:      make([]domain.Item, 0, len(parsed.Items)),
		NextCursor: parsed.NextPageToken,
	}
	for _, it := range parsed.Items {
		if it.Snippet.ResourceID.VideoID == "" {
			continue
		}
		page.Items = append(page.Items, domain.Item{
			ID:        it.Snippet.ResourceID.VideoID,
			SourceID:  sourceID,
			Title:     it.Snippet.Title,
			Published: it.Snippet.PublishedAt,
		})
	}
	return page, nil
}
