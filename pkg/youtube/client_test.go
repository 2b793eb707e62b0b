package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListUploadsPage(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/playlistItems", r.URL.Path)
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"nextPageToken": "PAGE2",
			"items": [
				{"snippet": {"publishedAt": "2025-06-01T12:00:00Z", "title": "newest video",
					"playlistId": "UUabc", "resourceId": {"videoId": "v13"}}},
				{"snippet": {"publishedAt": "2025-06-01T11:00:00Z", "title": "older video",
					"playlistId": "UUabc", "resourceId": {"videoId": "v12"}}},
				{"snippet": {"publishedAt": "2025-06-01T10:00:00Z", "title": "no video id",
					"playlistId": "UUabc", "resourceId": {}}}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key", PageSize: 25})

	page, err := client.ListUploadsPage(context.Background(), "UUabc", "")
	require.NoError(t, err)

	assert.Equal(t, "snippet", gotQuery["part"])
	assert.Equal(t, "UUabc", gotQuery["playlistId"])
	assert.Equal(t, "25", gotQuery["maxResults"])
	assert.Equal(t, "test-key", gotQuery["key"])
	assert.NotContains(t, gotQuery, "pageToken", "first page sends no token")

	assert.Equal(t, "PAGE2", page.NextCursor)
	require.Len(t, page.Items, 2, "item without a video id is skipped")
	assert.Equal(t, "v13", page.Items[0].ID)
	assert.Equal(t, "newest video", page.Items[0].Title)
	assert.Equal(t, "UUabc", page.Items[0].SourceID)
	assert.True(t, page.Items[0].Published.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
}

func TestClient_ListUploadsPage_Cursor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PAGE2", r.URL.Query().Get("pageToken"))
		fmt.Fprint(w, `{"items": []}`)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	page, err := client.ListUploadsPage(context.Background(), "UUabc", "PAGE2")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.NextCursor, "last page carries no token")
}

func TestClient_ListUploadsPage_Errors(t *testing.T) {
	t.Run("api error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"code": 403, "message": "quotaExceeded"}}`, http.StatusForbidden)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})
		_, err := client.ListUploadsPage(context.Background(), "UUabc", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `not json`)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})
		_, err := client.ListUploadsPage(context.Background(), "UUabc", "")
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		client := NewClient(Config{BaseURL: "http://127.0.0.1:1", APIKey: "test-key"})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.ListUploadsPage(ctx, "UUabc", "")
		assert.Error(t, err)
	})
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})
	assert.Equal(t, "https://www.googleapis.com/youtube/v3", client.baseURL)
	assert.Equal(t, 50, client.pageSize)

	// out of range page size falls back to the API maximum
	client = NewClient(Config{APIKey: "k", PageSize: 100})
	assert.Equal(t, 50, client.pageSize)
}
