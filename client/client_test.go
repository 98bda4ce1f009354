package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ziktok/catalog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	c := New(cfg)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestClient_GetShorts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/channel/UC123/shorts" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("maxResults") != "25" {
			t.Errorf("maxResults = %q, want 25", r.URL.Query().Get("maxResults"))
		}
		fmt.Fprint(w, `{
			"shorts": [{"id": "v1", "title": "first", "publishedAt": "2024-03-01T12:00:00Z"}],
			"channelId": "UC123",
			"channelTitle": "Test Channel"
		}`)
	})

	result, err := c.GetShorts(context.Background(), "UC123", 25)
	if err != nil {
		t.Fatalf("GetShorts() error = %v", err)
	}
	if result.ChannelTitle != "Test Channel" {
		t.Errorf("ChannelTitle = %q", result.ChannelTitle)
	}
	if len(result.Shorts) != 1 || result.Shorts[0].ID != "v1" {
		t.Errorf("Shorts = %+v", result.Shorts)
	}
}

func TestClient_GetShortsEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"channelId": "UC123", "channelTitle": "Empty"}`)
	})

	result, err := c.GetShorts(context.Background(), "UC123", 0)
	if err != nil {
		t.Fatalf("GetShorts() error = %v", err)
	}
	if result.Shorts == nil {
		t.Error("Shorts is nil, want empty slice")
	}
}

func TestClient_GetShortsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": "Channel not found"}`)
	})

	_, err := c.GetShorts(context.Background(), "UCmissing", 0)
	if !errors.Is(err, catalog.ErrChannelNotFound) {
		t.Fatalf("GetShorts() error = %v, want ErrChannelNotFound", err)
	}
}

func TestClient_GetShortsUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "YouTube API error", "details": "quota exceeded", "reason": "quotaExceeded"}`)
	})

	_, err := c.GetShorts(context.Background(), "UC123", 0)
	var upErr *catalog.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upErr.Message != "quota exceeded" || upErr.Reason != "quotaExceeded" {
		t.Errorf("UpstreamError = %+v", upErr)
	}
}

func TestClient_GetShortsOpaqueError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "bad gateway")
	})

	_, err := c.GetShorts(context.Background(), "UC123", 0)
	if !errors.Is(err, catalog.ErrFetchFailed) {
		t.Fatalf("GetShorts() error = %v, want ErrFetchFailed", err)
	}
}

func TestClient_SearchChannels(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/channel/search/some%20query" && r.URL.EscapedPath() != "/api/channel/search/some%20query" {
			t.Errorf("path = %q", r.URL.EscapedPath())
		}
		fmt.Fprint(w, `{"channels": [{"id": "UC1", "title": "Found"}]}`)
	})

	channels, err := c.SearchChannels(context.Background(), "some query")
	if err != nil {
		t.Fatalf("SearchChannels() error = %v", err)
	}
	if len(channels) != 1 || channels[0].ID != "UC1" {
		t.Errorf("channels = %+v", channels)
	}
}
