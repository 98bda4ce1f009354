package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// maxUploadsLimit caps how many recent uploads are listed per channel.
	maxUploadsLimit = 50
	// searchMaxResults caps how many channels a search returns.
	searchMaxResults = 5
)

// Provider assembles short-form results and searches channels.
// Implemented by Client and by the TTL-caching decorator Cached.
type Provider interface {
	// GetShorts returns the short-form uploads of a channel, newest first
	// as listed by the uploads playlist. maxResults is clamped to 1..50;
	// zero means 50.
	GetShorts(ctx context.Context, channelID string, maxResults int64) (*ShortsResult, error)

	// SearchChannels returns up to 5 channels matching the query.
	SearchChannels(ctx context.Context, query string) ([]ChannelInfo, error)
}

// Client fetches catalog data using the YouTube Data API v3.
// Each request maps to the three-step assembly: resolve the channel's
// uploads playlist, list its most recent items, then fetch metadata for
// all of them in one batched call. Failures are never retried; the
// caller decides whether a failed channel matters.
type Client struct {
	service *youtube.Service
	limiter *rate.Limiter
}

// NewClient creates a catalog client authenticated with an API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{service: service}, nil
}

// NewClientWithService creates a catalog client around an existing service.
// Used by tests to point the client at a fake upstream.
func NewClientWithService(service *youtube.Service) *Client {
	return &Client{service: service}
}

// SetRateLimit caps upstream calls at qps queries per second with the given
// burst. A qps of zero removes the cap.
func (c *Client) SetRateLimit(qps float64, burst int) {
	if qps <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(qps), burst)
}

// GetShorts implements Provider.
func (c *Client) GetShorts(ctx context.Context, channelID string, maxResults int64) (*ShortsResult, error) {
	if maxResults <= 0 || maxResults > maxUploadsLimit {
		maxResults = maxUploadsLimit
	}

	uploadsID, channelTitle, err := c.resolveUploads(ctx, channelID)
	if err != nil {
		return nil, &CatalogError{Op: "resolve", Channel: channelID, Err: err}
	}

	videoIDs, err := c.listUploads(ctx, uploadsID, maxResults)
	if err != nil {
		return nil, &CatalogError{Op: "list", Channel: channelID, Err: err}
	}

	result := &ShortsResult{
		Shorts:       []ShortVideo{},
		ChannelID:    channelID,
		ChannelTitle: channelTitle,
	}
	if len(videoIDs) == 0 {
		return result, nil
	}

	shorts, err := c.fetchShortMetadata(ctx, videoIDs)
	if err != nil {
		return nil, &CatalogError{Op: "metadata", Channel: channelID, Err: err}
	}
	result.Shorts = shorts

	return result, nil
}

// SearchChannels implements Provider.
func (c *Client) SearchChannels(ctx context.Context, query string) ([]ChannelInfo, error) {
	if err := c.wait(ctx); err != nil {
		return nil, &CatalogError{Op: "search", Channel: query, Err: err}
	}

	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(searchMaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &CatalogError{Op: "search", Channel: query, Err: classifyAPIError(err)}
	}

	if len(resp.Items) == 0 {
		return nil, &CatalogError{Op: "search", Channel: query, Err: ErrChannelNotFound}
	}

	channels := make([]ChannelInfo, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}
		info := ChannelInfo{
			ID:          item.Snippet.ChannelId,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
			info.Thumbnail = item.Snippet.Thumbnails.Default.Url
		}
		channels = append(channels, info)
	}

	return channels, nil
}

// resolveUploads resolves a channel to its uploads playlist ID and title.
func (c *Client) resolveUploads(ctx context.Context, channelID string) (string, string, error) {
	if err := c.wait(ctx); err != nil {
		return "", "", err
	}

	resp, err := c.service.Channels.List([]string{"contentDetails", "snippet"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return "", "", classifyAPIError(err)
	}

	if len(resp.Items) == 0 {
		return "", "", ErrChannelNotFound
	}

	channel := resp.Items[0]
	uploadsID := ""
	if channel.ContentDetails != nil && channel.ContentDetails.RelatedPlaylists != nil {
		uploadsID = channel.ContentDetails.RelatedPlaylists.Uploads
	}
	if uploadsID == "" {
		return "", "", ErrChannelNotFound
	}

	channelTitle := ""
	if channel.Snippet != nil {
		channelTitle = channel.Snippet.Title
	}

	return uploadsID, channelTitle, nil
}

// listUploads returns the video IDs of the most recent uploads.
func (c *Client) listUploads(ctx context.Context, uploadsID string, maxResults int64) ([]string, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(uploadsID).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	videoIDs := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
			videoIDs = append(videoIDs, item.ContentDetails.VideoId)
		}
	}

	return videoIDs, nil
}

// fetchShortMetadata fetches metadata for all IDs in one batched call and
// keeps only short-form items.
func (c *Client) fetchShortMetadata(ctx context.Context, videoIDs []string) ([]ShortVideo, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.service.Videos.List([]string{"contentDetails", "snippet"}).
		Id(videoIDs...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	shorts := make([]ShortVideo, 0, len(resp.Items))
	for _, video := range resp.Items {
		if video.ContentDetails == nil || !IsShortForm(video.ContentDetails.Duration) {
			continue
		}

		short := ShortVideo{ID: video.Id}
		if video.Snippet != nil {
			short.Title = video.Snippet.Title
			short.ChannelTitle = video.Snippet.ChannelTitle
			short.Description = video.Snippet.Description
			if video.Snippet.Thumbnails != nil && video.Snippet.Thumbnails.High != nil {
				short.Thumbnail = video.Snippet.Thumbnails.High.Url
			}
			if t, err := time.Parse(time.RFC3339, video.Snippet.PublishedAt); err == nil {
				short.PublishedAt = t
			}
		}

		shorts = append(shorts, short)
	}

	return shorts, nil
}

// wait blocks until the rate limiter admits another upstream call.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return nil
}

// classifyAPIError maps an upstream failure onto the catalog error taxonomy:
// a structured API error becomes an UpstreamError, anything else is a fetch
// failure.
func classifyAPIError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		reason := ""
		if len(gerr.Errors) > 0 {
			reason = gerr.Errors[0].Reason
		}
		return &UpstreamError{Message: gerr.Message, Reason: reason}
	}
	return fmt.Errorf("%w: %v", ErrFetchFailed, err)
}
