// Package catalog provides access to the YouTube video catalog: resolving
// channels, assembling their short-form uploads, and searching for channels.
package catalog

import "time"

// ShortVideo is a single short-form catalog item, projected down to the
// fields the feed client renders. Immutable once fetched.
type ShortVideo struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"id"`
	// Title is the video title.
	Title string `json:"title"`
	// ChannelTitle is the display name of the publishing channel.
	ChannelTitle string `json:"channelTitle"`
	// PublishedAt is when the video was published.
	PublishedAt time.Time `json:"publishedAt"`
	// Thumbnail is the URL of the high-resolution thumbnail.
	Thumbnail string `json:"thumbnail"`
	// Description is the video description.
	Description string `json:"description"`
}

// ShortsResult is the assembled per-channel result served to feed clients
// and stored in the proxy cache.
type ShortsResult struct {
	Shorts       []ShortVideo `json:"shorts"`
	ChannelID    string       `json:"channelId"`
	ChannelTitle string       `json:"channelTitle"`
}

// ChannelInfo describes a channel returned by search.
type ChannelInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
}
