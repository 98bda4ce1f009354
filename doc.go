// Package ziktok provides a vertical short-form video feed for YouTube.
//
// It assembles the short-form uploads of a set of subscribed channels into
// one scrollable feed, served through a small caching proxy in front of the
// YouTube Data API.
//
// Overview
//
// The module splits into a server side and a client side:
//
//   - catalog: YouTube Data API access, shorts assembly, TTL caching
//   - server: the HTTP proxy exposing the catalog
//   - client: HTTP client for the proxy, usable as a feed source
//   - feed: concurrent fan-out across channels and feed ordering
//   - player: the windowed player carousel, gestures and key bindings
//   - store: durable subscription list and preferences
//   - app: wiring of store, feed and carousel into one session
//
// Quick Start
//
// Fetch a channel's shorts directly from the YouTube API:
//
//	ctx := context.Background()
//	cat, err := catalog.NewClient(ctx, apiKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := cat.GetShorts(ctx, "UCxxxxxxxxxxxxxxx", 50)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, short := range result.Shorts {
//		fmt.Println(short.Title)
//	}
//
// Build a merged feed across several channels:
//
//	agg := feed.New(catalog.NewCached(cat, catalog.DefaultCacheTTL))
//	videos, err := agg.LoadAll(ctx, channels, feed.SortByDate)
//
// Configuration
//
// ziktok uses a configuration system that loads settings from multiple sources:
//
//   1. Environment variables (highest priority)
//   2. Config file (ziktok.json or ~/.config/ziktok/ziktok.json)
//   3. Default values (lowest priority)
//
// Environment variables:
//
//   - YOUTUBE_API_KEY: YouTube Data API v3 key
//   - PORT: Proxy listen port
//   - ZIKTOK_STATIC_DIR: Directory served at the HTTP root
//   - ZIKTOK_STORE_PATH: Path of the subscription store file
//   - ZIKTOK_PROXY_URL: Base URL clients use to reach the proxy
//   - ZIKTOK_CACHE_TTL: Freshness window for cached shorts results
//   - ZIKTOK_UPSTREAM_QPS: YouTube API request rate limit (0 = off)
//   - ZIKTOK_FEED_TARGET_TOTAL: Total feed size split across channels
//   - ZIKTOK_FEED_MIN_PER_CHANNEL: Per-channel fetch floor
//
// Error Handling
//
// All operations return errors that implement standard Go error handling:
//
// Checking for sentinel errors:
//
//	if errors.Is(err, ziktok.ErrChannelNotFound) {
//		fmt.Println("Channel not found")
//	}
//
// Extracting wrapped error details:
//
//	var upstreamErr *ziktok.UpstreamError
//	if errors.As(err, &upstreamErr) {
//		fmt.Printf("YouTube API error: %s (%s)\n", upstreamErr.Message, upstreamErr.Reason)
//	}
//
// Advanced Usage
//
// For more control, use the sub-packages directly:
//
//   - catalog: API access and caching
//   - feed: fan-out and ordering policy
//   - player: carousel state machine, gestures, key bindings
//   - store: subscription persistence and settings import/export
//
// Dependencies
//
// The server side requires a YouTube Data API v3 key, supplied via
// YOUTUBE_API_KEY or the config file.
package ziktok
