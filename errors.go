package ziktok

import (
	"ziktok/catalog"
	"ziktok/feed"
	"ziktok/store"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, catalog.ErrChannelNotFound) {
//		fmt.Println("Channel not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var catErr *catalog.CatalogError
//	if errors.As(err, &catErr) {
//		fmt.Printf("%s failed for %s: %v\n", catErr.Op, catErr.Channel, catErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// CatalogError wraps errors during catalog operations.
	CatalogError = catalog.CatalogError
	// UpstreamError carries a structured YouTube API failure.
	UpstreamError = catalog.UpstreamError
	// StoreError wraps errors during store operations.
	StoreError = store.StoreError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrChannelNotFound indicates the channel does not exist upstream.
	ErrChannelNotFound = catalog.ErrChannelNotFound
	// ErrFetchFailed indicates an upstream fetch failed.
	ErrFetchFailed = catalog.ErrFetchFailed

	// Feed errors
	// ErrNoVideos indicates every subscribed channel contributed zero videos.
	ErrNoVideos = feed.ErrNoVideos
	// ErrLoadInProgress indicates a feed load was dropped because one is running.
	ErrLoadInProgress = feed.ErrLoadInProgress

	// Store errors
	// ErrNotFound indicates the channel is not subscribed.
	ErrNotFound = store.ErrNotFound
	// ErrAlreadyExists indicates the channel is already subscribed.
	ErrAlreadyExists = store.ErrAlreadyExists
	// ErrInvalidImport indicates a malformed settings payload.
	ErrInvalidImport = store.ErrInvalidImport
	// ErrStorageCorrupt indicates data corruption was detected.
	ErrStorageCorrupt = store.ErrStorageCorrupt
)
