package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations.
var (
	// ErrChannelNotFound indicates the channel does not exist or a search
	// returned no results.
	ErrChannelNotFound = errors.New("catalog: channel not found")
	// ErrFetchFailed indicates a transport or parse failure talking to the
	// upstream catalog API.
	ErrFetchFailed = errors.New("catalog: fetch failed")
)

// UpstreamError is a structured failure reported by the catalog API itself,
// as opposed to a transport failure. Use errors.As() to extract it:
//
//	var upErr *catalog.UpstreamError
//	if errors.As(err, &upErr) {
//		fmt.Printf("API error: %s (%s)\n", upErr.Message, upErr.Reason)
//	}
type UpstreamError struct {
	// Message is the human-readable error message from the API.
	Message string
	// Reason is the machine-readable reason code, if reported.
	Reason string
}

// Error returns a string representation of the upstream error.
func (e *UpstreamError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("catalog: upstream error: %s (reason: %s)", e.Message, e.Reason)
	}
	return fmt.Sprintf("catalog: upstream error: %s", e.Message)
}

// CatalogError wraps catalog errors with context about which operation and
// channel failed. Use errors.As() to extract operation details.
type CatalogError struct {
	// Op is the operation that failed ("resolve", "list", "metadata", "search").
	Op string
	// Channel is the channel ID or search query involved.
	Channel string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the catalog error.
func (e *CatalogError) Error() string {
	return "catalog: " + e.Op + " " + e.Channel + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *CatalogError) Unwrap() error { return e.Err }
