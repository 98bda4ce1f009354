// Package feed merges the short-form uploads of all subscribed channels
// into one ordered collection.
package feed

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"

	"ziktok/catalog"
	"ziktok/store"
)

// Sentinel errors for feed loading.
var (
	// ErrNoVideos indicates every channel contributed zero videos.
	ErrNoVideos = errors.New("feed: no videos available")
	// ErrLoadInProgress indicates a load was dropped because another one
	// is still running. Dropped callers must re-trigger; they are not queued.
	ErrLoadInProgress = errors.New("feed: load already in progress")
)

// Defaults for the per-channel fetch quota.
const (
	DefaultTargetTotal   = 100
	DefaultMinPerChannel = 10
)

// ShortsProvider is the slice of the catalog the aggregator needs.
// Satisfied by catalog.Client, catalog.Cached, and the proxy API client.
type ShortsProvider interface {
	GetShorts(ctx context.Context, channelID string, maxResults int64) (*catalog.ShortsResult, error)
}

// Aggregator fans fetches out across all subscribed channels and merges the
// results under the active sort policy. A single-flight flag drops (not
// queues) concurrent loads.
type Aggregator struct {
	provider      ShortsProvider
	targetTotal   int
	minPerChannel int

	loading atomic.Bool

	mu     sync.Mutex
	videos []catalog.ShortVideo
}

// New creates an aggregator with the default quota tuning.
func New(provider ShortsProvider) *Aggregator {
	return &Aggregator{
		provider:      provider,
		targetTotal:   DefaultTargetTotal,
		minPerChannel: DefaultMinPerChannel,
	}
}

// SetQuota overrides the target total and per-channel floor.
func (a *Aggregator) SetQuota(targetTotal, minPerChannel int) {
	a.targetTotal = targetTotal
	a.minPerChannel = minPerChannel
}

// Quota computes how many videos to request per channel: the target total
// split evenly, but never below the floor, so sparse subscriptions get
// deeper channels and dense ones never starve any single channel.
func (a *Aggregator) Quota(channelCount int) int {
	if channelCount <= 0 {
		return 0
	}
	quota := a.targetTotal / channelCount
	if quota < a.minPerChannel {
		quota = a.minPerChannel
	}
	return quota
}

// channelResult is the settled outcome of one channel's fetch. Collecting
// these explicitly makes the discard-failures policy visible below.
type channelResult struct {
	channelID string
	shorts    []catalog.ShortVideo
	err       error
}

// LoadAll fetches every channel concurrently, merges the successes in
// channel order, and applies the sort policy. A channel whose fetch fails
// contributes nothing and does not abort the others. If no channel
// contributes any videos the previous feed is cleared and ErrNoVideos is
// returned. A call arriving while another load runs returns
// ErrLoadInProgress immediately.
func (a *Aggregator) LoadAll(ctx context.Context, channels []store.Channel, mode SortMode) ([]catalog.ShortVideo, error) {
	if !a.loading.CompareAndSwap(false, true) {
		return nil, ErrLoadInProgress
	}
	defer a.loading.Store(false)

	quota := a.Quota(len(channels))
	log.Printf("feed: fetching %d videos from each of %d channels (target: ~%d total)",
		quota, len(channels), a.targetTotal)

	results := make([]channelResult, len(channels))
	var wg sync.WaitGroup
	for i, ch := range channels {
		wg.Add(1)
		go func(i int, channelID string) {
			defer wg.Done()
			result, err := a.provider.GetShorts(ctx, channelID, int64(quota))
			if err != nil {
				results[i] = channelResult{channelID: channelID, err: err}
				return
			}
			results[i] = channelResult{channelID: channelID, shorts: result.Shorts}
		}(i, ch.ID)
	}
	wg.Wait()

	var videos []catalog.ShortVideo
	for _, r := range results {
		if r.err != nil {
			// Per-channel failures shrink the feed instead of failing it.
			log.Printf("feed: channel %s failed, skipping: %v", r.channelID, r.err)
			continue
		}
		videos = append(videos, r.shorts...)
	}

	if len(videos) == 0 {
		a.setVideos(nil)
		return nil, ErrNoVideos
	}

	Sort(videos, mode)
	a.setVideos(videos)

	log.Printf("feed: loaded %d total shorts from %d channels", len(videos), len(channels))
	return videos, nil
}

// Resort reorders the already-loaded feed under a new sort policy without
// refetching, and returns the reordered feed.
func (a *Aggregator) Resort(mode SortMode) []catalog.ShortVideo {
	a.mu.Lock()
	defer a.mu.Unlock()
	Sort(a.videos, mode)
	return a.videos
}

// Videos returns the most recently loaded feed.
func (a *Aggregator) Videos() []catalog.ShortVideo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.videos
}

func (a *Aggregator) setVideos(videos []catalog.ShortVideo) {
	a.mu.Lock()
	a.videos = videos
	a.mu.Unlock()
}
