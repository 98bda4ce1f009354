// Package app wires the subscription store, the feed aggregator and the
// player carousel into one client session.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ziktok/feed"
	"ziktok/player"
	"ziktok/store"
)

// App is the client session. It owns the durable store, the feed
// aggregator and the carousel, and keeps them consistent: mutating the
// subscription list reloads the feed, preference changes are persisted as
// they happen.
type App struct {
	store    *store.Store
	agg      *feed.Aggregator
	carousel *player.Carousel
	gesture  player.Gesture
}

// New assembles a session. The carousel picks up the stored mute
// preference unless the device forces mute, and the stored swipe hint
// dismissal.
func New(st *store.Store, agg *feed.Aggregator, host player.Host, device player.DeviceProfile) *App {
	carousel := player.NewCarousel(host, device)
	carousel.SetHintStore(hintAdapter{st})
	if !device.TouchCapable() {
		carousel.SetMuted(st.Muted())
	}

	return &App{
		store:    st,
		agg:      agg,
		carousel: carousel,
	}
}

// hintAdapter bridges the store's context-taking persistence onto the
// carousel's synchronous hint interface.
type hintAdapter struct {
	store *store.Store
}

func (h hintAdapter) SeenSwipeHint() bool { return h.store.SeenSwipeHint() }

func (h hintAdapter) MarkSwipeHintSeen() {
	if err := h.store.MarkSwipeHintSeen(context.Background()); err != nil {
		log.Printf("app: persist swipe hint: %v", err)
	}
}

// Carousel exposes the player carousel for direct control.
func (a *App) Carousel() *player.Carousel { return a.carousel }

// Store exposes the subscription store.
func (a *App) Store() *store.Store { return a.store }

// Reload refetches the feed for the current subscriptions and resets the
// carousel to the top. With no subscriptions or no videos the carousel is
// emptied and the error, if any, reported.
func (a *App) Reload(ctx context.Context) error {
	channels := a.store.Channels()
	if len(channels) == 0 {
		a.carousel.SetFeed(nil)
		return nil
	}

	mode := feed.SortMode(a.store.SortMode())
	videos, err := a.agg.LoadAll(ctx, channels, mode)
	if err != nil {
		if errors.Is(err, feed.ErrLoadInProgress) {
			return err
		}
		a.carousel.SetFeed(nil)
		return err
	}

	a.carousel.SetFeed(videos)
	return nil
}

// AddChannel subscribes a channel and reloads the feed.
func (a *App) AddChannel(ctx context.Context, channel store.Channel) error {
	if err := a.store.AddChannel(ctx, channel); err != nil {
		return err
	}
	return a.Reload(ctx)
}

// RemoveChannel unsubscribes a channel and reloads the feed. Removing the
// last channel empties the carousel.
func (a *App) RemoveChannel(ctx context.Context, id string) error {
	if err := a.store.RemoveChannel(ctx, id); err != nil {
		return err
	}
	return a.Reload(ctx)
}

// SetSortMode persists the new mode and reorders the already-loaded feed
// in place, without refetching, resetting the position to the top.
func (a *App) SetSortMode(ctx context.Context, mode feed.SortMode) error {
	if !mode.Valid() {
		return fmt.Errorf("app: unknown sort mode %q", mode)
	}
	if err := a.store.SetSortMode(ctx, string(mode)); err != nil {
		return err
	}

	a.carousel.SetFeed(a.agg.Resort(mode))
	return nil
}

// ToggleMute flips mute on the carousel and persists the preference.
func (a *App) ToggleMute(ctx context.Context) (bool, error) {
	muted := a.carousel.ToggleMute()
	if err := a.store.SetMuted(ctx, muted); err != nil {
		return muted, err
	}
	return muted, nil
}

// HandleKey routes a key press into the carousel. Returns true when the
// key was handled.
func (a *App) HandleKey(ctx context.Context, key string, inTextInput bool) (bool, error) {
	switch player.ActionForKey(key, inTextInput) {
	case player.ActionNext:
		a.carousel.Advance(player.DirectionNext)
	case player.ActionPrev:
		a.carousel.Advance(player.DirectionPrev)
	case player.ActionToggleMute:
		_, err := a.ToggleMute(ctx)
		return true, err
	case player.ActionTogglePlay:
		a.carousel.TogglePlayPause()
	default:
		return false, nil
	}
	return true, nil
}

// TouchStart begins a vertical drag at the given position.
func (a *App) TouchStart(y float64) {
	a.gesture.Begin(y)
}

// TouchMove updates the drag and returns the visual offset for the active
// slide.
func (a *App) TouchMove(y float64) float64 {
	return a.gesture.Move(y)
}

// TouchEnd settles the drag. A committed swipe advances the carousel and
// dismisses the hint.
func (a *App) TouchEnd() {
	direction := a.gesture.End()
	if direction == player.DirectionNone {
		return
	}
	if a.carousel.Advance(direction) {
		a.carousel.DismissHint()
	}
}

// Export serializes the subscription list and preferences.
func (a *App) Export() ([]byte, error) {
	return a.store.Export()
}

// Import applies an exported settings payload and reloads the feed. An
// invalid payload leaves both the store and the feed untouched.
func (a *App) Import(ctx context.Context, data []byte) error {
	if err := a.store.Import(ctx, data); err != nil {
		return err
	}
	return a.Reload(ctx)
}

var _ player.HintStore = hintAdapter{}
