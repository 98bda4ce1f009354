package app

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ziktok/catalog"
	"ziktok/feed"
	"ziktok/player"
	"ziktok/store"
)

// fakeHost tracks live player instances.
type fakeHost struct {
	nextID int
	live   map[string]bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{live: make(map[string]bool)}
}

func (h *fakeHost) Create(index int, video catalog.ShortVideo, opts player.EmbedOptions) string {
	h.nextID++
	id := fmt.Sprintf("p%d", h.nextID)
	h.live[id] = true
	return id
}

func (h *fakeHost) Destroy(instanceID string)                 { delete(h.live, instanceID) }
func (h *fakeHost) Send(instanceID string, cmd player.Command) {}

// fixedProvider returns the same shorts for every channel.
type fixedProvider struct {
	perChannel int
}

func (p *fixedProvider) GetShorts(ctx context.Context, channelID string, maxResults int64) (*catalog.ShortsResult, error) {
	shorts := make([]catalog.ShortVideo, p.perChannel)
	for i := range shorts {
		shorts[i] = catalog.ShortVideo{
			ID:          fmt.Sprintf("%s-v%d", channelID, i),
			PublishedAt: time.Date(2024, 3, 1, 12, i, 0, 0, time.UTC),
		}
	}
	return &catalog.ShortsResult{Shorts: shorts, ChannelID: channelID}, nil
}

func newTestApp(t *testing.T) (*App, *fakeHost, *store.Store) {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	host := newFakeHost()
	agg := feed.New(&fixedProvider{perChannel: 4})
	a := New(st, agg, host, player.DeviceProfile{UserAgent: "Mozilla/5.0 (X11; Linux x86_64)"})
	return a, host, st
}

func TestApp_AddChannelLoadsFeed(t *testing.T) {
	a, _, st := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.AddChannel(ctx, store.Channel{ID: "UC1", Title: "First"}))

	require.Len(t, st.Channels(), 1)
	require.Equal(t, 4, a.Carousel().Len())
	require.True(t, a.Carousel().Playing())
}

func TestApp_RemoveLastChannelEmptiesFeed(t *testing.T) {
	a, host, _ := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.AddChannel(ctx, store.Channel{ID: "UC1", Title: "First"}))
	require.NoError(t, a.RemoveChannel(ctx, "UC1"))

	require.Equal(t, 0, a.Carousel().Len())
	require.False(t, a.Carousel().Playing())
	require.Empty(t, host.live, "live instances remained after the feed emptied")
}

func TestApp_SetSortModePersists(t *testing.T) {
	a, _, st := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.AddChannel(ctx, store.Channel{ID: "UC1", Title: "First"}))
	require.NoError(t, a.SetSortMode(ctx, feed.SortByRandom))

	require.Equal(t, store.SortModeRandom, st.SortMode())
	require.Equal(t, 0, a.Carousel().CurrentIndex(), "resort did not reset the position")

	require.Error(t, a.SetSortMode(ctx, feed.SortMode("bogus")))
	require.Equal(t, store.SortModeRandom, st.SortMode())
}

func TestApp_ToggleMutePersists(t *testing.T) {
	a, _, st := newTestApp(t)
	ctx := context.Background()

	muted, err := a.ToggleMute(ctx)
	require.NoError(t, err)
	require.True(t, muted)
	require.True(t, st.Muted())

	muted, err = a.ToggleMute(ctx)
	require.NoError(t, err)
	require.False(t, muted)
	require.False(t, st.Muted())
}

func TestApp_MutePreferenceRestored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	st, err := store.New(path)
	require.NoError(t, err)
	require.NoError(t, st.SetMuted(ctx, true))

	agg := feed.New(&fixedProvider{perChannel: 1})
	a := New(st, agg, newFakeHost(), player.DeviceProfile{UserAgent: "Mozilla/5.0 (X11; Linux x86_64)"})

	require.True(t, a.Carousel().Muted())
}

func TestApp_HandleKey(t *testing.T) {
	a, _, _ := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.AddChannel(ctx, store.Channel{ID: "UC1", Title: "First"}))

	handled, err := a.HandleKey(ctx, "j", false)
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, 1, a.Carousel().CurrentIndex())

	handled, err = a.HandleKey(ctx, "k", false)
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, 0, a.Carousel().CurrentIndex())

	handled, err = a.HandleKey(ctx, "x", false)
	require.NoError(t, err)
	require.False(t, handled)

	// Keys inside a text input never reach the carousel.
	handled, err = a.HandleKey(ctx, "j", true)
	require.NoError(t, err)
	require.False(t, handled)
	require.Equal(t, 0, a.Carousel().CurrentIndex())
}

func TestApp_TouchSwipe(t *testing.T) {
	a, _, st := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.AddChannel(ctx, store.Channel{ID: "UC1", Title: "First"}))

	a.TouchStart(500)
	require.Equal(t, -80.0, a.TouchMove(420))
	a.TouchEnd()

	require.Equal(t, 1, a.Carousel().CurrentIndex())
	require.True(t, a.Carousel().HintDismissed(), "first committed swipe must dismiss the hint")
	require.True(t, st.SeenSwipeHint())

	// A short drag reverts without advancing.
	a.TouchStart(500)
	a.TouchMove(480)
	a.TouchEnd()
	require.Equal(t, 1, a.Carousel().CurrentIndex())
}

func TestApp_ImportReloads(t *testing.T) {
	a, _, _ := newTestApp(t)
	ctx := context.Background()

	payload := []byte(`{"channels": [{"id": "UC9", "title": "Imported"}], "sortMode": "date", "isMuted": false, "version": "1.0"}`)
	require.NoError(t, a.Import(ctx, payload))
	require.Equal(t, 4, a.Carousel().Len())

	// An invalid payload changes nothing.
	require.ErrorIs(t, a.Import(ctx, []byte("{bad")), store.ErrInvalidImport)
	require.Equal(t, 4, a.Carousel().Len())
	require.Len(t, a.Store().Channels(), 1)
}

func TestApp_ExportRoundTrip(t *testing.T) {
	a, _, _ := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.AddChannel(ctx, store.Channel{ID: "UC1", Title: "First"}))

	data, err := a.Export()
	require.NoError(t, err)

	b, _, _ := newTestApp(t)
	require.NoError(t, b.Import(ctx, data))
	require.Len(t, b.Store().Channels(), 1)
	require.Equal(t, 4, b.Carousel().Len())
}
