package player

import (
	"ziktok/catalog"
)

// HintStore persists the one-time swipe hint dismissal.
type HintStore interface {
	// SeenSwipeHint reports whether the hint was already dismissed.
	SeenSwipeHint() bool
	// MarkSwipeHintSeen records the dismissal so the hint never reappears.
	MarkSwipeHintSeen()
}

// Carousel keeps a sliding window of live player instances over the feed:
// the previous, current and next entries, clipped to feed bounds. After any
// settle point exactly the instance at the current index is playing and
// every other live instance is paused.
type Carousel struct {
	host   Host
	device DeviceProfile
	hints  HintStore

	feed      []catalog.ShortVideo
	current   int
	instances map[int]string // feed index -> instance ID

	muted   bool
	playing bool

	advances      int
	hintDismissed bool
}

// NewCarousel creates an empty carousel. The default mute state follows the
// device: touch-capable devices start muted so autoplay is permitted.
func NewCarousel(host Host, device DeviceProfile) *Carousel {
	return &Carousel{
		host:      host,
		device:    device,
		instances: make(map[int]string),
		muted:     device.TouchCapable(),
	}
}

// SetHintStore attaches hint persistence. Call before SetFeed.
func (c *Carousel) SetHintStore(hints HintStore) {
	c.hints = hints
	c.hintDismissed = hints != nil && hints.SeenSwipeHint()
}

// SetFeed replaces the feed wholesale, resets the position to the start and
// rebuilds the window.
func (c *Carousel) SetFeed(feed []catalog.ShortVideo) {
	for index, id := range c.instances {
		c.host.Destroy(id)
		delete(c.instances, index)
	}

	c.feed = feed
	c.current = 0

	if len(c.feed) == 0 {
		c.playing = false
		return
	}

	c.materializeWindow()
	c.syncPlayback()
}

// Advance moves the current position one step in the given direction.
// Advancing past either end of the feed is a no-op returning false, with no
// instance churn. On success the window slides: the instance that fell out
// is destroyed, the newly exposed neighbor is materialized, every
// non-current instance is paused and the current one plays.
func (c *Carousel) Advance(direction Direction) bool {
	switch direction {
	case DirectionNext:
		if c.current >= len(c.feed)-1 {
			return false
		}
		c.current++
	case DirectionPrev:
		if c.current <= 0 {
			return false
		}
		c.current--
	default:
		return false
	}

	// Reclaim instances that slid out of the window.
	for index, id := range c.instances {
		if index < c.current-1 || index > c.current+1 {
			c.host.Destroy(id)
			delete(c.instances, index)
		}
	}

	c.materializeWindow()
	c.syncPlayback()

	c.advances++
	if c.advances >= 2 {
		c.dismissHint()
	}

	return true
}

// materializeWindow creates any missing instances for the ±1 neighborhood
// of the current index, clipped to feed bounds.
func (c *Carousel) materializeWindow() {
	for index := c.current - 1; index <= c.current+1; index++ {
		if index < 0 || index >= len(c.feed) {
			continue
		}
		if _, ok := c.instances[index]; ok {
			continue
		}

		video := c.feed[index]
		c.instances[index] = c.host.Create(index, video, c.embedOptions(video))
	}
}

// embedOptions builds creation options for a video. A touch-capable device
// is always instantiated muted regardless of the stored mute flag; autoplay
// compliance overrides preference at creation, the user can unmute after.
func (c *Carousel) embedOptions(video catalog.ShortVideo) EmbedOptions {
	return EmbedOptions{
		VideoID:  video.ID,
		Autoplay: true,
		Muted:    c.muted || c.device.TouchCapable(),
		Loop:     true,
	}
}

// syncPlayback pauses every non-current instance and plays the current one.
func (c *Carousel) syncPlayback() {
	for index, id := range c.instances {
		if index != c.current {
			c.host.Send(id, CmdPause)
		}
	}
	if id, ok := c.instances[c.current]; ok {
		c.host.Send(id, CmdPlay)
		c.playing = true
	}
}

// ToggleMute flips the global mute flag and re-applies it to every live
// instance. Returns the new state.
func (c *Carousel) ToggleMute() bool {
	c.muted = !c.muted

	cmd := CmdUnmute
	if c.muted {
		cmd = CmdMute
	}
	for _, id := range c.instances {
		c.host.Send(id, cmd)
	}

	return c.muted
}

// SetMuted overrides the mute flag without sending commands. Used when
// applying a stored preference before any instance exists.
func (c *Carousel) SetMuted(muted bool) {
	c.muted = muted
}

// Muted returns the global mute flag.
func (c *Carousel) Muted() bool {
	return c.muted
}

// TogglePlayPause flips playback of the current instance only.
func (c *Carousel) TogglePlayPause() {
	id, ok := c.instances[c.current]
	if !ok {
		return
	}

	if c.playing {
		c.host.Send(id, CmdPause)
		c.playing = false
	} else {
		c.host.Send(id, CmdPlay)
		c.playing = true
	}
}

// Playing reports whether the current instance is playing.
func (c *Carousel) Playing() bool {
	return c.playing
}

// CurrentIndex returns the current feed position.
func (c *Carousel) CurrentIndex() int {
	return c.current
}

// Current returns the current feed entry, or false when the feed is empty.
func (c *Carousel) Current() (catalog.ShortVideo, bool) {
	if c.current < 0 || c.current >= len(c.feed) {
		return catalog.ShortVideo{}, false
	}
	return c.feed[c.current], true
}

// Len returns the feed length.
func (c *Carousel) Len() int {
	return len(c.feed)
}

// LiveInstances returns a copy of the live-instance registry.
func (c *Carousel) LiveInstances() map[int]string {
	instances := make(map[int]string, len(c.instances))
	for index, id := range c.instances {
		instances[index] = id
	}
	return instances
}

// HintDismissed reports whether the swipe hint has been dismissed.
func (c *Carousel) HintDismissed() bool {
	return c.hintDismissed
}

// DismissHint dismisses the hint immediately, e.g. on the first touch swipe.
func (c *Carousel) DismissHint() {
	c.dismissHint()
}

func (c *Carousel) dismissHint() {
	if c.hintDismissed {
		return
	}
	c.hintDismissed = true
	if c.hints != nil {
		c.hints.MarkSwipeHintSeen()
	}
}
