// Package player drives a windowed carousel of embedded video players:
// at most three live instances around the current feed position, with
// exactly one playing.
package player

import (
	"fmt"
	"net/url"

	"ziktok/catalog"
)

// Command is an asynchronous control message for a live player instance.
// Delivery is best-effort; a command is not guaranteed to land before the
// next state change.
type Command string

// Commands understood by the embedded player.
const (
	CmdPlay   Command = "playVideo"
	CmdPause  Command = "pauseVideo"
	CmdMute   Command = "mute"
	CmdUnmute Command = "unMute"
)

// Host materializes and controls player instances on behalf of the
// carousel. It abstracts over whatever cross-boundary messaging the
// embedded player demands, so carousel logic is testable without one.
type Host interface {
	// Create materializes a player for the video at the given feed index
	// and returns an opaque instance ID.
	Create(index int, video catalog.ShortVideo, opts EmbedOptions) string
	// Destroy tears down a live instance.
	Destroy(instanceID string)
	// Send delivers a command to a live instance, best-effort.
	Send(instanceID string, cmd Command)
}

// EmbedOptions parameterize the embedded player at creation time.
type EmbedOptions struct {
	// VideoID selects the video to embed.
	VideoID string
	// Autoplay starts playback immediately.
	Autoplay bool
	// Muted starts the player muted. Required for autoplay on touch devices.
	Muted bool
	// Loop repeats the video; the embed API requires the playlist
	// parameter to be set to the same video for looping to work.
	Loop bool
}

// URL builds the embed URL for these options.
func (o EmbedOptions) URL() string {
	params := url.Values{}
	params.Set("enablejsapi", "1")
	params.Set("autoplay", boolParam(o.Autoplay))
	params.Set("mute", boolParam(o.Muted))
	params.Set("controls", "0")
	params.Set("modestbranding", "1")
	params.Set("rel", "0")
	params.Set("cc_load_policy", "1")
	params.Set("playsinline", "1")
	if o.Loop {
		params.Set("loop", "1")
		params.Set("playlist", o.VideoID)
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s?%s", o.VideoID, params.Encode())
}

func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
