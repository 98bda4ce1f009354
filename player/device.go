package player

import "regexp"

var touchAgentRegex = regexp.MustCompile(`(?i)iPhone|iPad|iPod|Android`)

// DeviceProfile describes the host device as far as autoplay policy cares.
type DeviceProfile struct {
	// UserAgent is the browser/runtime user agent string.
	UserAgent string
	// MaxTouchPoints is the number of simultaneous touch points supported.
	MaxTouchPoints int
}

// TouchCapable reports whether the device should be treated as
// touch-capable: a mobile user agent, or more than 2 touch points.
// Touch-capable devices must start playback muted to satisfy autoplay
// policies.
func (d DeviceProfile) TouchCapable() bool {
	return touchAgentRegex.MatchString(d.UserAgent) || d.MaxTouchPoints > 2
}
