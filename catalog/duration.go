package catalog

import (
	"regexp"
	"strconv"
)

// ShortFormMaxSeconds is the duration ceiling for a video to count as short-form.
const ShortFormMaxSeconds = 60

// durationRegex matches ISO 8601 durations of the form PT[nH][nM][nS].
// Every component is optional; the YouTube API never emits fractional parts here.
var durationRegex = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts an ISO 8601 duration string (e.g. "PT1M30S") to
// total seconds. Missing components count as zero and malformed input yields
// zero rather than an error; upstream data is expected to be well-formed and
// a zero-second video is filtered the same way a short one is.
func ParseDuration(duration string) int {
	matches := durationRegex.FindStringSubmatch(duration)
	if matches == nil {
		return 0
	}

	hours := parseIntOrZero(matches[1])
	minutes := parseIntOrZero(matches[2])
	seconds := parseIntOrZero(matches[3])

	return hours*3600 + minutes*60 + seconds
}

// IsShortForm reports whether the given ISO 8601 duration qualifies as
// short-form (at most 60 seconds).
func IsShortForm(duration string) bool {
	return ParseDuration(duration) <= ShortFormMaxSeconds
}

func parseIntOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
