package feed

import (
	"math/rand"
	"sort"

	"ziktok/catalog"
)

// SortMode selects how the merged feed is ordered.
type SortMode string

const (
	// SortByDate orders by publish date, newest first.
	SortByDate SortMode = "date"
	// SortByRandom applies a uniform shuffle, re-rolled on every application.
	SortByRandom SortMode = "random"
)

// Valid reports whether the mode is one of the known sort modes.
func (m SortMode) Valid() bool {
	return m == SortByDate || m == SortByRandom
}

// Sort orders videos in place under the given mode. An unknown mode leaves
// the slice untouched.
func Sort(videos []catalog.ShortVideo, mode SortMode) {
	switch mode {
	case SortByDate:
		sort.Slice(videos, func(i, j int) bool {
			return videos[i].PublishedAt.After(videos[j].PublishedAt)
		})
	case SortByRandom:
		rand.Shuffle(len(videos), func(i, j int) {
			videos[i], videos[j] = videos[j], videos[i]
		})
	}
}
