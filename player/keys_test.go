package player

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{"ArrowDown", ActionNext},
		{"ArrowRight", ActionNext},
		{"j", ActionNext},
		{"J", ActionNext},
		{"ArrowUp", ActionPrev},
		{"ArrowLeft", ActionPrev},
		{"k", ActionPrev},
		{"K", ActionPrev},
		{"m", ActionToggleMute},
		{"M", ActionToggleMute},
		{" ", ActionTogglePlay},
		{"Enter", ActionNone},
		{"x", ActionNone},
		{"", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			require.Equal(t, tt.want, ActionForKey(tt.key, false))
		})
	}
}

func TestActionForKey_TextInput(t *testing.T) {
	// Typing in a search box must never drive the carousel.
	for _, key := range []string{"j", "k", "m", " ", "ArrowDown"} {
		require.Equal(t, ActionNone, ActionForKey(key, true), "key %q handled inside text input", key)
	}
}
