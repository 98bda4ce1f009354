package player

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGesture_SwipeUp(t *testing.T) {
	var g Gesture
	g.Begin(500)
	require.Equal(t, -60.0, g.Move(440), "visual offset follows the finger")
	require.Equal(t, DirectionNext, g.End())
}

func TestGesture_SwipeDown(t *testing.T) {
	var g Gesture
	g.Begin(300)
	g.Move(400)
	require.Equal(t, DirectionPrev, g.End())
}

func TestGesture_BelowThreshold(t *testing.T) {
	var g Gesture
	g.Begin(500)
	g.Move(460)
	require.Equal(t, DirectionNone, g.End(), "a 40 unit drag must not commit")

	g.Begin(500)
	g.Move(540)
	require.Equal(t, DirectionNone, g.End())
}

func TestGesture_ExactThreshold(t *testing.T) {
	var g Gesture
	g.Begin(500)
	g.Move(500 - SwipeThreshold)
	require.Equal(t, DirectionNone, g.End(), "threshold is exclusive")
}

func TestGesture_EndWithoutBegin(t *testing.T) {
	var g Gesture
	require.Equal(t, 0.0, g.Move(100))
	require.Equal(t, DirectionNone, g.End())
}

func TestGesture_Reusable(t *testing.T) {
	var g Gesture
	g.Begin(500)
	g.Move(400)
	require.Equal(t, DirectionNext, g.End())

	// State resets between drags.
	g.Begin(500)
	require.Equal(t, DirectionNone, g.End())
}
