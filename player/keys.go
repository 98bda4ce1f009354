package player

// Action is a carousel control mapped from a key press.
type Action int

const (
	// ActionNone means the key is not handled.
	ActionNone Action = iota
	// ActionNext advances to the next video.
	ActionNext
	// ActionPrev goes back to the previous video.
	ActionPrev
	// ActionToggleMute flips the global mute flag.
	ActionToggleMute
	// ActionTogglePlay flips play/pause on the current video.
	ActionTogglePlay
)

// ActionForKey maps a key name (DOM KeyboardEvent.key values) to a carousel
// action. Keys pressed while focus is inside a text input are never handled.
func ActionForKey(key string, inTextInput bool) Action {
	if inTextInput {
		return ActionNone
	}

	switch key {
	case "ArrowDown", "j", "J", "ArrowRight":
		return ActionNext
	case "ArrowUp", "k", "K", "ArrowLeft":
		return ActionPrev
	case "m", "M":
		return ActionToggleMute
	case " ":
		return ActionTogglePlay
	default:
		return ActionNone
	}
}
