package game

// Event is a side effect produced by a tick that the platform may act on.
// Events never feed back into game state.
type Event int

const (
	EventShoot     Event = iota + 1 // A bullet was fired
	EventExplosion                  // The ship hit an asteroid
	EventMusicMenu                  // Switch to the menu theme
	EventMusicGame                  // Switch to the in-round theme
)

// String returns the event name, used in logs.
func (e Event) String() string {
	switch e {
	case EventShoot:
		return "shoot"
	case EventExplosion:
		return "explosion"
	case EventMusicMenu:
		return "music_menu"
	case EventMusicGame:
		return "music_game"
	default:
		return "unknown"
	}
}

// StepResult contains the outcome of a single simulation tick.
type StepResult struct {
	Stage  Stage
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
