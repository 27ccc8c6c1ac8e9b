package core

// Event is a notable thing that happened during a tick.
type Event int

const (
	EventNone   Event = iota
	EventCrash        // Run ended by obstacle or leaving the track
	EventTurbo        // Power-up collected or turbo engaged
	EventPickup       // Power-up collected (no cue of its own)
	EventStart        // Round started from the start screen or restarted
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventCrash:
		return "crash"
	case EventTurbo:
		return "turbo"
	case EventPickup:
		return "pickup"
	case EventStart:
		return "start"
	default:
		return "unknown"
	}
}

// EndReason records why a round ended.
type EndReason string

const (
	EndNone     EndReason = ""
	EndObstacle EndReason = "obstacle"
	EndOffTrack EndReason = "offtrack"
	EndQuit     EndReason = "quit"
)
