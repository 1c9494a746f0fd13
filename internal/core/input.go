package core

// Event is a discrete input event delivered by the platform layer.
// Games react to these rather than to raw key presses.
type Event int

const (
	EventNone      Event = iota
	EventQuit            // Window/session closed, terminate immediately
	EventLeftDown        // Move-left key pressed
	EventLeftUp          // Move-left key released
	EventRightDown       // Move-right key pressed
	EventRightUp         // Move-right key released
	EventRestart         // Restart requested (honored only after game over)
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventLeftDown:
		return "LeftDown"
	case EventLeftUp:
		return "LeftUp"
	case EventRightDown:
		return "RightDown"
	case EventRightUp:
		return "RightUp"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// EventQueue collects the events that arrive between two simulation ticks.
// Order is preserved so a press followed by a release in the same frame
// leaves the paddle stopped.
type EventQueue struct {
	events []Event
}

// Push appends an event. EventNone is dropped.
func (q *EventQueue) Push(e Event) {
	if e == EventNone {
		return
	}
	q.events = append(q.events, e)
}

// Drain returns the queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
