package core

// Intent represents a discrete player intention, abstracted from physical
// key presses. The platform maps raw input to intents; the simulation
// consumes them without knowing the input source.
type Intent int

const (
	IntentNone    Intent = iota
	IntentFlap           // Space, W, Up - start a session or jump
	IntentRestart        // R - restart after game over
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentFlap:
		return "Flap"
	case IntentRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// IntentQueue collects intents between simulation ticks, preserving
// arrival order. Intents are never coalesced: two flaps queued in one
// frame produce two discrete jumps when drained.
type IntentQueue struct {
	intents []Intent
}

// NewIntentQueue creates an empty intent queue.
func NewIntentQueue() *IntentQueue {
	return &IntentQueue{intents: make([]Intent, 0, 4)}
}

// Push appends an intent to the queue. IntentNone is ignored.
func (q *IntentQueue) Push(i Intent) {
	if i == IntentNone {
		return
	}
	q.intents = append(q.intents, i)
}

// Drain returns all queued intents in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *IntentQueue) Drain() []Intent {
	if len(q.intents) == 0 {
		return nil
	}
	drained := make([]Intent, len(q.intents))
	copy(drained, q.intents)
	q.intents = q.intents[:0]
	return drained
}

// Len returns the number of queued intents.
func (q *IntentQueue) Len() int {
	return len(q.intents)
}

// Clear discards all queued intents.
func (q *IntentQueue) Clear() {
	q.intents = q.intents[:0]
}
