package willowui

// Notification timing and geometry. These are fixed; the toast surface is
// sized and animated from them.
const (
	NotificationDisplaySecs  = 4.0 // how long a message stays on screen
	NotificationPauseSecs    = 0.5 // gap between two messages
	NotificationWidth        = 300.0
	NotificationHeight       = 100.0
	NotificationMargin       = 180.0 // distance from the right screen edge
	NotificationBottomMargin = 50.0

	// notificationSlideStart is the horizontal offset a message starts at when
	// promoted: far enough right that the surface begins fully off screen.
	notificationSlideStart = NotificationWidth + NotificationMargin
	// notificationSlideRate is the slide-in speed in pixels per second.
	notificationSlideRate = 3 * NotificationWidth
)

// NotificationState is the presentation view of a NotificationCenter.
// The zero value (Showing == false) means nothing is on screen.
type NotificationState struct {
	Showing bool
	Message string
	// SlideOffset is the horizontal distance from the resting position.
	// Positive, decays to 0 while the message is showing.
	SlideOffset float64
	// RemainingFraction is the share of display time left, in [0, 1].
	RemainingFraction float64
}

// NotificationCenter is a FIFO of messages shown one at a time. It is a pure
// timer-driven state machine: Enqueue appends, Tick advances time once per
// frame. It is not safe for concurrent use; own it from the game loop and
// pass it to whatever widgets need to enqueue.
type NotificationCenter struct {
	queued     []string
	displaying string
	active     bool
	remaining  float64
	slide      float64
}

// NewNotificationCenter returns an idle center with an empty queue.
func NewNotificationCenter() *NotificationCenter {
	return &NotificationCenter{}
}

// Enqueue appends message to the back of the queue. There is no limit and no
// deduplication.
func (c *NotificationCenter) Enqueue(message string) {
	c.queued = append(c.queued, message)
}

// Tick advances the center by dt seconds and returns the new state. At most
// one phase transition happens per call: a pause that expires during this
// tick promotes the next message on the following tick, never this one.
// Negative or NaN dt is treated as 0.
func (c *NotificationCenter) Tick(dt float64) NotificationState {
	if !(dt > 0) {
		dt = 0
	}

	switch {
	case c.active:
		c.remaining -= dt
		c.slide -= min(notificationSlideRate*dt, c.slide)
		if c.remaining <= 0 {
			c.active = false
			c.displaying = ""
			c.remaining = NotificationPauseSecs
		}
	case c.remaining > 0:
		c.remaining = max(c.remaining-dt, 0)
	case len(c.queued) > 0:
		c.displaying = c.queued[0]
		c.queued[0] = ""
		c.queued = c.queued[1:]
		c.active = true
		c.remaining = NotificationDisplaySecs
		c.slide = notificationSlideStart
	}

	return c.State()
}

// State returns the current state without advancing time.
func (c *NotificationCenter) State() NotificationState {
	if !c.active {
		return NotificationState{}
	}
	return NotificationState{
		Showing:           true,
		Message:           c.displaying,
		SlideOffset:       c.slide,
		RemainingFraction: min(max(c.remaining/NotificationDisplaySecs, 0), 1),
	}
}

// Pending returns the number of messages waiting behind the current one.
func (c *NotificationCenter) Pending() int {
	return len(c.queued)
}

// Remaining returns the seconds left in the current display or pause phase.
func (c *NotificationCenter) Remaining() float64 {
	return c.remaining
}

// Pausing reports whether the center is in the gap between two messages.
func (c *NotificationCenter) Pausing() bool {
	return !c.active && c.remaining > 0
}
