// Package wizard implements a step-sequencing state machine whose step
// changes are delayed long enough for an exit animation to play.
package wizard

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

// DefaultDelay is the time between requesting a step change and applying it.
const DefaultDelay = 300 * time.Millisecond

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TransitionMsg applies a pending step change to the controller with the
// matching ID. It is produced by the command returned from Advance or Retreat.
type TransitionMsg struct {
	ID    int
	Delta int
}

// Controller tracks the current step of a fixed-length sequence.
//
// Advance and Retreat only mark the controller as transitioning and return a
// command; the step index changes when the resulting TransitionMsg is fed
// back through Update. Requests made while a transition is pending are
// rejected, so at most one transition is ever in flight.
type Controller struct {
	id            int
	current       int
	total         int
	transitioning bool
	delay         time.Duration
}

// New creates a controller positioned at step 0. total must be at least 1.
func New(total int, delay time.Duration) *Controller {
	if total < 1 {
		panic(fmt.Sprintf("wizard: total steps must be >= 1, got %d", total))
	}
	return &Controller{
		id:    nextID(),
		total: total,
		delay: delay,
	}
}

// ID identifies this controller's transition messages.
func (c *Controller) ID() int { return c.id }

// Step returns the zero-based current step.
func (c *Controller) Step() int { return c.current }

// Total returns the number of steps.
func (c *Controller) Total() int { return c.total }

// Transitioning reports whether a step change is pending.
func (c *Controller) Transitioning() bool { return c.transitioning }

// IsFirst reports whether the controller is on step 0.
func (c *Controller) IsFirst() bool { return c.current == 0 }

// IsLast reports whether the controller is on the final step.
func (c *Controller) IsLast() bool { return c.current == c.total-1 }

// Progress returns (step+1)/total, a value in (0, 1].
func (c *Controller) Progress() float64 {
	return float64(c.current+1) / float64(c.total)
}

// Advance requests a move to the next step. Returns nil when already on the
// last step or while another transition is pending.
func (c *Controller) Advance() tea.Cmd {
	if c.transitioning || c.IsLast() {
		return nil
	}
	return c.begin(1)
}

// Retreat requests a move to the previous step. Returns nil on step 0 or
// while another transition is pending.
func (c *Controller) Retreat() tea.Cmd {
	if c.transitioning || c.IsFirst() {
		return nil
	}
	return c.begin(-1)
}

func (c *Controller) begin(delta int) tea.Cmd {
	c.transitioning = true
	msg := TransitionMsg{ID: c.id, Delta: delta}
	if c.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(c.delay, func(time.Time) tea.Msg {
		return msg
	})
}

// Update applies msg if it is this controller's pending transition and
// reports whether it did.
func (c *Controller) Update(msg tea.Msg) bool {
	tm, ok := msg.(TransitionMsg)
	if !ok || tm.ID != c.id || !c.transitioning {
		return false
	}
	next := c.current + tm.Delta
	if next >= 0 && next < c.total {
		c.current = next
	}
	c.transitioning = false
	return true
}
