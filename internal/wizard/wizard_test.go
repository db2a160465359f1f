package wizard

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// settle runs cmd and feeds the resulting message back into c.
func settle(t *testing.T, c *Controller, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	if !c.Update(cmd()) {
		t.Fatal("transition message was not applied")
	}
}

func TestNewStartsAtZero(t *testing.T) {
	c := New(5, 0)
	assert.Equal(t, 0, c.Step())
	assert.Equal(t, 5, c.Total())
	assert.False(t, c.Transitioning())
	assert.True(t, c.IsFirst())
	assert.False(t, c.IsLast())
}

func TestNewPanicsOnZeroSteps(t *testing.T) {
	assert.Panics(t, func() { New(0, 0) })
}

func TestSingleStepIsFirstAndLast(t *testing.T) {
	c := New(1, 0)
	assert.True(t, c.IsFirst())
	assert.True(t, c.IsLast())
	assert.Nil(t, c.Advance())
	assert.Nil(t, c.Retreat())
	assert.Equal(t, 1.0, c.Progress())
}

func TestAdvanceIsDeferredUntilTransitionMsg(t *testing.T) {
	c := New(3, 0)
	cmd := c.Advance()
	require.NotNil(t, cmd)
	assert.True(t, c.Transitioning())
	assert.Equal(t, 0, c.Step(), "step must not change before the transition lands")

	settle(t, c, cmd)
	assert.Equal(t, 1, c.Step())
	assert.False(t, c.Transitioning())
}

func TestReentrantRequestsRejected(t *testing.T) {
	c := New(4, 0)
	cmd := c.Advance()
	require.NotNil(t, cmd)

	assert.Nil(t, c.Advance(), "advance during transition")
	assert.Nil(t, c.Retreat(), "retreat during transition")

	settle(t, c, cmd)
	assert.Equal(t, 1, c.Step())
}

func TestRetreatNoopAtZero(t *testing.T) {
	c := New(3, 0)
	assert.Nil(t, c.Retreat())
	assert.False(t, c.Transitioning())
}

func TestAdvanceNoopAtLast(t *testing.T) {
	c := New(2, 0)
	settle(t, c, c.Advance())
	assert.True(t, c.IsLast())
	assert.Nil(t, c.Advance())
	assert.Equal(t, 1, c.Step())
}

func TestAdvanceThenRetreatRoundTrips(t *testing.T) {
	c := New(5, 0)
	settle(t, c, c.Advance())
	settle(t, c, c.Advance())
	before := c.Step()

	settle(t, c, c.Advance())
	settle(t, c, c.Retreat())
	assert.Equal(t, before, c.Step())
}

func TestForeignMessagesIgnored(t *testing.T) {
	a := New(3, 0)
	b := New(3, 0)

	cmd := a.Advance()
	require.NotNil(t, cmd)
	msg := cmd()

	assert.False(t, b.Update(msg), "controller b must ignore a's transition")
	assert.False(t, a.Update("not a transition"))
	assert.True(t, a.Update(msg))
	assert.Equal(t, 1, a.Step())
	assert.Equal(t, 0, b.Step())
}

func TestStaleMessageIgnored(t *testing.T) {
	c := New(3, 0)
	cmd := c.Advance()
	msg := cmd()
	require.True(t, c.Update(msg))

	// Delivering the same message again must not move the controller.
	assert.False(t, c.Update(msg))
	assert.Equal(t, 1, c.Step())
}

func TestDelayedTransitionUsesTick(t *testing.T) {
	c := New(3, 5*time.Millisecond)
	cmd := c.Advance()
	require.NotNil(t, cmd)

	start := time.Now()
	msg := cmd()
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)

	tm, ok := msg.(TransitionMsg)
	require.True(t, ok, "expected TransitionMsg, got %T", msg)
	assert.Equal(t, c.ID(), tm.ID)
	assert.Equal(t, 1, tm.Delta)
}

func TestProgress(t *testing.T) {
	c := New(4, 0)
	tests := []float64{0.25, 0.5, 0.75, 1.0}
	for i, want := range tests {
		assert.InDelta(t, want, c.Progress(), 1e-9, "step %d", i)
		settle(t, c, c.Advance())
	}
}

func TestAdvanceNeverOverflows(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		total := rapid.IntRange(1, 12).Draw(rt, "total")
		n := rapid.IntRange(0, 30).Draw(rt, "n")

		c := New(total, 0)
		for i := 0; i < n; i++ {
			if cmd := c.Advance(); cmd != nil {
				c.Update(cmd())
			}
		}

		want := n
		if want > total-1 {
			want = total - 1
		}
		if c.Step() != want {
			rt.Fatalf("after %d advances over %d steps: step = %d, want %d", n, total, c.Step(), want)
		}
	})
}

func TestProgressStrictlyIncreasing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		total := rapid.IntRange(1, 12).Draw(rt, "total")
		c := New(total, 0)

		prev := c.Progress()
		for !c.IsLast() {
			c.Update(c.Advance()())
			if c.Progress() <= prev {
				rt.Fatalf("progress did not increase: %v -> %v", prev, c.Progress())
			}
			prev = c.Progress()
		}
		if c.Progress() != 1 {
			rt.Fatalf("progress at terminal step = %v, want 1", c.Progress())
		}
	})
}
