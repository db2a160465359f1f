package components

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var typewriterID atomic.Int64

// typeTickMsg advances one typewriter by one rune.
type typeTickMsg struct {
	id  int64
	gen int
}

// Typewriter reveals Text one rune per tick. A zero Speed shows the full
// text immediately.
type Typewriter struct {
	text     []rune
	shown    int
	speed    time.Duration
	id       int64
	gen      int
	finished bool
}

// NewTypewriter creates a typewriter for text. Call Start to begin typing.
func NewTypewriter(text string, speed time.Duration) Typewriter {
	t := Typewriter{
		text:  []rune(text),
		speed: speed,
		id:    typewriterID.Add(1),
	}
	if speed <= 0 {
		t.shown = len(t.text)
		t.finished = true
	}
	return t
}

// Start begins (or restarts) the reveal and returns the first tick.
func (t Typewriter) Start() (Typewriter, tea.Cmd) {
	t.gen++
	if t.speed <= 0 || len(t.text) == 0 {
		t.shown = len(t.text)
		t.finished = true
		return t, nil
	}
	t.shown = 0
	t.finished = false
	return t, t.tick()
}

// Skip reveals the remaining text at once.
func (t Typewriter) Skip() Typewriter {
	t.gen++
	t.shown = len(t.text)
	t.finished = true
	return t
}

func (t Typewriter) tick() tea.Cmd {
	id, gen := t.id, t.gen
	return tea.Tick(t.speed, func(time.Time) tea.Msg {
		return typeTickMsg{id: id, gen: gen}
	})
}

// Update consumes this typewriter's ticks. Ticks from other typewriters or
// from an earlier Start are ignored.
func (t Typewriter) Update(msg tea.Msg) (Typewriter, tea.Cmd) {
	m, ok := msg.(typeTickMsg)
	if !ok || m.id != t.id || m.gen != t.gen || t.finished {
		return t, nil
	}
	t.shown++
	if t.shown >= len(t.text) {
		t.shown = len(t.text)
		t.finished = true
		return t, nil
	}
	return t, t.tick()
}

// Done reports whether the full text is visible.
func (t Typewriter) Done() bool { return t.finished }

// View renders the revealed prefix, with a cursor while typing.
func (t Typewriter) View() string {
	if t.finished {
		return string(t.text)
	}
	return string(t.text[:t.shown]) + "▌"
}
