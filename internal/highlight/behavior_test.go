package highlight

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintlabs/glint/internal/logger"
	"github.com/glintlabs/glint/internal/markup"
	"github.com/glintlabs/glint/internal/sanitize"
)

// manualScheduler lets tests control exactly when the quiescence window
// elapses.
type manualScheduler struct {
	tasks []*manualTask
}

type manualTask struct {
	fn        func()
	delay     time.Duration
	cancelled bool
	fired     bool
}

func (t *manualTask) Cancel() { t.cancelled = true }

func (m *manualScheduler) Schedule(delay time.Duration, fn func()) Cancel {
	task := &manualTask{fn: fn, delay: delay}
	m.tasks = append(m.tasks, task)
	return task
}

// firePending runs every scheduled task that is neither cancelled nor
// already fired.
func (m *manualScheduler) firePending() {
	for _, task := range m.tasks {
		if !task.cancelled && !task.fired {
			task.fired = true
			task.fn()
		}
	}
}

// fireAll runs every task regardless of cancellation, modelling a scheduler
// whose cancel lost the race with the timer.
func (m *manualScheduler) fireAll() {
	for _, task := range m.tasks {
		if !task.fired {
			task.fired = true
			task.fn()
		}
	}
}

// panicMarker panics when the match contains its trigger substring.
type panicMarker struct {
	inner   markup.Marker
	trigger string
}

func (p panicMarker) Mark(match string) string {
	if p.trigger != "" && strings.Contains(strings.ToLower(match), p.trigger) {
		panic("marker exploded")
	}
	return p.inner.Mark(match)
}

func newTestBehavior(t *testing.T, content string) (*Behavior, *BufferSurface, *manualScheduler) {
	t.Helper()
	surface := NewBufferSurface(content)
	sched := &manualScheduler{}
	b := New(surface, Options{
		Marker:    markup.NewHTMLMarker("hit"),
		Scheduler: sched,
		Logger:    logger.Noop(),
	})
	return b, surface, sched
}

func TestBehaviorHighlightsTerm(t *testing.T) {
	b, surface, sched := newTestBehavior(t, "The cat sat")

	b.SetTerm("cat")
	assert.Equal(t, StatePending, b.State())

	sched.firePending()

	got := surface.Content()
	assert.Equal(t, `The <span class="hit" role="mark" aria-label="cat" data-text="cat">cat</span> sat`, got)
	assert.Equal(t, 1, strings.Count(got, "<span"), "exactly one wrapped occurrence")
	assert.Equal(t, StateHighlighted, b.State())
	assert.Equal(t, 1, b.Matches())
}

func TestBehaviorCaseInsensitiveAndPreserving(t *testing.T) {
	b, surface, sched := newTestBehavior(t, "Cat cat CAT")

	b.SetTerm("cat")
	sched.firePending()

	got := surface.Content()
	assert.Equal(t, 3, strings.Count(got, "<span"))
	// Each wrapper preserves the matched substring's original case.
	assert.Contains(t, got, ">Cat</span>")
	assert.Contains(t, got, ">cat</span>")
	assert.Contains(t, got, ">CAT</span>")
}

func TestBehaviorTreatsMetacharactersLiterally(t *testing.T) {
	b, surface, sched := newTestBehavior(t, "axb and a.b here")

	b.SetTerm("a.b")
	sched.firePending()

	got := surface.Content()
	assert.Equal(t, 1, strings.Count(got, "<span"), "only the literal a.b should match")
	assert.Contains(t, got, "axb and")
	assert.Contains(t, got, ">a.b</span>")
}

func TestBehaviorEmptyTermRestoresOriginal(t *testing.T) {
	const original = "The cat sat"
	b, surface, sched := newTestBehavior(t, original)

	b.SetTerm("cat")
	sched.firePending()
	require.NotEqual(t, original, surface.Content())

	b.SetTerm("   ")
	sched.firePending()

	assert.Equal(t, original, surface.Content(), "restore must be byte-for-byte")
	assert.Equal(t, StateIdle, b.State())
	assert.Zero(t, b.Matches())
}

func TestBehaviorLastWriterWins(t *testing.T) {
	b, surface, sched := newTestBehavior(t, "cat and dog")

	b.SetTerm("cat")
	b.SetTerm("dog")
	require.Len(t, sched.tasks, 2)
	assert.True(t, sched.tasks[0].cancelled, "first update must be cancelled")

	sched.firePending()

	got := surface.Content()
	assert.NotContains(t, got, ">cat</span>", "superseded term is never rendered")
	assert.Contains(t, got, ">dog</span>")
}

func TestBehaviorDiscardsStaleFire(t *testing.T) {
	b, surface, sched := newTestBehavior(t, "cat and dog")

	b.SetTerm("cat")
	b.SetTerm("dog")

	// Even if the scheduler's cancel lost the race and the first timer
	// fires anyway, only the latest update may render.
	sched.fireAll()

	got := surface.Content()
	assert.NotContains(t, got, ">cat</span>")
	assert.Contains(t, got, ">dog</span>")
	assert.Equal(t, StateHighlighted, b.State())
}

func TestBehaviorRewriteFailureRevertsToOriginal(t *testing.T) {
	const original = "boom cat"
	surface := NewBufferSurface(original)
	sched := &manualScheduler{}
	buflog := logger.NewBufferLogger()
	b := New(surface, Options{
		Marker:    panicMarker{inner: markup.NewHTMLMarker("hit"), trigger: "boom"},
		Scheduler: sched,
		Logger:    buflog,
	})

	b.SetTerm("boom")
	require.NotPanics(t, sched.firePending)

	assert.Equal(t, original, surface.Content(), "failed rewrite reverts to original")
	assert.Equal(t, StateError, b.State())
	assert.True(t, buflog.HasLevel("warn"), "failure emits a diagnostic")

	// The behavior stays usable for subsequent updates.
	b.SetTerm("cat")
	sched.firePending()
	assert.Contains(t, surface.Content(), ">cat</span>")
	assert.Equal(t, StateHighlighted, b.State())
}

func TestBehaviorRewritesFromOriginalNotHighlighted(t *testing.T) {
	b, surface, sched := newTestBehavior(t, "the cat sat")

	b.SetTerm("cat")
	sched.firePending()
	first := surface.Content()
	require.Contains(t, first, "<span")

	b.SetTerm("sat")
	sched.firePending()

	got := surface.Content()
	assert.NotContains(t, got, ">cat</span>", "previous highlight must not persist")
	assert.Contains(t, got, ">sat</span>")
	// No compounding: the class attribute appears once per current match.
	assert.Equal(t, 1, strings.Count(got, `class="hit"`))
}

func TestBehaviorDisposeCancelsPending(t *testing.T) {
	const original = "the cat sat"
	b, surface, sched := newTestBehavior(t, original)

	b.SetTerm("cat")
	b.Dispose()

	require.Len(t, sched.tasks, 1)
	assert.True(t, sched.tasks[0].cancelled)

	// A timer that fires after teardown must not mutate the surface.
	sched.fireAll()
	assert.Equal(t, original, surface.Content())

	// Updates after dispose are ignored.
	b.SetTerm("sat")
	sched.fireAll()
	assert.Equal(t, original, surface.Content())
}

func TestBehaviorUsesQuiescenceWindow(t *testing.T) {
	surface := NewBufferSurface("text")
	sched := &manualScheduler{}

	b := New(surface, Options{Scheduler: sched, Logger: logger.Noop()})
	b.SetTerm("t")
	require.Len(t, sched.tasks, 1)
	assert.Equal(t, DefaultWindow, sched.tasks[0].delay)

	custom := New(surface, Options{Scheduler: sched, Logger: logger.Noop(), Window: 300 * time.Millisecond})
	custom.SetTerm("t")
	require.Len(t, sched.tasks, 2)
	assert.Equal(t, 300*time.Millisecond, sched.tasks[1].delay)
}

func TestBehaviorSanitizesTermBeforeMatching(t *testing.T) {
	surface := NewBufferSurface("the cat sat")
	sched := &manualScheduler{}
	b := New(surface, Options{
		Marker:    markup.NewHTMLMarker("hit"),
		Sanitizer: sanitize.NewTerm(),
		Scheduler: sched,
		Logger:    logger.Noop(),
	})

	b.SetTerm("<b>cat</b>")
	sched.firePending()

	assert.Contains(t, surface.Content(), ">cat</span>", "markup in the term is stripped before matching")
}

func TestBehaviorOriginalAccessor(t *testing.T) {
	b, surface, sched := newTestBehavior(t, "the cat sat")

	b.SetTerm("cat")
	sched.firePending()

	assert.Equal(t, "the cat sat", b.Original(), "original is captured before any mutation")
	assert.NotEqual(t, b.Original(), surface.Content())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "highlighted", StateHighlighted.String())
	assert.Equal(t, "error", StateError.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestApply(t *testing.T) {
	marker := markup.NewHTMLMarker("hit")

	tests := []struct {
		name      string
		content   string
		term      string
		wantCount int
		contains  string
	}{
		{
			name:      "single match",
			content:   "The cat sat",
			term:      "cat",
			wantCount: 1,
			contains:  ">cat</span>",
		},
		{
			name:      "multiple case-insensitive matches",
			content:   "Cat cat",
			term:      "CAT",
			wantCount: 2,
		},
		{
			name:      "no matches",
			content:   "dog",
			term:      "cat",
			wantCount: 0,
		},
		{
			name:      "empty term is a no-op",
			content:   "The cat sat",
			term:      "  ",
			wantCount: 0,
			contains:  "The cat sat",
		},
		{
			name:      "metacharacters literal",
			content:   "axb a.b",
			term:      "a.b",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count, err := Apply(tt.content, tt.term, marker)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
			if tt.contains != "" {
				assert.Contains(t, got, tt.contains)
			}
		})
	}
}
