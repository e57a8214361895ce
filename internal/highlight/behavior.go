// Package highlight rewrites a text surface so every case-insensitive
// occurrence of a literal search term is wrapped in markup.
//
// A Behavior owns the surface's original content, captured once at
// attachment. Term updates are debounced: each update cancels any pending
// rewrite and schedules a new one after the quiescence window, so only the
// most recent term is ever rendered. Rewrites always run against the
// captured original, never against previously highlighted output, which
// keeps repeated edits from compounding markup.
package highlight

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/glintlabs/glint/internal/logger"
	"github.com/glintlabs/glint/internal/markup"
)

// DefaultWindow is the quiescence delay between the last term update and
// the rewrite. Rapid successive updates (keystroke-driven search) coalesce
// into a single rewrite.
const DefaultWindow = 150 * time.Millisecond

// State is the behavior's lifecycle position.
type State int

const (
	// StateIdle means no term is active and the surface shows the original.
	StateIdle State = iota
	// StatePending means a term update is waiting out the quiescence window.
	StatePending
	// StateHighlighted means the current term's matches are rendered.
	StateHighlighted
	// StateError means the last rewrite failed and the original was restored.
	// The behavior stays usable; the next term update leaves this state.
	StateError
)

// String returns the display name for a state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateHighlighted:
		return "highlighted"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Sanitizer normalizes an untrusted raw term before matching.
type Sanitizer interface {
	Sanitize(raw string) string
}

// passthroughSanitizer is the default when no sanitizer is configured.
type passthroughSanitizer struct{}

func (passthroughSanitizer) Sanitize(raw string) string { return raw }

// Options configures a Behavior. Zero values select defaults.
type Options struct {
	// Window is the quiescence delay. Defaults to DefaultWindow.
	Window time.Duration

	// Marker wraps each match. Defaults to an HTML marker with the
	// package default class.
	Marker markup.Marker

	// Sanitizer normalizes raw terms. Defaults to passthrough.
	Sanitizer Sanitizer

	// Scheduler provides the cancellable delay. Defaults to time.AfterFunc.
	Scheduler Scheduler

	// Logger receives rewrite diagnostics. Defaults to logger.Default().
	Logger logger.Logger
}

func (o *Options) defaults() {
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	if o.Marker == nil {
		o.Marker = markup.NewHTMLMarker("")
	}
	if o.Sanitizer == nil {
		o.Sanitizer = passthroughSanitizer{}
	}
	if o.Scheduler == nil {
		o.Scheduler = NewTimerScheduler()
	}
	if o.Logger == nil {
		o.Logger = logger.Default()
	}
}

// Behavior attaches highlighting to a Surface.
type Behavior struct {
	mu        sync.Mutex
	surface   Surface
	marker    markup.Marker
	sanitizer Sanitizer
	sched     Scheduler
	log       logger.Logger
	window    time.Duration

	original string // captured once, before any mutation
	term     string // last raw term received

	// Compiled pattern cache, keyed by sanitized term. Recompiled only
	// when the term changes.
	pattern     *regexp.Regexp
	patternTerm string

	pending  Cancel
	seq      uint64 // stamps scheduled rewrites so stale fires are discarded
	state    State
	matches  int
	disposed bool
}

// New attaches a behavior to the surface and captures its original content.
// The original is the sole rewrite input and restoration baseline from here
// on.
func New(surface Surface, opts Options) *Behavior {
	opts.defaults()
	return &Behavior{
		surface:   surface,
		marker:    opts.Marker,
		sanitizer: opts.Sanitizer,
		sched:     opts.Scheduler,
		log:       opts.Logger,
		window:    opts.Window,
		original:  surface.Content(),
		state:     StateIdle,
	}
}

// SetTerm records a new search term and schedules a rewrite after the
// quiescence window. Any outstanding rewrite is cancelled first, so updates
// apply in last-writer-wins order.
func (b *Behavior) SetTerm(raw string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed {
		return
	}

	if b.pending != nil {
		b.pending.Cancel()
		b.pending = nil
	}

	b.term = raw
	b.seq++
	seq := b.seq
	b.state = StatePending
	b.pending = b.sched.Schedule(b.window, func() { b.fire(seq) })
}

// fire applies the rewrite for the update stamped seq. A fire that lost the
// race with a newer update (or with Dispose) is discarded outright.
func (b *Behavior) fire(seq uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed || seq != b.seq {
		return
	}
	b.pending = nil

	term := strings.TrimSpace(b.sanitizer.Sanitize(b.term))
	if term == "" {
		b.surface.SetContent(b.original)
		b.state = StateIdle
		b.matches = 0
		return
	}

	rewritten, count, err := b.rewrite(term)
	if err != nil {
		// Recover to the last known-good content. The error never
		// reaches a caller; the behavior stays usable.
		b.surface.SetContent(b.original)
		b.state = StateError
		b.matches = 0
		b.log.Warn("highlight rewrite failed for term %q: %v", term, err)
		return
	}

	b.surface.SetContent(rewritten)
	b.state = StateHighlighted
	b.matches = count
}

// rewrite wraps every occurrence of the literal term in the original
// content. Panics from a misbehaving marker are converted to errors.
func (b *Behavior) rewrite(term string) (out string, count int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rewrite panicked: %v", r)
		}
	}()

	if b.pattern == nil || b.patternTerm != term {
		p, cerr := compileTerm(term)
		if cerr != nil {
			return "", 0, cerr
		}
		b.pattern = p
		b.patternTerm = term
	}

	out = b.pattern.ReplaceAllStringFunc(b.original, func(match string) string {
		count++
		return b.marker.Mark(match)
	})
	return out, count, nil
}

// Dispose cancels any pending rewrite and makes the behavior inert. Further
// term updates are ignored, and a timer that already fired cannot mutate the
// surface afterwards.
func (b *Behavior) Dispose() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pending != nil {
		b.pending.Cancel()
		b.pending = nil
	}
	b.disposed = true
}

// State returns the behavior's current state.
func (b *Behavior) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Term returns the last raw term received.
func (b *Behavior) Term() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.term
}

// Matches returns the number of occurrences wrapped by the last rewrite.
// Zero outside StateHighlighted.
func (b *Behavior) Matches() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.matches
}

// Original returns the content captured at attachment.
func (b *Behavior) Original() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.original
}

// compileTerm builds the case-insensitive literal pattern for a term.
// QuoteMeta guarantees metacharacters in the term match literally.
func compileTerm(term string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + regexp.QuoteMeta(term))
}

// Apply is the one-shot form of the rewrite: it wraps every
// case-insensitive occurrence of the literal term in content and returns the
// rewritten text plus the match count. An empty or whitespace-only term
// returns the content unchanged with zero matches.
func Apply(content, term string, marker markup.Marker) (string, int, error) {
	rewriter, err := NewRewriter(term, marker)
	if err != nil {
		return "", 0, err
	}
	rewritten, count := rewriter.Rewrite(content)
	return rewritten, count, nil
}
