package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/highlight"
	"github.com/glintlabs/glint/internal/markup"
	"github.com/glintlabs/glint/internal/util"
)

// debounceMsg fires when a quiescence window may have elapsed. The sequence
// number identifies which update scheduled it; stale messages are ignored.
type debounceMsg struct {
	seq int
}

// teaScheduler adapts the Bubble Tea event loop to highlight.Scheduler.
// Schedule stores the callback; the model runs it when the matching
// debounceMsg arrives. Everything happens on the program goroutine, so no
// locking is needed.
type teaScheduler struct {
	seq   int
	delay time.Duration
	fn    func()
}

type teaCancel struct {
	s   *teaScheduler
	seq int
}

func (c teaCancel) Cancel() {
	if c.s.seq == c.seq {
		c.s.fn = nil
	}
}

func (s *teaScheduler) Schedule(delay time.Duration, fn func()) highlight.Cancel {
	s.seq++
	s.delay = delay
	s.fn = fn
	return teaCancel{s: s, seq: s.seq}
}

// fire runs the stored callback if seq still identifies the latest update.
func (s *teaScheduler) fire(seq int) {
	if s.seq != seq || s.fn == nil {
		return
	}
	fn := s.fn
	s.fn = nil
	fn()
}

// LiveOptions configures the live highlight view.
type LiveOptions struct {
	// Content is the text being searched.
	Content string

	// Window is the quiescence delay. Zero selects the package default.
	Window time.Duration

	// Sanitizer normalizes typed terms before matching.
	Sanitizer highlight.Sanitizer

	// Term pre-fills the search input.
	Term string
}

// LiveModel is the type-to-highlight TUI: a term input on top, the content
// viewport below, and a status line reporting the behavior state and match
// count. Term updates flow through a Behavior, so the quiescence window,
// last-writer-wins ordering, and error recovery match the embeddable widget
// exactly.
type LiveModel struct {
	input    textinput.Model
	viewport viewport.Model
	surface  *highlight.BufferSurface
	behavior *highlight.Behavior
	sched    *teaScheduler
	window   time.Duration
	ready    bool
	width    int
}

// NewLive builds the live highlight model for the given content.
func NewLive(opts LiveOptions) LiveModel {
	window := opts.Window
	if window <= 0 {
		window = highlight.DefaultWindow
	}

	input := textinput.New()
	input.Placeholder = "type to highlight"
	input.Prompt = "search: "
	input.SetValue(opts.Term)
	input.Focus()

	surface := highlight.NewBufferSurface(opts.Content)
	sched := &teaScheduler{}
	behavior := highlight.New(surface, highlight.Options{
		Window:    window,
		Marker:    markup.NewANSIMarker(),
		Sanitizer: opts.Sanitizer,
		Scheduler: sched,
	})

	return LiveModel{
		input:    input,
		surface:  surface,
		behavior: behavior,
		sched:    sched,
		window:   window,
	}
}

// Init starts the input cursor blink and applies any pre-filled term.
func (m LiveModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.input.Value() != "" {
		m.behavior.SetTerm(m.input.Value())
		cmds = append(cmds, m.debounceCmd())
	}
	return tea.Batch(cmds...)
}

// debounceCmd schedules the quiescence tick for the latest update.
func (m LiveModel) debounceCmd() tea.Cmd {
	seq := m.sched.seq
	return tea.Tick(m.window, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// Update handles key input, debounce ticks, and window sizing.
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.behavior.Dispose()
			return m, tea.Quit
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		if m.input.Value() != before {
			m.behavior.SetTerm(m.input.Value())
			return m, tea.Batch(cmd, m.debounceCmd())
		}
		return m, cmd

	case debounceMsg:
		m.sched.fire(msg.seq)
		m.viewport.SetContent(m.surface.Content())
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		// Input and status line take one row each, plus a separator.
		contentHeight := msg.Height - 3
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
			m.viewport.SetContent(m.surface.Content())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders input, content, and the status line.
func (m LiveModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.input.View() + "\n" + m.viewport.View() + "\n" + m.statusLine()
}

// statusLine reports the behavior state and match count.
func (m LiveModel) statusLine() string {
	var symbol string
	var color lipgloss.Color

	state := m.behavior.State()
	switch state {
	case highlight.StateHighlighted:
		symbol, color = SymbolHighlighted, ColorHighlighted
	case highlight.StatePending:
		symbol, color = SymbolPending, ColorPending
	case highlight.StateError:
		symbol, color = SymbolError, ColorError
	default:
		symbol, color = SymbolIdle, ColorMuted
	}

	text := " " + state.String()
	if state == highlight.StateHighlighted {
		n := m.behavior.Matches()
		text += fmt.Sprintf("  %d %s", n, util.Pluralize(n, "match", "matches"))
	}

	// Truncate the plain text before styling so escape codes stay intact.
	max := m.width
	if max <= 0 {
		max = 80
	}
	text = util.Truncate(text, max-1)

	return lipgloss.NewStyle().Foreground(color).Render(symbol) + text
}
