// Package ui provides the interactive terminal views for glint.
//
// The centerpiece is LiveModel, the type-to-highlight view behind
// `glint highlight --watch`: a search input, a content viewport, and a
// status line. Term updates are routed through the highlight.Behavior state
// machine, so the interactive view exercises the same quiescence window,
// last-writer-wins ordering, and error recovery as the embeddable widget.
//
// # Scheduling
//
// Bubble Tea programs are single-goroutine event loops, so the view does not
// use the timer-backed scheduler. teaScheduler stores the pending rewrite
// and the model fires it when the matching debounce tick arrives; stale
// ticks (identified by sequence number) are discarded.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorHighlighted (green)  - Term applied, matches rendered
//	ColorError       (red)    - Rewrite failed, original restored
//	ColorPending     (yellow) - Waiting out the quiescence window
//	ColorMuted       (gray)   - Secondary text
//
// # Symbols
//
// Unicode symbols mirror the behavior states in the status line:
//
//	SymbolIdle        (circle)     - No term, original content
//	SymbolPending     (half-fill)  - Update pending
//	SymbolHighlighted (checkmark)  - Matches rendered
//	SymbolError       (X)          - Recovered from a rewrite failure
package ui
