package ui

// Unicode symbols for state indicators in the status line.
const (
	SymbolHighlighted = "✓" // Term applied, matches rendered
	SymbolError       = "✗" // Rewrite failed, original restored
	SymbolIdle        = "○" // No term, original content shown
	SymbolPending     = "◐" // Waiting out the quiescence window
)
