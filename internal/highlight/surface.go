package highlight

import "sync"

// Surface is the text-bearing host a Behavior attaches to. It exposes the
// readable/writable content without binding the behavior to any particular
// view layer.
type Surface interface {
	// Content returns the surface's current text.
	Content() string

	// SetContent replaces the surface's text.
	SetContent(text string)
}

// BufferSurface is an in-memory Surface. It is safe for concurrent use so a
// timer-driven rewrite and a reader on another goroutine cannot race.
type BufferSurface struct {
	mu      sync.Mutex
	content string
}

// NewBufferSurface creates a surface holding the given text.
func NewBufferSurface(content string) *BufferSurface {
	return &BufferSurface{content: content}
}

// Content returns the current text.
func (s *BufferSurface) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// SetContent replaces the current text.
func (s *BufferSurface) SetContent(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = text
}
