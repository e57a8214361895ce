package loader

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner frame sets per size: small stays subtle, large fills more cells.
var sizeFrames = map[Size]spinner.Spinner{
	SizeSmall:  spinner.MiniDot,
	SizeMedium: spinner.Dot,
	SizeLarge:  spinner.Points,
}

// Preview is a Bubble Tea model that animates the loader in the terminal,
// using the resolver's frame set and color. Designed to run standalone via
// tea.NewProgram; any key quits.
type Preview struct {
	spinner spinner.Model
	label   string
}

// NewPreview builds the terminal preview for a resolved loader.
func NewPreview(r *Resolver) Preview {
	sp := spinner.New()
	sp.Spinner = sizeFrames[r.Size()]
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(r.Hex()))

	return Preview{
		spinner: sp,
		label:   r.Label(),
	}
}

// Init starts the spinner tick.
func (p Preview) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update advances the animation and quits on any key press.
func (p Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	return p, nil
}

// View renders the spinner with its label.
func (p Preview) View() string {
	return p.spinner.View() + " " + p.label + "...\n"
}
