// Package loader provides the loading-indicator widget: a validated
// size/color configuration resolved to documented pixel and hex values,
// rendered as an embeddable HTML snippet or previewed as a terminal spinner.
package loader

import (
	"github.com/glintlabs/glint/internal/logger"
)

// Size selects the loader's dimensions.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Color selects the loader's palette entry.
type Color string

const (
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorAccent    Color = "accent"
)

// Defaults substituted when a requested value is not recognized.
const (
	DefaultSize  = SizeMedium
	DefaultColor = ColorPrimary
	DefaultLabel = "Loading"
)

// Documented mappings. These tables are fixed: a resolver reads them once
// at construction and never again.
var sizePixels = map[Size]int{
	SizeSmall:  16,
	SizeMedium: 24,
	SizeLarge:  32,
}

var colorHex = map[Color]string{
	ColorPrimary:   "#3B82F6",
	ColorSecondary: "#6B7280",
	ColorAccent:    "#F59E0B",
}

// Options configures a Resolver. Size and Color take the raw requested
// strings so unrecognized values can be coerced with a diagnostic.
type Options struct {
	Size    string
	Color   string
	Overlay bool
	Label   string
	Logger  logger.Logger
}

// Resolver holds a validated loader configuration. Validation happens once
// in New; every accessor afterwards is pure and idempotent.
type Resolver struct {
	size    Size
	color   Color
	overlay bool
	label   string
	pixels  int
	hex     string
}

// New validates the requested configuration and resolves its presentation
// values. An unrecognized size or color is coerced to the documented default
// (medium / primary) with a warning; construction never fails.
func New(opts Options) *Resolver {
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}

	size := Size(opts.Size)
	if opts.Size == "" {
		size = DefaultSize
	} else if _, ok := sizePixels[size]; !ok {
		log.Warn("unknown loader size %q, using %q", opts.Size, DefaultSize)
		size = DefaultSize
	}

	color := Color(opts.Color)
	if opts.Color == "" {
		color = DefaultColor
	} else if _, ok := colorHex[color]; !ok {
		log.Warn("unknown loader color %q, using %q", opts.Color, DefaultColor)
		color = DefaultColor
	}

	label := opts.Label
	if label == "" {
		label = DefaultLabel
	}

	return &Resolver{
		size:    size,
		color:   color,
		overlay: opts.Overlay,
		label:   label,
		pixels:  sizePixels[size],
		hex:     colorHex[color],
	}
}

// Size returns the validated size.
func (r *Resolver) Size() Size { return r.size }

// Color returns the validated color.
func (r *Resolver) Color() Color { return r.color }

// Pixels returns the resolved dimension in pixels.
func (r *Resolver) Pixels() int { return r.pixels }

// Hex returns the resolved color value.
func (r *Resolver) Hex() string { return r.hex }

// Overlay reports whether the loader renders inside a page overlay.
func (r *Resolver) Overlay() bool { return r.overlay }

// Label returns the accessible label.
func (r *Resolver) Label() string { return r.label }
