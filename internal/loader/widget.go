package loader

import (
	"fmt"

	"github.com/glintlabs/glint/internal/markup"
)

// HTML renders the loader as an embeddable snippet. The ring element carries
// the resolved pixel size and color inline; the container carries the status
// role and the accessible label (escaped for attribute safety).
func (r *Resolver) HTML() string {
	ring := fmt.Sprintf(
		`<span class="glint-loader__ring" style="width:%dpx;height:%dpx;border-color:%s"></span>`,
		r.pixels, r.pixels, r.hex,
	)
	widget := fmt.Sprintf(
		`<div class="glint-loader glint-loader--%s" role="status" aria-label="%s">%s</div>`,
		r.size, markup.EscapeAttr(r.label), ring,
	)
	if r.overlay {
		return `<div class="glint-loader__overlay">` + widget + `</div>`
	}
	return widget
}
