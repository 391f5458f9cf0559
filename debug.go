package folio

import (
	"fmt"
	"time"
)

// debugStats holds per-frame timing and backdrop metrics.
// Only logged when Page.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
}

// logf writes a "[folio]" prefixed line to the page log output.
func (p *Page) logf(format string, args ...any) {
	if p.logw == nil {
		return
	}
	_, _ = fmt.Fprintf(p.logw, "[folio] "+format+"\n", args...)
}

// debugLog prints timing and backdrop stats.
func (p *Page) debugLog() {
	if !p.debug {
		return
	}
	fs := p.field.Stats()
	p.logf("update: %v | draw: %v | total: %v",
		p.stats.updateTime, p.stats.drawTime, p.stats.updateTime+p.stats.drawTime)
	p.logf("particles: %d | links: %d | widgets: %d | scroll: %.0f/%.0f",
		fs.Particles, fs.Links, len(p.widgets), p.scrollY, p.MaxScroll())
}

// debugCheckOverflow warns when widget content claimed inside a section
// runs past the section's bottom edge.
func (p *Page) debugCheckOverflow() {
	if !p.debug || p.sections == nil {
		return
	}
	for i := range p.content.Sections {
		sec := &p.content.Sections[i]
		end, ok := p.sections.cursor[sec]
		if !ok {
			continue
		}
		if bottom := sec.Top + sec.Height; end > bottom {
			p.logf("warning: section %q content ends at %.0f, %.0fpx past its height %.0f",
				sec.ID, end, end-bottom, sec.Height)
		}
	}
}
