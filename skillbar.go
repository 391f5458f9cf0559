package folio

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

const (
	skillThreshold = 0.2
	skillDelay     = 0.15
	skillDuration  = 1.5
	skillRowHeight = 48.0
	skillBarHeight = 8.0
)

// SkillBar is one animated bar. Width runs from 0 to Percent.
type SkillBar struct {
	Name    string
	Percent float64
	Width   float64
	bounds  Rect
}

type skillGroup struct {
	section *Section
	bars    []*SkillBar
}

// SkillBars animates the skill bars of every section that has them. When a
// section becomes 20% visible, its bar i starts after i*150ms and fills over
// 1.5s.
type SkillBars struct {
	p        *Page
	observer Observer
	groups   []skillGroup
	tweens   tweenSet
}

func newSkillBars(p *Page) *SkillBars {
	sb := &SkillBars{p: p, observer: Observer{Threshold: skillThreshold}}
	for i := range p.content.Sections {
		sec := &p.content.Sections[i]
		if len(sec.Skills) == 0 {
			continue
		}
		g := skillGroup{section: sec}
		for _, sk := range sec.Skills {
			g.bars = append(g.bars, &SkillBar{Name: sk.Name, Percent: clamp(sk.Percent, 0, 100)})
		}
		sb.groups = append(sb.groups, g)
		sb.observer.Observe(Rect{})
	}
	if len(sb.groups) == 0 {
		return nil
	}
	return sb
}

// Bars returns every bar in document order.
func (sb *SkillBars) Bars() []*SkillBar {
	var out []*SkillBar
	for _, g := range sb.groups {
		out = append(out, g.bars...)
	}
	return out
}

func (sb *SkillBars) layout() {
	x0, w := sb.p.column()
	for gi, g := range sb.groups {
		top := sb.p.sections.claim(g.section, float64(len(g.bars))*skillRowHeight)
		for i, b := range g.bars {
			b.bounds = Rect{X: x0, Y: top + float64(i)*skillRowHeight + 26, Width: w, Height: skillBarHeight}
		}
		sb.observer.SetBounds(gi, Rect{X: x0, Y: top, Width: w, Height: float64(len(g.bars)) * skillRowHeight})
	}
}

func (sb *SkillBars) update(dt float64) {
	sb.observer.Check(sb.p.scrollY, sb.p.height, func(gi, _ int) {
		for i, b := range sb.groups[gi].bars {
			sb.tweens.add(TweenValue(&b.Width, b.Percent, skillDuration, ease.OutCubic).
				WithDelay(float32(float64(i) * skillDelay)))
		}
	})
	sb.tweens.update(dt)
}

func (sb *SkillBars) draw(s Surface) {
	th := sb.p.content.Theme
	for _, g := range sb.groups {
		for _, b := range g.bars {
			r := sb.p.toScreen(b.bounds)
			if r.Y > sb.p.height || r.Y < -skillRowHeight {
				continue
			}
			s.Text(b.Name, r.X, r.Y-24, TextStyle{Size: 15, Color: th.Text})
			s.Text(fmt.Sprintf("%.0f%%", b.Percent), r.X+r.Width, r.Y-24, TextStyle{Size: 15, Color: th.Primary, Align: TextAlignRight})
			s.FillRect(r, th.Surface)
			fill := r
			fill.Width = r.Width * b.Width / 100
			s.FillRect(fill, th.Primary.Blend(th.Accent, b.Width/100))
		}
	}
}
