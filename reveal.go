package folio

import "github.com/tanema/gween/ease"

const (
	revealThreshold   = 0.1
	revealMargin      = -100.0
	revealStagger     = 0.05
	revealDuration    = 0.6
	revealOffset      = 30.0
	staggerThreshold  = 0.2
	staggerItemDelay  = 0.08
	staggerDuration   = 0.5
	staggerItemOffset = 20.0
)

// revealState is the animated appearance of one element.
type revealState struct {
	Alpha  float64
	Offset float64
	active bool
}

// Reveal fades sections in as they scroll into view. Sections reported by
// the observer in the same frame are staggered 50ms apart; a section whose
// top is above viewport height - 100 on any scroll is revealed at once.
type Reveal struct {
	p        *Page
	observer Observer
	states   []revealState
	tweens   tweenSet
}

func newReveal(p *Page) *Reveal {
	r := &Reveal{
		p:        p,
		observer: Observer{Threshold: revealThreshold, MarginBottom: revealMargin},
		states:   make([]revealState, len(p.content.Sections)),
	}
	for i := range r.states {
		r.states[i] = revealState{Alpha: 0, Offset: revealOffset}
		r.observer.Observe(Rect{})
	}
	p.OnScroll(func(ScrollContext) { r.scrollFallback() })
	return r
}

func (r *Reveal) layout() {
	for i := range r.p.content.Sections {
		r.observer.SetBounds(i, r.p.content.Sections[i].Bounds(r.p.width))
	}
}

// State returns alpha and vertical offset for section i.
func (r *Reveal) State(i int) (alpha, offset float64) {
	if i < 0 || i >= len(r.states) {
		return 1, 0
	}
	return r.states[i].Alpha, r.states[i].Offset
}

// Revealed reports whether section i has started revealing.
func (r *Reveal) Revealed(i int) bool {
	return i >= 0 && i < len(r.states) && r.states[i].active
}

func (r *Reveal) activate(i int, delay float64) {
	st := &r.states[i]
	if st.active {
		return
	}
	st.active = true
	r.observer.Unobserve(i)
	r.tweens.add(NewTweenGroup(revealDuration, ease.OutCubic,
		TweenTarget{Field: &st.Alpha, To: 1},
		TweenTarget{Field: &st.Offset, To: 0},
	).WithDelay(float32(delay)))
	r.p.emit(PageEvent{Type: EventSectionRevealed, Target: r.p.content.Sections[i].ID})
}

func (r *Reveal) scrollFallback() {
	for i := range r.p.content.Sections {
		top := r.p.content.Sections[i].Top - r.p.scrollY
		if top < r.p.height+revealMargin {
			r.activate(i, 0)
		}
	}
}

func (r *Reveal) update(dt float64) {
	r.observer.Check(r.p.scrollY, r.p.height, func(i, order int) {
		r.activate(i, float64(order)*revealStagger)
	})
	r.tweens.update(dt)
}

func (r *Reveal) draw(Surface) {}

// StaggerGroup animates a row of tags in one after another once the row is
// 20% visible.
type StaggerGroup struct {
	p        *Page
	section  *Section
	observer Observer
	items    []revealState
	rects    []Rect
	tweens   tweenSet
}

func newStaggerGroup(p *Page, sec *Section) *StaggerGroup {
	g := &StaggerGroup{
		p:        p,
		section:  sec,
		observer: Observer{Threshold: staggerThreshold},
		items:    make([]revealState, len(sec.Items)),
		rects:    make([]Rect, len(sec.Items)),
	}
	for i := range g.items {
		g.items[i] = revealState{Offset: staggerItemOffset}
	}
	g.observer.Observe(Rect{})
	return g
}

// layout flows the tags left to right, wrapping at the column edge.
func (g *StaggerGroup) layout() {
	x0, w := g.p.column()
	x, y := x0, 0.0
	const gap, h = 10.0, 32.0
	for i, item := range g.section.Items {
		tw, _ := g.p.fonts.Measure(item, 14, false)
		iw := tw + 28
		if x+iw > x0+w && x > x0 {
			x = x0
			y += h + gap
		}
		g.rects[i] = Rect{X: x, Y: y, Width: iw, Height: h}
		x += iw + gap
	}
	top := g.p.sections.claim(g.section, y+h)
	for i := range g.rects {
		g.rects[i].Y += top
	}
	g.observer.SetBounds(0, Rect{X: x0, Y: top, Width: w, Height: y + h})
}

// Item returns alpha and offset of tag i.
func (g *StaggerGroup) Item(i int) (alpha, offset float64) {
	return g.items[i].Alpha, g.items[i].Offset
}

func (g *StaggerGroup) update(dt float64) {
	g.observer.Check(g.p.scrollY, g.p.height, func(int, int) {
		for i := range g.items {
			st := &g.items[i]
			st.active = true
			g.tweens.add(NewTweenGroup(staggerDuration, ease.OutQuad,
				TweenTarget{Field: &st.Alpha, To: 1},
				TweenTarget{Field: &st.Offset, To: 0},
			).WithDelay(float32(float64(i) * staggerItemDelay)))
		}
	})
	g.tweens.update(dt)
}

func (g *StaggerGroup) draw(s Surface) {
	th := g.p.content.Theme
	for i, item := range g.section.Items {
		st := g.items[i]
		if st.Alpha <= 0 {
			continue
		}
		r := g.p.toScreen(g.rects[i]).Offset(0, st.Offset)
		s.FillRect(r, th.Surface.WithAlpha(st.Alpha))
		s.StrokeRect(r, 1, th.Primary.WithAlpha(0.4*st.Alpha))
		s.Text(item, r.X+14, r.Y+8, TextStyle{Size: 14, Color: th.Text.WithAlpha(st.Alpha)})
	}
}
