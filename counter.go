package folio

import (
	"math"
	"strconv"

	"github.com/tanema/gween/ease"
)

const (
	counterThreshold = 0.3
	counterDuration  = 2.0
	counterBoxHeight = 110.0
	counterGap       = 20.0
)

// Counter counts from 0 to its target once it becomes visible.
type Counter struct {
	Label  string
	Target int

	value   float64
	tween   *TweenGroup
	started bool
	bounds  Rect
}

// Value is the current count, floor of the animated value. It equals Target
// exactly once the animation finishes.
func (c *Counter) Value() int {
	if c.tween != nil && c.tween.Done {
		return c.Target
	}
	return int(math.Floor(c.value))
}

// Started reports whether the count has begun.
func (c *Counter) Started() bool { return c.started }

func (c *Counter) start() {
	c.started = true
	c.tween = TweenValue(&c.value, float64(c.Target), counterDuration, ease.Linear)
}

func (c *Counter) update(dt float64) {
	if c.tween == nil || c.tween.Done {
		return
	}
	c.tween.Update(float32(dt))
	if c.tween.Done {
		c.value = float64(c.Target)
	}
}

// Counters lays out and animates every stat on the page.
type Counters struct {
	p        *Page
	observer Observer
	counters []*Counter
	owners   []*Section
}

func newCounters(p *Page) *Counters {
	cs := &Counters{p: p, observer: Observer{Threshold: counterThreshold}}
	for i := range p.content.Sections {
		sec := &p.content.Sections[i]
		for _, st := range sec.Stats {
			cs.counters = append(cs.counters, &Counter{Label: st.Label, Target: st.Target})
			cs.owners = append(cs.owners, sec)
			cs.observer.Observe(Rect{})
		}
	}
	if len(cs.counters) == 0 {
		return nil
	}
	return cs
}

// Counter returns the i-th counter in document order.
func (cs *Counters) Counter(i int) *Counter {
	return cs.counters[i]
}

// Len returns the number of counters.
func (cs *Counters) Len() int {
	return len(cs.counters)
}

func (cs *Counters) layout() {
	x0, w := cs.p.column()
	i := 0
	for i < len(cs.counters) {
		sec := cs.owners[i]
		n := len(sec.Stats)
		bw := (w - counterGap*float64(n-1)) / float64(n)
		top := cs.p.sections.claim(sec, counterBoxHeight)
		for j := 0; j < n; j++ {
			c := cs.counters[i+j]
			c.bounds = Rect{X: x0 + float64(j)*(bw+counterGap), Y: top, Width: bw, Height: counterBoxHeight}
			cs.observer.SetBounds(i+j, c.bounds)
		}
		i += n
	}
}

func (cs *Counters) update(dt float64) {
	cs.observer.Check(cs.p.scrollY, cs.p.height, func(i, _ int) {
		cs.counters[i].start()
	})
	for _, c := range cs.counters {
		c.update(dt)
	}
}

func (cs *Counters) draw(s Surface) {
	th := cs.p.content.Theme
	for _, c := range cs.counters {
		r := cs.p.toScreen(c.bounds)
		if r.Y > cs.p.height || r.Y+r.Height < 0 {
			continue
		}
		s.FillRect(r, th.Surface)
		s.StrokeRect(r, 1, th.Primary.WithAlpha(0.3))
		cx := r.X + r.Width/2
		s.Text(strconv.Itoa(c.Value())+"+", cx, r.Y+20, TextStyle{Size: 36, Bold: true, Color: th.Primary, Align: TextAlignCenter})
		s.Text(c.Label, cx, r.Y+72, TextStyle{Size: 14, Color: th.Muted, Align: TextAlignCenter})
	}
}
