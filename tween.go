package folio

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenTarget binds a float64 field to the value it should reach.
type TweenTarget struct {
	Field *float64
	To    float64
}

// TweenGroup animates one or more float64 fields simultaneously, optionally
// after a delay. Call Update(dt) each frame; values are written through the
// field pointers. There is no global animation manager: widgets own and
// update their groups.
type TweenGroup struct {
	tweens []*gween.Tween
	fields []*float64
	delay  float32
	Done   bool
}

// NewTweenGroup creates a group that moves every target from its current
// value to To over duration seconds using fn.
func NewTweenGroup(duration float32, fn ease.TweenFunc, targets ...TweenTarget) *TweenGroup {
	g := &TweenGroup{
		tweens: make([]*gween.Tween, len(targets)),
		fields: make([]*float64, len(targets)),
	}
	for i, t := range targets {
		g.tweens[i] = gween.New(float32(*t.Field), float32(t.To), duration, fn)
		g.fields[i] = t.Field
	}
	g.Done = len(targets) == 0
	return g
}

// TweenValue animates a single field.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(duration, fn, TweenTarget{Field: field, To: to})
}

// WithDelay holds the group at its start values for d seconds before it
// begins moving. It returns g for chaining.
func (g *TweenGroup) WithDelay(d float32) *TweenGroup {
	g.delay = d
	return g
}

// Update advances all tweens by dt seconds and writes the values to their
// fields. Delay time is consumed first; leftover dt carries into the tween.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.delay > 0 {
		if dt <= g.delay {
			g.delay -= dt
			return
		}
		dt -= g.delay
		g.delay = 0
	}

	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// tweenSet updates a collection of groups and drops finished ones.
type tweenSet []*TweenGroup

func (s *tweenSet) add(g *TweenGroup) {
	*s = append(*s, g)
}

func (s *tweenSet) update(dt float64) {
	live := (*s)[:0]
	for _, g := range *s {
		g.Update(float32(dt))
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(*s); i++ {
		(*s)[i] = nil
	}
	*s = live
}

func (s tweenSet) len() int {
	return len(s)
}
