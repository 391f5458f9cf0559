package folio

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	parallaxDivisor = 50.0
	tiltDivisor     = 10.0
	tiltScale       = 1.02
	tiltPerspective = 1000.0
	cardHeight      = 190.0
	cardGap         = 24.0
	glowRadius      = 160.0
	magnetStrength  = 0.3
)

// springValue eases a float toward a target with a damped spring. The
// spring coefficients are rebuilt whenever the step length changes.
type springValue struct {
	spring    harmonica.Spring
	dt        float64
	frequency float64
	damping   float64
	pos       float64
	vel       float64
	target    float64
}

func newSpringValue(frequency, damping, start float64) springValue {
	return springValue{
		frequency: frequency,
		damping:   damping,
		pos:       start,
		target:    start,
	}
}

// step advances the spring by dt seconds.
func (s *springValue) step(dt float64) float64 {
	if dt <= 0 {
		return s.pos
	}
	if dt != s.dt {
		s.dt = dt
		s.spring = harmonica.NewSpring(dt, s.frequency, s.damping)
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}

// jump moves the value to v without animating.
func (s *springValue) jump(v float64) {
	s.pos, s.vel, s.target = v, 0, v
}

// --- Parallax ---

// Parallax offsets the hero visual against the pointer while the pointer is
// over the hero: ((W/2-x)/50, (H/2-y)/50). Leaving the hero resets the
// offset to zero.
type Parallax struct {
	p      *Page
	x, y   springValue
	inside bool
}

func newParallax(p *Page) *Parallax {
	px := &Parallax{
		p: p,
		x: newSpringValue(6, 0.9, 0),
		y: newSpringValue(6, 0.9, 0),
	}
	p.OnPointerMove(px.onMove)
	p.OnPointerLeave(func(PointerContext) { px.reset() })
	return px
}

// ParallaxOffset returns the target offset for a pointer at (x, y) in a
// w by h viewport.
func ParallaxOffset(x, y, w, h float64) (dx, dy float64) {
	return (w/2 - x) / parallaxDivisor, (h/2 - y) / parallaxDivisor
}

func (px *Parallax) onMove(ctx PointerContext) {
	if ctx.DocY >= px.p.content.HeroHeight() {
		if px.inside {
			px.reset()
		}
		return
	}
	px.inside = true
	px.x.target, px.y.target = ParallaxOffset(ctx.X, ctx.Y, px.p.width, px.p.height)
}

func (px *Parallax) reset() {
	px.inside = false
	px.x.target, px.y.target = 0, 0
}

// Target returns the offset the visual is moving toward.
func (px *Parallax) Target() (dx, dy float64) {
	return px.x.target, px.y.target
}

// Offset returns the current smoothed offset.
func (px *Parallax) Offset() (dx, dy float64) {
	return px.x.pos, px.y.pos
}

func (px *Parallax) layout() {}

func (px *Parallax) update(dt float64) {
	px.x.step(dt)
	px.y.step(dt)
}

func (px *Parallax) draw(Surface) {}

// --- Cursor glow ---

// CursorGlow is a soft light that trails the pointer.
type CursorGlow struct {
	p       *Page
	x, y    springValue
	alpha   springValue
	visible bool
}

func newCursorGlow(p *Page) *CursorGlow {
	g := &CursorGlow{
		p:     p,
		x:     newSpringValue(8, 1, 0),
		y:     newSpringValue(8, 1, 0),
		alpha: newSpringValue(4, 1, 0),
	}
	p.OnPointerMove(func(ctx PointerContext) {
		if !g.visible {
			g.x.jump(ctx.X)
			g.y.jump(ctx.Y)
		}
		g.visible = true
		g.x.target, g.y.target = ctx.X, ctx.Y
		g.alpha.target = 1
	})
	p.OnPointerLeave(func(PointerContext) {
		g.visible = false
		g.alpha.target = 0
	})
	return g
}

// Position returns the current glow center in screen space.
func (g *CursorGlow) Position() (x, y float64) {
	return g.x.pos, g.y.pos
}

// Visible reports whether the pointer is inside the window.
func (g *CursorGlow) Visible() bool {
	return g.visible
}

func (g *CursorGlow) layout() {}

func (g *CursorGlow) update(dt float64) {
	g.x.step(dt)
	g.y.step(dt)
	g.alpha.step(dt)
}

func (g *CursorGlow) draw(s Surface) {
	a := clamp01(g.alpha.pos)
	if a <= 0.001 {
		return
	}
	th := g.p.content.Theme
	x, y := g.Position()
	s.FillCircle(x, y, glowRadius, th.Primary.WithAlpha(0.04*a))
	s.FillCircle(x, y, glowRadius*0.55, th.Primary.WithAlpha(0.05*a))
	s.FillCircle(x, y, glowRadius*0.25, th.Accent.WithAlpha(0.05*a))
}

// --- Magnetic buttons ---

// Magnet shifts a button toward the pointer while the pointer is over it:
// the offset is magnetStrength times the pointer's distance from the button
// center. Hit testing keeps using the unshifted rectangle.
type Magnet struct {
	p    *Page
	rect func() Rect // screen space, empty when hidden
	x, y springValue
}

func newMagnet(p *Page, rect func() Rect) *Magnet {
	m := &Magnet{
		p:    p,
		rect: rect,
		x:    newSpringValue(10, 0.6, 0),
		y:    newSpringValue(10, 0.6, 0),
	}
	p.OnPointerMove(func(ctx PointerContext) { m.follow(ctx.X, ctx.Y) })
	p.OnPointerLeave(func(PointerContext) { m.release() })
	p.OnScroll(func(ScrollContext) {
		if x, y, ok := p.Pointer(); ok {
			m.follow(x, y)
		}
	})
	return m
}

func (m *Magnet) follow(x, y float64) {
	r := m.rect()
	if r.Width <= 0 || !r.Contains(x, y) {
		m.release()
		return
	}
	c := r.Center()
	m.x.target = (x - c.X) * magnetStrength
	m.y.target = (y - c.Y) * magnetStrength
}

func (m *Magnet) release() {
	m.x.target, m.y.target = 0, 0
}

// Target returns the offset the button is moving toward.
func (m *Magnet) Target() (dx, dy float64) {
	return m.x.target, m.y.target
}

// Offset returns the current smoothed offset.
func (m *Magnet) Offset() (dx, dy float64) {
	return m.x.pos, m.y.pos
}

func (m *Magnet) update(dt float64) {
	m.x.step(dt)
	m.y.step(dt)
}

// --- Tilt cards ---

// TiltCard is a project card with its animated tilt.
type TiltCard struct {
	Card
	bounds  Rect // document space
	rotX    springValue
	rotY    springValue
	scale   springValue
	hovered bool
}

// Rotation returns the current rotation around the X and Y axes in degrees.
func (c *TiltCard) Rotation() (x, y float64) {
	return c.rotX.pos, c.rotY.pos
}

// Scale returns the current scale.
func (c *TiltCard) Scale() float64 {
	return c.scale.pos
}

// Target returns the rotation and scale the card is moving toward.
func (c *TiltCard) Target() (rotX, rotY, scale float64) {
	return c.rotX.target, c.rotY.target, c.scale.target
}

// Hovered reports whether the pointer is over the card.
func (c *TiltCard) Hovered() bool {
	return c.hovered
}

// Bounds returns the card rectangle in document space.
func (c *TiltCard) Bounds() Rect {
	return c.bounds
}

// TiltAngles returns the rotation for a pointer at (x, y) relative to the
// card's top-left corner: rotateX=(y-cy)/10, rotateY=(cx-x)/10 degrees.
func TiltAngles(x, y, w, h float64) (rotX, rotY float64) {
	return (y - h/2) / tiltDivisor, (w/2 - x) / tiltDivisor
}

// TiltCards lays out project cards in a grid. Cards flagged Tilt lean
// toward the pointer; the hovered card draws above its neighbors.
type TiltCards struct {
	p       *Page
	cards   []*TiltCard
	owners  []*Section
	hovered int
}

func newTiltCards(p *Page) *TiltCards {
	tc := &TiltCards{p: p, hovered: -1}
	for i := range p.content.Sections {
		sec := &p.content.Sections[i]
		for _, c := range sec.Cards {
			tc.cards = append(tc.cards, &TiltCard{
				Card:  c,
				rotX:  newSpringValue(7, 0.7, 0),
				rotY:  newSpringValue(7, 0.7, 0),
				scale: newSpringValue(7, 0.7, 1),
			})
			tc.owners = append(tc.owners, sec)
		}
	}
	if len(tc.cards) == 0 {
		return nil
	}
	p.OnPointerMove(func(ctx PointerContext) { tc.hover(ctx.X, ctx.DocY) })
	p.OnPointerLeave(func(PointerContext) { tc.hover(-1, -1) })
	p.OnScroll(func(ScrollContext) {
		if x, y, ok := p.Pointer(); ok {
			tc.hover(x, y+p.scrollY)
		}
	})
	return tc
}

// Card returns the i-th card in document order.
func (tc *TiltCards) Card(i int) *TiltCard {
	return tc.cards[i]
}

// Len returns the number of cards.
func (tc *TiltCards) Len() int {
	return len(tc.cards)
}

// Hovered returns the index of the hovered card, or -1.
func (tc *TiltCards) Hovered() int {
	return tc.hovered
}

func (tc *TiltCards) hover(x, docY float64) {
	tc.hovered = -1
	for i, c := range tc.cards {
		inside := c.bounds.Contains(x, docY)
		c.hovered = inside
		if inside {
			tc.hovered = i
		}
		if !c.Tilt {
			continue
		}
		if inside {
			c.rotX.target, c.rotY.target = TiltAngles(x-c.bounds.X, docY-c.bounds.Y, c.bounds.Width, c.bounds.Height)
			c.scale.target = tiltScale
		} else {
			c.rotX.target, c.rotY.target, c.scale.target = 0, 0, 1
		}
	}
}

func (tc *TiltCards) layout() {
	x0, w := tc.p.column()
	cols := 3
	switch {
	case tc.p.width < navCollapseWidth:
		cols = 1
	case w < 900:
		cols = 2
	}
	cw := (w - cardGap*float64(cols-1)) / float64(cols)

	i := 0
	for i < len(tc.cards) {
		sec := tc.owners[i]
		n := len(sec.Cards)
		rows := (n + cols - 1) / cols
		top := tc.p.sections.claim(sec, float64(rows)*(cardHeight+cardGap)-cardGap)
		for j := 0; j < n; j++ {
			col, row := j%cols, j/cols
			tc.cards[i+j].bounds = Rect{
				X:      x0 + float64(col)*(cw+cardGap),
				Y:      top + float64(row)*(cardHeight+cardGap),
				Width:  cw,
				Height: cardHeight,
			}
		}
		i += n
	}
}

func (tc *TiltCards) update(dt float64) {
	for _, c := range tc.cards {
		c.rotX.step(dt)
		c.rotY.step(dt)
		c.scale.step(dt)
	}
}

func (tc *TiltCards) draw(s Surface) {
	for i, c := range tc.cards {
		if i != tc.hovered {
			tc.drawCard(s, c)
		}
	}
	if tc.hovered >= 0 {
		tc.drawCard(s, tc.cards[tc.hovered])
	}
}

func (tc *TiltCards) drawCard(s Surface, c *TiltCard) {
	p := tc.p
	r := p.toScreen(c.bounds)
	if r.Y > p.height || r.Y+r.Height < 0 {
		return
	}
	th := p.content.Theme
	rx, ry := c.Rotation()
	quad := ProjectCard(r, rx, ry, c.Scale())
	border := th.Primary.WithAlpha(0.25)
	if c.hovered {
		border = th.Primary.WithAlpha(0.8)
	}
	s.FillQuad(quad, border)
	s.FillQuad(insetQuad(quad, 1), th.Surface)

	// Text follows the card center; it is not projected.
	ctr := Vec2{}
	for _, v := range quad {
		ctr.X += v.X / 4
		ctr.Y += v.Y / 4
	}
	left := ctr.X - r.Width/2 + 20
	top := ctr.Y - r.Height/2 + 20
	s.Text(c.Title, left, top, TextStyle{Size: 20, Bold: true, Color: th.Text})
	y := top + 36
	for _, line := range wrapText(p.fonts, c.Text, 14, r.Width-40) {
		s.Text(line, left, y, TextStyle{Size: 14, Color: th.Muted})
		y += 22
	}
	x := left
	for _, tag := range c.Tags {
		tw, _ := s.MeasureText(tag, 12, false)
		s.Text(tag, x, top+r.Height-56, TextStyle{Size: 12, Color: th.Primary})
		x += tw + 14
	}
}

// ProjectCard returns the corners of r, clockwise from top-left, after
// rotating rotX and rotY degrees around its center, scaling, and applying a
// 1000px perspective.
func ProjectCard(r Rect, rotX, rotY, scale float64) [4]Vec2 {
	c := r.Center()
	ax := rotX * math.Pi / 180
	ay := rotY * math.Pi / 180
	hw, hh := r.Width/2*scale, r.Height/2*scale
	corners := [4]Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	var out [4]Vec2
	for i, v := range corners {
		y1 := v.Y * math.Cos(ax)
		z1 := v.Y * math.Sin(ax)
		x2 := v.X*math.Cos(ay) + z1*math.Sin(ay)
		z2 := -v.X*math.Sin(ay) + z1*math.Cos(ay)
		f := tiltPerspective / (tiltPerspective - z2)
		out[i] = Vec2{X: c.X + x2*f, Y: c.Y + y1*f}
	}
	return out
}

// insetQuad pulls each corner d pixels toward the quad center.
func insetQuad(q [4]Vec2, d float64) [4]Vec2 {
	var c Vec2
	for _, v := range q {
		c.X += v.X / 4
		c.Y += v.Y / 4
	}
	for i, v := range q {
		dx, dy := c.X-v.X, c.Y-v.Y
		l := math.Hypot(dx, dy)
		if l > d {
			q[i] = Vec2{X: v.X + dx/l*d, Y: v.Y + dy/l*d}
		}
	}
	return q
}
