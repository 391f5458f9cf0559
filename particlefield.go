package folio

import (
	"math"
	"math/rand/v2"
)

// DefaultPalette is the five-color particle palette.
var DefaultPalette = []Color{
	RGB255(0, 212, 255),
	RGB255(123, 44, 191),
	RGB255(255, 0, 110),
	RGB255(248, 152, 28),
	RGB255(109, 179, 63),
}

// Particle is one point of the ambient backdrop. Positions and speeds are in
// pixels and pixels per frame.
type Particle struct {
	X, Y           float64
	Size           float64 // radius
	SpeedX, SpeedY float64
	Opacity        float64
	Color          Color
}

// FieldConfig controls the backdrop simulation. Zero values fall back to the
// defaults noted on each field.
type FieldConfig struct {
	// MaxParticles caps the particle count. Default 100.
	MaxParticles int
	// AreaPerParticle is the surface area (px²) that earns one particle.
	// Default 15000.
	AreaPerParticle float64
	// Size is the radius range at spawn. Default [0.5, 2.5).
	Size Range
	// Speed is the per-axis speed range at spawn. Default [-0.25, 0.25).
	Speed Range
	// MinOpacity and MaxOpacity bound the opacity walk. Default 0.1 and 0.6.
	// Non-positive values take the default, so a floor of exactly zero is
	// not expressible; use a tiny positive value instead.
	MinOpacity, MaxOpacity float64
	// OpacityJitter is the maximum per-frame opacity change. Default 0.01.
	OpacityJitter float64
	// Palette colors are picked uniformly at spawn. Default DefaultPalette.
	Palette []Color

	// LinkDistance is the connection threshold in pixels. Default 150.
	LinkDistance float64
	// LinkOpacity is the alpha of a zero-length link. Default 0.15. A
	// non-positive value takes the default; set NoLinks to hide links.
	LinkOpacity float64
	// LinkWidth is the stroke width of links. Default 0.5.
	LinkWidth float64
	// LinkColor defaults to the first palette entry of DefaultPalette when
	// left as the zero Color. Opaque black is Color{A: 1}.
	LinkColor Color
	// NoLinks disables connection lines.
	NoLinks bool

	// NoGlow disables the halo drawn around each particle.
	NoGlow bool
	// GlowScale is the halo radius multiplier. Default 2.
	GlowScale float64
	// GlowAlpha is the halo opacity multiplier. Default 0.3.
	GlowAlpha float64

	// NoAttract disables pointer attraction.
	NoAttract bool
	// AttractRadius is the pointer influence radius. Default 150.
	AttractRadius float64
	// AttractStrength scales the attraction impulse. Default 0.02.
	AttractStrength float64
	// MaxSpeed caps particle speed when positive. Zero leaves speed
	// unbounded. The cap can shorten a speed component that was just
	// reflected, so a capped particle may need several frames to re-enter
	// the bounds; while outside it always heads back inward.
	MaxSpeed float64

	// Rand is the random source. Nil uses the global math/rand/v2 source.
	Rand *rand.Rand
}

func (c *FieldConfig) applyDefaults() {
	if c.MaxParticles <= 0 {
		c.MaxParticles = 100
	}
	if c.AreaPerParticle <= 0 {
		c.AreaPerParticle = 15000
	}
	if c.Size == (Range{}) {
		c.Size = Range{Min: 0.5, Max: 2.5}
	}
	if c.Speed == (Range{}) {
		c.Speed = Range{Min: -0.25, Max: 0.25}
	}
	if c.MinOpacity <= 0 {
		c.MinOpacity = 0.1
	}
	if c.MaxOpacity <= 0 {
		c.MaxOpacity = 0.6
	}
	if c.MaxOpacity < c.MinOpacity {
		c.MaxOpacity = c.MinOpacity
	}
	if c.OpacityJitter <= 0 {
		c.OpacityJitter = 0.01
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette
	}
	if c.LinkDistance <= 0 {
		c.LinkDistance = 150
	}
	if c.LinkOpacity <= 0 {
		c.LinkOpacity = 0.15
	}
	if c.LinkWidth <= 0 {
		c.LinkWidth = 0.5
	}
	if c.LinkColor == (Color{}) {
		c.LinkColor = DefaultPalette[0]
	}
	if c.GlowScale <= 0 {
		c.GlowScale = 2
	}
	if c.GlowAlpha <= 0 {
		c.GlowAlpha = 0.3
	}
	if c.AttractRadius <= 0 {
		c.AttractRadius = 150
	}
	if c.AttractStrength <= 0 {
		c.AttractStrength = 0.02
	}
}

// FieldStats reports the work done by the last Update/Draw pair.
type FieldStats struct {
	Particles int
	Links     int
}

// ParticleField simulates the particle backdrop on a surface the size of the
// viewport. It is not safe for concurrent use; Page drives it from the
// Ebitengine loop, which also serializes the pointer and resize hooks.
type ParticleField struct {
	cfg       FieldConfig
	particles []Particle
	width     float64
	height    float64
	running   bool

	pointerX, pointerY float64
	hasPointer         bool

	stats FieldStats
}

// NewParticleField creates a stopped field with no particles. Call Resize to
// size it and Start to animate it.
func NewParticleField(cfg FieldConfig) *ParticleField {
	cfg.applyDefaults()
	return &ParticleField{cfg: cfg}
}

// Config returns a pointer to the field's config for live tuning. Changes to
// the spawn ranges apply at the next Resize.
func (f *ParticleField) Config() *FieldConfig {
	return &f.cfg
}

// Start begins animating. Calling Start on a running field does nothing.
func (f *ParticleField) Start() {
	f.running = true
}

// Stop halts the simulation. A stopped field neither updates nor draws.
func (f *ParticleField) Stop() {
	f.running = false
}

// Running reports whether the field is animating.
func (f *ParticleField) Running() bool {
	return f.running
}

// Bounds returns the current surface size.
func (f *ParticleField) Bounds() (w, h float64) {
	return f.width, f.height
}

// ParticleCount returns the number of particles a w×h surface holds:
// min(MaxParticles, floor(w*h/AreaPerParticle)).
func (f *ParticleField) ParticleCount(w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	n := int(math.Floor(float64(w) * float64(h) / f.cfg.AreaPerParticle))
	return min(n, f.cfg.MaxParticles)
}

// Resize sets the surface size and regenerates every particle. The previous
// particle slice is dropped, never reused.
func (f *ParticleField) Resize(w, h int) {
	f.width = math.Max(0, float64(w))
	f.height = math.Max(0, float64(h))
	n := f.ParticleCount(w, h)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.reset(&f.particles[i])
	}
}

// reset reinitializes p with a random position, size, speed, opacity and color.
func (f *ParticleField) reset(p *Particle) {
	rng := f.cfg.Rand
	p.X = randFloat(rng) * f.width
	p.Y = randFloat(rng) * f.height
	p.Size = f.cfg.Size.Random(rng)
	p.SpeedX = f.cfg.Speed.Random(rng)
	p.SpeedY = f.cfg.Speed.Random(rng)
	p.Opacity = Range{Min: f.cfg.MinOpacity, Max: f.cfg.MaxOpacity}.Random(rng)
	p.Color = f.cfg.Palette[randIntN(rng, len(f.cfg.Palette))]
}

// Len returns the number of particles.
func (f *ParticleField) Len() int {
	return len(f.particles)
}

// Particles returns the live particle slice. Callers must not retain it
// across Resize.
func (f *ParticleField) Particles() []Particle {
	return f.particles
}

// SetPointer records the pointer position used for attraction.
func (f *ParticleField) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

// ClearPointer marks the pointer as absent.
func (f *ParticleField) ClearPointer() {
	f.hasPointer = false
}

// Pointer returns the last pointer position and whether it is present.
func (f *ParticleField) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.hasPointer
}

// Stats returns counts from the last frame.
func (f *ParticleField) Stats() FieldStats {
	return f.stats
}

// Update advances every particle by one frame. Particles that cross an edge
// have that speed component negated; they may sit outside the bounds for at
// most one frame before coming back. MaxSpeed relaxes that bound, see
// FieldConfig.
func (f *ParticleField) Update() {
	if !f.running {
		return
	}
	for i := range f.particles {
		f.step(&f.particles[i])
	}
	f.stats.Particles = len(f.particles)
}

func (f *ParticleField) step(p *Particle) {
	p.X += p.SpeedX
	p.Y += p.SpeedY

	if f.cfg.MaxSpeed > 0 {
		// A capped inward speed may leave the particle outside for another
		// frame; negating again would send it back out.
		p.SpeedX = reflectInward(p.X, p.SpeedX, f.width)
		p.SpeedY = reflectInward(p.Y, p.SpeedY, f.height)
	} else {
		if p.X < 0 || p.X > f.width {
			p.SpeedX = -p.SpeedX
		}
		if p.Y < 0 || p.Y > f.height {
			p.SpeedY = -p.SpeedY
		}
	}

	j := f.cfg.OpacityJitter
	p.Opacity += (randFloat(f.cfg.Rand)*2 - 1) * j
	p.Opacity = clamp(p.Opacity, f.cfg.MinOpacity, f.cfg.MaxOpacity)

	if f.hasPointer && !f.cfg.NoAttract {
		f.attract(p)
	}
}

// attract pulls p toward the pointer. The impulse is never damped, so a
// particle held near the pointer keeps speeding up unless MaxSpeed is set.
func (f *ParticleField) attract(p *Particle) {
	dx := f.pointerX - p.X
	dy := f.pointerY - p.Y
	d := math.Hypot(dx, dy)
	r := f.cfg.AttractRadius
	if d >= r || d == 0 {
		return
	}
	force := AttractionForce(d, r) * f.cfg.AttractStrength
	p.SpeedX += dx / d * force
	p.SpeedY += dy / d * force

	if limit := f.cfg.MaxSpeed; limit > 0 {
		if s := math.Hypot(p.SpeedX, p.SpeedY); s > limit {
			p.SpeedX *= limit / s
			p.SpeedY *= limit / s
		}
	}
}

// reflectInward points speed back into [0, limit] when pos lies outside.
func reflectInward(pos, speed, limit float64) float64 {
	switch {
	case pos < 0:
		return math.Abs(speed)
	case pos > limit:
		return -math.Abs(speed)
	}
	return speed
}

// AttractionForce is the unscaled pull at distance d inside radius r.
func AttractionForce(d, r float64) float64 {
	if d >= r {
		return 0
	}
	return (r - d) / r
}

// LinkAlpha is the opacity of a connection of length d: it falls linearly from
// LinkOpacity at 0 to zero at LinkDistance. ok is false when no link is drawn.
func (f *ParticleField) LinkAlpha(d float64) (alpha float64, ok bool) {
	if d >= f.cfg.LinkDistance {
		return 0, false
	}
	return (1 - d/f.cfg.LinkDistance) * f.cfg.LinkOpacity, true
}

// Links calls fn for every unordered particle pair closer than LinkDistance.
// This is O(n²); n is capped by MaxParticles.
func (f *ParticleField) Links(fn func(a, b int, alpha float64)) {
	maxD2 := f.cfg.LinkDistance * f.cfg.LinkDistance
	ps := f.particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			d2 := dx*dx + dy*dy
			if d2 >= maxD2 {
				continue
			}
			if alpha, ok := f.LinkAlpha(math.Sqrt(d2)); ok {
				fn(i, j, alpha)
			}
		}
	}
}

// Draw clears s and renders particles, halos and links. A nil surface, a
// stopped field or an empty field draws nothing.
func (f *ParticleField) Draw(s Surface) {
	if s == nil || !f.running || f.width == 0 || f.height == 0 {
		return
	}
	s.Clear()

	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.X, p.Y, p.Size, p.Color.WithAlpha(p.Opacity))
		if !f.cfg.NoGlow {
			s.FillCircle(p.X, p.Y, p.Size*f.cfg.GlowScale, p.Color.WithAlpha(p.Opacity*f.cfg.GlowAlpha))
		}
	}

	if f.cfg.NoLinks {
		f.stats.Links = 0
		return
	}
	links := 0
	ps := f.particles
	f.Links(func(a, b int, alpha float64) {
		s.StrokeLine(ps[a].X, ps[a].Y, ps[b].X, ps[b].Y, f.cfg.LinkWidth, f.cfg.LinkColor.WithAlpha(alpha))
		links++
	})
	f.stats.Links = links
}
