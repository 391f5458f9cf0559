package folio

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

const (
	loaderTick          = 0.02 // seconds between progress steps
	loaderMaxStep       = 15.0 // max progress gained per step, in percent
	loaderHideAfterLoad = 2.2  // seconds after MarkLoaded before hiding
	loaderForceHide     = 3.0  // seconds after creation the loader hides regardless
	loaderFadeDuration  = 0.5
)

// Loader is the full-screen progress overlay shown while the page starts.
// Progress climbs by a random step every 20ms until it reaches 100. The
// overlay hides 2.2s after MarkLoaded, or 3s after creation at the latest,
// whichever comes first, then fades out.
type Loader struct {
	// Progress is in [0, 100].
	Progress float64
	// OnHidden is called once, when the overlay starts hiding.
	OnHidden func()

	rng      *rand.Rand
	elapsed  float64
	tickAcc  float64
	loadedAt float64
	hiding   bool
	alpha    float64
	fade     *TweenGroup
}

// NewLoader creates a visible loader at 0%. rng may be nil.
func NewLoader(rng *rand.Rand) *Loader {
	return &Loader{rng: rng, loadedAt: -1, alpha: 1}
}

// MarkLoaded records that page content is ready. Only the first call counts.
func (l *Loader) MarkLoaded() {
	if l.loadedAt < 0 {
		l.loadedAt = l.elapsed
	}
}

// Update advances the loader by dt seconds.
func (l *Loader) Update(dt float64) {
	if l.fade != nil && l.fade.Done {
		return
	}
	l.elapsed += dt

	if l.Progress < 100 {
		l.tickAcc += dt
		for l.tickAcc >= loaderTick-1e-9 && l.Progress < 100 {
			l.tickAcc -= loaderTick
			l.Progress = math.Min(100, l.Progress+randFloat(l.rng)*loaderMaxStep)
		}
	}

	if !l.hiding {
		due := l.elapsed >= loaderForceHide
		if l.loadedAt >= 0 && l.elapsed-l.loadedAt >= loaderHideAfterLoad {
			due = true
		}
		if due {
			l.Hide()
		}
	}
	if l.fade != nil {
		l.fade.Update(float32(dt))
	}
}

// Hide starts the fade-out immediately.
func (l *Loader) Hide() {
	if l.hiding {
		return
	}
	l.hiding = true
	l.fade = TweenValue(&l.alpha, 0, loaderFadeDuration, ease.OutQuad)
	if l.OnHidden != nil {
		l.OnHidden()
	}
}

// Hidden reports whether the loader has started hiding. The page accepts
// input from that moment on.
func (l *Loader) Hidden() bool {
	return l.hiding
}

// Alpha is the overlay opacity.
func (l *Loader) Alpha() float64 {
	return l.alpha
}

// Percent is the label value, floor(Progress).
func (l *Loader) Percent() int {
	return int(math.Floor(l.Progress))
}

// loaderWidget draws a Loader as a page overlay.
type loaderWidget struct {
	p *Page
	l *Loader
}

func (w loaderWidget) layout() {}

func (w loaderWidget) update(dt float64) {
	w.l.Update(dt)
}

func (w loaderWidget) draw(s Surface) {
	a := w.l.Alpha()
	if a <= 0 {
		return
	}
	p := w.p
	th := p.content.Theme
	s.FillRect(Rect{Width: p.width, Height: p.height}, th.Background.WithAlpha(a))

	cx, cy := p.width/2, p.height/2
	if p.content.Title != "" {
		s.Text(p.content.Title, cx, cy-70, TextStyle{Size: 28, Bold: true, Color: th.Text.WithAlpha(a), Align: TextAlignCenter})
	}
	bar := Rect{X: cx - 150, Y: cy - 2, Width: 300, Height: 4}
	s.FillRect(bar, th.Surface.WithAlpha(a))
	fill := bar
	fill.Width = bar.Width * w.l.Progress / 100
	s.FillRect(fill, th.Primary.WithAlpha(a))
	s.Text(fmt.Sprintf("%d%%", w.l.Percent()), cx, cy+16, TextStyle{Size: 14, Color: th.Muted.WithAlpha(a), Align: TextAlignCenter})
}
