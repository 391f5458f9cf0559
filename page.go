package folio

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// widget is one independent piece of page behavior. Widgets never share
// state with each other; they read the page's viewport and scroll offset and
// subscribe to page input callbacks.
type widget interface {
	// layout recomputes document-space geometry after a resize.
	layout()
	update(dt float64)
	draw(s Surface)
}

// PageOption configures a Page at construction.
type PageOption func(*Page)

// WithFieldConfig overrides the particle backdrop configuration.
func WithFieldConfig(cfg FieldConfig) PageOption {
	return func(p *Page) { p.fieldCfg = cfg }
}

// WithFonts sets the fonts used for all text.
func WithFonts(fs *FontSet) PageOption {
	return func(p *Page) { p.fonts = fs }
}

// WithSaver replaces the save dialog used by the resume link.
func WithSaver(s Saver) PageOption {
	return func(p *Page) { p.saver = s }
}

// WithLogOutput redirects page log lines. A nil writer silences them.
func WithLogOutput(w io.Writer) PageOption {
	return func(p *Page) { p.logw = w }
}

// WithSectionSnap makes the page settle on the nearest section anchor when
// the user stops scrolling within distance pixels of it. A non-positive
// distance uses 150.
func WithSectionSnap(distance float64) PageOption {
	return func(p *Page) {
		if distance <= 0 {
			distance = defaultSnapDistance
		}
		p.snapDistance = distance
	}
}

// WithViewport sets the initial viewport size, before the first Layout.
func WithViewport(w, h int) PageOption {
	return func(p *Page) { p.initW, p.initH = w, h }
}

// Page is the portfolio document: a scrolling column of sections drawn over
// the particle backdrop. It implements ebiten.Game. Ebitengine calls Update,
// Draw and Layout from a single loop, which serializes every input handler
// with the simulation; Page uses no locks.
type Page struct {
	content  *Content
	fonts    *FontSet
	field    *ParticleField
	fieldCfg FieldConfig
	backdrop *ebiten.Image
	saver    Saver

	width, height float64
	initW, initH  int
	scrollY       float64
	snapDistance  float64

	input       inputSource
	pointer     pointerState
	handlers    handlerRegistry
	injectQueue []syntheticEvent
	chars       []rune

	// Widgets. Any of them may be nil when the content lacks its anchor.
	sections   *sectionView
	hero       *heroView
	loader     *Loader
	typewriter *Typewriter
	reveal     *Reveal
	staggers   []*StaggerGroup
	counters   *Counters
	skills     *SkillBars
	nav        *Navbar
	scroller   *SmoothScroller
	form       *ContactForm
	notifier   *Notifier
	parallax   *Parallax
	glow       *CursorGlow
	tilt       *TiltCards
	resume     *ResumeLink
	fps        *fpsWidget
	widgets    []widget

	// ClearColor fills the screen behind the backdrop. Defaults to the
	// theme background.
	ClearColor Color
	// ShowFPS draws an FPS/TPS readout in the bottom-left corner.
	ShowFPS bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	sink            EventSink
	logw            io.Writer
	updateFunc      func() error
	script          *ScriptRunner
	screenshotQueue []string
	debug           bool
	stats           debugStats
	frame           int
	closed          bool
	cancelled       atomic.Bool
}

// NewPage builds a page and every widget its content calls for. The particle
// backdrop starts running immediately.
func NewPage(content *Content, opts ...PageOption) *Page {
	p := &Page{
		content:       content,
		input:         ebitenInput{},
		ClearColor:    content.Theme.Background,
		ScreenshotDir: "screenshots",
		initW:         1280,
		initH:         720,
		logw:          os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fonts == nil {
		p.fonts = DefaultFontSet()
	}
	if p.saver == nil {
		p.saver = zenitySaver{}
	}
	if len(p.fieldCfg.Palette) == 0 && len(content.Palette) > 0 {
		p.fieldCfg.Palette = content.Palette
	}
	p.width, p.height = float64(p.initW), float64(p.initH)

	p.field = NewParticleField(p.fieldCfg)
	p.field.Resize(p.initW, p.initH)
	p.field.Start()

	p.buildWidgets()
	for _, w := range p.widgets {
		w.layout()
	}
	return p
}

// buildWidgets creates widgets in draw order. A widget whose anchor is
// missing from the content is skipped.
func (p *Page) buildWidgets() {
	p.scroller = newSmoothScroller(p)
	p.scroller.snapDistance = p.snapDistance
	p.notifier = newNotifier(p)

	p.sections = newSectionView(p)
	p.reveal = newReveal(p)
	p.add(p.sections, p.reveal)

	if p.content.Hero != nil {
		p.hero = newHeroView(p)
		p.add(p.hero)
		if tw := NewTypewriter(p.content.Hero.Roles); tw != nil {
			p.typewriter = tw
			p.add(typewriterWidget{p: p, tw: tw})
		}
		p.parallax = newParallax(p)
		p.add(p.parallax)
	}

	for i := range p.content.Sections {
		sec := &p.content.Sections[i]
		if len(sec.Items) > 0 {
			g := newStaggerGroup(p, sec)
			p.staggers = append(p.staggers, g)
			p.add(g)
		}
	}
	if sb := newSkillBars(p); sb != nil {
		p.skills = sb
		p.add(sb)
	}
	if c := newCounters(p); c != nil {
		p.counters = c
		p.add(c)
	}
	if tc := newTiltCards(p); tc != nil {
		p.tilt = tc
		p.add(tc)
	}
	if rl := newResumeLink(p); rl != nil {
		p.resume = rl
		p.add(rl)
	}
	if f := newContactForm(p); f != nil {
		p.form = f
		p.add(f)
	}

	p.glow = newCursorGlow(p)
	p.nav = newNavbar(p)
	p.loader = NewLoader(p.fieldCfg.Rand)
	p.loader.OnHidden = p.onLoaderHidden
	p.fps = &fpsWidget{p: p}
	p.add(p.glow, p.nav, p.scroller, p.notifier, loaderWidget{p: p, l: p.loader}, p.fps)
}

func (p *Page) add(ws ...widget) {
	p.widgets = append(p.widgets, ws...)
}

func (p *Page) onLoaderHidden() {
	if p.hero != nil {
		p.hero.enter()
	}
	p.emit(PageEvent{Type: EventLoaderHidden})
}

// Content returns the page content.
func (p *Page) Content() *Content { return p.content }

// Field returns the particle backdrop.
func (p *Page) Field() *ParticleField { return p.field }

// Notifier returns the toast queue.
func (p *Page) Notifier() *Notifier { return p.notifier }

// Scroller returns the smooth scroller.
func (p *Page) Scroller() *SmoothScroller { return p.scroller }

// Loader returns the startup overlay.
func (p *Page) Loader() *Loader { return p.loader }

// Navbar returns the navigation bar.
func (p *Page) Navbar() *Navbar { return p.nav }

// Reveal returns the section reveal animator.
func (p *Page) Reveal() *Reveal { return p.reveal }

// The accessors below return nil when the content has nothing for the
// widget to show.

// Typewriter returns the hero role typewriter.
func (p *Page) Typewriter() *Typewriter { return p.typewriter }

// Form returns the contact form.
func (p *Page) Form() *ContactForm { return p.form }

// Counters returns the stat counters.
func (p *Page) Counters() *Counters { return p.counters }

// SkillBars returns the skill bars.
func (p *Page) SkillBars() *SkillBars { return p.skills }

// Cards returns the project cards.
func (p *Page) Cards() *TiltCards { return p.tilt }

// Parallax returns the hero parallax.
func (p *Page) Parallax() *Parallax { return p.parallax }

// CursorGlow returns the pointer glow.
func (p *Page) CursorGlow() *CursorGlow { return p.glow }

// ResumeLink returns the resume download button.
func (p *Page) ResumeLink() *ResumeLink { return p.resume }

// Staggers returns the tag groups in document order.
func (p *Page) Staggers() []*StaggerGroup { return p.staggers }

// Viewport returns the current viewport size.
func (p *Page) Viewport() (w, h float64) { return p.width, p.height }

// ScrollY returns the document offset at the top of the viewport.
func (p *Page) ScrollY() float64 { return p.scrollY }

// MaxScroll returns the largest valid scroll offset.
func (p *Page) MaxScroll() float64 {
	return max(0, p.content.DocumentHeight()-p.height)
}

// ScrollLocked reports whether user scrolling is disabled, which is the case
// while the loader covers the page or the mobile menu is open.
func (p *Page) ScrollLocked() bool {
	if p.loader != nil && !p.loader.Hidden() {
		return true
	}
	return p.nav != nil && p.nav.MenuOpen()
}

// userScroll applies a wheel or key scroll. It cancels any smooth scroll.
func (p *Page) userScroll(delta float64) {
	if p.ScrollLocked() {
		return
	}
	p.scroller.Cancel()
	p.setScroll(p.scrollY + delta)
	p.scroller.userScrolled()
}

// setScroll clamps y and fires scroll handlers when the offset changes.
func (p *Page) setScroll(y float64) {
	y = clamp(y, 0, p.MaxScroll())
	if y == p.scrollY {
		return
	}
	delta := y - p.scrollY
	p.scrollY = y
	ctx := ScrollContext{Y: y, Delta: delta}
	snapshot := append([]scrollHandler(nil), p.handlers.scroll...)
	for _, h := range snapshot {
		h.fn(ctx)
	}
}

// resize applies a new viewport size: the backdrop is regenerated and every
// widget lays itself out again.
func (p *Page) resize(w, h int) {
	if float64(w) == p.width && float64(h) == p.height {
		return
	}
	p.width, p.height = float64(w), float64(h)
	p.field.Resize(w, h)
	for _, wd := range p.widgets {
		wd.layout()
	}
	p.setScroll(p.scrollY)
	p.debugCheckOverflow()
}

// column returns the x offset and width of the centered content column.
func (p *Page) column() (x, w float64) {
	w = min(1000, p.width-80)
	if w < 200 {
		w = max(0, p.width-32)
	}
	return (p.width - w) / 2, w
}

// toScreen converts a document-space rectangle to screen space.
func (p *Page) toScreen(r Rect) Rect {
	return r.Offset(0, -p.scrollY)
}

// SetUpdateFunc sets a callback invoked at the end of every Update.
func (p *Page) SetUpdateFunc(fn func() error) {
	p.updateFunc = fn
}

// SetDebugMode enables or disables per-frame timing stats and layout
// warnings on the log output.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
	p.debugCheckOverflow()
}

// tickSeconds is the simulated time per Update.
func tickSeconds() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(tps)
}

// Update processes input, advances the backdrop and every widget.
func (p *Page) Update() error {
	if p.cancelled.Load() {
		p.Close()
	}
	if p.closed {
		return ebiten.Termination
	}
	t0 := time.Now()
	p.frame++
	if p.frame == 1 && p.loader != nil {
		p.loader.MarkLoaded()
	}

	if p.script != nil {
		p.script.step(p)
	}
	p.processInput()

	p.field.Update()
	dt := tickSeconds()
	for _, w := range p.widgets {
		w.update(dt)
	}

	if p.updateFunc != nil {
		if err := p.updateFunc(); err != nil {
			return err
		}
	}
	p.stats.updateTime = time.Since(t0)
	return nil
}

// Draw renders the backdrop into its own layer, composites it, then draws
// the widgets on top.
func (p *Page) Draw(screen *ebiten.Image) {
	t0 := time.Now()
	screen.Fill(p.ClearColor.toRGBA())

	b := screen.Bounds()
	if p.backdrop == nil || p.backdrop.Bounds().Dx() != b.Dx() || p.backdrop.Bounds().Dy() != b.Dy() {
		if p.backdrop != nil {
			p.backdrop.Deallocate()
		}
		p.backdrop = ebiten.NewImage(b.Dx(), b.Dy())
	}
	if p.field.Running() {
		p.field.Draw(NewImageSurface(p.backdrop, p.fonts))
		screen.DrawImage(p.backdrop, nil)
	}

	p.drawWidgets(NewImageSurface(screen, p.fonts))
	p.flushScreenshots(screen)

	p.stats.drawTime = time.Since(t0)
	if p.debug {
		p.debugLog()
	}
}

func (p *Page) drawWidgets(s Surface) {
	if s == nil {
		return
	}
	for _, w := range p.widgets {
		w.draw(s)
	}
}

// Layout reports the logical screen size, which always matches the window.
// A size change regenerates the backdrop and relays out the page.
func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	p.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close stops the backdrop and every timer. The next Update returns
// ebiten.Termination. Close must be called from the game loop; use
// RunContext to stop a page from another goroutine.
func (p *Page) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.field.Stop()
	p.scroller.Cancel()
	if p.backdrop != nil {
		p.backdrop.Deallocate()
		p.backdrop = nil
	}
}

// Closed reports whether Close has been called.
func (p *Page) Closed() bool {
	return p.closed
}
