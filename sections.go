package folio

import (
	"strings"

	"github.com/tanema/gween/ease"
)

const (
	sectionPadTop   = 80.0
	titleSize       = 32.0
	titleGap        = 48.0
	bodySize        = 17.0
	bodyLineHeight  = 28.0
	contentGap      = 24.0
	heroEnterTime   = 1.0
	heroVisualDelay = 0.3
)

// sectionView draws section titles, body text and the footer. It also owns
// the vertical layout inside each section: widgets that render into a
// section claim consecutive blocks below the body text, in layout order.
type sectionView struct {
	p      *Page
	lines  [][]string
	tops   map[*Section]float64
	cursor map[*Section]float64
}

func newSectionView(p *Page) *sectionView {
	return &sectionView{
		p:      p,
		lines:  make([][]string, len(p.content.Sections)),
		tops:   make(map[*Section]float64, len(p.content.Sections)),
		cursor: make(map[*Section]float64, len(p.content.Sections)),
	}
}

func (v *sectionView) layout() {
	_, w := v.p.column()
	for i := range v.p.content.Sections {
		sec := &v.p.content.Sections[i]
		v.lines[i] = v.lines[i][:0]
		for _, para := range sec.Body {
			v.lines[i] = append(v.lines[i], wrapText(v.p.fonts, para, bodySize, w)...)
		}
		y := sec.Top + sectionPadTop
		if sec.Title != "" {
			y += titleGap
		}
		y += float64(len(v.lines[i])) * bodyLineHeight
		v.tops[sec] = y + contentGap
		v.cursor[sec] = y + contentGap
	}
}

// contentTop returns the document y where widget content of sec begins.
func (v *sectionView) contentTop(sec *Section) float64 {
	if y, ok := v.tops[sec]; ok {
		return y
	}
	return sec.Top + sectionPadTop
}

// claim reserves a block of height h in sec and returns its top.
func (v *sectionView) claim(sec *Section, h float64) float64 {
	y, ok := v.cursor[sec]
	if !ok {
		y = v.contentTop(sec)
	}
	v.cursor[sec] = y + h + contentGap
	return y
}

func (v *sectionView) update(float64) {}

func (v *sectionView) draw(s Surface) {
	p := v.p
	th := p.content.Theme
	x0, _ := p.column()
	view := Rect{Y: p.scrollY, Width: p.width, Height: p.height}

	for i := range p.content.Sections {
		sec := &p.content.Sections[i]
		b := sec.Bounds(p.width)
		if !b.Intersects(view) {
			continue
		}
		if i%2 == 1 {
			s.FillRect(p.toScreen(b), th.Surface.WithAlpha(0.35))
		}
		alpha, off := p.reveal.State(i)
		if alpha <= 0 {
			continue
		}
		y := sec.Top + sectionPadTop - p.scrollY + off
		if sec.Title != "" {
			s.Text(sec.Title, x0, y, TextStyle{Size: titleSize, Bold: true, Color: th.Text.WithAlpha(alpha)})
			s.FillRect(Rect{X: x0, Y: y + titleSize + 6, Width: 60, Height: 3}, th.Primary.WithAlpha(alpha))
			y += titleGap
		}
		for _, line := range v.lines[i] {
			s.Text(line, x0, y, TextStyle{Size: bodySize, Color: th.Muted.WithAlpha(alpha)})
			y += bodyLineHeight
		}
	}

	footY := p.content.DocumentHeight() - footerHeight - p.scrollY
	if footY < p.height {
		s.FillRect(Rect{Y: footY, Width: p.width, Height: footerHeight}, th.Surface)
		if p.content.Footer != "" {
			s.Text(p.content.Footer, p.width/2, footY+footerHeight/2-8, TextStyle{Size: 14, Color: th.Muted, Align: TextAlignCenter})
		}
	}
}

// wrapText breaks s into lines no wider than width at the given size.
func wrapText(fs *FontSet, s string, size, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		next := line + " " + w
		if tw, _ := fs.Measure(next, size, false); tw > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line = next
	}
	return append(lines, line)
}

// heroView draws the landing block. Its text slides up and fades in when
// the loader hides; the visual follows the parallax offset.
type heroView struct {
	p *Page

	textAlpha   float64
	textOffset  float64
	visualAlpha float64
	tweens      tweenSet
	entered     bool
}

func newHeroView(p *Page) *heroView {
	return &heroView{p: p, textOffset: 30}
}

// enter starts the entrance animation. Later calls are ignored.
func (h *heroView) enter() {
	if h.entered {
		return
	}
	h.entered = true
	h.tweens.add(NewTweenGroup(heroEnterTime, ease.OutCubic,
		TweenTarget{Field: &h.textAlpha, To: 1},
		TweenTarget{Field: &h.textOffset, To: 0},
	))
	h.tweens.add(TweenValue(&h.visualAlpha, 1, heroEnterTime, ease.OutCubic).WithDelay(heroVisualDelay))
}

// textOrigin returns the document position of the greeting line.
func (h *heroView) textOrigin() (x, y float64) {
	x0, _ := h.p.column()
	return x0, h.p.content.Hero.Height*0.28 + h.textOffset
}

func (h *heroView) visualCenter() Vec2 {
	x0, w := h.p.column()
	return Vec2{X: x0 + w*0.78, Y: h.p.content.Hero.Height * 0.5}
}

func (h *heroView) layout() {}

func (h *heroView) update(dt float64) {
	h.tweens.update(dt)
}

func (h *heroView) draw(s Surface) {
	p := h.p
	hero := p.content.Hero
	if hero.Height-p.scrollY <= 0 {
		return
	}
	th := p.content.Theme
	x, y := h.textOrigin()
	y -= p.scrollY

	if h.textAlpha > 0 {
		s.Text(hero.Greeting, x, y, TextStyle{Size: 18, Color: th.Accent.WithAlpha(h.textAlpha)})
		s.Text(hero.Name, x, y+30, TextStyle{Size: 48, Bold: true, Color: th.Text.WithAlpha(h.textAlpha)})
		s.Text(hero.Tagline, x, y+140, TextStyle{Size: 17, Color: th.Muted.WithAlpha(h.textAlpha)})
	}

	if h.visualAlpha > 0 && p.width >= navCollapseWidth {
		c := h.visualCenter()
		if p.parallax != nil {
			dx, dy := p.parallax.Offset()
			c.X += dx
			c.Y += dy
		}
		c.Y -= p.scrollY
		a := h.visualAlpha
		s.FillCircle(c.X, c.Y, 130, th.Primary.WithAlpha(0.08*a))
		s.FillCircle(c.X, c.Y, 90, th.Accent.WithAlpha(0.12*a))
		s.FillCircle(c.X, c.Y, 50, th.Primary.WithAlpha(0.25*a))
	}
}
