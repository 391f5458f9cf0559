package folio

const (
	navScrolledAt    = 100.0
	navActiveOffset  = 200.0
	backToTopAt      = 500.0
	backToTopSize    = 50.0
	navCollapseWidth = 768.0
	navLinkGap       = 32.0
	navLinkSize      = 15.0
	menuItemHeight   = 52.0
)

type navLink struct {
	label  string
	anchor string
	id     string
	rect   Rect // screen space, desktop row
	menu   Rect // screen space, mobile menu
}

// Navbar is the fixed top bar. It turns opaque once the page scrolls past
// 100px, highlights the link of the section in view, collapses into a
// hamburger menu on narrow viewports and shows a back-to-top button past
// 500px.
type Navbar struct {
	p         *Page
	links     []navLink
	brand     Rect
	hamburger Rect
	backToTop Rect
	magnet    *Magnet
	menuOpen  bool
}

func newNavbar(p *Page) *Navbar {
	n := &Navbar{p: p}
	for _, sec := range p.content.Sections {
		if sec.Title == "" {
			continue
		}
		n.links = append(n.links, navLink{label: sec.Title, anchor: "#" + sec.ID, id: sec.ID})
	}
	n.magnet = newMagnet(p, func() Rect {
		if !n.BackToTopVisible() {
			return Rect{}
		}
		return n.backToTop
	})
	p.OnClick(n.onClick)
	return n
}

// Magnet returns the back-to-top button's magnetic hover offset.
func (n *Navbar) Magnet() *Magnet { return n.magnet }

// Scrolled reports whether the page is scrolled past the navbar threshold.
func (n *Navbar) Scrolled() bool {
	return n.p.scrollY > navScrolledAt
}

// Active returns the id of the last section whose top, less 200px, the
// viewport has passed. It is empty above the first section.
func (n *Navbar) Active() string {
	active := ""
	for _, sec := range n.p.content.Sections {
		if n.p.scrollY >= sec.Top-navActiveOffset {
			active = sec.ID
		}
	}
	return active
}

// BackToTopVisible reports whether the back-to-top button is shown.
func (n *Navbar) BackToTopVisible() bool {
	return n.p.scrollY > backToTopAt
}

// Collapsed reports whether links are folded into the hamburger menu.
func (n *Navbar) Collapsed() bool {
	return n.p.width < navCollapseWidth
}

// MenuOpen reports whether the mobile menu is open.
func (n *Navbar) MenuOpen() bool {
	return n.menuOpen
}

// ToggleMenu opens or closes the mobile menu.
func (n *Navbar) ToggleMenu() {
	n.setMenu(!n.menuOpen)
}

// CloseMenu closes the mobile menu if it is open.
func (n *Navbar) CloseMenu() {
	n.setMenu(false)
}

func (n *Navbar) setMenu(open bool) {
	if n.menuOpen == open {
		return
	}
	n.menuOpen = open
	v := 0.0
	if open {
		v = 1
	}
	n.p.emit(PageEvent{Type: EventMenuToggled, Value: v})
}

// HamburgerRect returns the screen rectangle of the menu toggle.
func (n *Navbar) HamburgerRect() Rect { return n.hamburger }

// BackToTopRect returns the screen rectangle of the back-to-top button.
func (n *Navbar) BackToTopRect() Rect { return n.backToTop }

// LinkRect returns the clickable rectangle of the link to section id in the
// current mode.
func (n *Navbar) LinkRect(id string) (Rect, bool) {
	for _, l := range n.links {
		if l.id == id {
			if n.Collapsed() {
				return l.menu, true
			}
			return l.rect, true
		}
	}
	return Rect{}, false
}

func (n *Navbar) menuRect() Rect {
	return Rect{Y: n.p.content.NavbarHeight, Width: n.p.width, Height: float64(len(n.links)) * menuItemHeight}
}

func (n *Navbar) layout() {
	p := n.p
	h := p.content.NavbarHeight
	x0, w := p.column()
	bw, _ := p.fonts.Measure(p.content.Title, 22, true)
	n.brand = Rect{X: x0, Y: 0, Width: bw, Height: h}

	x := x0 + w
	for i := len(n.links) - 1; i >= 0; i-- {
		lw, _ := p.fonts.Measure(n.links[i].label, navLinkSize, false)
		x -= lw
		n.links[i].rect = Rect{X: x, Y: h/2 - 14, Width: lw, Height: 28}
		x -= navLinkGap
	}
	for i := range n.links {
		n.links[i].menu = Rect{Y: h + float64(i)*menuItemHeight, Width: p.width, Height: menuItemHeight}
	}
	n.hamburger = Rect{X: x0 + w - 32, Y: h/2 - 16, Width: 32, Height: 32}
	n.backToTop = Rect{X: p.width - 30 - backToTopSize, Y: p.height - 30 - backToTopSize, Width: backToTopSize, Height: backToTopSize}
	if !n.Collapsed() {
		n.CloseMenu()
	}
}

func (n *Navbar) onClick(ctx PointerContext) {
	p := n.p
	if p.loader != nil && !p.loader.Hidden() {
		return
	}
	x, y := ctx.X, ctx.Y

	if n.Collapsed() {
		if n.hamburger.Contains(x, y) {
			n.ToggleMenu()
			return
		}
		if n.menuOpen {
			for _, l := range n.links {
				if l.menu.Contains(x, y) {
					n.CloseMenu()
					p.scroller.ScrollToAnchor(l.anchor)
					return
				}
			}
			if !n.menuRect().Contains(x, y) {
				n.CloseMenu()
			}
			return
		}
	} else {
		for _, l := range n.links {
			if l.rect.Contains(x, y) {
				p.scroller.ScrollToAnchor(l.anchor)
				return
			}
		}
	}

	if n.brand.Contains(x, y) {
		p.scroller.ScrollTo(0)
		return
	}
	if n.BackToTopVisible() && n.backToTop.Contains(x, y) {
		p.scroller.ScrollTo(0)
	}
}

func (n *Navbar) update(dt float64) {
	n.magnet.update(dt)
}

func (n *Navbar) draw(s Surface) {
	p := n.p
	th := p.content.Theme
	h := p.content.NavbarHeight

	bg := th.Background.WithAlpha(0.6)
	if n.Scrolled() {
		bg = th.Background.WithAlpha(0.95)
	}
	s.FillRect(Rect{Width: p.width, Height: h}, bg)
	if n.Scrolled() {
		s.FillRect(Rect{Y: h - 1, Width: p.width, Height: 1}, th.Primary.WithAlpha(0.2))
	}
	s.Text(p.content.Title, n.brand.X, h/2-13, TextStyle{Size: 22, Bold: true, Color: th.Primary})

	active := n.Active()
	if !n.Collapsed() {
		for _, l := range n.links {
			c := th.Text
			if l.id == active {
				c = th.Primary
				s.FillRect(Rect{X: l.rect.X, Y: l.rect.Y + l.rect.Height, Width: l.rect.Width, Height: 2}, th.Primary)
			}
			s.Text(l.label, l.rect.X, l.rect.Y+5, TextStyle{Size: navLinkSize, Color: c})
		}
	} else {
		hb := n.hamburger
		for i := 0; i < 3; i++ {
			y := hb.Y + 8 + float64(i)*8
			s.FillRect(Rect{X: hb.X + 4, Y: y, Width: hb.Width - 8, Height: 2}, th.Text)
		}
		if n.menuOpen {
			s.FillRect(n.menuRect(), th.Surface.WithAlpha(0.98))
			for _, l := range n.links {
				c := th.Text
				if l.id == active {
					c = th.Primary
				}
				s.Text(l.label, p.width/2, l.menu.Y+16, TextStyle{Size: 17, Color: c, Align: TextAlignCenter})
			}
		}
	}

	if n.BackToTopVisible() {
		b := n.backToTop.Offset(n.magnet.Offset())
		c := b.Center()
		s.FillCircle(c.X, c.Y, b.Width/2, th.Primary)
		s.FillQuad([4]Vec2{
			{c.X, c.Y - 8},
			{c.X + 9, c.Y + 5},
			{c.X - 9, c.Y + 5},
			{c.X, c.Y - 8},
		}, th.Background)
	}
}
