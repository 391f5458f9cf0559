package folio

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	clickDeadZone = 4.0  // pixels a press may travel and still count as a click
	wheelStep     = 60.0 // pixels scrolled per wheel notch
	keyScrollStep = 80.0 // pixels scrolled per arrow key
)

// watchedKeys are polled every frame and routed to the focused form field or
// to keyboard scrolling.
var watchedKeys = []ebiten.Key{
	ebiten.KeyTab,
	ebiten.KeyEnter,
	ebiten.KeyBackspace,
	ebiten.KeyEscape,
	ebiten.KeyPageUp,
	ebiten.KeyPageDown,
	ebiten.KeyHome,
	ebiten.KeyEnd,
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
}

// --- Input source ---

// inputSource abstracts the polled device state so the page can be driven
// without a window.
type inputSource interface {
	CursorPosition() (int, int)
	MousePressed() bool
	Wheel() float64
	AppendChars(runes []rune) []rune
	KeyJustPressed(k ebiten.Key) bool
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenInput) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
func (ebitenInput) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}
func (ebitenInput) AppendChars(runes []rune) []rune { return ebiten.AppendInputChars(runes) }
func (ebitenInput) KeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// --- Contexts ---

// PointerContext describes a pointer event. X and Y are screen coordinates;
// DocY is Y translated into document space.
type PointerContext struct {
	X, Y   float64
	DocY   float64
	Button MouseButton
}

// ScrollContext describes a change of the scroll offset.
type ScrollContext struct {
	Y     float64
	Delta float64
}

// --- Per-pointer state ---

type pointerState struct {
	inside bool
	down   bool
	x, y   float64
	startX float64
	startY float64
}

// --- Handler registry ---

type handlerKind uint8

const (
	handlerMove handlerKind = iota
	handlerLeave
	handlerClick
	handlerScroll
)

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type scrollHandler struct {
	id uint32
	fn func(ScrollContext)
}

type handlerRegistry struct {
	move   []pointerHandler
	leave  []pointerHandler
	click  []pointerHandler
	scroll []scrollHandler
	nextID uint32
}

// CallbackHandle allows removing a registered page-level callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerMove:
		h.reg.move = removePointerHandler(h.reg.move, h.id)
	case handlerLeave:
		h.reg.leave = removePointerHandler(h.reg.leave, h.id)
	case handlerClick:
		h.reg.click = removePointerHandler(h.reg.click, h.id)
	case handlerScroll:
		for i := range h.reg.scroll {
			if h.reg.scroll[i].id == h.id {
				h.reg.scroll = append(h.reg.scroll[:i], h.reg.scroll[i+1:]...)
				return
			}
		}
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) addPointer(kind handlerKind, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	h := pointerHandler{id: r.nextID, fn: fn}
	switch kind {
	case handlerMove:
		r.move = append(r.move, h)
	case handlerLeave:
		r.leave = append(r.leave, h)
	case handlerClick:
		r.click = append(r.click, h)
	}
	return CallbackHandle{id: h.id, reg: r, kind: kind}
}

// OnPointerMove registers a callback fired whenever the pointer moves inside
// the window.
func (p *Page) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return p.handlers.addPointer(handlerMove, fn)
}

// OnPointerLeave registers a callback fired when the pointer leaves the window.
func (p *Page) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return p.handlers.addPointer(handlerLeave, fn)
}

// OnClick registers a callback fired on press then release within the click
// dead zone.
func (p *Page) OnClick(fn func(PointerContext)) CallbackHandle {
	return p.handlers.addPointer(handlerClick, fn)
}

// OnScroll registers a callback fired whenever the scroll offset changes.
func (p *Page) OnScroll(fn func(ScrollContext)) CallbackHandle {
	p.handlers.nextID++
	p.handlers.scroll = append(p.handlers.scroll, scrollHandler{id: p.handlers.nextID, fn: fn})
	return CallbackHandle{id: p.handlers.nextID, reg: &p.handlers, kind: handlerScroll}
}

// firePointer calls every handler in hs. Handlers may remove themselves
// while firing, so iterate over a snapshot.
func firePointer(hs []pointerHandler, ctx PointerContext) {
	if len(hs) == 0 {
		return
	}
	snapshot := append([]pointerHandler(nil), hs...)
	for _, h := range snapshot {
		h.fn(ctx)
	}
}

// --- Input processing ---

// processInput is called from Page.Update to handle pointer, wheel and
// keyboard input. Injected events take priority over device state.
func (p *Page) processInput() {
	if p.processInjectedInput() {
		return
	}
	if p.input == nil {
		return
	}

	mx, my := p.input.CursorPosition()
	x, y := float64(mx), float64(my)
	if x >= 0 && y >= 0 && x < p.width && y < p.height {
		p.processPointer(x, y, p.input.MousePressed())
	} else {
		p.processLeave()
	}

	if dy := p.input.Wheel(); dy != 0 {
		p.userScroll(-dy * wheelStep)
	}

	p.chars = p.input.AppendChars(p.chars[:0])
	if len(p.chars) > 0 {
		p.handleRunes(p.chars)
	}
	for _, k := range watchedKeys {
		if p.input.KeyJustPressed(k) {
			p.handleKey(k)
		}
	}
}

// processPointer runs the pointer state machine for the mouse.
func (p *Page) processPointer(x, y float64, pressed bool) {
	ps := &p.pointer
	ctx := PointerContext{X: x, Y: y, DocY: y + p.scrollY, Button: MouseButtonLeft}

	if !ps.inside || x != ps.x || y != ps.y {
		ps.inside = true
		ps.x, ps.y = x, y
		if p.field != nil {
			p.field.SetPointer(x, y)
		}
		firePointer(p.handlers.move, ctx)
	}

	if pressed && !ps.down {
		ps.down = true
		ps.startX, ps.startY = x, y
	} else if !pressed && ps.down {
		ps.down = false
		if math.Hypot(x-ps.startX, y-ps.startY) <= clickDeadZone {
			firePointer(p.handlers.click, ctx)
		}
	}
}

// processLeave marks the pointer absent and fires leave handlers once.
func (p *Page) processLeave() {
	ps := &p.pointer
	if !ps.inside {
		return
	}
	ps.inside = false
	ps.down = false
	if p.field != nil {
		p.field.ClearPointer()
	}
	firePointer(p.handlers.leave, PointerContext{X: ps.x, Y: ps.y, DocY: ps.y + p.scrollY})
}

// Pointer returns the last pointer position in screen space and whether the
// pointer is inside the window.
func (p *Page) Pointer() (x, y float64, inside bool) {
	return p.pointer.x, p.pointer.y, p.pointer.inside
}

func (p *Page) handleRunes(runes []rune) {
	if p.form != nil && p.form.Focused() {
		p.form.InsertRunes(runes)
	}
}

func (p *Page) handleKey(k ebiten.Key) {
	if p.form != nil && p.form.Focused() {
		if p.form.HandleKey(k) {
			return
		}
	}
	switch k {
	case ebiten.KeyArrowDown:
		p.userScroll(keyScrollStep)
	case ebiten.KeyArrowUp:
		p.userScroll(-keyScrollStep)
	case ebiten.KeyPageDown:
		p.userScroll(p.height * 0.9)
	case ebiten.KeyPageUp:
		p.userScroll(-p.height * 0.9)
	case ebiten.KeyHome:
		p.userScroll(-p.scrollY)
	case ebiten.KeyEnd:
		p.userScroll(p.MaxScroll() - p.scrollY)
	case ebiten.KeyEscape:
		if p.nav != nil {
			p.nav.CloseMenu()
		}
	}
}
