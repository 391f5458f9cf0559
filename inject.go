package folio

import "github.com/hajimehoshi/ebiten/v2"

type injectKind uint8

const (
	injectMove injectKind = iota
	injectLeave
	injectPress
	injectRelease
	injectScroll
	injectText
	injectKey
	injectResize
)

// syntheticEvent represents a single injected input event. Screen
// coordinates are used, identical to real mouse input.
type syntheticEvent struct {
	kind injectKind
	x, y float64
	text string
	key  ebiten.Key
	w, h int
}

// InjectMove queues a pointer move to the given screen position, keeping the
// current button state.
// Each injected event is consumed by one Update call.
func (p *Page) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectMove, x: x, y: y})
}

// InjectLeave queues the pointer leaving the window.
func (p *Page) InjectLeave() {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectLeave})
}

// InjectPress queues a left button press at the given screen position.
func (p *Page) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectPress, x: x, y: y})
}

// InjectRelease queues a left button release at the given screen position.
func (p *Page) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectRelease, x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (p *Page) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectScroll queues a user scroll by dy pixels (positive scrolls down).
func (p *Page) InjectScroll(dy float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectScroll, y: dy})
}

// InjectText queues typed text for the focused field.
func (p *Page) InjectText(s string) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectText, text: s})
}

// InjectKey queues a key press.
func (p *Page) InjectKey(k ebiten.Key) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectKey, key: k})
}

// InjectResize queues a viewport resize, as if the window changed size.
func (p *Page) InjectResize(w, h int) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectResize, w: w, h: h})
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (device input should be skipped).
func (p *Page) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case injectMove:
		p.processPointer(evt.x, evt.y, p.pointer.down)
	case injectLeave:
		p.processLeave()
	case injectPress:
		p.processPointer(evt.x, evt.y, true)
	case injectRelease:
		p.processPointer(evt.x, evt.y, false)
	case injectScroll:
		p.userScroll(evt.y)
	case injectText:
		p.handleRunes([]rune(evt.text))
	case injectKey:
		p.handleKey(evt.key)
	case injectResize:
		p.resize(evt.w, evt.h)
	}
	return true
}
