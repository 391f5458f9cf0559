package folio

import (
	"strings"

	"github.com/tanema/gween/ease"
)

const (
	smoothScrollDuration = 0.8
	snapIdleTime         = 0.15 // seconds without user scrolling before a snap
	defaultSnapDistance  = 150.0
)

// SmoothScroller animates the scroll offset toward a target. A user scroll
// cancels the animation. With section snap enabled, the page settles on the
// nearest section anchor once the user stops scrolling near one.
type SmoothScroller struct {
	p      *Page
	pos    float64
	target float64
	tween  *TweenGroup

	snapDistance float64 // zero disables snapping
	snapPending  bool
	idle         float64
}

func newSmoothScroller(p *Page) *SmoothScroller {
	return &SmoothScroller{p: p}
}

// ScrollTo starts a 0.8s eased scroll to y, replacing any scroll in flight.
// y is clamped to the document.
func (s *SmoothScroller) ScrollTo(y float64) {
	s.target = clamp(y, 0, s.p.MaxScroll())
	s.pos = s.p.scrollY
	s.tween = TweenValue(&s.pos, s.target, smoothScrollDuration, ease.InOutCubic)
}

// ScrollToAnchor scrolls to the section named by a "#id" anchor, leaving
// room for the navbar. A bare "#" and unknown ids are ignored. It reports
// whether a scroll started.
func (s *SmoothScroller) ScrollToAnchor(anchor string) bool {
	id, ok := strings.CutPrefix(anchor, "#")
	if !ok || id == "" {
		return false
	}
	sec, ok := s.p.content.Section(id)
	if !ok {
		return false
	}
	y := sec.Top - s.p.content.NavbarHeight
	s.ScrollTo(y)
	s.p.emit(PageEvent{Type: EventNavigate, Target: anchor, Value: s.target})
	return true
}

// SnapTarget returns the anchor offset nearest to y: the top of the page or
// a section top less the navbar height. ok is false when snapping is off or
// no anchor lies within the snap distance.
func (s *SmoothScroller) SnapTarget(y float64) (target float64, ok bool) {
	if s.snapDistance <= 0 {
		return 0, false
	}
	best := s.snapDistance
	consider := func(a float64) {
		a = clamp(a, 0, s.p.MaxScroll())
		if d := max(a-y, y-a); d <= best {
			best, target, ok = d, a, true
		}
	}
	consider(0)
	for i := range s.p.content.Sections {
		consider(s.p.content.Sections[i].Top - s.p.content.NavbarHeight)
	}
	return target, ok
}

// userScrolled restarts the idle timer that precedes a snap.
func (s *SmoothScroller) userScrolled() {
	if s.snapDistance > 0 {
		s.snapPending = true
		s.idle = 0
	}
}

func (s *SmoothScroller) trySnap(dt float64) {
	if !s.snapPending || s.tween != nil || s.p.ScrollLocked() {
		return
	}
	s.idle += dt
	if s.idle < snapIdleTime-1e-9 {
		return
	}
	s.snapPending = false
	if y, ok := s.SnapTarget(s.p.scrollY); ok && y != s.p.scrollY {
		s.ScrollTo(y)
	}
}

// Active reports whether a smooth scroll is in progress.
func (s *SmoothScroller) Active() bool {
	return s.tween != nil
}

// Target returns the destination of the current or last scroll.
func (s *SmoothScroller) Target() float64 {
	return s.target
}

// Cancel stops the scroll where it is and drops any pending snap.
func (s *SmoothScroller) Cancel() {
	s.tween = nil
	s.snapPending = false
}

func (s *SmoothScroller) layout() {
	if s.tween != nil {
		s.target = min(s.target, s.p.MaxScroll())
	}
}

func (s *SmoothScroller) update(dt float64) {
	s.trySnap(dt)
	if s.tween == nil {
		return
	}
	tw := s.tween
	tw.Update(float32(dt))
	y := s.pos
	if tw.Done {
		y = s.target
		s.tween = nil
	}
	s.p.setScroll(y)
}

func (s *SmoothScroller) draw(Surface) {}
