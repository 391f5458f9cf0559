package folio

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

// --- Recording surface ---

type drawOp uint8

const (
	opCircle drawOp = iota
	opLine
	opRect
	opStrokeRect
	opQuad
	opText
)

type drawCall struct {
	op    drawOp
	x, y  float64
	x1    float64 // line end x, or rect width, or circle radius
	y1    float64 // line end y, or rect height
	width float64
	text  string
	color Color
}

// recordSurface is a Surface that records every call instead of drawing.
type recordSurface struct {
	w, h   int
	clears int
	calls  []drawCall
}

func newRecordSurface(w, h int) *recordSurface {
	return &recordSurface{w: w, h: h}
}

func (s *recordSurface) Size() (int, int) { return s.w, s.h }
func (s *recordSurface) Clear() {
	s.clears++
	s.calls = s.calls[:0]
}
func (s *recordSurface) FillCircle(cx, cy, r float64, c Color) {
	s.calls = append(s.calls, drawCall{op: opCircle, x: cx, y: cy, x1: r, color: c})
}
func (s *recordSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	s.calls = append(s.calls, drawCall{op: opLine, x: x0, y: y0, x1: x1, y1: y1, width: width, color: c})
}
func (s *recordSurface) FillRect(r Rect, c Color) {
	s.calls = append(s.calls, drawCall{op: opRect, x: r.X, y: r.Y, x1: r.Width, y1: r.Height, color: c})
}
func (s *recordSurface) StrokeRect(r Rect, width float64, c Color) {
	s.calls = append(s.calls, drawCall{op: opStrokeRect, x: r.X, y: r.Y, x1: r.Width, y1: r.Height, width: width, color: c})
}
func (s *recordSurface) FillQuad(p [4]Vec2, c Color) {
	s.calls = append(s.calls, drawCall{op: opQuad, x: p[0].X, y: p[0].Y, color: c})
}
func (s *recordSurface) Text(str string, x, y float64, style TextStyle) {
	s.calls = append(s.calls, drawCall{op: opText, x: x, y: y, text: str, color: style.Color})
}
func (s *recordSurface) MeasureText(str string, size float64, bold bool) (float64, float64) {
	return float64(len(str)) * size * 0.5, size
}

func (s *recordSurface) count(op drawOp) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (s *recordSurface) hasText(substr string) bool {
	for _, c := range s.calls {
		if c.op == opText && strings.Contains(c.text, substr) {
			return true
		}
	}
	return false
}

// --- Assertions ---

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertNearEps(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, eps)
	}
}

// --- Page fixtures ---

const testContentJSON = `{
	"title": "Test Folio",
	"hero": {
		"greeting": "Hi, I'm",
		"name": "Sam Doe",
		"roles": ["Engineer", "Writer"],
		"tagline": "Building things."
	},
	"sections": [
		{
			"id": "about",
			"title": "About",
			"height": 600,
			"body": ["Short bio."],
			"stats": [
				{"label": "Years", "target": 8},
				{"label": "Projects", "target": 42}
			]
		},
		{
			"id": "skills",
			"title": "Skills",
			"height": 700,
			"skills": [
				{"name": "Go", "percent": 95},
				{"name": "SQL", "percent": 140},
				{"name": "CSS", "percent": -5}
			],
			"items": ["Docker", "Redis", "Kafka"]
		},
		{
			"id": "projects",
			"title": "Projects",
			"height": 700,
			"cards": [
				{"title": "One", "text": "First.", "tilt": true},
				{"title": "Two", "text": "Second.", "tilt": true},
				{"title": "Three", "text": "Third."}
			]
		},
		{
			"id": "resume",
			"title": "Resume",
			"height": 300,
			"resume": "testdata/missing-resume.pdf"
		},
		{
			"id": "contact",
			"title": "Contact",
			"height": 800,
			"form": true
		}
	],
	"footer": "footer"
}`

type fakeSaver struct {
	path  string
	err   error
	names chan string
}

func (s *fakeSaver) SaveAs(name string) (string, error) {
	if s.names != nil {
		s.names <- name
	}
	return s.path, s.err
}

func testContent(t *testing.T) *Content {
	t.Helper()
	c, err := LoadContent([]byte(testContentJSON))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	return c
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// newTestPage builds a 1280x720 page with no device input, a seeded
// backdrop and silent logs.
func newTestPage(t *testing.T, c *Content, opts ...PageOption) *Page {
	t.Helper()
	if c == nil {
		c = testContent(t)
	}
	base := []PageOption{
		WithLogOutput(nil),
		WithFieldConfig(FieldConfig{Rand: testRand()}),
		WithSaver(&fakeSaver{}),
	}
	p := NewPage(c, append(base, opts...)...)
	p.input = nil
	return p
}

// readyPage is a test page whose loader has already hidden.
func readyPage(t *testing.T, opts ...PageOption) *Page {
	t.Helper()
	p := newTestPage(t, nil, opts...)
	p.loader.Hide()
	return p
}

func runFrames(t *testing.T, p *Page, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := p.Update(); err != nil {
			t.Fatalf("Update frame %d: %v", i, err)
		}
	}
}

// runUntil updates until cond holds, failing after limit frames.
func runUntil(t *testing.T, p *Page, limit int, cond func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return
		}
		if err := p.Update(); err != nil {
			t.Fatalf("Update frame %d: %v", i, err)
		}
	}
	if !cond() {
		t.Fatalf("condition not met after %d frames", limit)
	}
}

// eventRecorder is an EventSink that keeps every event.
type eventRecorder struct {
	events []PageEvent
}

func (r *eventRecorder) EmitEvent(ev PageEvent) {
	r.events = append(r.events, ev)
}

func (r *eventRecorder) count(typ EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func (r *eventRecorder) last(typ EventType) (PageEvent, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == typ {
			return r.events[i], true
		}
	}
	return PageEvent{}, false
}
