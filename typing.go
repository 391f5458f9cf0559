package folio

const (
	typeStartDelay  = 1.0
	typeCharDelay   = 0.1
	deleteCharDelay = 0.05
	fullWordPause   = 2.0
	emptyWordPause  = 0.5
)

// Typewriter cycles through a list of roles, typing each one a character at
// a time, pausing, deleting it, and moving on to the next.
type Typewriter struct {
	roles     [][]rune
	roleIndex int
	charIndex int
	deleting  bool
	wait      float64
	text      string
}

// NewTypewriter returns nil when roles is empty. Empty roles are dropped.
func NewTypewriter(roles []string) *Typewriter {
	t := &Typewriter{wait: typeStartDelay}
	for _, r := range roles {
		if r != "" {
			t.roles = append(t.roles, []rune(r))
		}
	}
	if len(t.roles) == 0 {
		return nil
	}
	return t
}

// Text is the currently visible portion of the role.
func (t *Typewriter) Text() string {
	return t.text
}

// Role returns the index of the role being typed or deleted.
func (t *Typewriter) Role() int {
	return t.roleIndex
}

// Deleting reports whether the typewriter is erasing.
func (t *Typewriter) Deleting() bool {
	return t.deleting
}

// Update advances the typewriter by dt seconds. Several steps may run in one
// call when dt spans more than one delay.
func (t *Typewriter) Update(dt float64) {
	t.wait -= dt
	for t.wait <= 1e-9 {
		t.wait += t.step()
	}
}

// step types or deletes one character and returns the delay before the next.
func (t *Typewriter) step() float64 {
	role := t.roles[t.roleIndex]
	var delay float64
	if t.deleting {
		t.charIndex--
		delay = deleteCharDelay
	} else {
		t.charIndex++
		delay = typeCharDelay
	}
	t.text = string(role[:t.charIndex])

	switch {
	case !t.deleting && t.charIndex == len(role):
		t.deleting = true
		delay = fullWordPause
	case t.deleting && t.charIndex == 0:
		t.deleting = false
		t.roleIndex = (t.roleIndex + 1) % len(t.roles)
		delay = emptyWordPause
	}
	return delay
}

// typewriterWidget draws the typed role under the hero name with a caret.
type typewriterWidget struct {
	p  *Page
	tw *Typewriter
}

func (w typewriterWidget) layout() {}

func (w typewriterWidget) update(dt float64) {
	w.tw.Update(dt)
}

func (w typewriterWidget) draw(s Surface) {
	h := w.p.hero
	if h == nil {
		return
	}
	x, y := h.textOrigin()
	y += 96 - w.p.scrollY
	th := w.p.content.Theme
	style := TextStyle{Size: 24, Color: th.Primary.WithAlpha(h.textAlpha)}
	s.Text(w.tw.Text(), x, y, style)
	tw, _ := s.MeasureText(w.tw.Text(), style.Size, false)
	s.FillRect(Rect{X: x + tw + 3, Y: y + 4, Width: 2, Height: 24}, th.Primary.WithAlpha(h.textAlpha))
}
